// Command seeder rebuilds the generated reference datasets from the
// city table: the inter-city travel-cost matrix (distance-derived
// fares, one direction per pair) and the hotel catalog.
package main

import (
	"context"
	"fmt"
	"math"
	"path/filepath"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"safarnama/internal/adapters/geocode"
	"safarnama/internal/adapters/observability"
	"safarnama/internal/adapters/routing"
	"safarnama/internal/app"
	"safarnama/internal/domain"
	"safarnama/internal/shared"
	"safarnama/internal/storage/csvstore"
)

// Fare rates in Rs per km; flights have a floor matching the legacy
// dataset. The live estimator prices flights without a floor, so only
// the generated table carries it.
const (
	carPerKm    = 12.0
	busPerKm    = 8.0
	trainPerKm  = 6.0
	flightPerKm = 25.0
	flightFloor = 5000.0
)

func main() {
	ctx := context.Background()
	cfg := shared.Load()

	log.Logger = observability.NewLogger(cfg.AppEnv)
	log.Info().Str("data_dir", cfg.DataDir).Int("workers", cfg.Workers).Msg("seeder starting")

	cities, err := csvstore.OpenCities(filepath.Join(cfg.DataDir, "cities.csv"))
	if err != nil {
		log.Fatal().Err(err).Msg("open cities table failed")
	}

	resolver := app.NewLocationResolver(cities, geocode.New(cfg.NominatimBase, cfg.GeocodeRPS))
	routes := app.NewRouteService(resolver, routing.New(cfg.OSRMBase))

	entries := seedTravelCosts(ctx, cfg.Workers, cities.All(), routes)
	costPath := filepath.Join(cfg.DataDir, "travel_costs.csv")
	if err := csvstore.WriteTravelCosts(costPath, entries); err != nil {
		log.Fatal().Err(err).Msg("write travel costs failed")
	}
	log.Info().Int("pairs", len(entries)).Str("path", costPath).Msg("travel costs written")

	hotels := seedHotels(cities.All())
	hotelPath := filepath.Join(cfg.DataDir, "hotels.csv")
	if err := csvstore.WriteHotels(hotelPath, hotels); err != nil {
		log.Fatal().Err(err).Msg("write hotels failed")
	}
	log.Info().Int("hotels", len(hotels)).Str("path", hotelPath).Msg("hotel catalog written")
}

// seedTravelCosts prices every unordered city pair once. Distance
// lookups run concurrently under a weighted semaphore.
func seedTravelCosts(ctx context.Context, workers int, cities []domain.CityRecord, routes *app.RouteService) []domain.TravelCostEntry {
	type pair struct{ origin, dest string }
	var pairs []pair
	for i, o := range cities {
		for _, d := range cities[i+1:] {
			pairs = append(pairs, pair{o.Name, d.Name})
		}
	}

	entries := make([]domain.TravelCostEntry, len(pairs))
	sem := semaphore.NewWeighted(int64(workers))
	var wg sync.WaitGroup

	for i, p := range pairs {
		i, p := i, p

		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, 1); err != nil {
			log.Fatal().Err(err).Msg("semaphore acquire failed")
		}

		wg.Add(1)
		go func() {
			defer wg.Done()
			defer sem.Release(1)

			km, err := routes.EstimateDistance(ctx, p.origin, p.dest)
			if err != nil {
				log.Warn().Err(err).Str("origin", p.origin).Str("destination", p.dest).Msg("distance failed, pair skipped")
				return
			}
			entries[i] = domain.TravelCostEntry{
				Origin:      p.origin,
				Destination: p.dest,
				Car:         math.Floor(km * carPerKm),
				Bus:         math.Floor(km * busPerKm),
				Train:       math.Floor(km * trainPerKm),
				Flight:      math.Max(flightFloor, math.Floor(km*flightPerKm)),
			}
		}()
	}
	wg.Wait()

	out := entries[:0]
	for _, e := range entries {
		if e.Origin != "" {
			out = append(out, e)
		}
	}
	return out
}

var categoryAmenities = map[string][]string{
	"Budget":   {"WiFi", "Parking", "24/7 Front Desk"},
	"Business": {"WiFi", "Breakfast", "Parking", "Business Center", "Gym"},
	"Luxury":   {"WiFi", "Breakfast", "Parking", "Pool", "Spa", "Restaurant", "Room Service"},
	"Heritage": {"WiFi", "Breakfast", "Parking", "Garden", "Cultural Activities"},
	"Resort":   {"WiFi", "Breakfast", "Parking", "Pool", "Spa", "Restaurant", "Activities"},
}

type hotelSeed struct {
	name        string
	category    string
	price       float64
	rating      float64
	location    string
	description string
}

// Curated entries for the major cities; everything else gets a
// deterministic three-tier set.
var curatedHotels = map[string][]hotelSeed{
	"islamabad": {
		{"Serena Hotel", "Luxury", 15000, 4.8, "Diplomatic Enclave", "Luxury hotel with spa and fine dining"},
		{"Islamabad Hotel", "Business", 8000, 4.2, "Blue Area", "Business hotel in city center"},
		{"Shelton's Hotel", "Budget", 4000, 3.8, "F-7", "Comfortable budget accommodation"},
	},
	"lahore": {
		{"Pearl Continental", "Luxury", 18000, 4.7, "Mall Road", "Five-star luxury hotel"},
		{"Nishat Hotel", "Business", 10000, 4.3, "Gulberg", "Business hotel with modern amenities"},
		{"Hotel One", "Budget", 5000, 3.9, "Main Boulevard", "Affordable comfort"},
	},
}

func seedHotels(cities []domain.CityRecord) []domain.HotelRecord {
	var out []domain.HotelRecord
	for _, c := range cities {
		seeds, ok := curatedHotels[strings.ToLower(c.Name)]
		if !ok {
			seeds = []hotelSeed{
				{c.Name + " Continental", "Luxury", 14000, 4.5, "City Center, " + c.Name, "Full-service hotel with restaurant and pool"},
				{c.Name + " Grand Hotel", "Business", 7500, 4.1, "Main Boulevard, " + c.Name, "Business hotel near the commercial district"},
				{c.Name + " Inn", "Budget", 3500, 3.7, "Station Road, " + c.Name, "Clean and affordable rooms"},
			}
		}
		for i, s := range seeds {
			out = append(out, domain.HotelRecord{
				ID:            hotelID(c.Name, i+1),
				City:          c.Name,
				Name:          s.name,
				PricePerNight: s.price,
				Rating:        s.rating,
				Category:      s.category,
				Location:      s.location,
				Description:   s.description,
				Amenities:     categoryAmenities[s.category],
			})
		}
	}
	return out
}

// hotelID builds the 3-letter-prefix + 3-digit catalog id, e.g. ISL001.
func hotelID(city string, n int) string {
	prefix := strings.ToUpper(city)
	if len(prefix) > 3 {
		prefix = prefix[:3]
	}
	return fmt.Sprintf("%s%03d", prefix, n)
}
