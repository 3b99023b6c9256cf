package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"safarnama/internal/domain"
)

const defaultCountry = "Pakistan"

// LocationResolver maps a city name to coordinates: reference table
// first, geocoding on miss. A successful geocode is appended to the
// table and flushed; this is the only mutation path in the core.
type LocationResolver struct {
	cities  domain.CityRepository
	geocode domain.Geocoder
}

func NewLocationResolver(cities domain.CityRepository, g domain.Geocoder) *LocationResolver {
	return &LocationResolver{cities: cities, geocode: g}
}

func (r *LocationResolver) Resolve(ctx context.Context, city string) (domain.Coords, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return domain.Coords{}, fmt.Errorf("%w: empty city name", domain.ErrCityNotFound)
	}

	if rec, ok := r.cities.Find(city); ok {
		return domain.Coords{Lat: rec.Lat, Lon: rec.Lon}, nil
	}

	coords, err := r.geocode.Geocode(ctx, city+", "+defaultCountry)
	if err != nil {
		if errors.Is(err, domain.ErrCityNotFound) {
			return domain.Coords{}, fmt.Errorf("%w: %s", domain.ErrCityNotFound, city)
		}
		return domain.Coords{}, fmt.Errorf("geocode %q: %w: %v", city, domain.ErrExternalService, err)
	}

	r.cities.Append(domain.CityRecord{
		Name:     city, // as given, not normalized
		Country:  defaultCountry,
		Lat:      coords.Lat,
		Lon:      coords.Lon,
		Province: "Unknown",
	})
	// A failed flush must not mask a valid resolution; the row stays
	// in memory and the next flush retries it.
	if err := r.cities.Flush(); err != nil {
		log.Error().Err(err).Str("city", city).Msg("city table flush failed")
	}
	return coords, nil
}
