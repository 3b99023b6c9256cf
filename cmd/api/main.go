package main

import (
	"net/http"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"safarnama/internal/adapters/geocode"
	server "safarnama/internal/adapters/http_server"
	"safarnama/internal/adapters/memcache"
	"safarnama/internal/adapters/observability"
	redisad "safarnama/internal/adapters/redis"
	"safarnama/internal/adapters/routing"
	"safarnama/internal/adapters/weather"
	"safarnama/internal/app"
	"safarnama/internal/domain"
	"safarnama/internal/shared"
	"safarnama/internal/storage/csvstore"
)

func main() {
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	observability.Serve()

	// reference tables
	cities, err := csvstore.OpenCities(filepath.Join(cfg.DataDir, "cities.csv"))
	if err != nil {
		log.Fatal().Err(err).Msg("open cities table failed")
	}
	hotels, err := csvstore.OpenHotels(filepath.Join(cfg.DataDir, "hotels.csv"))
	if err != nil {
		log.Fatal().Err(err).Msg("open hotel catalog failed")
	}
	fares, err := csvstore.OpenTravelCosts(filepath.Join(cfg.DataDir, "travel_costs.csv"))
	if err != nil {
		log.Fatal().Err(err).Msg("open travel cost table failed")
	}
	places, err := csvstore.OpenPlaces(
		filepath.Join(cfg.DataDir, "attractions.csv"),
		filepath.Join(cfg.DataDir, "restaurants.csv"),
	)
	if err != nil {
		log.Fatal().Err(err).Msg("open places catalog failed")
	}
	log.Info().Int("cities", len(cities.All())).Str("dir", cfg.DataDir).Msg("reference tables loaded")

	var cache domain.Cache
	if cfg.CacheBackend == "redis" {
		cache = redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	} else {
		cache = memcache.New(cfg.CacheTTL)
	}

	// deps
	resolver := app.NewLocationResolver(cities, geocode.New(cfg.NominatimBase, cfg.GeocodeRPS))
	routes := app.NewRouteService(resolver, routing.New(cfg.OSRMBase))
	budget := app.NewBudgetService(routes, hotels, fares)
	wsvc := app.NewWeatherService(resolver, weather.New(cfg.WeatherBase, cfg.WeatherKey), cache, cfg.WeatherTTL)
	planning := app.NewPlanningService(cities, hotels, places, fares, cache, cfg.CacheTTL)

	// http
	srv := server.New()
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{
		Planning: planning,
		Routes:   routes,
		Budget:   budget,
		Weather:  wsvc,
	})

	log.Info().Str("addr", cfg.HTTPAddr).Msg("API listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}
