package app

import (
	"context"
	"math"

	"github.com/rs/zerolog/log"

	"safarnama/internal/adapters/observability"
	"safarnama/internal/domain"
	"safarnama/internal/geo"
)

// Average speeds in km/h for travel-time estimates.
var avgSpeedKmh = map[domain.TravelMode]float64{
	domain.ModeVehicle: 60,
	domain.ModeBus:     50,
	domain.ModeFlight:  800,
}

// RouteService turns two city names into a distance: road distance
// from the routing service when it answers, geodesic distance when it
// doesn't. Routing failures never surface to callers.
type RouteService struct {
	resolver *LocationResolver
	router   domain.Router
}

func NewRouteService(r *LocationResolver, router domain.Router) *RouteService {
	return &RouteService{resolver: r, router: router}
}

// EstimateDistance returns kilometers rounded to one decimal place.
// Resolver failures propagate unchanged.
func (s *RouteService) EstimateDistance(ctx context.Context, origin, destination string) (float64, error) {
	o, err := s.resolver.Resolve(ctx, origin)
	if err != nil {
		return 0, err
	}
	d, err := s.resolver.Resolve(ctx, destination)
	if err != nil {
		return 0, err
	}

	if km, err := s.router.RoadDistance(ctx, o, d); err == nil {
		return round1(km), nil
	} else {
		log.Warn().Err(err).
			Str("origin", origin).Str("destination", destination).
			Msg("routing unavailable, falling back to geodesic distance")
		observability.GeodesicFallbacks.Inc()
	}

	return round1(geo.DistanceKm(o.Lat, o.Lon, d.Lat, d.Lon)), nil
}

// EstimateRoute adds a travel-time estimate for the mode. Unrecognized
// modes use the vehicle speed.
func (s *RouteService) EstimateRoute(ctx context.Context, origin, destination string, mode domain.TravelMode) (domain.RouteInfo, error) {
	km, err := s.EstimateDistance(ctx, origin, destination)
	if err != nil {
		return domain.RouteInfo{}, err
	}

	speed, ok := avgSpeedKmh[mode]
	if !ok {
		speed = avgSpeedKmh[domain.ModeVehicle]
	}
	return domain.RouteInfo{
		DistanceKm: km,
		TimeHours:  round1(km / speed),
	}, nil
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
