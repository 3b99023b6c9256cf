package app

import (
	"context"
	"sort"
	"time"

	"safarnama/internal/domain"
)

// PlanningService is the read side of the planner: city lists, hotel
// and place catalogs, per-hotel stay costs. Catalog reads go through
// the cache.
type PlanningService struct {
	cities   domain.CityRepository
	hotels   domain.HotelCatalog
	places   domain.PlaceCatalog
	fares    domain.TravelCostTable
	cache    domain.Cache
	cacheTTL time.Duration
}

func NewPlanningService(cities domain.CityRepository, hotels domain.HotelCatalog, places domain.PlaceCatalog, fares domain.TravelCostTable, cache domain.Cache, ttl time.Duration) *PlanningService {
	return &PlanningService{cities: cities, hotels: hotels, places: places, fares: fares, cache: cache, cacheTTL: ttl}
}

func (s *PlanningService) Cities(_ context.Context) []domain.CityRecord {
	return s.cities.All()
}

func (s *PlanningService) HotelsInCity(ctx context.Context, city string) []domain.HotelRecord {
	key := hotelsKey(city)
	var out []domain.HotelRecord
	if ok, _ := s.cache.Get(ctx, key, &out); ok {
		return out
	}
	out = s.hotels.ByCity(city)
	_ = s.cache.Set(ctx, key, out, int(s.cacheTTL.Seconds()))
	return out
}

// HotelCost prices a stay for one room. An unknown id prices at zero,
// mirroring the budget estimator.
func (s *PlanningService) HotelCost(hotelID string, nights int) domain.HotelCost {
	h, ok := s.hotels.ByID(hotelID)
	if !ok {
		return domain.HotelCost{}
	}
	return domain.HotelCost{
		PricePerNight: h.PricePerNight,
		Total:         h.PricePerNight * float64(nights),
	}
}

// FareBetween looks up the static inter-city fare row, either
// direction. false when the pair was never seeded.
func (s *PlanningService) FareBetween(origin, destination string) (domain.TravelCostEntry, bool) {
	return s.fares.Fare(origin, destination)
}

// TopAttractions returns the city's best-rated attractions, optionally
// filtered by category. limit <= 0 means all.
func (s *PlanningService) TopAttractions(ctx context.Context, city, category string, limit int) []domain.Attraction {
	key := attractionsKey(city, category, limit)
	var out []domain.Attraction
	if ok, _ := s.cache.Get(ctx, key, &out); ok {
		return out
	}

	out = s.places.Attractions(city, category)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Rating > out[j].Rating })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	_ = s.cache.Set(ctx, key, out, int(s.cacheTTL.Seconds()))
	return out
}

func (s *PlanningService) TopRestaurants(ctx context.Context, city, cuisine string, limit int) []domain.Restaurant {
	key := restaurantsKey(city, cuisine, limit)
	var out []domain.Restaurant
	if ok, _ := s.cache.Get(ctx, key, &out); ok {
		return out
	}

	out = s.places.Restaurants(city, cuisine)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Rating > out[j].Rating })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	_ = s.cache.Set(ctx, key, out, int(s.cacheTTL.Seconds()))
	return out
}
