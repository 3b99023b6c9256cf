package app_test

import (
	"context"
	"testing"
	"time"

	"safarnama/internal/app"
	"safarnama/internal/domain"
)

func planningFixture() (*app.PlanningService, *fakeCache) {
	cities := &fakeCities{rows: []domain.CityRecord{islamabad()}}
	hotels := &fakeHotels{
		byID: map[string]domain.HotelRecord{
			"ISL001": {ID: "ISL001", City: "Islamabad", Name: "Serena Hotel", PricePerNight: 15000},
		},
		byCity: map[string][]domain.HotelRecord{
			"islamabad": {
				{ID: "ISL001", Name: "Serena Hotel", Rating: 4.8},
				{ID: "ISL002", Name: "Islamabad Hotel", Rating: 4.2},
			},
		},
	}
	places := &fakePlaces{
		attractions: []domain.Attraction{
			{City: "Islamabad", Name: "Pakistan Monument", Category: "Historical", Rating: 4.5},
			{City: "Islamabad", Name: "Faisal Mosque", Category: "Religious", Rating: 4.8},
			{City: "Islamabad", Name: "Daman-e-Koh", Category: "Nature", Rating: 4.6},
		},
		restaurants: []domain.Restaurant{
			{City: "Islamabad", Name: "Chaaye Khana", Cuisine: "Pakistani", Rating: 4.3},
			{City: "Islamabad", Name: "Monal Restaurant", Cuisine: "Pakistani", Rating: 4.5},
		},
	}
	fares := &fakeFares{entries: map[[2]string]domain.TravelCostEntry{
		{"islamabad", "lahore"}: {Origin: "Islamabad", Destination: "Lahore", Car: 4090, Bus: 2727, Train: 2045, Flight: 8522},
	}}
	cache := &fakeCache{}
	return app.NewPlanningService(cities, hotels, places, fares, cache, 15*time.Minute), cache
}

func TestFareBetween(t *testing.T) {
	s, _ := planningFixture()

	e, ok := s.FareBetween("LAHORE", "islamabad")
	if !ok || e.Bus != 2727 {
		t.Fatalf("expected the seeded fare either direction, got ok=%v %+v", ok, e)
	}
	if _, ok := s.FareBetween("Islamabad", "Karachi"); ok {
		t.Fatal("expected no fare for an unseeded pair")
	}
}

func TestTopAttractions_SortedAndLimited(t *testing.T) {
	s, _ := planningFixture()

	out := s.TopAttractions(context.Background(), "Islamabad", "", 2)
	if len(out) != 2 {
		t.Fatalf("expected 2 attractions, got %d", len(out))
	}
	if out[0].Name != "Faisal Mosque" || out[1].Name != "Daman-e-Koh" {
		t.Fatalf("wrong order: %s, %s", out[0].Name, out[1].Name)
	}
}

func TestTopAttractions_CategoryFilter(t *testing.T) {
	s, _ := planningFixture()

	out := s.TopAttractions(context.Background(), "Islamabad", "Historical", 0)
	if len(out) != 1 || out[0].Name != "Pakistan Monument" {
		t.Fatalf("unexpected filtered set: %+v", out)
	}
}

func TestTopAttractions_CachesResult(t *testing.T) {
	s, cache := planningFixture()

	first := s.TopAttractions(context.Background(), "Islamabad", "", 3)
	if cache.sets != 1 {
		t.Fatalf("expected one cache set, got %d", cache.sets)
	}
	second := s.TopAttractions(context.Background(), "Islamabad", "", 3)
	if cache.sets != 1 {
		t.Fatalf("second call should hit the cache, got %d sets", cache.sets)
	}
	if len(first) != len(second) {
		t.Fatalf("cached result differs: %d vs %d", len(first), len(second))
	}
}

func TestTopRestaurants_Sorted(t *testing.T) {
	s, _ := planningFixture()

	out := s.TopRestaurants(context.Background(), "Islamabad", "", 0)
	if len(out) != 2 || out[0].Name != "Monal Restaurant" {
		t.Fatalf("unexpected set: %+v", out)
	}
}

func TestHotelsInCity(t *testing.T) {
	s, _ := planningFixture()

	out := s.HotelsInCity(context.Background(), "Islamabad")
	if len(out) != 2 {
		t.Fatalf("expected 2 hotels, got %d", len(out))
	}
	if out := s.HotelsInCity(context.Background(), "Nowhere"); len(out) != 0 {
		t.Fatalf("expected no hotels for unknown city, got %d", len(out))
	}
}

func TestHotelCost(t *testing.T) {
	s, _ := planningFixture()

	c := s.HotelCost("ISL001", 3)
	if c.PricePerNight != 15000 || c.Total != 45000 {
		t.Fatalf("unexpected cost: %+v", c)
	}
	if c := s.HotelCost("NOPE999", 3); c.PricePerNight != 0 || c.Total != 0 {
		t.Fatalf("unknown hotel must price at zero, got %+v", c)
	}
}
