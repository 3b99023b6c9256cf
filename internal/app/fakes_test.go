package app_test

import (
	"context"
	"errors"
	"strings"

	"safarnama/internal/domain"
)

// ---- fakes ----

type fakeCities struct {
	rows     []domain.CityRecord
	appends  int
	flushes  int
	flushErr error
}

func (f *fakeCities) Find(name string) (domain.CityRecord, bool) {
	for _, r := range f.rows {
		if strings.EqualFold(r.Name, strings.TrimSpace(name)) {
			return r, true
		}
	}
	return domain.CityRecord{}, false
}

func (f *fakeCities) Append(rec domain.CityRecord) {
	f.appends++
	f.rows = append(f.rows, rec)
}

func (f *fakeCities) Flush() error {
	f.flushes++
	return f.flushErr
}

func (f *fakeCities) All() []domain.CityRecord { return f.rows }

type fakeGeocoder struct {
	coords domain.Coords
	err    error
	calls  int
}

func (f *fakeGeocoder) Geocode(ctx context.Context, query string) (domain.Coords, error) {
	f.calls++
	if f.err != nil {
		return domain.Coords{}, f.err
	}
	return f.coords, nil
}

type fakeRouter struct {
	km    float64
	err   error
	calls int
}

func (f *fakeRouter) RoadDistance(ctx context.Context, origin, dest domain.Coords) (float64, error) {
	f.calls++
	if f.err != nil {
		return 0, f.err
	}
	return f.km, nil
}

type fakeHotels struct {
	byID   map[string]domain.HotelRecord
	byCity map[string][]domain.HotelRecord
}

func (f *fakeHotels) ByID(id string) (domain.HotelRecord, bool) {
	h, ok := f.byID[id]
	return h, ok
}

func (f *fakeHotels) ByCity(city string) []domain.HotelRecord {
	return f.byCity[strings.ToLower(city)]
}

type fakeFares struct {
	entries map[[2]string]domain.TravelCostEntry
}

func (f *fakeFares) Fare(origin, destination string) (domain.TravelCostEntry, bool) {
	o, d := strings.ToLower(origin), strings.ToLower(destination)
	if e, ok := f.entries[[2]string{o, d}]; ok {
		return e, true
	}
	e, ok := f.entries[[2]string{d, o}]
	return e, ok
}

type fakePlaces struct {
	attractions []domain.Attraction
	restaurants []domain.Restaurant
}

func (f *fakePlaces) Attractions(city, category string) []domain.Attraction {
	var out []domain.Attraction
	for _, a := range f.attractions {
		if !strings.EqualFold(a.City, city) {
			continue
		}
		if category != "" && !strings.EqualFold(a.Category, category) {
			continue
		}
		out = append(out, a)
	}
	return out
}

func (f *fakePlaces) Restaurants(city, cuisine string) []domain.Restaurant {
	var out []domain.Restaurant
	for _, r := range f.restaurants {
		if !strings.EqualFold(r.City, city) {
			continue
		}
		if cuisine != "" && !strings.EqualFold(r.Cuisine, cuisine) {
			continue
		}
		out = append(out, r)
	}
	return out
}

type fakeWeather struct {
	rep   domain.WeatherReport
	err   error
	calls int
}

func (f *fakeWeather) Current(ctx context.Context, at domain.Coords) (domain.WeatherReport, error) {
	f.calls++
	if f.err != nil {
		return domain.WeatherReport{}, f.err
	}
	return f.rep, nil
}

type fakeCache struct {
	store map[string]any
	sets  int
}

func (c *fakeCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	if c.store == nil {
		return false, nil
	}
	v, ok := c.store[key]
	if !ok {
		return false, nil
	}
	switch d := dst.(type) {
	case *domain.WeatherReport:
		*d = v.(domain.WeatherReport)
	case *[]domain.HotelRecord:
		*d = v.([]domain.HotelRecord)
	case *[]domain.Attraction:
		*d = v.([]domain.Attraction)
	case *[]domain.Restaurant:
		*d = v.([]domain.Restaurant)
	}
	return true, nil
}

func (c *fakeCache) Set(ctx context.Context, key string, v any, ttlSec int) error {
	if c.store == nil {
		c.store = map[string]any{}
	}
	c.store[key] = v
	c.sets++
	return nil
}

func (c *fakeCache) Del(ctx context.Context, key string) error {
	delete(c.store, key)
	return nil
}

var errUpstream = errors.New("upstream unavailable")

func ptr[T any](v T) *T { return &v }
