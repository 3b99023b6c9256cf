package domain

import "context"

// CityRepository owns the city reference table in memory. Find and
// Append operate on the in-memory rows; Flush rewrites the whole
// backing file. Append does not dedupe: racing first-time lookups of
// the same city may produce duplicate rows, which is the accepted
// baseline for this table.
type CityRepository interface {
	Find(name string) (CityRecord, bool)
	Append(rec CityRecord)
	Flush() error
	All() []CityRecord
}

type HotelCatalog interface {
	ByID(id string) (HotelRecord, bool)
	// ByCity returns the city's hotels sorted by rating desc, then
	// price asc.
	ByCity(city string) []HotelRecord
}

// TravelCostTable looks up the static inter-city fare row for a pair
// under either (origin,destination) or (destination,origin).
type TravelCostTable interface {
	Fare(origin, destination string) (TravelCostEntry, bool)
}

type PlaceCatalog interface {
	Attractions(city, category string) []Attraction
	Restaurants(city, cuisine string) []Restaurant
}

// Geocoder resolves a free-form query to a single best-match point.
type Geocoder interface {
	Geocode(ctx context.Context, query string) (Coords, error)
}

// Router returns the road distance in kilometers between two points.
type Router interface {
	RoadDistance(ctx context.Context, origin, dest Coords) (float64, error)
}

type WeatherProvider interface {
	Current(ctx context.Context, at Coords) (WeatherReport, error)
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}
