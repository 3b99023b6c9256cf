package domain

type Coords struct{ Lat, Lon float64 }

// CityRecord is one row of the city reference table. Name is the
// case-insensitive lookup key; rows are appended, never deleted.
type CityRecord struct {
	Name     string
	Country  string
	Lat      float64
	Lon      float64
	Province string
}

type TravelMode string

const (
	ModeVehicle TravelMode = "vehicle"
	ModeBus     TravelMode = "bus"
	ModeFlight  TravelMode = "flight"
)
