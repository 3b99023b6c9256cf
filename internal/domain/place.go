package domain

type Attraction struct {
	City        string
	Name        string
	Category    string
	Description string
	Rating      float64
	EntryFee    float64 // Rs, 0 means free
	Location    string
}

type Restaurant struct {
	City        string
	Name        string
	Cuisine     string
	Specialties []string
	Rating      float64
	PriceRange  string
}

// SafetyInfo is the static per-city safety guidance.
type SafetyInfo struct {
	City      string
	General   []string
	Areas     []string
	Transport []string
	Emergency map[string]string // service -> phone number
}

// WeatherReport is the subset of the weather provider's response the
// planner surfaces. Temperatures are metric and rounded like the UI
// displays them.
type WeatherReport struct {
	Temperature int
	FeelsLike   int
	Humidity    int
	WindSpeed   float64
	Description string
	Icon        string
	LastUpdated string
}
