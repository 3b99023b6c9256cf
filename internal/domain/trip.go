package domain

// TravelCostEntry is one row of the inter-city fare table. A pair is
// stored in one direction only and looked up both ways.
type TravelCostEntry struct {
	Origin      string
	Destination string
	Car         float64
	Bus         float64
	Train       float64
	Flight      float64
}

type RouteInfo struct {
	DistanceKm float64
	TimeHours  float64
}

type BudgetRequest struct {
	Origin         string
	Destination    string
	Nights         int
	Travelers      int
	Mode           TravelMode
	FuelEfficiency *float64 // km per litre, required for vehicle mode
	FuelPrice      float64  // Rs per litre, 0 means the default
	HotelID        *string
}

// BudgetBreakdown is the per-trip estimate. FoodPerDay and
// ActivitiesPerDay are group totals per day; their contribution to
// Total is multiplied by Nights.
type BudgetBreakdown struct {
	Transportation   float64
	Accommodation    float64
	FoodPerDay       float64
	ActivitiesPerDay float64
	Nights           int
	Total            float64
}

// IsZero reports whether the breakdown is the failure sentinel: all
// currency fields zero regardless of Nights.
func (b BudgetBreakdown) IsZero() bool {
	return b.Transportation == 0 && b.Accommodation == 0 &&
		b.FoodPerDay == 0 && b.ActivitiesPerDay == 0 && b.Total == 0
}
