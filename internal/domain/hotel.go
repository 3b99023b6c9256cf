package domain

// HotelRecord is one row of the hotel catalog. ID is a 3-letter city
// prefix plus 3 digits (e.g. ISL001) and unique across the catalog.
type HotelRecord struct {
	ID            string
	City          string
	Name          string
	PricePerNight float64
	Rating        float64 // 3.0..5.0
	Category      string  // Budget|Business|Luxury|Heritage|Resort
	Location      string
	Description   string
	Amenities     []string
}

// HotelCost is the nightly price and stay total for one room of a
// selected hotel. Total = PricePerNight * nights.
type HotelCost struct {
	PricePerNight float64
	Total         float64
}
