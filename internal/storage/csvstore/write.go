package csvstore

import (
	"strconv"
	"strings"

	"safarnama/internal/domain"
)

// WriteTravelCosts rewrites the fare table. Fares are whole rupees.
func WriteTravelCosts(path string, entries []domain.TravelCostEntry) error {
	header := []string{"origin", "destination", "car", "bus", "train", "flight"}
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{
			e.Origin,
			e.Destination,
			strconv.Itoa(int(e.Car)),
			strconv.Itoa(int(e.Bus)),
			strconv.Itoa(int(e.Train)),
			strconv.Itoa(int(e.Flight)),
		})
	}
	return writeTable(path, header, rows)
}

// WriteHotels rewrites the hotel catalog.
func WriteHotels(path string, hotels []domain.HotelRecord) error {
	header := []string{"city", "hotel_id", "name", "price_per_night", "rating", "category", "location", "description", "amenities"}
	rows := make([][]string, 0, len(hotels))
	for _, h := range hotels {
		rows = append(rows, []string{
			h.City,
			h.ID,
			h.Name,
			strconv.FormatFloat(h.PricePerNight, 'f', -1, 64),
			strconv.FormatFloat(h.Rating, 'f', 1, 64),
			h.Category,
			h.Location,
			h.Description,
			strings.Join(h.Amenities, ";"),
		})
	}
	return writeTable(path, header, rows)
}
