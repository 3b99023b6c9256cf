package csvstore

import (
	"sort"
	"strings"

	"safarnama/internal/domain"
)

// Hotels is the read-only hotel catalog.
type Hotels struct {
	byID   map[string]domain.HotelRecord
	byCity map[string][]domain.HotelRecord // key: lowercase city
}

func OpenHotels(path string) (*Hotels, error) {
	cols, raw, err := readTable(path)
	if err != nil {
		return nil, err
	}

	h := &Hotels{
		byID:   make(map[string]domain.HotelRecord, len(raw)),
		byCity: make(map[string][]domain.HotelRecord),
	}
	for _, row := range raw {
		id, err := field(cols, row, "hotel_id")
		if err != nil {
			return nil, err
		}
		city, err := field(cols, row, "city")
		if err != nil {
			return nil, err
		}
		name, err := field(cols, row, "name")
		if err != nil {
			return nil, err
		}
		price, err := floatField(cols, row, "price_per_night")
		if err != nil {
			return nil, err
		}
		rating, err := floatField(cols, row, "rating")
		if err != nil {
			return nil, err
		}
		category, err := field(cols, row, "category")
		if err != nil {
			return nil, err
		}
		location, err := field(cols, row, "location")
		if err != nil {
			return nil, err
		}
		description, err := field(cols, row, "description")
		if err != nil {
			return nil, err
		}
		amenities, err := field(cols, row, "amenities")
		if err != nil {
			return nil, err
		}

		rec := domain.HotelRecord{
			ID: id, City: city, Name: name,
			PricePerNight: price, Rating: rating, Category: category,
			Location: location, Description: description,
			Amenities: splitList(amenities),
		}
		h.byID[id] = rec
		key := strings.ToLower(city)
		h.byCity[key] = append(h.byCity[key], rec)
	}

	// Presentation order: best-rated first, cheaper first among equals.
	for _, hs := range h.byCity {
		sort.SliceStable(hs, func(i, j int) bool {
			if hs[i].Rating != hs[j].Rating {
				return hs[i].Rating > hs[j].Rating
			}
			return hs[i].PricePerNight < hs[j].PricePerNight
		})
	}
	return h, nil
}

func (h *Hotels) ByID(id string) (domain.HotelRecord, bool) {
	rec, ok := h.byID[id]
	return rec, ok
}

func (h *Hotels) ByCity(city string) []domain.HotelRecord {
	hs := h.byCity[strings.ToLower(strings.TrimSpace(city))]
	out := make([]domain.HotelRecord, len(hs))
	copy(out, hs)
	return out
}

// splitList parses the ;-joined list columns used across the datasets.
func splitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ";")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
