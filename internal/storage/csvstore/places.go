package csvstore

import (
	"strings"

	"safarnama/internal/domain"
)

// Places is the read-only attractions and restaurants catalog.
type Places struct {
	attractions map[string][]domain.Attraction // key: lowercase city
	restaurants map[string][]domain.Restaurant
}

func OpenPlaces(attractionsPath, restaurantsPath string) (*Places, error) {
	p := &Places{
		attractions: make(map[string][]domain.Attraction),
		restaurants: make(map[string][]domain.Restaurant),
	}
	if err := p.loadAttractions(attractionsPath); err != nil {
		return nil, err
	}
	if err := p.loadRestaurants(restaurantsPath); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *Places) loadAttractions(path string) error {
	cols, raw, err := readTable(path)
	if err != nil {
		return err
	}
	for _, row := range raw {
		city, err := field(cols, row, "city")
		if err != nil {
			return err
		}
		name, err := field(cols, row, "name")
		if err != nil {
			return err
		}
		category, err := field(cols, row, "category")
		if err != nil {
			return err
		}
		description, err := field(cols, row, "description")
		if err != nil {
			return err
		}
		rating, err := floatField(cols, row, "rating")
		if err != nil {
			return err
		}
		fee, err := floatField(cols, row, "entry_fee")
		if err != nil {
			return err
		}
		location, err := field(cols, row, "location")
		if err != nil {
			return err
		}

		key := strings.ToLower(city)
		p.attractions[key] = append(p.attractions[key], domain.Attraction{
			City: city, Name: name, Category: category, Description: description,
			Rating: rating, EntryFee: fee, Location: location,
		})
	}
	return nil
}

func (p *Places) loadRestaurants(path string) error {
	cols, raw, err := readTable(path)
	if err != nil {
		return err
	}
	for _, row := range raw {
		city, err := field(cols, row, "city")
		if err != nil {
			return err
		}
		name, err := field(cols, row, "name")
		if err != nil {
			return err
		}
		cuisine, err := field(cols, row, "cuisine")
		if err != nil {
			return err
		}
		specialties, err := field(cols, row, "specialties")
		if err != nil {
			return err
		}
		rating, err := floatField(cols, row, "rating")
		if err != nil {
			return err
		}
		priceRange, err := field(cols, row, "price_range")
		if err != nil {
			return err
		}

		key := strings.ToLower(city)
		p.restaurants[key] = append(p.restaurants[key], domain.Restaurant{
			City: city, Name: name, Cuisine: cuisine,
			Specialties: splitList(specialties),
			Rating:      rating, PriceRange: priceRange,
		})
	}
	return nil
}

// Attractions filters by city and, when category is non-empty, by
// category (both case-insensitive).
func (p *Places) Attractions(city, category string) []domain.Attraction {
	all := p.attractions[strings.ToLower(strings.TrimSpace(city))]
	if category == "" {
		out := make([]domain.Attraction, len(all))
		copy(out, all)
		return out
	}
	low := strings.ToLower(category)
	var out []domain.Attraction
	for _, a := range all {
		if strings.ToLower(a.Category) == low {
			out = append(out, a)
		}
	}
	return out
}

func (p *Places) Restaurants(city, cuisine string) []domain.Restaurant {
	all := p.restaurants[strings.ToLower(strings.TrimSpace(city))]
	if cuisine == "" {
		out := make([]domain.Restaurant, len(all))
		copy(out, all)
		return out
	}
	low := strings.ToLower(cuisine)
	var out []domain.Restaurant
	for _, r := range all {
		if strings.ToLower(r.Cuisine) == low {
			out = append(out, r)
		}
	}
	return out
}
