package app

import (
	"fmt"
	"strings"

	"safarnama/internal/domain"
)

// Cache keys are built from typed fields so distinct lookups can't
// collide on stringified-argument boundaries.

func weatherKey(c domain.Coords) string {
	return fmt.Sprintf("weather:%.4f:%.4f", c.Lat, c.Lon)
}

func hotelsKey(city string) string {
	return "hotels:" + strings.ToLower(strings.TrimSpace(city))
}

func attractionsKey(city, category string, limit int) string {
	return fmt.Sprintf("attractions:%s:%s:%d",
		strings.ToLower(strings.TrimSpace(city)), strings.ToLower(category), limit)
}

func restaurantsKey(city, cuisine string, limit int) string {
	return fmt.Sprintf("restaurants:%s:%s:%d",
		strings.ToLower(strings.TrimSpace(city)), strings.ToLower(cuisine), limit)
}
