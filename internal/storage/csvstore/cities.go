package csvstore

import (
	"strconv"
	"strings"
	"sync"

	"safarnama/internal/domain"
)

var cityHeader = []string{"city", "country", "latitude", "longitude", "province"}

// Cities owns the mutable city reference table. The mutex keeps the
// in-memory rows safe under concurrent requests; it deliberately does
// not dedupe, so two first-time lookups of the same city racing each
// other may both append, matching the table's documented baseline.
type Cities struct {
	path string

	mu   sync.Mutex
	rows []domain.CityRecord
}

func OpenCities(path string) (*Cities, error) {
	cols, raw, err := readTable(path)
	if err != nil {
		return nil, err
	}

	c := &Cities{path: path, rows: make([]domain.CityRecord, 0, len(raw))}
	for _, row := range raw {
		name, err := field(cols, row, "city")
		if err != nil {
			return nil, err
		}
		country, err := field(cols, row, "country")
		if err != nil {
			return nil, err
		}
		lat, err := floatField(cols, row, "latitude")
		if err != nil {
			return nil, err
		}
		lon, err := floatField(cols, row, "longitude")
		if err != nil {
			return nil, err
		}
		province, err := field(cols, row, "province")
		if err != nil {
			return nil, err
		}
		c.rows = append(c.rows, domain.CityRecord{
			Name: name, Country: country, Lat: lat, Lon: lon, Province: province,
		})
	}
	return c, nil
}

// Find matches name case-insensitively and returns the first hit.
func (c *Cities) Find(name string) (domain.CityRecord, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	low := strings.ToLower(strings.TrimSpace(name))
	for _, r := range c.rows {
		if strings.ToLower(r.Name) == low {
			return r, true
		}
	}
	return domain.CityRecord{}, false
}

func (c *Cities) Append(rec domain.CityRecord) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rows = append(c.rows, rec)
}

// Flush rewrites the whole backing file from the in-memory rows.
func (c *Cities) Flush() error {
	c.mu.Lock()
	rows := make([][]string, 0, len(c.rows))
	for _, r := range c.rows {
		rows = append(rows, []string{
			r.Name,
			r.Country,
			strconv.FormatFloat(r.Lat, 'f', -1, 64),
			strconv.FormatFloat(r.Lon, 'f', -1, 64),
			r.Province,
		})
	}
	c.mu.Unlock()

	return writeTable(c.path, cityHeader, rows)
}

func (c *Cities) All() []domain.CityRecord {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]domain.CityRecord, len(c.rows))
	copy(out, c.rows)
	return out
}
