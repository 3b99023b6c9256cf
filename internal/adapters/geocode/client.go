// Package geocode is the Nominatim client used when a city is missing
// from the local reference table.
package geocode

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"safarnama/internal/adapters/httpx"
	"safarnama/internal/domain"
)

type Client struct {
	base string
	hx   *httpx.Client
	rl   *rate.Limiter
}

// New builds a client for the given Nominatim base URL. rps bounds
// outbound calls client-side; the public instance's usage policy is
// one request per second.
func New(base string, rps int) *Client {
	if rps <= 0 {
		rps = 1
	}
	return &Client{
		base: base,
		hx:   httpx.New("nominatim", 10*time.Second),
		rl:   rate.NewLimiter(rate.Limit(rps), rps),
	}
}

type searchRow struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// Geocode returns the single best match for a free-form query.
func (c *Client) Geocode(ctx context.Context, query string) (domain.Coords, error) {
	if err := c.rl.Wait(ctx); err != nil {
		return domain.Coords{}, err
	}

	u := fmt.Sprintf("%s/search?q=%s&format=json&limit=1", c.base, url.QueryEscape(query))
	var rows []searchRow
	if err := c.hx.GetJSON(ctx, u, "search", nil, &rows); err != nil {
		return domain.Coords{}, err
	}
	if len(rows) == 0 {
		// No match at all, as opposed to a transport failure.
		return domain.Coords{}, fmt.Errorf("%w: no geocoding result for %q", domain.ErrCityNotFound, query)
	}

	lat, err := strconv.ParseFloat(rows[0].Lat, 64)
	if err != nil {
		return domain.Coords{}, fmt.Errorf("geocode: bad latitude %q: %w", rows[0].Lat, err)
	}
	lon, err := strconv.ParseFloat(rows[0].Lon, 64)
	if err != nil {
		return domain.Coords{}, fmt.Errorf("geocode: bad longitude %q: %w", rows[0].Lon, err)
	}
	return domain.Coords{Lat: lat, Lon: lon}, nil
}
