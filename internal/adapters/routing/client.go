// Package routing is the OSRM client behind the route estimator's
// primary path.
package routing

import (
	"context"
	"fmt"
	"time"

	"safarnama/internal/adapters/httpx"
	"safarnama/internal/domain"
)

type Client struct {
	base string
	hx   *httpx.Client
}

func New(base string) *Client {
	return &Client{base: base, hx: httpx.New("osrm", 10*time.Second)}
}

type routeResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Routes  []struct {
		Distance float64 `json:"distance"` // meters
	} `json:"routes"`
}

// RoadDistance returns the driving distance in kilometers. OSRM takes
// coordinates in lon,lat order. Any failure here is recoverable: the
// caller falls back to the geodesic distance.
func (c *Client) RoadDistance(ctx context.Context, origin, dest domain.Coords) (float64, error) {
	u := fmt.Sprintf("%s/route/v1/driving/%f,%f;%f,%f?overview=false",
		c.base, origin.Lon, origin.Lat, dest.Lon, dest.Lat)

	var out routeResponse
	if err := c.hx.GetJSON(ctx, u, "route", nil, &out); err != nil {
		return 0, err
	}
	if out.Code != "Ok" {
		if out.Message != "" {
			return 0, fmt.Errorf("osrm: %s: %s", out.Code, out.Message)
		}
		return 0, fmt.Errorf("osrm: %s", out.Code)
	}
	if len(out.Routes) == 0 {
		return 0, fmt.Errorf("osrm: no routes in response")
	}
	return out.Routes[0].Distance / 1000, nil
}
