// Package weather is the OpenWeather current-conditions client.
package weather

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"safarnama/internal/adapters/httpx"
	"safarnama/internal/domain"
)

var ErrNoAPIKey = errors.New("weather: api key not configured")

type Client struct {
	base string
	key  string
	hx   *httpx.Client
}

func New(base, key string) *Client {
	return &Client{base: base, key: key, hx: httpx.New("openweather", 10*time.Second)}
}

type currentResponse struct {
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  int     `json:"humidity"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Weather []struct {
		Description string `json:"description"`
		Icon        string `json:"icon"`
	} `json:"weather"`
	Dt int64 `json:"dt"`
}

// Current fetches current conditions for a point, metric units.
func (c *Client) Current(ctx context.Context, at domain.Coords) (domain.WeatherReport, error) {
	if c.key == "" {
		return domain.WeatherReport{}, ErrNoAPIKey
	}

	u := fmt.Sprintf("%s/weather?lat=%f&lon=%f&appid=%s&units=metric", c.base, at.Lat, at.Lon, c.key)
	var out currentResponse
	if err := c.hx.GetJSON(ctx, u, "weather", nil, &out); err != nil {
		return domain.WeatherReport{}, err
	}
	if len(out.Weather) == 0 {
		return domain.WeatherReport{}, fmt.Errorf("weather: empty conditions in response")
	}

	return domain.WeatherReport{
		Temperature: int(math.Round(out.Main.Temp)),
		FeelsLike:   int(math.Round(out.Main.FeelsLike)),
		Humidity:    out.Main.Humidity,
		WindSpeed:   math.Round(out.Wind.Speed*10) / 10,
		Description: out.Weather[0].Description,
		Icon:        out.Weather[0].Icon,
		LastUpdated: time.Unix(out.Dt, 0).UTC().Format("2006-01-02 15:04:05"),
	}, nil
}

// IconURL returns the public image URL for an OpenWeather icon code.
func IconURL(icon string) string {
	return fmt.Sprintf("https://openweathermap.org/img/wn/%s@2x.png", icon)
}
