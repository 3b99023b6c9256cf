package weather_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"safarnama/internal/adapters/weather"
	"safarnama/internal/domain"
)

func TestCurrent_MapsResponse(t *testing.T) {
	var gotKey string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.URL.Query().Get("appid")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"main": {"temp": 31.4, "feels_like": 33.6, "humidity": 48},
			"wind": {"speed": 3.27},
			"weather": [{"description": "clear sky", "icon": "01d"}],
			"dt": 1756600000
		}`))
	}))
	defer ts.Close()

	cl := weather.New(ts.URL, "test-key")
	rep, err := cl.Current(context.Background(), domain.Coords{Lat: 33.7294, Lon: 73.0931})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if gotKey != "test-key" {
		t.Fatalf("api key not sent: %q", gotKey)
	}
	if rep.Temperature != 31 || rep.FeelsLike != 34 || rep.Humidity != 48 {
		t.Fatalf("unexpected temps: %+v", rep)
	}
	if rep.WindSpeed != 3.3 {
		t.Fatalf("wind not rounded to one decimal: %v", rep.WindSpeed)
	}
	if rep.Description != "clear sky" || rep.Icon != "01d" {
		t.Fatalf("unexpected conditions: %+v", rep)
	}
	if rep.LastUpdated == "" {
		t.Fatal("missing last-updated timestamp")
	}
}

func TestCurrent_MissingKey(t *testing.T) {
	cl := weather.New("http://unused", "")
	_, err := cl.Current(context.Background(), domain.Coords{})
	if !errors.Is(err, weather.ErrNoAPIKey) {
		t.Fatalf("expected ErrNoAPIKey, got %v", err)
	}
}

func TestCurrent_EmptyConditions(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"main":{"temp":20},"weather":[]}`))
	}))
	defer ts.Close()

	cl := weather.New(ts.URL, "test-key")
	if _, err := cl.Current(context.Background(), domain.Coords{}); err == nil {
		t.Fatal("expected error for empty conditions")
	}
}

func TestIconURL(t *testing.T) {
	want := "https://openweathermap.org/img/wn/01d@2x.png"
	if got := weather.IconURL("01d"); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
