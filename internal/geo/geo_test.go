package geo_test

import (
	"math"
	"testing"

	"safarnama/internal/geo"
)

const (
	islamabadLat, islamabadLon = 33.7294, 73.0931
	lahoreLat, lahoreLon       = 31.5204, 74.3587
)

func TestDistanceKm_IslamabadLahore(t *testing.T) {
	d := geo.DistanceKm(islamabadLat, islamabadLon, lahoreLat, lahoreLon)
	if d < 270 || d > 276 {
		t.Fatalf("Islamabad-Lahore geodesic distance out of range: %.2f km", d)
	}
}

func TestDistanceKm_Symmetric(t *testing.T) {
	ab := geo.DistanceKm(islamabadLat, islamabadLon, lahoreLat, lahoreLon)
	ba := geo.DistanceKm(lahoreLat, lahoreLon, islamabadLat, islamabadLon)
	if ab != ba {
		t.Fatalf("distance not symmetric: %v vs %v", ab, ba)
	}
}

func TestDistanceKm_SamePoint(t *testing.T) {
	if d := geo.DistanceKm(24.8607, 67.0011, 24.8607, 67.0011); d != 0 {
		t.Fatalf("same point should be 0, got %v", d)
	}
}

func TestDistanceKm_DistinctPointsPositive(t *testing.T) {
	pairs := [][4]float64{
		{33.7294, 73.0931, 31.5204, 74.3587},
		{24.8607, 67.0011, 25.3960, 68.3578},
		{30.1798, 66.9750, 34.0151, 71.5249},
		{0, 0, 0, 0.001},
	}
	for _, p := range pairs {
		if d := geo.DistanceKm(p[0], p[1], p[2], p[3]); d <= 0 {
			t.Fatalf("expected positive distance for %v, got %v", p, d)
		}
	}
}

func TestDistanceKm_NearAntipodal(t *testing.T) {
	// Vincenty may not converge here; the haversine fallback must
	// still return something sane.
	d := geo.DistanceKm(0, 0, 0.5, 179.7)
	if d <= 0 || math.IsNaN(d) {
		t.Fatalf("antipodal fallback failed: %v", d)
	}
}

func TestHaversineKm_CloseToVincenty(t *testing.T) {
	h := geo.HaversineKm(islamabadLat, islamabadLon, lahoreLat, lahoreLon)
	v := geo.DistanceKm(islamabadLat, islamabadLon, lahoreLat, lahoreLon)
	if math.Abs(h-v) > 3 {
		t.Fatalf("haversine %.2f and geodesic %.2f diverge too much", h, v)
	}
}

func TestValidLatLon(t *testing.T) {
	cases := []struct {
		lat, lon float64
		want     bool
	}{
		{33.7, 73.1, true},
		{-90, 180, true},
		{90.1, 0, false},
		{0, -180.5, false},
	}
	for _, c := range cases {
		if got := geo.ValidLatLon(c.lat, c.lon); got != c.want {
			t.Fatalf("ValidLatLon(%v, %v) = %v, want %v", c.lat, c.lon, got, c.want)
		}
	}
}
