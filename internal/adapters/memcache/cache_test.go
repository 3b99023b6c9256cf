package memcache_test

import (
	"context"
	"testing"
	"time"

	"safarnama/internal/adapters/memcache"
	"safarnama/internal/domain"
)

func TestCache_RoundTripCopies(t *testing.T) {
	c := memcache.New(time.Minute)
	ctx := context.Background()

	in := []domain.HotelRecord{{ID: "ISL001", Name: "Serena Hotel", Amenities: []string{"WiFi"}}}
	if err := c.Set(ctx, "hotels:islamabad", in, 60); err != nil {
		t.Fatalf("set: %v", err)
	}

	var out []domain.HotelRecord
	ok, err := c.Get(ctx, "hotels:islamabad", &out)
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if len(out) != 1 || out[0].ID != "ISL001" {
		t.Fatalf("unexpected value: %+v", out)
	}

	// Cached value must not alias the caller's slice.
	out[0].Name = "Mutated"
	var again []domain.HotelRecord
	if _, err := c.Get(ctx, "hotels:islamabad", &again); err != nil {
		t.Fatalf("get: %v", err)
	}
	if again[0].Name != "Serena Hotel" {
		t.Fatalf("cache aliased caller memory: %+v", again[0])
	}
}

func TestCache_MissAndDel(t *testing.T) {
	c := memcache.New(time.Minute)
	ctx := context.Background()

	var out []domain.HotelRecord
	if ok, err := c.Get(ctx, "absent", &out); ok || err != nil {
		t.Fatalf("expected clean miss, got ok=%v err=%v", ok, err)
	}

	if err := c.Set(ctx, "k", []domain.HotelRecord{}, 60); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := c.Del(ctx, "k"); err != nil {
		t.Fatalf("del: %v", err)
	}
	if ok, _ := c.Get(ctx, "k", &out); ok {
		t.Fatal("expected miss after delete")
	}
}
