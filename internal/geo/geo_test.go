package geo

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"
)

func TestDistanceKnownPairs(t *testing.T) {
	cases := []struct {
		name                   string
		lat1, lon1, lat2, lon2 float64
		wantKm                 float64
		tolerance              float64
	}{
		{"same point", 35.6762, 139.6503, 35.6762, 139.6503, 0, 0.001},
		{"tokyo-osaka", 35.6762, 139.6503, 34.6937, 135.5023, 397, 10},
		{"tokyo-sapporo", 35.6762, 139.6503, 43.0642, 141.3469, 831, 15},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Distance(tc.lat1, tc.lon1, tc.lat2, tc.lon2)
			if math.Abs(got-tc.wantKm) > tc.tolerance {
				t.Fatalf("expected ~%.0fkm, got %.1fkm", tc.wantKm, got)
			}
		})
	}
}

func TestNearestCity(t *testing.T) {
	// Coordinates a little east of Shinjuku should resolve to Tokyo,
	// not Yokohama.
	city := NearestCity(35.69, 139.70)
	if city.ID != "tokyo" {
		t.Fatalf("expected tokyo, got %s", city.ID)
	}
	city = NearestCity(43.0, 141.3)
	if city.ID != "sapporo" {
		t.Fatalf("expected sapporo, got %s", city.ID)
	}
}

type deniedSource struct{}

func (deniedSource) Position(context.Context, time.Duration) (float64, float64, error) {
	return 0, 0, errors.New("permission denied")
}

func TestResolveDeniedReturnsNil(t *testing.T) {
	r := Resolver{Source: deniedSource{}, Timeout: time.Second, MaxAge: time.Minute}
	loc, err := r.Resolve(context.Background())
	if err != nil {
		t.Fatalf("Resolve should not error on denial: %v", err)
	}
	if loc != nil {
		t.Fatalf("expected nil location, got %+v", loc)
	}
}

func TestResolveNilSourceReturnsNil(t *testing.T) {
	r := Resolver{Timeout: time.Second}
	loc, err := r.Resolve(context.Background())
	if err != nil || loc != nil {
		t.Fatalf("expected nil/nil, got %v/%v", loc, err)
	}
}

func TestResolveKeepsDeviceCoordinates(t *testing.T) {
	src := FixedSource{Latitude: 35.70, Longitude: 139.80}
	r := Resolver{Source: src, Timeout: time.Second, MaxAge: time.Minute}
	loc, err := r.Resolve(context.Background())
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if loc == nil {
		t.Fatalf("expected location")
	}
	if loc.Latitude != 35.70 || loc.Longitude != 139.80 {
		t.Fatalf("expected raw device coordinates, got %f,%f", loc.Latitude, loc.Longitude)
	}
	if loc.Name != "東京付近" {
		t.Fatalf("expected 東京付近, got %s", loc.Name)
	}
	if !loc.IsCurrentLocation {
		t.Fatalf("expected device-derived flag")
	}
}
