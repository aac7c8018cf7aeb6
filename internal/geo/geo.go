// Package geo resolves a device position to a nearby named location.
package geo

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/kunya-oba/morning-dashboard/internal/models"
	"github.com/kunya-oba/morning-dashboard/internal/util"
)

const earthRadiusKm = 6371

// Distance returns the great-circle distance in km between two WGS84
// coordinates, by the haversine formula.
func Distance(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := (lat2 - lat1) * math.Pi / 180
	dLon := (lon2 - lon1) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*math.Pi/180)*math.Cos(lat2*math.Pi/180)*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKm * c
}

// NearestCity returns the preset city closest to the coordinates.
func NearestCity(lat, lon float64) models.LocationPreset {
	closest := models.JapanCities[0]
	minDistance := math.Inf(1)
	for _, city := range models.JapanCities {
		if d := Distance(lat, lon, city.Latitude, city.Longitude); d < minDistance {
			minDistance = d
			closest = city
		}
	}
	return closest
}

// PositionSource supplies raw device coordinates. Implementations must
// honor the context deadline and may serve a cached position no older than
// maxAge.
type PositionSource interface {
	Position(ctx context.Context, maxAge time.Duration) (lat, lon float64, err error)
}

// Resolver turns a device position into a synthesized Location named after
// the nearest preset city. The raw device coordinates are kept, not the
// city's.
type Resolver struct {
	Source  PositionSource
	Timeout time.Duration
	MaxAge  time.Duration
}

// Resolve returns nil without error when the position is unavailable
// (denied, unset, or timed out); the caller renders an empty state.
func (r Resolver) Resolve(ctx context.Context) (*models.Location, error) {
	if r.Source == nil {
		return nil, nil
	}
	ctx, cancel := context.WithTimeout(ctx, r.Timeout)
	defer cancel()

	lat, lon, err := r.Source.Position(ctx, r.MaxAge)
	if err != nil {
		util.Debugf("geo: position unavailable: %v", err)
		return nil, nil
	}
	city := NearestCity(lat, lon)
	return &models.Location{
		ID:                fmt.Sprintf("current-%d", time.Now().UnixMilli()),
		Name:              city.Name + "付近",
		Latitude:          lat,
		Longitude:         lon,
		Country:           "日本",
		IsCurrentLocation: true,
	}, nil
}

// FixedSource serves coordinates from configuration. It stands in for the
// browser geolocation prompt in a terminal session.
type FixedSource struct {
	Latitude  float64
	Longitude float64
}

func (f FixedSource) Position(ctx context.Context, _ time.Duration) (float64, float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, 0, err
	}
	return f.Latitude, f.Longitude, nil
}
