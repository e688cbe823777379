package game

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceKm(t *testing.T) {
	tests := []struct {
		name                   string
		lat1, lon1, lat2, lon2 float64
		want                   float64
		delta                  float64
	}{
		{"same point", 48.8584, 2.2945, 48.8584, 2.2945, 0, 0.0001},
		{"equator 2.25 degrees", 0, 0, 0, 2.25, 250.19, 0.5},
		{"equator antipode", 0, 0, 0, 180, 20015.09, 0.1},
		{"pole to pole", 90, 0, -90, 0, 20015.09, 0.1},
		{"paris to chefchaouen", 48.8584, 2.2945, 35.1686, -5.2636, 1643.3, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, DistanceKm(tt.lat1, tt.lon1, tt.lat2, tt.lon2), tt.delta)
		})
	}
}

func TestDistanceKm_Identity(t *testing.T) {
	for lat := -90.0; lat <= 90; lat += 15 {
		for lng := -180.0; lng <= 180; lng += 30 {
			assert.Equal(t, 0.0, DistanceKm(lat, lng, lat, lng), "(%v,%v)", lat, lng)
		}
	}
}

func TestDistanceKm_Symmetric(t *testing.T) {
	points := [][2]float64{
		{0, 0}, {48.8584, 2.2945}, {-33.8568, 151.2153}, {35.1686, -5.2636}, {-90, 0}, {89.9, -179.9},
	}
	for _, a := range points {
		for _, b := range points {
			assert.InDelta(t, DistanceKm(a[0], a[1], b[0], b[1]), DistanceKm(b[0], b[1], a[0], a[1]), 1e-9)
		}
	}
}

func TestDistanceKm_Bounds(t *testing.T) {
	for lat := -90.0; lat <= 90; lat += 10 {
		for lng := -180.0; lng <= 180; lng += 20 {
			d := DistanceKm(lat, lng, -lat, lng+180)
			assert.GreaterOrEqual(t, d, 0.0)
			assert.LessOrEqual(t, d, MaxGreatCircleKm)
		}
	}
}

func TestDistanceKm_NaNReturnsZero(t *testing.T) {
	nan := math.NaN()
	assert.Equal(t, 0.0, DistanceKm(nan, 0, 10, 10))
	assert.Equal(t, 0.0, DistanceKm(0, nan, 10, 10))
	assert.Equal(t, 0.0, DistanceKm(0, 0, nan, 10))
	assert.Equal(t, 0.0, DistanceKm(0, 0, 10, nan))
}

func TestDistanceKm_InfiniteReturnsZero(t *testing.T) {
	assert.Equal(t, 0.0, DistanceKm(math.Inf(1), 0, 0, 0))
}
