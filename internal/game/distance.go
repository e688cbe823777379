package game

import "math"

// DistanceKm returns the Haversine great-circle distance in kilometers between
// two lat/lng points given in degrees, on a sphere of radius EarthRadiusKm.
// Any NaN input yields 0. The result is clamped to [0, MaxGreatCircleKm].
func DistanceKm(lat1, lon1, lat2, lon2 float64) float64 {
	if math.IsNaN(lat1) || math.IsNaN(lon1) || math.IsNaN(lat2) || math.IsNaN(lon2) {
		return 0
	}

	φ1 := lat1 * math.Pi / 180.0
	φ2 := lat2 * math.Pi / 180.0
	dφ := (lat2 - lat1) * math.Pi / 180.0
	dλ := (lon2 - lon1) * math.Pi / 180.0

	sinDφ := math.Sin(dφ / 2)
	sinDλ := math.Sin(dλ / 2)

	a := sinDφ*sinDφ + math.Cos(φ1)*math.Cos(φ2)*sinDλ*sinDλ
	// Rounding can push a slightly outside [0, 1] near antipodes.
	a = math.Min(1, math.Max(0, a))
	d := 2 * EarthRadiusKm * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	if math.IsNaN(d) || d < 0 {
		return 0
	}
	if d > MaxGreatCircleKm {
		return MaxGreatCircleKm
	}
	return d
}
