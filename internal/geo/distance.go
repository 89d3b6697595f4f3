package geo

import (
	"fmt"
	"math"
)

const earthRadiusKM = 6371.0

// Distance returns the great-circle distance in kilometers between two
// points given in degrees, using the Haversine formula.
func Distance(lat1, lon1, lat2, lon2 float64) float64 {
	rlat1 := lat1 * math.Pi / 180
	rlon1 := lon1 * math.Pi / 180
	rlat2 := lat2 * math.Pi / 180
	rlon2 := lon2 * math.Pi / 180

	dlat := rlat2 - rlat1
	dlon := rlon2 - rlon1

	a := math.Sin(dlat/2)*math.Sin(dlat/2) +
		math.Cos(rlat1)*math.Cos(rlat2)*math.Sin(dlon/2)*math.Sin(dlon/2)
	c := 2 * math.Asin(math.Sqrt(a))

	return earthRadiusKM * c
}

// FormatDistance renders a distance for display: meters under 1 km, one
// decimal up to 10 km, whole kilometers beyond.
func FormatDistance(km float64) string {
	switch {
	case km < 1.0:
		return fmt.Sprintf("%d meters", int(math.Round(km*1000)))
	case km < 10.0:
		return fmt.Sprintf("%.1f km", km)
	default:
		return fmt.Sprintf("%.0f km", km)
	}
}

// ValidCoordinates reports whether lat/lon fall in the valid GPS ranges.
func ValidCoordinates(lat, lon float64) bool {
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}
