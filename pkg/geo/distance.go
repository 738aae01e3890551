package geo

import "math"

// NeutralScore is used when either city in a pair can't be resolved:
// the pair is neither rewarded nor punished for geography.
const NeutralScore = 50

const earthRadiusKm = 6371.0

// HaversineKm returns the great-circle distance in kilometers between
// two coordinates.
func HaversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := radians(lat2 - lat1)
	dLon := radians(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(radians(lat1))*math.Cos(radians(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	return earthRadiusKm * 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

// StepScore converts a distance in kilometers to a 0-100 proximity score.
// The steps are calibrated to Israeli geography: within commuting range
// scores high, cross-country scores zero.
func StepScore(km float64) int {
	switch {
	case km <= 10:
		return 100
	case km <= 30:
		return 90
	case km <= 50:
		return 80
	case km <= 75:
		return 60
	case km <= 100:
		return 40
	case km <= 150:
		return 20
	default:
		return 0
	}
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
