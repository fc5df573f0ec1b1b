package geo

import "math"

// EarthRadiusNm is the mean Earth radius in nautical miles.
const EarthRadiusNm = 3440.065

// Fix is a point in space: geographic coordinates plus altitude.
type Fix struct {
	LatDeg  float64
	LonDeg  float64
	AltFeet float64
}

// Distance returns the great-circle distance between a and b in
// nautical miles using the haversine formula.
//
// Inputs are assumed to be valid degree ranges; antipodal or
// out-of-range coordinates are not guarded.
func Distance(a, b Fix) float64 {
	lat1 := radians(a.LatDeg)
	lat2 := radians(b.LatDeg)
	dLat := radians(b.LatDeg - a.LatDeg)
	dLon := radians(b.LonDeg - a.LonDeg)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	return EarthRadiusNm * 2 * math.Asin(math.Sqrt(h))
}

// InitialBearing returns the initial great-circle bearing from a to b
// in degrees, normalized to [0, 360). Coincident points yield 0.
func InitialBearing(a, b Fix) float64 {
	if a.LatDeg == b.LatDeg && a.LonDeg == b.LonDeg {
		return 0
	}
	lat1 := radians(a.LatDeg)
	lat2 := radians(b.LatDeg)
	dLon := radians(b.LonDeg - a.LonDeg)

	x := math.Sin(dLon) * math.Cos(lat2)
	y := math.Cos(lat1)*math.Sin(lat2) - math.Sin(lat1)*math.Cos(lat2)*math.Cos(dLon)
	return math.Mod(degrees(math.Atan2(x, y))+360, 360)
}

// Interpolate blends a and b component-wise: fraction 0 is a, 1 is b.
//
// This is a straight linear blend, valid only over short segments, not
// a geodesic interpolation. Fraction is not clamped; callers own
// keeping it within [0, 1].
func Interpolate(a, b Fix, fraction float64) Fix {
	return Fix{
		LatDeg:  lerp(a.LatDeg, b.LatDeg, fraction),
		LonDeg:  lerp(a.LonDeg, b.LonDeg, fraction),
		AltFeet: lerp(a.AltFeet, b.AltFeet, fraction),
	}
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

func degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}
