package phugoid

import "math"

const (
	deg2rad = math.Pi / 180
)

// dist returns the planar Euclidean distance between (x0, z0) and (x1, z1).
func dist(x0, z0, x1, z1 float64) float64 {
	return math.Hypot(x1-x0, z1-z0)
}

// finite returns whether v is neither NaN nor an infinity.
func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Deg2rad converts degrees to radians, and enforced only positive numbers.
func Deg2rad(a float64) float64 {
	if a < 0 {
		a += 360
	}
	return math.Mod(a*deg2rad, 2*math.Pi)
}

// Rad2deg converts radians to degrees, and enforced only positive numbers.
func Rad2deg(a float64) float64 {
	if a < 0 {
		a += 2 * math.Pi
	}
	return math.Mod(a/deg2rad, 360)
}
