package math

import "math"

// ToRadians converts degrees to radians.
func ToRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}

// ToDegrees converts radians to degrees.
func ToDegrees(radians float64) float64 {
	return radians * 180 / math.Pi
}

// NormalizeAngle folds an angle in degrees into [0, 360).
// The remainder is truncated, so angles below -720 stay negative.
func NormalizeAngle(a float64) float64 {
	return math.Mod(a+720, 360)
}

// RelativeAngle returns the signed difference folded to [-90, 90] degrees.
func RelativeAngle(a float64) float64 {
	return ToDegrees(math.Asin(math.Sin(ToRadians(a))))
}
