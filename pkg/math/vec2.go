package math

import "math"

// Vec2 is a 2D vector. Screen points use it with the origin at the top left,
// X growing to the right and Y growing downwards.
type Vec2 struct {
	X, Y float64
}

// Sub returns v - other.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{v.X - other.X, v.Y - other.Y}
}

// Length returns the magnitude.
func (v Vec2) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Distance returns the distance to another point.
func (v Vec2) Distance(other Vec2) float64 {
	return v.Sub(other).Length()
}

// IsFinite reports whether both components are neither NaN nor infinite.
func (v Vec2) IsFinite() bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) &&
		!math.IsNaN(v.Y) && !math.IsInf(v.Y, 0)
}

// Within reports whether the point lies inside [lo, hi] on both axes.
func (v Vec2) Within(lo, hi float64) bool {
	return v.X >= lo && v.X <= hi && v.Y >= lo && v.Y <= hi
}
