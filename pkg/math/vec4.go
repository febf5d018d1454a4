package math

import "math"

// Vec4 is a 4-component homogeneous vector.
type Vec4 [4]float64

// Sub returns v - other.
func (v Vec4) Sub(other Vec4) Vec4 {
	return Vec4{v[0] - other[0], v[1] - other[1], v[2] - other[2], v[3] - other[3]}
}

// Length returns the magnitude over all four components.
func (v Vec4) Length() float64 {
	return math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2] + v[3]*v[3])
}

// Normalize returns a unit vector. A zero vector stays zero.
func (v Vec4) Normalize() Vec4 {
	l := v.Length()
	if l == 0 {
		return Vec4{}
	}
	return Vec4{v[0] / l, v[1] / l, v[2] / l, v[3] / l}
}

// ScaleAndAdd returns v + other*s.
func (v Vec4) ScaleAndAdd(other Vec4, s float64) Vec4 {
	return Vec4{
		v[0] + other[0]*s,
		v[1] + other[1]*s,
		v[2] + other[2]*s,
		v[3] + other[3]*s,
	}
}
