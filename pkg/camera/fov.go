package camera

import (
	gomath "math"

	"github.com/Esri/Trek2There/pkg/math"
)

// horizonFactor gives the line-of-sight horizon in meters as
// horizonFactor * sqrt(height in meters).
const horizonFactor = 3570

// InFieldOfView reports whether a compass bearing falls inside the
// roll-adjusted horizontal field of view of an observer facing
// observerDirection. Cosines are compared so the 0/360 seam needs no special
// handling.
func InFieldOfView(azimuth, observerDirection, observerRoll, fovX, fovY float64) bool {
	fov := EffectiveFieldOfViewX(observerRoll, fovX, fovY)
	psi := observerDirection - azimuth

	return gomath.Cos(math.ToRadians(psi)) >= gomath.Cos(math.ToRadians(fov/2))
}

// EffectiveFieldOfViewX is EffectiveFieldOfViewY with the two apertures
// swapped: fovX with no roll, fovY at 90 degrees.
func EffectiveFieldOfViewX(observerRoll, fovX, fovY float64) float64 {
	return EffectiveFieldOfViewY(observerRoll, fovY, fovX)
}

// EffectiveFieldOfViewY projects the diagonal aperture onto the vertical
// axis of a camera rolled by observerRoll degrees. With no roll it returns
// fovY; at 90 degrees it returns fovX.
func EffectiveFieldOfViewY(observerRoll, fovX, fovY float64) float64 {
	diagonal := gomath.Sqrt(fovX*fovX + fovY*fovY)
	cosr := gomath.Cos(gomath.Atan(fovX/fovY) - math.ToRadians(gomath.Abs(observerRoll)))

	return diagonal * cosr
}

// MinDistanceVisibleInNearPlane returns the closest ground distance that
// falls inside the view frustum.
func MinDistanceVisibleInNearPlane(observerHeight, observerPitch, observerRoll, fovX, fovY float64) float64 {
	fov := EffectiveFieldOfViewY(observerRoll, fovX, fovY)
	tanfov := gomath.Tan(math.ToRadians(fov/2 - observerPitch))

	return observerHeight / tanfov
}

// MaxDistanceVisibleInNearPlane returns the farthest ground distance that
// falls inside the view frustum. When the upper frustum edge is at or above
// the horizon the line-of-sight horizon distance is returned instead.
func MaxDistanceVisibleInNearPlane(observerHeight, observerPitch, observerRoll, fovX, fovY float64) float64 {
	fov := EffectiveFieldOfViewY(observerRoll, fovX, fovY)
	angle := -fov/2 - observerPitch

	if angle <= 0 {
		return DistanceToHorizon(observerHeight)
	}

	return observerHeight / gomath.Tan(math.ToRadians(angle))
}

// DistanceToHorizon returns the line-of-sight horizon in meters for an eye
// height in meters. A zero or NaN height yields 0.
func DistanceToHorizon(height float64) float64 {
	if height == 0 || gomath.IsNaN(height) {
		return 0
	}
	return horizonFactor * gomath.Sqrt(height)
}

// ZoomFieldOfView returns the aperture left after a digital zoom. A zoom
// level of exactly 1 returns fov unchanged.
func ZoomFieldOfView(fov, zoomLevel float64) float64 {
	if zoomLevel == 1 {
		return fov
	}
	return 2 * math.ToDegrees(gomath.Atan(gomath.Tan(math.ToRadians(fov/2))/zoomLevel))
}
