// Package camera implements the pinhole camera model used to overlay sighted
// targets onto a live camera image.
//
// The observer sits at the origin of a local frame with X towards east,
// Y towards north and Z up. Projected points are normalized screen
// coordinates with the origin at the top left, X to the right and Y down;
// values outside [0, 1] are off screen and are not clamped.
package camera

import (
	gomath "math"

	"github.com/Esri/Trek2There/pkg/geo"
	"github.com/Esri/Trek2There/pkg/math"
)

// Pose is the observer's camera orientation. Angles are in degrees.
//
// Yaw rotates around the up axis. It is described upstream as positive
// towards west, but the rotation actually applied turns the view towards
// east for positive values: a target at azimuth a is centered when Yaw == a.
// Pitch is positive looking up, Roll rotates around the viewing axis.
type Pose struct {
	Height float64 // camera height above the observer origin, meters
	Yaw    float64
	Pitch  float64
	Roll   float64
}

// FieldOfView holds the full horizontal and vertical camera apertures in
// degrees. Both must lie in (0, 180); other values are not rejected and
// produce infinite or NaN projections.
type FieldOfView struct {
	X, Y float64
}

// Camera is an immutable view transform built from a pose and field of view.
// Build a new one with New whenever any parameter changes. The zero value
// sees nothing.
type Camera struct {
	pose    Pose
	fov     FieldOfView
	tanFovX float64
	tanFovY float64
	view    math.Mat4
}

// New composes the view matrix as Identity * RotY(roll) * RotX(pitch) *
// RotZ(yaw) * Translate(0, 0, height), so a point is first lifted by the
// height, then turned by yaw, pitch and finally roll.
func New(pose Pose, fov FieldOfView) Camera {
	view := math.Identity().
		Mul(math.RotateY(math.ToRadians(pose.Roll))).
		Mul(math.RotateX(math.ToRadians(pose.Pitch))).
		Mul(math.RotateZ(math.ToRadians(pose.Yaw))).
		Mul(math.Translate(0, 0, pose.Height))

	return Camera{
		pose:    pose,
		fov:     fov,
		tanFovX: gomath.Tan(math.ToRadians(fov.X / 2)),
		tanFovY: gomath.Tan(math.ToRadians(fov.Y / 2)),
		view:    view,
	}
}

// Pose returns the pose the camera was built with.
func (c Camera) Pose() Pose { return c.pose }

// FieldOfView returns the field of view the camera was built with.
func (c Camera) FieldOfView() FieldOfView { return c.fov }

// View returns the composed view matrix.
func (c Camera) View() math.Mat4 { return c.view }

// Transform moves a local point into camera space. The up axis is flipped
// before the transform, so camera Z points down and camera Y is depth.
func (c Camera) Transform(p math.Vec3) math.Vec4 {
	return c.view.MulVec4(math.Vec4{p.X, p.Y, -p.Z, 1})
}

// ProjectPoint projects a local point. ok is false when the point is not in
// front of the camera.
func (c Camera) ProjectPoint(p math.Vec3) (screen math.Vec2, ok bool) {
	v := c.Transform(p)
	if v[1] > 0 {
		return c.project(v), true
	}
	return math.Vec2{}, false
}

// ProjectAzimuth projects a target given by azimuth (degrees from north,
// positive east), horizontal distance and elevation relative to the
// observer. A NaN elevation is treated as 0.
func (c Camera) ProjectAzimuth(azimuth, distance, elevation float64) (math.Vec2, bool) {
	return c.ProjectPoint(AzimuthToPoint(azimuth, distance, elevation))
}

// ProjectWorld projects target as seen from observer. An unknown altitude on
// either coordinate projects the target at the observer's level.
func (c Camera) ProjectWorld(observer, target geo.Coordinate) (math.Vec2, bool) {
	return c.ProjectAzimuth(
		observer.AzimuthTo(target),
		observer.DistanceTo(target),
		observer.ElevationTo(target),
	)
}

// ProjectSegment projects the line between two local points.
//
// When both ends are in front of the camera they are returned in input
// order. When one end is behind, it is pulled along the line onto the
// frustum plane at the bottom screen edge before projecting; the clipped end
// always comes first, so for (front, behind) input the result order is
// swapped. The left and right frustum planes are not used for clipping. ok is
// false when both ends are behind the camera.
func (c Camera) ProjectSegment(a, b math.Vec3) (screen [2]math.Vec2, ok bool) {
	va, vb := c.Transform(a), c.Transform(b)

	switch {
	case va[1] >= 0 && vb[1] >= 0:
		return [2]math.Vec2{c.project(va), c.project(vb)}, true
	case va[1] < 0 && vb[1] >= 0:
		va = c.clip(va, vb)
		return [2]math.Vec2{c.project(va), c.project(vb)}, true
	case va[1] >= 0 && vb[1] < 0:
		vb = c.clip(vb, va)
		return [2]math.Vec2{c.project(vb), c.project(va)}, true
	}
	return [2]math.Vec2{}, false
}

// clip advances behind towards front until it meets the plane z = y*tanFovY.
func (c Camera) clip(behind, front math.Vec4) math.Vec4 {
	dir := front.Sub(behind).Normalize()
	s := -(behind[2] - behind[1]*c.tanFovY) / (dir[2] - dir[1]*c.tanFovY)
	return behind.ScaleAndAdd(dir, s)
}

func (c Camera) project(v math.Vec4) math.Vec2 {
	x := -v[0] / v[1] / c.tanFovX
	y := -v[2] / v[1] / c.tanFovY
	return math.Vec2{X: (1 - x) / 2, Y: (1 - y) / 2}
}

// AzimuthToPoint converts azimuth (degrees from north, positive east),
// distance and elevation into the observer's local frame. A NaN elevation is
// treated as 0.
func AzimuthToPoint(azimuth, distance, elevation float64) math.Vec3 {
	rad := math.ToRadians(azimuth)
	if gomath.IsNaN(elevation) {
		elevation = 0
	}
	return math.Vec3{
		X: distance * gomath.Sin(rad),
		Y: distance * gomath.Cos(rad),
		Z: elevation,
	}
}
