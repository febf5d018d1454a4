// Package overlay places sighted targets on the camera image once per frame.
package overlay

import (
	"sync"

	"go.uber.org/zap"

	"github.com/Esri/Trek2There/pkg/camera"
	"github.com/Esri/Trek2There/pkg/geo"
	"github.com/Esri/Trek2There/pkg/math"
)

// Target is a named geographic position to sight.
type Target struct {
	Name       string
	Coordinate geo.Coordinate
}

// Marker is a target placed on screen.
type Marker struct {
	Name     string
	Screen   math.Vec2
	Azimuth  float64 // degrees from north
	Distance float64 // meters
}

// Segment is a projected piece of a local path. From and To follow the
// order returned by camera.Camera.ProjectSegment.
type Segment struct {
	Index    int // index of the first path point
	From, To math.Vec2
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithZoom applies a digital zoom level to the field of view.
func WithZoom(level float64) Option {
	return func(t *Tracker) {
		t.zoom = level
	}
}

// WithMargin keeps markers up to margin screen fractions past each edge.
func WithMargin(margin float64) Option {
	return func(t *Tracker) {
		t.margin = margin
	}
}

// Tracker holds the camera of one sighting session.
type Tracker struct {
	log    *zap.Logger
	fov    camera.FieldOfView
	zoom   float64
	margin float64

	mu       sync.RWMutex
	cam      camera.Camera
	observer geo.Coordinate
	ready    bool
}

// New returns a tracker for a camera with the given unzoomed field of view.
func New(log *zap.Logger, fov camera.FieldOfView, opts ...Option) *Tracker {
	if log == nil {
		log = zap.NewNop()
	}
	t := &Tracker{
		log:  log,
		fov:  fov,
		zoom: 1,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// FieldOfView returns the field of view after zoom.
func (t *Tracker) FieldOfView() camera.FieldOfView {
	return camera.FieldOfView{
		X: camera.ZoomFieldOfView(t.fov.X, t.zoom),
		Y: camera.ZoomFieldOfView(t.fov.Y, t.zoom),
	}
}

// Update rebuilds the camera for a new observer position and pose.
func (t *Tracker) Update(observer geo.Coordinate, pose camera.Pose) {
	cam := camera.New(pose, t.FieldOfView())

	t.mu.Lock()
	t.cam = cam
	t.observer = observer
	t.ready = true
	t.mu.Unlock()

	t.log.Debug("camera updated",
		zap.Float64("lat", observer.Latitude),
		zap.Float64("lon", observer.Longitude),
		zap.Float64("height", pose.Height),
		zap.Float64("yaw", pose.Yaw),
		zap.Float64("pitch", pose.Pitch),
		zap.Float64("roll", pose.Roll),
	)
}

// Camera returns the current camera and whether Update has been called.
func (t *Tracker) Camera() (camera.Camera, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.cam, t.ready
}

func (t *Tracker) snapshot() (camera.Camera, geo.Coordinate, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.cam, t.observer, t.ready
}

func (t *Tracker) onScreen(p math.Vec2) bool {
	return p.Within(-t.margin, 1+t.margin)
}

// Place projects targets and returns the markers that should be drawn this
// frame, in input order.
func (t *Tracker) Place(targets []Target) []Marker {
	cam, observer, ready := t.snapshot()
	if !ready {
		return nil
	}

	markers := make([]Marker, 0, len(targets))
	for _, target := range targets {
		azimuth := observer.AzimuthTo(target.Coordinate)
		distance := observer.DistanceTo(target.Coordinate)

		p, ok := cam.ProjectAzimuth(azimuth, distance, observer.ElevationTo(target.Coordinate))
		switch {
		case !ok:
			t.log.Debug("target behind camera", zap.String("target", target.Name))
			continue
		case !p.IsFinite():
			t.log.Debug("target projection degenerate", zap.String("target", target.Name))
			continue
		case !t.onScreen(p):
			t.log.Debug("target off screen", zap.String("target", target.Name),
				zap.Float64("x", p.X), zap.Float64("y", p.Y))
			continue
		}

		markers = append(markers, Marker{
			Name:     target.Name,
			Screen:   p,
			Azimuth:  azimuth,
			Distance: distance,
		})
	}
	return markers
}

// Trace projects consecutive pairs of a path given in the observer's local
// frame. Pairs entirely behind the camera or with degenerate projections
// are skipped.
func (t *Tracker) Trace(path []math.Vec3) []Segment {
	cam, _, ready := t.snapshot()
	if !ready || len(path) < 2 {
		return nil
	}

	segments := make([]Segment, 0, len(path)-1)
	for i := 0; i+1 < len(path); i++ {
		s, ok := cam.ProjectSegment(path[i], path[i+1])
		if !ok {
			continue
		}
		if !s[0].IsFinite() || !s[1].IsFinite() {
			t.log.Debug("segment projection degenerate", zap.Int("index", i))
			continue
		}
		segments = append(segments, Segment{Index: i, From: s[0], To: s[1]})
	}
	return segments
}
