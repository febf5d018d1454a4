package overlay

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/Esri/Trek2There/pkg/camera"
	"github.com/Esri/Trek2There/pkg/geo"
	"github.com/Esri/Trek2There/pkg/math"
)

var (
	origin = geo.Coordinate{Latitude: 34.0562, Longitude: -117.1956, Altitude: 400}
	fov    = camera.FieldOfView{X: 60, Y: 45}
)

func newObserved(t *testing.T, opts ...Option) (*Tracker, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	return New(zap.New(core), fov, opts...), logs
}

func TestPlaceBeforeUpdate(t *testing.T) {
	tr := New(nil, fov)
	assert.Nil(t, tr.Place([]Target{{Name: "a", Coordinate: origin}}))
	assert.Nil(t, tr.Trace([]math.Vec3{{Y: 1}, {Y: 2}}))

	_, ready := tr.Camera()
	assert.False(t, ready)
}

func TestPlace(t *testing.T) {
	tr, logs := newObserved(t)
	tr.Update(origin, camera.Pose{})

	targets := []Target{
		{Name: "north", Coordinate: geo.Coordinate{Latitude: 34.0662, Longitude: -117.1956, Altitude: 400}},
		{Name: "south", Coordinate: geo.Coordinate{Latitude: 34.0462, Longitude: -117.1956, Altitude: 400}},
		{Name: "east", Coordinate: geo.Coordinate{Latitude: 34.0562, Longitude: -117.1856, Altitude: 400}},
		{Name: "unknown altitude", Coordinate: geo.NewCoordinate(34.0762, -117.1956)},
	}

	markers := tr.Place(targets)
	require.Len(t, markers, 2)

	assert.Equal(t, "north", markers[0].Name)
	assert.InDelta(t, 0.5, markers[0].Screen.X, 1e-9)
	assert.InDelta(t, 0.5, markers[0].Screen.Y, 1e-9)
	assert.InDelta(t, 0, markers[0].Azimuth, 1e-9)
	assert.InDelta(t, 1112, markers[0].Distance, 2)

	assert.Equal(t, "unknown altitude", markers[1].Name)

	assert.Equal(t, 1, logs.FilterMessage("target behind camera").Len())
	// Due east sits almost on the camera plane and lands far off screen.
	assert.Equal(t, 1, logs.FilterField(zap.String("target", "east")).Len())
	assert.Equal(t, 1, logs.FilterMessage("camera updated").Len())
}

func TestPlaceMargin(t *testing.T) {
	// 33 degrees right of a 60 degree aperture lands just past the edge.
	pose := camera.Pose{Yaw: -33}
	p, ok := camera.New(pose, fov).ProjectAzimuth(0, 1000, 0)
	require.True(t, ok)
	require.Greater(t, p.X, 1.0)
	require.Less(t, p.X, 1.1)

	target := Target{Name: "edge", Coordinate: geo.Coordinate{Latitude: 34.0662, Longitude: -117.1956, Altitude: 400}}

	strict := New(nil, fov)
	strict.Update(origin, pose)
	assert.Empty(t, strict.Place([]Target{target}))

	loose := New(nil, fov, WithMargin(0.1))
	loose.Update(origin, pose)
	assert.Len(t, loose.Place([]Target{target}), 1)
}

func TestZoomNarrowsFieldOfView(t *testing.T) {
	tr := New(nil, fov, WithZoom(2))
	got := tr.FieldOfView()
	assert.Less(t, got.X, fov.X)
	assert.Less(t, got.Y, fov.Y)
	assert.InDelta(t, camera.ZoomFieldOfView(60, 2), got.X, 1e-12)

	tr.Update(origin, camera.Pose{})
	cam, ready := tr.Camera()
	require.True(t, ready)
	assert.Equal(t, got, cam.FieldOfView())

	assert.Equal(t, fov, New(nil, fov).FieldOfView())
}

func TestTrace(t *testing.T) {
	tr, _ := newObserved(t)
	tr.Update(origin, camera.Pose{Height: 2})

	path := []math.Vec3{
		{X: 0, Y: -10}, // behind
		{X: 0, Y: -20}, // behind
		{X: 0, Y: 10},
		{X: 0, Y: 20},
	}

	segments := tr.Trace(path)
	require.Len(t, segments, 2)

	// Second pair crosses the camera plane and is clipped.
	assert.Equal(t, 1, segments[0].Index)
	assert.Equal(t, 2, segments[1].Index)
	assert.InDelta(t, 0.5, segments[1].From.X, 1e-9)

	assert.Nil(t, tr.Trace(path[:1]))
}

func TestConcurrentUpdateAndPlace(t *testing.T) {
	tr := New(nil, fov)
	tr.Update(origin, camera.Pose{})
	targets := []Target{{Name: "north", Coordinate: geo.Coordinate{Latitude: 34.0662, Longitude: -117.1956, Altitude: 400}}}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func(yaw float64) {
			defer wg.Done()
			tr.Update(origin, camera.Pose{Yaw: yaw})
		}(float64(i))
		go func() {
			defer wg.Done()
			_ = tr.Place(targets)
		}()
	}
	wg.Wait()
}
