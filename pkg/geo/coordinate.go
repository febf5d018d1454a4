// Package geo provides the geographic coordinate operations the projection
// model needs: great-circle distance, initial bearing and elevation
// difference on a spherical earth.
package geo

import (
	"math"

	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
)

// EarthRadiusMeters is the mean earth radius used for distances.
const EarthRadiusMeters = 6_371_007.2

// Coordinate is a WGS84 position. Altitude is in meters; NaN means unknown.
type Coordinate struct {
	Latitude  float64
	Longitude float64
	Altitude  float64
}

// NewCoordinate returns a coordinate without a known altitude.
func NewCoordinate(lat, lon float64) Coordinate {
	return Coordinate{Latitude: lat, Longitude: lon, Altitude: math.NaN()}
}

func (c Coordinate) latLng() s2.LatLng {
	return s2.LatLngFromDegrees(c.Latitude, c.Longitude)
}

// Valid reports whether latitude is in [-90,90] and longitude in [-180,180].
func (c Coordinate) Valid() bool {
	return c.latLng().IsValid()
}

// DistanceTo returns the great-circle distance in meters.
func (c Coordinate) DistanceTo(other Coordinate) float64 {
	return c.latLng().Distance(other.latLng()).Radians() * EarthRadiusMeters
}

// AzimuthTo returns the initial bearing towards other in degrees,
// clockwise from true north, in [0, 360).
func (c Coordinate) AzimuthTo(other Coordinate) float64 {
	from, to := c.latLng(), other.latLng()
	lat1, lat2 := from.Lat.Radians(), to.Lat.Radians()
	dlon := (to.Lng - from.Lng).Radians()

	y := math.Sin(dlon) * math.Cos(lat2)
	x := math.Cos(lat1)*math.Sin(lat2) - math.Sin(lat1)*math.Cos(lat2)*math.Cos(dlon)

	return math.Mod(s1.Angle(math.Atan2(y, x)).Degrees()+360, 360)
}

// ElevationTo returns other's altitude relative to c. The result is NaN
// when either altitude is unknown.
func (c Coordinate) ElevationTo(other Coordinate) float64 {
	return other.Altitude - c.Altitude
}
