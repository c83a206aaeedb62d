package geo

import (
	"fmt"
	"math"
	"strconv"

	"github.com/golang/geo/r3"
	"github.com/golang/geo/s2"
)

// Delta is the tolerance, in degrees, used on both axes when comparing
// a decoded coordinate against the coordinate that was encoded.
const Delta = 0.001

// LatLon is a coordinate in degrees.
type LatLon struct {
	Lat, Lon float64
}

// String is the LatLon Stringer implementation.
// It returns "<lat> <lon>" with enough digits to round-trip.
func (ll LatLon) String() string {
	return fmt.Sprintf("%.12g %.12g", ll.Lat, ll.Lon)
}

// Parse builds a LatLon from separate latitude and longitude strings.
func Parse(latStr, lonStr string) (LatLon, error) {
	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		return LatLon{}, fmt.Errorf("invalid latitude: %#v %s", latStr, err)
	}
	lon, err := strconv.ParseFloat(lonStr, 64)
	if err != nil {
		return LatLon{}, fmt.Errorf("invalid longitude: %#v %s", lonStr, err)
	}
	return LatLon{lat, lon}, nil
}

// Norm wraps the coordinate into range: longitude into [-180, 180] by
// whole turns, latitude into [-90, 90] by half turns. Coordinates are
// always normalized before they reach a codec.
func (ll LatLon) Norm() LatLon {
	for ll.Lon > 180 {
		ll.Lon -= 360
	}
	for ll.Lon < -180 {
		ll.Lon += 360
	}
	for ll.Lat > 90 {
		ll.Lat -= 180
	}
	for ll.Lat < -90 {
		ll.Lat += 180
	}
	return ll
}

// Clamp limits latitude to [-90, 90] and longitude to [-180, 180]
// without wrapping. Round-trip comparisons are made against the
// clamped original.
func (ll LatLon) Clamp() LatLon {
	if ll.Lat < -90 {
		ll.Lat = -90
	} else if ll.Lat > 90 {
		ll.Lat = 90
	}
	if ll.Lon < -180 {
		ll.Lon = -180
	} else if ll.Lon > 180 {
		ll.Lon = 180
	}
	return ll
}

// XYZ returns the coordinate as a point on a sphere with radius 1.
func (ll LatLon) XYZ() r3.Vector {
	return s2.PointFromLatLng(s2.LatLngFromDegrees(ll.Lat, ll.Lon)).Vector
}

// FromUnit maps two unit values in [0, 1] to a coordinate such that
// uniformly distributed inputs give points uniformly distributed over
// the surface of the sphere.
// See http://mathproofs.blogspot.co.il/2005/04/uniform-random-distribution-on-sphere.html
func FromUnit(u1, u2 float64) LatLon {
	theta0 := 2 * math.Pi * u1
	theta1 := math.Acos(1 - 2*u2)
	x := math.Sin(theta0) * math.Sin(theta1)
	y := math.Cos(theta0) * math.Sin(theta1)
	z := math.Cos(theta1)

	latRad := math.Asin(z)
	lonRad := math.Atan2(y, x)

	// asin/acos return NaN when rounding nudges their argument outside
	// [-1, 1]; pin the degenerate result to the pole instead.
	ll := LatLon{Lat: radToDeg(latRad), Lon: radToDeg(lonRad)}
	if math.IsNaN(latRad) {
		ll.Lat = 90
	}
	if math.IsNaN(lonRad) {
		ll.Lon = 180
	}
	return ll
}

// DeltaLat returns the absolute latitude difference between a and b.
func DeltaLat(a, b float64) float64 {
	return math.Abs(a - b)
}

// DeltaLon returns the absolute longitude difference between a and b,
// measured the short way around: a difference over 180 degrees wraps.
func DeltaLon(a, b float64) float64 {
	d := math.Abs(a - b)
	if d > 180 {
		d = 360 - d
	}
	return d
}

func radToDeg(rad float64) float64 {
	return rad / math.Pi * 180
}
