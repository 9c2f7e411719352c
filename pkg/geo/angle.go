package geo

import (
	"math"

	"github.com/golang/geo/r2"
	"github.com/golang/geo/s1"
	"github.com/lintang-b-s/wayfinder/pkg"
)

// ForwardReference is the facing of an indicator with no rotation applied: straight ahead along +z.
var ForwardReference = r2.Point{X: 0, Y: 1}

// AngleBetween. unsigned angle between u and v in degrees, range [0,180]. zero-length vectors have no direction, 0 is returned.
func AngleBetween(u, v r2.Point) float64 {
	nu, nv := u.Norm(), v.Norm()
	if nu == 0 || nv == 0 {
		return 0
	}
	cos := u.Dot(v) / (nu * nv)
	// rounding can push |cos| slightly above 1
	cos = math.Max(-1, math.Min(1, cos))
	return s1.Angle(math.Acos(cos)).Degrees()
}

/*
BearingTo. rotation (degrees, [0,360)) that turns an indicator placed at from so it faces to.

acos only yields [0,180], so the turn direction is resolved with the x coordinate: when to lies on the
negative-x side of from the reflex angle 360-angle is used instead.
*/
func BearingTo(from, to Point) float64 {
	dir := to.Vector().Sub(from.Vector())
	angle := AngleBetween(ForwardReference, dir)
	if to.X < from.X {
		angle = pkg.FULL_TURN_DEGREE - angle
	}
	return NormalizeBearing(angle)
}

// NormalizeBearing maps any angle in degrees into [0,360).
func NormalizeBearing(deg float64) float64 {
	deg = math.Mod(deg, pkg.FULL_TURN_DEGREE)
	if deg < 0 {
		deg += pkg.FULL_TURN_DEGREE
	}
	if deg >= pkg.FULL_TURN_DEGREE {
		deg = 0
	}
	return deg
}
