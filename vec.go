package geom

import (
	"github.com/golang/geo/r3"
	"github.com/quasilyte/gmath"
)

// Vec2 is a 2D millimeter coordinate or displacement. It is
// gmath.Vec, so the usual value-semantics arithmetic (Add, Sub, Mulf,
// Dot, Len, Normalized, DistanceTo, Rotated) is available directly.
// Operations return new values and never mutate their receiver.
type Vec2 = gmath.Vec

// Vec3 is a 3D millimeter coordinate, used where boundary geometry is
// lifted out of the plane for meshing and export consumers.
type Vec3 = r3.Vector

// Cross returns the 2D cross product (the z component of a⨯b).
func Cross(a, b Vec2) float64 {
	return a.X*b.Y - a.Y*b.X
}

// Cross3 returns the cross product of the vectors o->a and o->b. It
// is positive when the triple (o,a,b) turns counter-clockwise,
// negative when clockwise and zeroish when collinear.
func Cross3(o, a, b Vec2) float64 {
	return (a.X-o.X)*(b.Y-o.Y) - (a.Y-o.Y)*(b.X-o.X)
}

// PerpCCW rotates v a quarter turn counter-clockwise.
func PerpCCW(v Vec2) Vec2 {
	return Vec2{X: -v.Y, Y: v.X}
}

// PerpCW rotates v a quarter turn clockwise.
func PerpCW(v Vec2) Vec2 {
	return Vec2{X: v.Y, Y: -v.X}
}

// Project returns the projection of v onto the vector onto. A zeroish
// onto has no direction to project onto, so the zero vector is
// returned.
func Project(v, onto Vec2) Vec2 {
	d := onto.Dot(onto)
	if nearZero(d) {
		return Vec2{}
	}
	return onto.Mulf(v.Dot(onto) / d)
}

// NearVec recognizes when a is close enough to any of the points b...
func NearVec(a Vec2, b ...Vec2) bool {
	for _, c := range b {
		dx, dy := a.X-c.X, a.Y-c.Y
		if nearZero(dx) && nearZero(dy) {
			return true
		}
	}
	return false
}

// RotateAround rotates v by angle radians about the pivot point.
func RotateAround(v, pivot Vec2, angle gmath.Rad) Vec2 {
	return pivot.Add(v.Sub(pivot).Rotated(angle))
}

// Lift places a planar point at height z.
func Lift(v Vec2, z float64) Vec3 {
	return Vec3{X: v.X, Y: v.Y, Z: z}
}

// Flatten drops the height component of a 3D point.
func Flatten(v Vec3) Vec2 {
	return Vec2{X: v.X, Y: v.Y}
}
