package geom

import (
	"fmt"
	"math"
)

// Line2D is an infinite line described by a point on the line and a
// unit direction. Construct one with NewLine2D (or from a segment via
// LineSegment2D.Line) so the unit-length invariant on Dir holds.
type Line2D struct {
	Point Vec2
	Dir   Vec2
}

// NewLine2D builds a line through point in the given direction. The
// direction is normalized; a zeroish direction is an error since it
// describes no line at all.
func NewLine2D(point, dir Vec2) (Line2D, error) {
	if nearZero(dir.X) && nearZero(dir.Y) {
		return Line2D{}, fmt.Errorf("line direction is zeroish: %v", dir)
	}
	return Line2D{Point: point, Dir: dir.Normalized()}, nil
}

// Intersect returns the point where two infinite lines cross. When
// the lines are parallel within Zeroish there is no meaningful
// crossing point and ok is false; a near-infinite point is never
// returned.
func (l Line2D) Intersect(m Line2D) (at Vec2, ok bool) {
	denom := Cross(l.Dir, m.Dir)
	if nearZero(denom) {
		return Vec2{}, false
	}
	t := Cross(m.Point.Sub(l.Point), m.Dir) / denom
	return l.Point.Add(l.Dir.Mulf(t)), true
}

// Project returns the closest point on the line to p.
func (l Line2D) Project(p Vec2) Vec2 {
	return l.Point.Add(l.Dir.Mulf(p.Sub(l.Point).Dot(l.Dir)))
}

// DistanceTo returns the perpendicular distance from p to the line.
func (l Line2D) DistanceTo(p Vec2) Length {
	return Length(math.Abs(l.Side(p)))
}

// Side returns the signed perpendicular offset of p from the line:
// positive on the left of Dir (its counter-clockwise perpendicular),
// negative on the right, zeroish on the line.
func (l Line2D) Side(p Vec2) float64 {
	return Cross(l.Dir, p.Sub(l.Point))
}

// PointAt returns the point at parameter t millimeters along the line
// from its anchor point.
func (l Line2D) PointAt(t float64) Vec2 {
	return l.Point.Add(l.Dir.Mulf(t))
}

// BoundingLines returns the two lines parallel to line that bound the
// point set: lo passes through the point with the smallest signed
// offset, hi through the one with the largest. With no points both
// returned lines coincide with line itself.
func BoundingLines(line Line2D, pts []Vec2) (lo, hi Line2D) {
	lo, hi = line, line
	if len(pts) == 0 {
		return lo, hi
	}
	sMin, sMax := math.Inf(1), math.Inf(-1)
	for _, p := range pts {
		s := line.Side(p)
		sMin = min(sMin, s)
		sMax = max(sMax, s)
	}
	n := PerpCCW(line.Dir)
	lo.Point = line.Point.Add(n.Mulf(sMin))
	hi.Point = line.Point.Add(n.Mulf(sMax))
	return lo, hi
}

// LineSegment2D is the part of a line between two points. Degenerate
// (zeroish length) segments are legal values; every operation below
// defines a finite result for them.
type LineSegment2D struct {
	Start, End Vec2
}

// Vector returns the displacement from Start to End.
func (s LineSegment2D) Vector() Vec2 {
	return s.End.Sub(s.Start)
}

// Length returns the segment length.
func (s LineSegment2D) Length() Length {
	return Length(s.Start.DistanceTo(s.End))
}

// Midpoint returns the segment midpoint.
func (s LineSegment2D) Midpoint() Vec2 {
	return s.Start.Add(s.End).Mulf(0.5)
}

// PointAt returns Start + t*(End-Start). The parameter is not
// clamped.
func (s LineSegment2D) PointAt(t float64) Vec2 {
	return s.Start.Add(s.Vector().Mulf(t))
}

// Line returns the infinite line through the segment. A degenerate
// segment has no direction, which is an error.
func (s LineSegment2D) Line() (Line2D, error) {
	return NewLine2D(s.Start, s.Vector())
}

// ClosestPoint returns the point on the segment nearest to p. The
// projection parameter is clamped to [0,1], so the result is defined
// for degenerate segments too.
func (s LineSegment2D) ClosestPoint(p Vec2) Vec2 {
	v := s.Vector()
	d := v.Dot(v)
	if nearZero(d) {
		return s.Start
	}
	t := p.Sub(s.Start).Dot(v) / d
	t = max(0, min(1, t))
	return s.Start.Add(v.Mulf(t))
}

// DistanceTo returns the distance from p to the nearest point of the
// segment.
func (s LineSegment2D) DistanceTo(p Vec2) Length {
	return Length(p.DistanceTo(s.ClosestPoint(p)))
}

// Intersect returns the crossing point of two segments. Parallel
// segments (collinear-overlapping included) report no single crossing
// point; use segmentsTouch for the boolean overlap question.
func (s LineSegment2D) Intersect(o LineSegment2D) (at Vec2, ok bool) {
	r, q := s.Vector(), o.Vector()
	denom := Cross(r, q)
	if nearZero(denom) {
		return Vec2{}, false
	}
	w := o.Start.Sub(s.Start)
	t := Cross(w, q) / denom
	u := Cross(w, r) / denom
	if t < -Zeroish || t > 1+Zeroish || u < -Zeroish || u > 1+Zeroish {
		return Vec2{}, false
	}
	return s.Start.Add(r.Mulf(t)), true
}

// onSegment reports whether point p, known to be collinear with the
// segment (a,b), lies within its bounding box.
func onSegment(a, b, p Vec2) bool {
	x0, x1 := MinMax(a.X, b.X)
	y0, y1 := MinMax(a.Y, b.Y)
	return p.X >= x0-Zeroish && p.X <= x1+Zeroish &&
		p.Y >= y0-Zeroish && p.Y <= y1+Zeroish
}

// segmentsTouch reports whether segments (a,b) and (c,d) have any
// point in common, endpoints and collinear overlap included. The
// orientation tests are scaled by the segment lengths so the same
// Zeroish tolerance applies to short and long edges alike.
func segmentsTouch(a, b, c, d Vec2) bool {
	d1 := Cross3(c, d, a)
	d2 := Cross3(c, d, b)
	d3 := Cross3(a, b, c)
	d4 := Cross3(a, b, d)
	epsCD := Zeroish * max(c.DistanceTo(d), 1)
	epsAB := Zeroish * max(a.DistanceTo(b), 1)
	if ((d1 > epsCD && d2 < -epsCD) || (d1 < -epsCD && d2 > epsCD)) &&
		((d3 > epsAB && d4 < -epsAB) || (d3 < -epsAB && d4 > epsAB)) {
		return true
	}
	if math.Abs(d1) <= epsCD && onSegment(c, d, a) {
		return true
	}
	if math.Abs(d2) <= epsCD && onSegment(c, d, b) {
		return true
	}
	if math.Abs(d3) <= epsAB && onSegment(a, b, c) {
		return true
	}
	if math.Abs(d4) <= epsAB && onSegment(a, b, d) {
		return true
	}
	return false
}
