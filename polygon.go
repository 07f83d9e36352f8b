package geom

import (
	"math"
	"slices"
)

// Polygon2D holds the consecutive points on the perimeter of a
// polygon. There is an implicit edge joining the last point to the
// first point; the last point is never repeated. Orientation is not a
// stored invariant: callers that depend on winding normalize first
// with EnsureClockwise or EnsureCounterClockwise. A polygon with
// fewer than 3 points is degenerate: it has zero area, contains
// nothing and intersects nothing.
type Polygon2D []Vec2

// edge returns the i-th perimeter edge, including the implicit
// closing edge.
func (p Polygon2D) edge(i int) LineSegment2D {
	return LineSegment2D{Start: p[i], End: p[(i+1)%len(p)]}
}

// SignedArea computes the shoelace sum of the polygon: positive for
// counter-clockwise perimeters, negative for clockwise ones.
func (p Polygon2D) SignedArea() float64 {
	if len(p) < 3 {
		return 0
	}
	sum := 0.0
	for i, a := range p {
		b := p[(i+1)%len(p)]
		sum += a.X*b.Y - b.X*a.Y
	}
	return sum / 2
}

// Area computes the absolute enclosed area. Use IsClockwise for the
// winding of the perimeter.
func (p Polygon2D) Area() Area {
	return Area(math.Abs(p.SignedArea()))
}

// Perimeter computes the total edge length, closing edge included.
func (p Polygon2D) Perimeter() Length {
	var sum float64
	for i := range p {
		sum += p[i].DistanceTo(p[(i+1)%len(p)])
	}
	return Length(sum)
}

// Centroid computes the area centroid of the polygon. For degenerate
// (zeroish area) polygons it falls back to the vertex average.
func (p Polygon2D) Centroid() Vec2 {
	if len(p) == 0 {
		return Vec2{}
	}
	a := p.SignedArea()
	if nearZero(a) {
		var sum Vec2
		for _, v := range p {
			sum = sum.Add(v)
		}
		return sum.Mulf(1 / float64(len(p)))
	}
	var c Vec2
	for i, v := range p {
		w := p[(i+1)%len(p)]
		f := v.X*w.Y - w.X*v.Y
		c.X += (v.X + w.X) * f
		c.Y += (v.Y + w.Y) * f
	}
	return c.Mulf(1 / (6 * a))
}

// Bounds determines the bounding box LL and TR corner points of the
// polygon.
func (p Polygon2D) Bounds() (c0, c1 Vec2) {
	for j, v := range p {
		if j == 0 {
			c0, c1 = v, v
			continue
		}
		c0.X = min(c0.X, v.X)
		c0.Y = min(c0.Y, v.Y)
		c1.X = max(c1.X, v.X)
		c1.Y = max(c1.Y, v.Y)
	}
	return c0, c1
}

// IsClockwise reports whether the perimeter points run clockwise.
func (p Polygon2D) IsClockwise() bool {
	return p.SignedArea() < 0
}

// Reversed returns a copy of the polygon with the perimeter traversed
// in the opposite direction.
func (p Polygon2D) Reversed() Polygon2D {
	q := slices.Clone(p)
	slices.Reverse(q)
	return q
}

// EnsureClockwise returns the polygon with a clockwise perimeter,
// reversing a copy when needed.
func (p Polygon2D) EnsureClockwise() Polygon2D {
	if len(p) >= 3 && !p.IsClockwise() {
		return p.Reversed()
	}
	return p
}

// EnsureCounterClockwise returns the polygon with a counter-clockwise
// perimeter, reversing a copy when needed.
func (p Polygon2D) EnsureCounterClockwise() Polygon2D {
	if len(p) >= 3 && p.IsClockwise() {
		return p.Reversed()
	}
	return p
}

// OnBoundary reports whether pt lies on the polygon perimeter within
// Zeroish.
func (p Polygon2D) OnBoundary(pt Vec2) bool {
	for i := range p {
		if float64(p.edge(i).DistanceTo(pt)) <= Zeroish {
			return true
		}
	}
	return false
}

// crossings counts perimeter edges crossed by the ray from pt towards
// +x, for the even-odd containment rule.
func (p Polygon2D) crossings(pt Vec2) int {
	n := 0
	for i, a := range p {
		b := p[(i+1)%len(p)]
		if (a.Y > pt.Y) == (b.Y > pt.Y) {
			continue
		}
		if pt.X < a.X+(pt.Y-a.Y)*(b.X-a.X)/(b.Y-a.Y) {
			n++
		}
	}
	return n
}

// Contains reports whether pt is inside the polygon under the
// even-odd fill rule, the same rule the boolean Engine uses. Points
// on the perimeter count as inside; see ContainsStrictly for the
// open-region test. Degenerate polygons contain nothing.
func (p Polygon2D) Contains(pt Vec2) bool {
	if len(p) < 3 {
		return false
	}
	if p.OnBoundary(pt) {
		return true
	}
	return p.crossings(pt)%2 == 1
}

// ContainsStrictly reports whether pt is inside the polygon and not
// on its perimeter.
func (p Polygon2D) ContainsStrictly(pt Vec2) bool {
	if len(p) < 3 {
		return false
	}
	if p.OnBoundary(pt) {
		return false
	}
	return p.crossings(pt)%2 == 1
}

// Simplify returns a copy of the polygon with zeroish-length edges
// collapsed and collinear mid points removed. The result can be
// degenerate if the input was (a triangle with one vertex nudged onto
// the opposite edge simplifies to 2 points).
func (p Polygon2D) Simplify() Polygon2D {
	var q Polygon2D
	for _, v := range p {
		if len(q) > 0 && NearVec(v, q[len(q)-1]) {
			continue
		}
		q = append(q, v)
	}
	for len(q) > 1 && NearVec(q[0], q[len(q)-1]) {
		q = q[:len(q)-1]
	}
	if len(q) < 3 {
		return q
	}
	var out Polygon2D
	for i, v := range q {
		prev := q[(i+len(q)-1)%len(q)]
		next := q[(i+1)%len(q)]
		chord := LineSegment2D{Start: prev, End: next}
		if float64(chord.DistanceTo(v)) <= Zeroish {
			continue
		}
		out = append(out, v)
	}
	return out
}

// adjacentEdges reports whether perimeter edges i and j (i < j) share
// a vertex on a polygon of n edges.
func adjacentEdges(i, j, n int) bool {
	return j == i+1 || (i == 0 && j == n-1)
}

// SelfIntersects reports whether the closed perimeter touches or
// crosses itself: two non-adjacent edges sharing any point, adjacent
// edges folding back along each other, or duplicate perimeter
// points. Bounding boxes of the edges prune the quadratic pair scan,
// keeping the test fast enough for per-pointer-move validation of
// interactive outlines.
func (p Polygon2D) SelfIntersects() bool {
	n := len(p)
	if n < 3 {
		return false
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if NearVec(p[i], p[j]) {
				return true
			}
		}
	}
	for i := 0; i < n; i++ {
		a, b := p[i], p[(i+1)%n]
		bb0, bb1 := LineSegment2D{Start: a, End: b}.bounds()
		for j := i + 1; j < n; j++ {
			c, d := p[j], p[(j+1)%n]
			cc0, cc1 := LineSegment2D{Start: c, End: d}.bounds()
			if bb0.X > cc1.X+Zeroish || bb1.X < cc0.X-Zeroish ||
				bb0.Y > cc1.Y+Zeroish || bb1.Y < cc0.Y-Zeroish {
				continue
			}
			if adjacentEdges(i, j, n) {
				if edgesFoldBack(a, b, c, d) {
					return true
				}
				continue
			}
			if segmentsTouch(a, b, c, d) {
				return true
			}
		}
	}
	return false
}

// edgesFoldBack reports whether two edges that share an endpoint are
// collinear and overlap beyond the shared point.
func edgesFoldBack(a, b, c, d Vec2) bool {
	// Arrange as (u, shared, w).
	var u, shared, w Vec2
	switch {
	case NearVec(b, c):
		u, shared, w = a, b, d
	case NearVec(b, d):
		u, shared, w = a, b, c
	case NearVec(a, c):
		u, shared, w = b, a, d
	case NearVec(a, d):
		u, shared, w = b, a, c
	default:
		// Adjacent perimeter edges always share a vertex; anything
		// else already failed the duplicate point scan.
		return false
	}
	eps := Zeroish * max(u.DistanceTo(shared), 1)
	if math.Abs(Cross3(shared, u, w)) > eps {
		return false
	}
	return u.Sub(shared).Dot(w.Sub(shared)) > 0
}

// bounds determines the bounding box LL and TR corner points of a
// segment.
func (s LineSegment2D) bounds() (c0, c1 Vec2) {
	c0.X, c1.X = MinMax(s.Start.X, s.End.X)
	c0.Y, c1.Y = MinMax(s.Start.Y, s.End.Y)
	return c0, c1
}

// WouldCloseSelfIntersecting reports whether closing the open chain
// of points into a polygon would produce a self-intersecting
// perimeter. This is the validity gate for committing an interactive
// boundary edit: it detects non-adjacent edge crossings, edges
// touching away from a shared vertex, collinear fold-backs and
// duplicate points, the implicit closing edge included. A chain of
// fewer than 3 points closes to nothing and reports false.
func WouldCloseSelfIntersecting(chain []Vec2) bool {
	return Polygon2D(chain).SelfIntersects()
}

// PolygonsIntersect reports whether two polygons share any area or
// boundary point. The test is symmetric in its arguments; degenerate
// polygons intersect nothing.
func PolygonsIntersect(a, b Polygon2D) bool {
	if len(a) < 3 || len(b) < 3 {
		return false
	}
	a0, a1 := a.Bounds()
	b0, b1 := b.Bounds()
	if a0.X > b1.X+Zeroish || a1.X < b0.X-Zeroish ||
		a0.Y > b1.Y+Zeroish || a1.Y < b0.Y-Zeroish {
		return false
	}
	for i := range a {
		ea := a.edge(i)
		for j := range b {
			eb := b.edge(j)
			if segmentsTouch(ea.Start, ea.End, eb.Start, eb.End) {
				return true
			}
		}
	}
	return a.Contains(b[0]) || b.Contains(a[0])
}

// DiameterAlong measures the extent of the polygon when projected
// onto the given direction. A zeroish direction or degenerate polygon
// measures zero.
func (p Polygon2D) DiameterAlong(dir Vec2) Length {
	if len(p) == 0 || (nearZero(dir.X) && nearZero(dir.Y)) {
		return 0
	}
	u := dir.Normalized()
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range p {
		d := v.Dot(u)
		lo = min(lo, d)
		hi = max(hi, d)
	}
	return Length(hi - lo)
}

// AtHeight lifts the perimeter points to a horizontal plane at height
// z, for consumers that extrude boundaries into 3D.
func (p Polygon2D) AtHeight(z float64) []Vec3 {
	out := make([]Vec3, len(p))
	for i, v := range p {
		out[i] = Lift(v, z)
	}
	return out
}
