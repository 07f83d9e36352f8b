package geom

import (
	polyclip "github.com/ctessum/polyclip-go"
)

// PolygonWithHoles2D is one outer perimeter with zero or more hole
// perimeters nested inside it. Values are produced by the boolean
// Engine and the shape analysis built on it; they are never
// hand-assembled elsewhere in this package. Outers run
// counter-clockwise and holes clockwise, matching the additive
// shape / hole convention of the even-odd fill rule used throughout.
type PolygonWithHoles2D struct {
	Outer Polygon2D
	Holes []Polygon2D
}

// Area computes the enclosed area: the outer area less the hole
// areas.
func (p PolygonWithHoles2D) Area() Area {
	a := p.Outer.Area()
	for _, h := range p.Holes {
		a -= h.Area()
	}
	return a
}

// Contains reports whether pt is inside the outer perimeter and not
// strictly inside any hole. Points on either kind of perimeter count
// as inside.
func (p PolygonWithHoles2D) Contains(pt Vec2) bool {
	if !p.Outer.Contains(pt) {
		return false
	}
	for _, h := range p.Holes {
		if h.ContainsStrictly(pt) {
			return false
		}
	}
	return true
}

// Engine is the handle to the boolean-algebra backend, a
// Martinez-Rueda polygon clipper. Construct one Engine at startup
// with NewEngine and share it freely: it holds no state and is safe
// for concurrent use. Keeping the backend behind an explicit handle
// (rather than package state) lets tests hold several engines side
// by side.
type Engine struct{}

// NewEngine initializes the boolean-algebra backend and returns its
// handle. The pure-Go clipper has nothing that can fail to load, so
// construction always succeeds.
func NewEngine() *Engine {
	return &Engine{}
}

// toContour converts one polygon to a clipper contour.
func toContour(p Polygon2D) polyclip.Contour {
	c := make(polyclip.Contour, len(p))
	for i, v := range p {
		c[i] = polyclip.Point{X: v.X, Y: v.Y}
	}
	return c
}

// fromContour converts a clipper contour back, collapsing zeroish
// artifacts; the result can be degenerate.
func fromContour(c polyclip.Contour) Polygon2D {
	p := make(Polygon2D, len(c))
	for i, v := range c {
		p[i] = Vec2{X: v.X, Y: v.Y}
	}
	return p.Simplify()
}

// clipFold unions a set of polygons into a single clipper polygon,
// one contour at a time. Folding sequentially resolves mutual
// overlaps between the inputs, so downstream operations see a clean
// region. Polygons with fewer than 3 points are dropped silently:
// they arise routinely from in-progress edits and enclose nothing.
func clipFold(ps []Polygon2D) polyclip.Polygon {
	var acc polyclip.Polygon
	for _, p := range ps {
		p = p.Simplify()
		if len(p) < 3 {
			continue
		}
		next := polyclip.Polygon{toContour(p)}
		if acc == nil {
			acc = next
			continue
		}
		acc = acc.Construct(polyclip.UNION, next)
	}
	return acc
}

// ringContains reports whether ring inner nests inside ring outer.
// Clipper output rings never cross, so testing one representative
// point suffices; points sitting exactly on the outer perimeter are
// skipped in favour of one that is off it.
func ringContains(outer, inner Polygon2D) bool {
	for _, v := range inner {
		if !outer.OnBoundary(v) {
			return outer.ContainsStrictly(v)
		}
	}
	return outer.Contains(inner.Centroid())
}

// decompose nests the flat contour set a clipper operation returns
// into polygons with holes. A contour contained by an even number of
// other contours is an outer perimeter; odd depth makes it a hole of
// its immediate (depth minus one) container. Orientation of the
// output is normalized: outers counter-clockwise, holes clockwise.
func decompose(clip polyclip.Polygon) []PolygonWithHoles2D {
	var rings []Polygon2D
	for _, c := range clip {
		if r := fromContour(c); len(r) >= 3 {
			rings = append(rings, r)
		}
	}
	depth := make([]int, len(rings))
	for i := range rings {
		for j := range rings {
			if i != j && ringContains(rings[j], rings[i]) {
				depth[i]++
			}
		}
	}
	var out []PolygonWithHoles2D
	outerAt := make(map[int]int, len(rings))
	for i, r := range rings {
		if depth[i]%2 == 0 {
			outerAt[i] = len(out)
			out = append(out, PolygonWithHoles2D{Outer: r.EnsureCounterClockwise()})
		}
	}
	for i, r := range rings {
		if depth[i]%2 == 0 {
			continue
		}
		for j := range rings {
			if depth[j] == depth[i]-1 && ringContains(rings[j], r) {
				k := outerAt[j]
				out[k].Holes = append(out[k].Holes, r.EnsureClockwise())
				break
			}
		}
	}
	return out
}
