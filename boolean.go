package geom

import (
	"math"

	polyclip "github.com/ctessum/polyclip-go"
)

// miterLimit caps the miter spike at a sharp offset corner, in
// multiples of the offset distance; corners sharper than this are
// beveled instead. The value matches the usual clipper default.
const miterLimit = 2.0

// Union combines the regions covered by a and b into polygons with
// holes. Degenerate inputs are dropped silently.
func (e *Engine) Union(a, b []Polygon2D) []PolygonWithHoles2D {
	sub, clip := clipFold(a), clipFold(b)
	if sub == nil {
		return decompose(clip)
	}
	if clip == nil {
		return decompose(sub)
	}
	return decompose(sub.Construct(polyclip.UNION, clip))
}

// Intersect returns the region covered by both a and b.
func (e *Engine) Intersect(a, b []Polygon2D) []PolygonWithHoles2D {
	sub, clip := clipFold(a), clipFold(b)
	if sub == nil || clip == nil {
		return nil
	}
	return decompose(sub.Construct(polyclip.INTERSECTION, clip))
}

// Difference returns the region covered by a but not by b.
func (e *Engine) Difference(a, b []Polygon2D) []PolygonWithHoles2D {
	sub, clip := clipFold(a), clipFold(b)
	if sub == nil {
		return nil
	}
	if clip == nil {
		return decompose(sub)
	}
	return decompose(sub.Construct(polyclip.DIFFERENCE, clip))
}

// SelfUnion resolves a set of possibly overlapping polygons into
// disjoint polygons with holes.
func (e *Engine) SelfUnion(ps []Polygon2D) []PolygonWithHoles2D {
	return decompose(clipFold(ps))
}

// Offset inflates (delta > 0) or deflates (delta < 0) the polygon by
// the given distance with mitered joins. The band swept by the
// offset is assembled from one quad per edge plus a miter wedge per
// corner that opens towards the offset side, then combined with the
// polygon through the boolean backend, so the result never
// self-intersects. Deflating past the local feature size legitimately
// empties or splits the polygon; the outer perimeters of whatever
// region remains are returned, and an empty result is an empty slice,
// not an error.
func (e *Engine) Offset(p Polygon2D, delta Length) []Polygon2D {
	base := p.Simplify().EnsureCounterClockwise()
	if len(base) < 3 {
		return nil
	}
	d := float64(delta)
	if math.Abs(d) <= Zeroish {
		return []Polygon2D{base}
	}
	band := offsetBand(base, d)
	var res []PolygonWithHoles2D
	if d > 0 {
		res = e.Union([]Polygon2D{base}, band)
	} else {
		res = e.Difference([]Polygon2D{base}, band)
	}
	out := make([]Polygon2D, 0, len(res))
	for _, r := range res {
		if len(r.Outer) >= 3 {
			out = append(out, r.Outer)
		}
	}
	return out
}

// offsetBand builds the strip of quads and miter wedges that the
// perimeter of the counter-clockwise polygon sweeps when shifted by
// d: on the outside for d > 0, on the inside for d < 0.
func offsetBand(base Polygon2D, d float64) []Polygon2D {
	m := math.Abs(d)
	n := len(base)
	band := make([]Polygon2D, 0, 2*n)
	normal := func(t Vec2) Vec2 {
		if d > 0 {
			// Interior of a counter-clockwise perimeter lies to
			// the left of the direction of travel.
			return PerpCW(t)
		}
		return PerpCCW(t)
	}
	for i := 0; i < n; i++ {
		a, b := base[i], base[(i+1)%n]
		t := b.Sub(a).Normalized()
		nv := normal(t).Mulf(m)
		band = append(band, Polygon2D{a, b, b.Add(nv), a.Add(nv)})
	}
	for i := 0; i < n; i++ {
		v := base[i]
		prev := base[(i+n-1)%n]
		next := base[(i+1)%n]
		t1 := v.Sub(prev).Normalized()
		t2 := next.Sub(v).Normalized()
		turn := Cross(t1, t2)
		// A gap between adjacent edge quads only opens when the
		// perimeter turns away from the offset side.
		if d > 0 && turn <= Zeroish {
			continue
		}
		if d < 0 && turn >= -Zeroish {
			continue
		}
		n1, n2 := normal(t1).Mulf(m), normal(t2).Mulf(m)
		wedge := Polygon2D{v, v.Add(n1), v.Add(n2)}
		l1 := Line2D{Point: v.Add(n1), Dir: t1}
		l2 := Line2D{Point: v.Add(n2), Dir: t2}
		if mp, ok := l1.Intersect(l2); ok && mp.DistanceTo(v) <= miterLimit*m {
			wedge = Polygon2D{v, v.Add(n1), mp, v.Add(n2)}
		}
		band = append(band, wedge)
	}
	return band
}
