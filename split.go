package geom

import "sort"

// Side tags which half plane of a directed line a split piece came
// from. Left is the side of the line direction's counter-clockwise
// perpendicular.
type Side int

const (
	SideLeft Side = iota
	SideRight
)

// String names the side.
func (s Side) String() string {
	if s == SideLeft {
		return "left"
	}
	return "right"
}

// SplitPiece is one of the polygons produced by splitting a polygon
// with an infinite line, tagged with the half plane it lies in.
type SplitPiece struct {
	Side    Side
	Polygon PolygonWithHoles2D
}

// SplitPolygonByLine partitions the polygon into the pieces left and
// right of the directed infinite line, by clipping it against a
// synthetically large rectangle covering each half plane. A line that
// misses the polygon yields a single piece on one side; a degenerate
// polygon yields none.
func (e *Engine) SplitPolygonByLine(p Polygon2D, line Line2D) []SplitPiece {
	if len(p) < 3 {
		return nil
	}
	c0, c1 := p.Bounds()
	center := c0.Add(c1).Mulf(0.5)
	reach := c1.Sub(c0).Len() + center.DistanceTo(line.Point) + 1
	a := line.Point.Sub(line.Dir.Mulf(reach))
	b := line.Point.Add(line.Dir.Mulf(reach))
	up := PerpCCW(line.Dir).Mulf(reach)
	leftRect := Polygon2D{a, b, b.Add(up), a.Add(up)}
	rightRect := Polygon2D{a.Sub(up), b.Sub(up), b, a}

	var out []SplitPiece
	for _, piece := range e.Intersect([]Polygon2D{p}, []Polygon2D{leftRect}) {
		out = append(out, SplitPiece{Side: SideLeft, Polygon: piece})
	}
	for _, piece := range e.Intersect([]Polygon2D{p}, []Polygon2D{rightRect}) {
		out = append(out, SplitPiece{Side: SideRight, Polygon: piece})
	}
	return out
}

// lineCrossings collects the parameters along the line at which it
// crosses the polygon perimeter, sorted and with zeroish-close
// duplicates (a crossing through a vertex is reported by both of its
// edges) collapsed. Edges parallel to the line contribute no crossing
// themselves; their neighbours do.
func lineCrossings(line Line2D, p Polygon2D) []float64 {
	var ts []float64
	for i, a := range p {
		s := p.edge(i).Vector()
		denom := Cross(line.Dir, s)
		if nearZero(denom) {
			continue
		}
		w := a.Sub(line.Point)
		u := Cross(w, line.Dir) / denom
		if u < -Zeroish || u > 1+Zeroish {
			continue
		}
		ts = append(ts, Cross(w, s)/denom)
	}
	sort.Float64s(ts)
	var out []float64
	for _, t := range ts {
		if len(out) > 0 && t-out[len(out)-1] <= Zeroish {
			continue
		}
		out = append(out, t)
	}
	return out
}

// IntersectLineWithPolygon returns the ordered, non-overlapping spans
// of the infinite line that lie inside the polygon (perimeter
// included, matching Contains). Consumers clip opening and roof-cut
// geometry with these; a line that misses the polygon returns no
// spans, which is not an error.
func IntersectLineWithPolygon(line Line2D, p Polygon2D) []LineSegment2D {
	if len(p) < 3 {
		return nil
	}
	ts := lineCrossings(line, p)
	var spans []LineSegment2D
	for i := 0; i+1 < len(ts); i++ {
		t0, t1 := ts[i], ts[i+1]
		if !p.Contains(line.PointAt((t0 + t1) / 2)) {
			continue
		}
		seg := LineSegment2D{Start: line.PointAt(t0), End: line.PointAt(t1)}
		if len(spans) > 0 && NearVec(spans[len(spans)-1].End, seg.Start) {
			spans[len(spans)-1].End = seg.End
			continue
		}
		spans = append(spans, seg)
	}
	return spans
}

// IntersectLineSegmentWithPolygon returns the parts of the segment
// that lie inside the polygon, ordered from Start to End. A
// degenerate segment has no direction and yields no spans.
func IntersectLineSegmentWithPolygon(seg LineSegment2D, p Polygon2D) []LineSegment2D {
	line, err := seg.Line()
	if err != nil {
		return nil
	}
	segLen := float64(seg.Length())
	var out []LineSegment2D
	for _, span := range IntersectLineWithPolygon(line, p) {
		t0 := span.Start.Sub(seg.Start).Dot(line.Dir)
		t1 := span.End.Sub(seg.Start).Dot(line.Dir)
		t0, t1 = max(t0, 0), min(t1, segLen)
		if t1-t0 <= Zeroish {
			continue
		}
		out = append(out, LineSegment2D{Start: line.PointAt(t0), End: line.PointAt(t1)})
	}
	return out
}
