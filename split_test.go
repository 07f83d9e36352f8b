package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplitPolygonByLine(t *testing.T) {
	e := NewEngine()
	sq := square(0, 0, 2)
	// A line heading up the page at x=1: left is x < 1.
	line, err := NewLine2D(Vec2{X: 1, Y: -5}, Vec2{X: 0, Y: 1})
	require.NoError(t, err)

	pieces := e.SplitPolygonByLine(sq, line)
	require.Len(t, pieces, 2)
	var left, right []PolygonWithHoles2D
	for _, p := range pieces {
		switch p.Side {
		case SideLeft:
			left = append(left, p.Polygon)
		case SideRight:
			right = append(right, p.Polygon)
		}
	}
	require.Len(t, left, 1)
	require.Len(t, right, 1)
	require.InDelta(t, 2.0, float64(left[0].Area()), 1e-9)
	require.InDelta(t, 2.0, float64(right[0].Area()), 1e-9)
	require.True(t, left[0].Contains(Vec2{X: 0.5, Y: 1}))
	require.True(t, right[0].Contains(Vec2{X: 1.5, Y: 1}))
}

func TestSplitPolygonByMissingLine(t *testing.T) {
	e := NewEngine()
	sq := square(0, 0, 2)
	line, err := NewLine2D(Vec2{X: 10, Y: 0}, Vec2{X: 0, Y: 1})
	require.NoError(t, err)

	pieces := e.SplitPolygonByLine(sq, line)
	require.Len(t, pieces, 1)
	require.Equal(t, SideLeft, pieces[0].Side, "polygon lies left of the directed line")
	require.InDelta(t, 4.0, float64(pieces[0].Polygon.Area()), 1e-9)

	require.Empty(t, e.SplitPolygonByLine(Polygon2D{{X: 0, Y: 0}, {X: 1, Y: 1}}, line))
}

func TestSplitConcavePolygon(t *testing.T) {
	e := NewEngine()
	u := Polygon2D{
		{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 6, Y: 10},
		{X: 6, Y: 4}, {X: 4, Y: 4}, {X: 4, Y: 10}, {X: 0, Y: 10},
	}
	// Cut horizontally through the two arms: the region above y=8
	// falls apart into two left pieces.
	line, err := NewLine2D(Vec2{X: 0, Y: 8}, Vec2{X: 1, Y: 0})
	require.NoError(t, err)
	pieces := e.SplitPolygonByLine(u, line)
	var lefts, rights int
	var leftArea, rightArea Area
	for _, p := range pieces {
		if p.Side == SideLeft {
			lefts++
			leftArea += p.Polygon.Area()
		} else {
			rights++
			rightArea += p.Polygon.Area()
		}
	}
	require.Equal(t, 2, lefts, "two arms above the cut")
	require.Equal(t, 1, rights)
	require.InDelta(t, 16.0, float64(leftArea), 1e-9)
	require.InDelta(t, float64(u.Area())-16, float64(rightArea), 1e-9)
}

func TestIntersectLineWithPolygon(t *testing.T) {
	sq := square(0, 0, 10)
	line, err := NewLine2D(Vec2{X: -3, Y: 5}, Vec2{X: 1, Y: 0})
	require.NoError(t, err)

	spans := IntersectLineWithPolygon(line, sq)
	require.Len(t, spans, 1)
	require.InDelta(t, 10.0, float64(spans[0].Length()), 1e-9)
	require.True(t, NearVec(spans[0].Start, Vec2{X: 0, Y: 5}))
	require.True(t, NearVec(spans[0].End, Vec2{X: 10, Y: 5}))

	// A miss is zero spans, not an error.
	miss, err := NewLine2D(Vec2{X: 0, Y: 50}, Vec2{X: 1, Y: 0})
	require.NoError(t, err)
	require.Empty(t, IntersectLineWithPolygon(miss, sq))

	require.Empty(t, IntersectLineWithPolygon(line, Polygon2D{{X: 0, Y: 0}, {X: 1, Y: 1}}))
}

func TestIntersectLineWithConcavePolygon(t *testing.T) {
	u := Polygon2D{
		{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 6, Y: 10},
		{X: 6, Y: 4}, {X: 4, Y: 4}, {X: 4, Y: 10}, {X: 0, Y: 10},
	}
	line, err := NewLine2D(Vec2{X: 0, Y: 8}, Vec2{X: 1, Y: 0})
	require.NoError(t, err)

	spans := IntersectLineWithPolygon(line, u)
	require.Len(t, spans, 2, "the notch interrupts the line")
	require.InDelta(t, 4.0, float64(spans[0].Length()), 1e-9)
	require.InDelta(t, 4.0, float64(spans[1].Length()), 1e-9)
	// Spans are ordered along the line direction.
	require.Less(t, spans[0].End.X, spans[1].Start.X)
}

func TestIntersectLineSegmentWithPolygon(t *testing.T) {
	sq := square(0, 0, 10)

	// Segment reaching from inside to beyond the right edge clips at
	// both its own start and the perimeter.
	seg := LineSegment2D{Start: Vec2{X: 5, Y: 5}, End: Vec2{X: 15, Y: 5}}
	spans := IntersectLineSegmentWithPolygon(seg, sq)
	require.Len(t, spans, 1)
	require.True(t, NearVec(spans[0].Start, Vec2{X: 5, Y: 5}))
	require.True(t, NearVec(spans[0].End, Vec2{X: 10, Y: 5}))

	// Fully outside.
	outside := LineSegment2D{Start: Vec2{X: 20, Y: 5}, End: Vec2{X: 30, Y: 5}}
	require.Empty(t, IntersectLineSegmentWithPolygon(outside, sq))

	// Degenerate segment has no direction.
	dot := LineSegment2D{Start: Vec2{X: 5, Y: 5}, End: Vec2{X: 5, Y: 5}}
	require.Empty(t, IntersectLineSegmentWithPolygon(dot, sq))
}

func TestSideString(t *testing.T) {
	if SideLeft.String() != "left" || SideRight.String() != "right" {
		t.Errorf("side names got=%q,%q", SideLeft, SideRight)
	}
}

func TestLineCrossingsThroughVertex(t *testing.T) {
	// A diagonal through two opposite vertices of the square: the
	// vertex crossings are each reported once, and the span runs
	// corner to corner.
	sq := square(0, 0, 10)
	line, err := NewLine2D(Vec2{X: -1, Y: -1}, Vec2{X: 1, Y: 1})
	require.NoError(t, err)
	spans := IntersectLineWithPolygon(line, sq)
	require.Len(t, spans, 1)
	require.InDelta(t, 10*math.Sqrt2, float64(spans[0].Length()), 1e-9)
}
