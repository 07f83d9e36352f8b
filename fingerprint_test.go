package geom

import (
	"math"
	"testing"

	"github.com/quasilyte/gmath"
	"github.com/stretchr/testify/require"
)

// lShape is scalene enough that no two edges match, which makes key
// collisions between distinct placements meaningful.
func lShape() Polygon2D {
	return Polygon2D{
		{X: 0, Y: 0}, {X: 30, Y: 0}, {X: 30, Y: 12},
		{X: 11, Y: 12}, {X: 11, Y: 25}, {X: 0, Y: 25},
	}
}

func TestCanonicalKeyStartIndependent(t *testing.T) {
	p := lShape()
	want, err := CanonicalPolygonKey(p)
	require.NoError(t, err)

	for shift := 1; shift < len(p); shift++ {
		q := append(Polygon2D{}, p[shift:]...)
		q = append(q, p[:shift]...)
		got, err := CanonicalPolygonKey(q)
		require.NoError(t, err)
		require.Equal(t, want, got, "shift %d", shift)
	}
}

func TestCanonicalKeyPlacementIndependent(t *testing.T) {
	p := lShape()
	want, err := CanonicalPolygonKey(p)
	require.NoError(t, err)

	moved := make(Polygon2D, len(p))
	for i, v := range p {
		moved[i] = v.Add(Vec2{X: 7, Y: -3})
	}
	got, err := CanonicalPolygonKey(moved)
	require.NoError(t, err)
	require.Equal(t, want, got, "translation")

	rotated := make(Polygon2D, len(p))
	pivot := Vec2{X: 4, Y: 9}
	for i, v := range p {
		rotated[i] = RotateAround(v, pivot, gmath.Rad(math.Pi/6))
	}
	got, err = CanonicalPolygonKey(rotated)
	require.NoError(t, err)
	require.Equal(t, want, got, "rotation")
}

func TestCanonicalKeyMirrorAndReversal(t *testing.T) {
	p := lShape()
	want, err := CanonicalPolygonKey(p)
	require.NoError(t, err)

	got, err := CanonicalPolygonKey(p.Reversed())
	require.NoError(t, err)
	require.Equal(t, want, got, "reversal")

	mirror := make(Polygon2D, len(p))
	for i, v := range p {
		mirror[i] = Vec2{X: -v.X, Y: v.Y}
	}
	got, err = CanonicalPolygonKey(mirror)
	require.NoError(t, err)
	require.Equal(t, want, got, "mirror")
}

func TestCanonicalKeyDistinguishesShapes(t *testing.T) {
	a, err := CanonicalPolygonKey(lShape())
	require.NoError(t, err)
	b, err := CanonicalPolygonKey(square(0, 0, 30))
	require.NoError(t, err)
	require.NotEqual(t, a, b)

	// Same edge lengths, different turn at one corner.
	c, err := CanonicalPolygonKey(Polygon2D{
		{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10},
	})
	require.NoError(t, err)
	d, err := CanonicalPolygonKey(Polygon2D{
		{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 20, Y: 10}, {X: 10, Y: 10},
	})
	require.NoError(t, err)
	require.NotEqual(t, c, d)
}

func TestCanonicalKeyDegenerate(t *testing.T) {
	_, err := CanonicalPolygonKey(Polygon2D{{X: 0, Y: 0}, {X: 1, Y: 0}})
	require.ErrorIs(t, err, ErrDegeneratePolygon)

	_, err = CanonicalPolygonKey(Polygon2D{
		{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 0.000001}, {X: 0, Y: 10},
	})
	require.ErrorIs(t, err, ErrDegeneratePolygon, "zero-length edge")
}
