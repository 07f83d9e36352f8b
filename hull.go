package geom

import (
	"math"
	"slices"
	"sort"

	"github.com/quasilyte/gmath"
)

// ConvexHull returns the convex hull of a set of 2D points using
// Andrew's monotone chain algorithm. The result is in
// counter-clockwise order with collinear points dropped; fewer than 3
// distinct points yield a degenerate (copied) result.
func ConvexHull(points []Vec2) Polygon2D {
	pts := slices.Clone(points)
	n := len(pts)
	if n <= 2 {
		return Polygon2D(pts)
	}

	// Sort points lexicographically (by X, then Y).
	sort.Slice(pts, func(i, j int) bool {
		if pts[i].X == pts[j].X {
			return pts[i].Y < pts[j].Y
		}
		return pts[i].X < pts[j].X
	})

	var lower []Vec2
	for _, p := range pts {
		for len(lower) >= 2 && Cross3(lower[len(lower)-2], lower[len(lower)-1], p) <= Zeroish {
			lower = lower[:len(lower)-1]
		}
		lower = append(lower, p)
	}

	var upper []Vec2
	for i := n - 1; i >= 0; i-- {
		p := pts[i]
		for len(upper) >= 2 && Cross3(upper[len(upper)-2], upper[len(upper)-1], p) <= Zeroish {
			upper = upper[:len(upper)-1]
		}
		upper = append(upper, p)
	}

	// Concatenate lower and upper hulls, excluding the last point of
	// each (repeats).
	hull := append(lower[:len(lower)-1], upper[:len(upper)-1]...)
	if len(hull) < 3 {
		// All points collinear.
		return Polygon2D{pts[0], pts[n-1]}
	}
	return Polygon2D(hull)
}

// ConvexHull returns the convex hull of the polygon in
// counter-clockwise order. For a simple (non self-intersecting)
// perimeter it runs Melkman's one-pass deque algorithm in linear
// time, and agrees with the point-set ConvexHull on convex inputs;
// collinear perimeter points are dropped.
func (p Polygon2D) ConvexHull() Polygon2D {
	q := p.Simplify()
	n := len(q)
	if n < 3 {
		return slices.Clone(q)
	}

	// Deque over q, living in d[bot..top] with d[bot] == d[top].
	d := make([]Vec2, 2*n+1)
	bot := n - 2
	top := bot + 3
	d[bot], d[top] = q[2], q[2]
	if Cross3(q[0], q[1], q[2]) > 0 {
		d[bot+1] = q[0]
		d[bot+2] = q[1]
	} else {
		d[bot+1] = q[1]
		d[bot+2] = q[0]
	}

	for i := 3; i < n; i++ {
		v := q[i]
		if Cross3(d[bot], d[bot+1], v) > Zeroish && Cross3(d[top-1], d[top], v) > Zeroish {
			continue // inside the hull so far
		}
		for top-bot >= 2 && Cross3(d[bot], d[bot+1], v) <= Zeroish {
			bot++
		}
		bot--
		d[bot] = v
		for top-bot >= 2 && Cross3(d[top-1], d[top], v) <= Zeroish {
			top--
		}
		top++
		d[top] = v
	}
	if top-bot < 3 {
		// The perimeter collapsed to a line.
		return ConvexHull(q)
	}
	return Polygon2D(slices.Clone(d[bot:top]))
}

// MinimumBoundingBox fully determines an oriented rectangle: rotating
// a box of dimensions Size (X along the rotated x axis) by Angle
// encloses the polygon it was computed from. SmallestDirection is the
// unit vector along the box's shorter side.
type MinimumBoundingBox struct {
	Angle             gmath.Rad
	Size              Vec2
	SmallestDirection Vec2
}

// MinimumAreaBoundingBox computes the minimum-area oriented bounding
// box of the polygon by rotating calipers over its convex hull: one
// candidate box per hull edge, axis-aligned to that edge. When the
// winning box is square within Zeroish the shorter-side direction tie
// breaks to the supporting edge's own direction. Degenerate input
// (hull of fewer than 3 points) reports ok false.
func MinimumAreaBoundingBox(p Polygon2D) (box MinimumBoundingBox, ok bool) {
	hull := ConvexHull(p)
	if len(hull) < 3 {
		return MinimumBoundingBox{}, false
	}
	bestArea := math.Inf(1)
	for i := range hull {
		t := hull[(i+1)%len(hull)].Sub(hull[i])
		if nearZero(t.X) && nearZero(t.Y) {
			continue
		}
		dir := t.Normalized()
		perp := PerpCCW(dir)
		xMin, xMax := math.Inf(1), math.Inf(-1)
		yMin, yMax := math.Inf(1), math.Inf(-1)
		for _, v := range hull {
			x, y := v.Dot(dir), v.Dot(perp)
			xMin, xMax = min(xMin, x), max(xMax, x)
			yMin, yMax = min(yMin, y), max(yMax, y)
		}
		w, h := xMax-xMin, yMax-yMin
		if area := w * h; area < bestArea {
			bestArea = area
			angle := math.Atan2(dir.Y, dir.X)
			box = MinimumBoundingBox{
				Angle: gmath.Rad(angle),
				Size:  Vec2{X: w, Y: h},
			}
			switch {
			case math.Abs(w-h) <= Zeroish:
				box.SmallestDirection = dir
			case w < h:
				box.SmallestDirection = dir
			default:
				box.SmallestDirection = perp
			}
		}
	}
	return box, !math.IsInf(bestArea, 1)
}
