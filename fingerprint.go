package geom

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrDegeneratePolygon reports a polygon no meaningful fingerprint
// exists for: fewer than 3 points, or a zeroish-length edge. Unlike
// the soft defaults elsewhere in the kernel this is a real error;
// callers must validate geometry before fingerprinting it.
var ErrDegeneratePolygon = errors.New("degenerate polygon")

// Quantisation of the fingerprint token fields, chosen to absorb
// floating point noise in millimeter data: edge lengths to 0.01mm,
// turn angles to 0.1mrad.
const (
	keyLengthQuantum = 0.01
	keyTurnQuantum   = 1e-4
)

// keyToken is one (edge length, turn angle) fingerprint element,
// quantised to integers.
type keyToken struct {
	length, turn int64
}

func (t keyToken) less(o keyToken) bool {
	if t.length != o.length {
		return t.length < o.length
	}
	return t.turn < o.turn
}

// CanonicalPolygonKey produces a key string that is identical for any
// two boundary-ordered polygons related by rotation, translation,
// mirroring or choice of starting vertex, and differs (up to the
// quantisation above) otherwise. It is used to recognize structurally
// identical shapes regardless of how or where they were drawn.
//
// The key is built from per-vertex (edge length, turn angle) pairs,
// canonicalized with Booth's minimal-rotation algorithm over the
// forward and reversed traversals and their mirror images; the
// lexicographically smallest serialization wins.
func CanonicalPolygonKey(p Polygon2D) (string, error) {
	n := len(p)
	if n < 3 {
		return "", fmt.Errorf("%w: %d points", ErrDegeneratePolygon, n)
	}
	for i := range p {
		if p[i].DistanceTo(p[(i+1)%n]) <= Zeroish {
			return "", fmt.Errorf("%w: zeroish edge at point %d", ErrDegeneratePolygon, i)
		}
	}
	fwd := keyTokens(p)
	rev := keyTokens(p.Reversed())
	best := ""
	for _, cand := range [][]keyToken{fwd, negated(fwd), rev, negated(rev)} {
		s := serializeTokens(cand, minimalRotation(cand))
		if best == "" || s < best {
			best = s
		}
	}
	return best, nil
}

// keyTokens computes the quantised (edge length, turn angle) pair per
// vertex: the length of the edge leaving the vertex, and the signed
// turn from the edge arriving at it.
func keyTokens(p Polygon2D) []keyToken {
	n := len(p)
	out := make([]keyToken, n)
	for i := range p {
		in := p[i].Sub(p[(i+n-1)%n])
		egress := p[(i+1)%n].Sub(p[i])
		turn := math.Atan2(Cross(in, egress), in.Dot(egress))
		out[i] = keyToken{
			length: int64(math.Round(egress.Len() / keyLengthQuantum)),
			turn:   int64(math.Round(turn / keyTurnQuantum)),
		}
	}
	return out
}

// negated mirrors a token sequence by flipping every turn angle.
func negated(ts []keyToken) []keyToken {
	out := make([]keyToken, len(ts))
	for i, t := range ts {
		out[i] = keyToken{length: t.length, turn: -t.turn}
	}
	return out
}

// minimalRotation returns the start index of the lexicographically
// least cyclic rotation of the token sequence (Booth's algorithm,
// linear time).
func minimalRotation(ts []keyToken) int {
	n := len(ts)
	f := make([]int, 2*n)
	for i := range f {
		f[i] = -1
	}
	k := 0
	for j := 1; j < 2*n; j++ {
		tj := ts[j%n]
		i := f[j-k-1]
		for i != -1 && tj != ts[(k+i+1)%n] {
			if tj.less(ts[(k+i+1)%n]) {
				k = j - i - 1
			}
			i = f[i]
		}
		if tj != ts[(k+i+1)%n] {
			if tj.less(ts[(k+i+1)%n]) {
				k = j
			}
			f[j-k] = -1
		} else {
			f[j-k] = i + 1
		}
	}
	return k
}

// serializeTokens renders the token cycle starting from index k.
func serializeTokens(ts []keyToken, k int) string {
	var b strings.Builder
	n := len(ts)
	for i := 0; i < n; i++ {
		t := ts[(k+i)%n]
		if i > 0 {
			b.WriteByte(';')
		}
		b.WriteString(strconv.FormatInt(t.length, 10))
		b.WriteByte(':')
		b.WriteString(strconv.FormatInt(t.turn, 10))
	}
	return b.String()
}
