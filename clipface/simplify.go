package clipface

import (
	"math"

	"github.com/gogpu/alpenglow/program"
)

// ClipSimplifier compacts the point stream a clip operation produces:
// adjacent clip cuts often leave runs of nearly-duplicate or collinear
// points that add no area and only slow down every later analytic integral.
type ClipSimplifier struct {
	// Epsilon is the distance below which two consecutive points are
	// treated as duplicates, and the cross-product magnitude below which
	// three consecutive points are treated as collinear. Zero means exact
	// equality / exact collinearity only.
	Epsilon float64
}

// Simplify returns pts with consecutive duplicates dropped, runs of three
// collinear points folded to their endpoints, and the check repeated at the
// loop closure (pts[last], pts[0], pts[1]) until a full pass makes no
// change.
func (s ClipSimplifier) Simplify(pts []program.Vector2) []program.Vector2 {
	cur := append([]program.Vector2(nil), pts...)
	for {
		next := s.pass(cur)
		if len(next) == len(cur) && samePoints(next, cur) {
			return next
		}
		cur = next
		if len(cur) < 3 {
			return cur
		}
	}
}

func (s ClipSimplifier) pass(pts []program.Vector2) []program.Vector2 {
	n := len(pts)
	if n < 2 {
		return pts
	}
	deduped := make([]program.Vector2, 0, n)
	for i, p := range pts {
		if i == 0 || !s.nearEqual(p, deduped[len(deduped)-1]) {
			deduped = append(deduped, p)
		}
	}
	if len(deduped) > 1 && s.nearEqual(deduped[0], deduped[len(deduped)-1]) {
		deduped = deduped[:len(deduped)-1]
	}
	if len(deduped) < 3 {
		return deduped
	}

	out := make([]program.Vector2, 0, len(deduped))
	n = len(deduped)
	for i := 0; i < n; i++ {
		prev := deduped[(i-1+n)%n]
		cur := deduped[i]
		next := deduped[(i+1)%n]
		if s.collinear(prev, cur, next) {
			continue // cur adds no area between prev and next, drop it
		}
		out = append(out, cur)
	}
	if len(out) == 0 {
		return deduped
	}
	return out
}

func (s ClipSimplifier) nearEqual(a, b program.Vector2) bool {
	return math.Hypot(a.X-b.X, a.Y-b.Y) <= s.Epsilon
}

// collinear reports whether cur lies on the segment prev->next, within the
// simplifier's epsilon. Axis-aligned triples (the common case after a
// binaryXClip/binaryYClip cut) are caught exactly since the cross product
// is then exactly zero in floating point.
func (s ClipSimplifier) collinear(prev, cur, next program.Vector2) bool {
	cross := (cur.X-prev.X)*(next.Y-prev.Y) - (next.X-prev.X)*(cur.Y-prev.Y)
	if s.Epsilon == 0 {
		return cross == 0
	}
	return math.Abs(cross) <= s.Epsilon
}

func samePoints(a, b []program.Vector2) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
