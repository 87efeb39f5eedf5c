package clipface

import "github.com/gogpu/alpenglow/program"

// pendingClip is one deferred half-plane cut: EdgedClippedFace keeps the
// side of n·p <= v (or >= v, per keepMin) named by keepMin.
type pendingClip struct {
	n      program.Vector2
	v      float64
	keepMin bool
}

// EdgedClippedFace defers a chain of half-plane clips against a parent face
// instead of materializing a new EdgedFace at every cut: pass 1 of the
// rasterizer builds one EdgedClippedFace per (initialFace, tile) pair and
// only resolves it (computing the actual clipped loop) the first time its
// Area, Centroid, Bounds, or AverageDistanceTransformedToOrigin is asked
// for — the "full-area tile" fast path never needs to resolve at all, since
// IsFullArea is checked against the parent's own bounds first.
type EdgedClippedFace struct {
	parent  clippable
	clips   []pendingClip
	resolved *EdgedFace
}

// NewEdgedClippedFace wraps parent with no pending clips yet.
func NewEdgedClippedFace(parent clippable) *EdgedClippedFace {
	return &EdgedClippedFace{parent: parent}
}

// WithClip returns a new EdgedClippedFace with one more half-plane cut
// appended, keeping the n·p<=v side if keepMin else the n·p>=v side.
// Returns a fresh value; the receiver is left unresolved and unmodified.
func (f *EdgedClippedFace) WithClip(n program.Vector2, v float64, keepMin bool) *EdgedClippedFace {
	next := &EdgedClippedFace{parent: f.parent, clips: append(append([]pendingClip(nil), f.clips...), pendingClip{n: n, v: v, keepMin: keepMin})}
	return next
}

// resolve materializes the clip chain into a concrete EdgedFace, caching
// the result so repeated geometry queries don't repeat the work.
func (f *EdgedClippedFace) resolve() EdgedFace {
	if f.resolved != nil {
		return *f.resolved
	}
	if len(f.clips) == 0 {
		loops := f.parent.faceLoops()
		var g faceGeometry
		for i, l := range loops {
			if i == 0 {
				g.Outer = l
			} else {
				g.Holes = append(g.Holes, l)
			}
		}
		resolved := EdgedFace{geom: g}
		f.resolved = &resolved
		return resolved
	}
	var cur clippable = f.parent
	for _, c := range f.clips {
		lo, hi := binaryLineClip(cur, c.n, c.v, 0)
		if c.keepMin {
			cur = lo
		} else {
			cur = hi
		}
	}
	resolved := cur.(EdgedFace)
	f.resolved = &resolved
	return resolved
}

func (f *EdgedClippedFace) faceLoops() []loop { return f.resolve().faceLoops() }

func (f *EdgedClippedFace) Area() float64 { return f.resolve().Area() }

func (f *EdgedClippedFace) Centroid() program.Vector2 { return f.resolve().Centroid() }

func (f *EdgedClippedFace) Bounds() program.Rect { return f.resolve().Bounds() }

func (f *EdgedClippedFace) AverageDistanceTransformedToOrigin(t program.Matrix) float64 {
	return f.resolve().AverageDistanceTransformedToOrigin(t)
}

// IsFullAreaForBounds reports whether every pending clip is a no-op against
// bounds (i.e. the parent already lies entirely within bounds on that
// plane), letting pass 1 skip resolving entirely for interior tiles.
func (f *EdgedClippedFace) IsFullAreaForBounds(bounds program.Rect) bool {
	pb := f.parent.(interface{ Bounds() program.Rect })
	parentBounds := pb.Bounds()
	return parentBounds.MinX >= bounds.MinX && parentBounds.MaxX <= bounds.MaxX &&
		parentBounds.MinY >= bounds.MinY && parentBounds.MaxY <= bounds.MaxY
}
