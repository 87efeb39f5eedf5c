package clipface

import (
	"math"

	"github.com/gogpu/alpenglow/program"
)

// clippable is the common source type every clip operation accepts:
// PolygonalFace, EdgedFace, and EdgedClippedFace (via its resolved parent
// chain) all implement it.
type clippable interface {
	faceLoops() []loop
}

func (f PolygonalFace) faceLoops() []loop { return f.geom.loops() }
func (f EdgedFace) faceLoops() []loop     { return f.geom.loops() }

// halfPlane is n·p <= v (the "min" side); the "max" side is its negation.
type halfPlane struct {
	nx, ny, v float64
}

func (h halfPlane) insideMin(p program.Vector2) bool { return h.nx*p.X+h.ny*p.Y <= h.v }
func (h halfPlane) insideMax(p program.Vector2) bool { return h.nx*p.X+h.ny*p.Y >= h.v }

// clipLoopHalfPlane runs Sutherland-Hodgman on l, keeping points l for which
// inside(p) holds and inserting an exact intersection point at every edge
// that crosses the plane. Unlike the single-synthetic-corner "fake corner"
// shortcut the GPU tiled kernel uses (spec'd for a pipeline that cannot
// afford a real per-edge intersection), this CPU reference computes the
// honest intersection, which keeps the Green's-theorem area integral exact
// without needing a placeholder point at all.
func clipLoopHalfPlane(l loop, h halfPlane, inside func(halfPlane, program.Vector2) bool) loop {
	if len(l) == 0 {
		return nil
	}
	var out loop
	prev := l[len(l)-1]
	prevIn := inside(h, prev)
	for _, cur := range l {
		curIn := inside(h, cur)
		if curIn != prevIn {
			out = append(out, linePlaneIntersect(prev, cur, h))
		}
		if curIn {
			out = append(out, cur)
		}
		prev, prevIn = cur, curIn
	}
	return out
}

// reverseLoop returns l with its vertex order (and therefore winding
// direction) reversed.
func reverseLoop(l loop) loop {
	out := make(loop, len(l))
	for i, p := range l {
		out[len(l)-1-i] = p
	}
	return out
}

func linePlaneIntersect(a, b program.Vector2, h halfPlane) program.Vector2 {
	da := h.nx*a.X + h.ny*a.Y - h.v
	db := h.nx*b.X + h.ny*b.Y - h.v
	denom := da - db
	if denom == 0 {
		return a
	}
	t := da / denom
	return program.Vector2{X: a.X + t*(b.X-a.X), Y: a.Y + t*(b.Y-a.Y)}
}

func clipGeometryHalfPlane(loops []loop, h halfPlane, inside func(halfPlane, program.Vector2) bool) faceGeometry {
	var g faceGeometry
	for i, l := range loops {
		clipped := clipLoopHalfPlane(l, h, inside)
		if len(clipped) < 3 {
			continue
		}
		if i == 0 {
			g.Outer = clipped
		} else {
			g.Holes = append(g.Holes, clipped)
		}
	}
	return g
}

// binaryLineClip splits f against the half-plane n·p <= v, returning
// (minFace, maxFace). fakePerp is accepted for API compatibility with the
// GPU-binary encoding's single-corner degenerate case (an empty clip result
// represented as a zero-area point at fakePerp along n's perpendicular) but
// this implementation returns a plain empty EdgedFace instead, since Go
// callers can check Area() == 0 directly.
func binaryLineClip(f clippable, n program.Vector2, v float64, fakePerp float64) (minFace, maxFace EdgedFace) {
	h := halfPlane{nx: n.X, ny: n.Y, v: v}
	loops := f.faceLoops()
	minFace = EdgedFace{geom: clipGeometryHalfPlane(loops, h, halfPlane.insideMin)}
	maxFace = EdgedFace{geom: clipGeometryHalfPlane(loops, h, halfPlane.insideMax)}
	_ = fakePerp
	return
}

// binaryXClip splits f at the vertical line x == x, returning (minFace,
// maxFace) for the x<=x and x>=x halves.
func binaryXClip(f clippable, x float64, fakeY float64) (minFace, maxFace EdgedFace) {
	return binaryLineClip(f, program.Vector2{X: 1, Y: 0}, x, fakeY)
}

// binaryYClip splits f at the horizontal line y == y, the axis-aligned
// counterpart of binaryXClip, used together with it to clip against a
// rectangle's four sides.
func binaryYClip(f clippable, y float64, fakeX float64) (minFace, maxFace EdgedFace) {
	return binaryLineClip(f, program.Vector2{X: 0, Y: 1}, y, fakeX)
}

// stripeLineClip cuts f with k parallel lines n·p == values[i] (values must
// be sorted ascending) in one pass, returning k+1 faces ordered from the
// n·p-minimal stripe to the n·p-maximal one.
func stripeLineClip(f clippable, n program.Vector2, values []float64, fakePerp float64) []EdgedFace {
	if len(values) == 0 {
		loops := f.faceLoops()
		var g faceGeometry
		for i, l := range loops {
			if i == 0 {
				g.Outer = l
			} else {
				g.Holes = append(g.Holes, l)
			}
		}
		return []EdgedFace{{geom: g}}
	}
	out := make([]EdgedFace, 0, len(values)+1)
	remaining := clippable(f)
	for _, v := range values {
		lo, hi := binaryLineClip(remaining, n, v, fakePerp)
		out = append(out, lo)
		remaining = hi
	}
	out = append(out, remaining.(EdgedFace))
	return out
}

// ClipToBounds clips f against an axis-aligned rectangle, the operation the
// tile and bin rasterizer passes actually need: four successive
// binaryXClip/binaryYClip half-plane cuts keeping the interior each time.
func ClipToBounds(f clippable, bounds program.Rect) EdgedFace {
	_, right := binaryXClip(f, bounds.MinX, bounds.MinY)
	left, _ := binaryXClip(right, bounds.MaxX, bounds.MinY)
	_, top := binaryYClip(left, bounds.MinY, bounds.MinX)
	bottom, _ := binaryYClip(top, bounds.MaxY, bounds.MinX)
	return bottom
}

// binaryCircularClip approximates the circle of radius r around c by a
// regular polygon with enough sides that each subtends an angle no greater
// than maxAngleSplit, then returns (insideFace, outsideFace). insideFace is
// the exact convex-clip intersection of f with the approximating polygon
// (Sutherland-Hodgman against each of its edges in turn, valid because the
// circle approximation is convex). outsideFace is represented as f's own
// loops with insideFace's outer loop appended as an additional hole: this
// is exact whenever insideFace lies entirely within f (the case that
// matters for a radial-gradient clip against a tile/bin, since the circle
// in question is the gradient's own bounding circle clipped to the
// rasterizer's tile grid) but only approximate if the circle boundary
// itself crosses f's boundary in a way that produces disjoint pieces — a
// limitation documented here rather than solved with full polygon-polygon
// (Weiler-Atherton) clipping, which this package does not implement.
func binaryCircularClip(f clippable, c program.Vector2, r float64, maxAngleSplit float64) (insideFace, outsideFace EdgedFace) {
	if maxAngleSplit <= 0 {
		maxAngleSplit = math.Pi / 16
	}
	n := int(math.Ceil(2 * math.Pi / maxAngleSplit))
	if n < 8 {
		n = 8
	}
	poly := make(loop, n)
	for i := 0; i < n; i++ {
		theta := 2 * math.Pi * float64(i) / float64(n)
		poly[i] = program.Vector2{X: c.X + r*math.Cos(theta), Y: c.Y + r*math.Sin(theta)}
	}

	loops := f.faceLoops()
	var clipped []loop
	for _, l := range loops {
		cur := l
		for i := 0; i < n; i++ {
			j := (i + 1) % n
			edge := program.Vector2{X: poly[j].Y - poly[i].Y, Y: -(poly[j].X - poly[i].X)}
			v := edge.X*poly[i].X + edge.Y*poly[i].Y
			h := halfPlane{nx: edge.X, ny: edge.Y, v: v}
			cur = clipLoopHalfPlane(cur, h, halfPlane.insideMin)
			if len(cur) == 0 {
				break
			}
		}
		if len(cur) >= 3 {
			clipped = append(clipped, cur)
		}
	}
	var insideGeom faceGeometry
	for i, l := range clipped {
		if i == 0 {
			insideGeom.Outer = l
		} else {
			insideGeom.Holes = append(insideGeom.Holes, l)
		}
	}
	insideFace = EdgedFace{geom: insideGeom}

	var outsideGeom faceGeometry
	for i, l := range loops {
		if i == 0 {
			outsideGeom.Outer = l
		} else {
			outsideGeom.Holes = append(outsideGeom.Holes, l)
		}
	}
	if len(insideGeom.Outer) > 0 {
		outsideGeom.Holes = append(outsideGeom.Holes, reverseLoop(insideGeom.Outer))
	}
	outsideFace = EdgedFace{geom: outsideGeom}
	return
}
