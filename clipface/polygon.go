package clipface

import (
	"math"

	"github.com/gogpu/alpenglow/program"
)

// loop is a closed polygon: the first vertex is not repeated as the last.
// Winding direction carries sign: counter-clockwise loops contribute
// positive area, clockwise loops (holes) contribute negative area, so a
// face's total signed area is simply the sum over all its loops.
type loop []program.Vector2

// signedArea returns twice zero for fewer than 3 vertices, else the
// Shoelace-formula signed area (positive if l winds counter-clockwise).
func (l loop) signedArea() float64 {
	if len(l) < 3 {
		return 0
	}
	sum := 0.0
	for i := range l {
		j := (i + 1) % len(l)
		sum += l[i].X*l[j].Y - l[j].X*l[i].Y
	}
	return sum / 2
}

// firstMoment returns the unnormalized (Mx, My) first-moment sums used by
// the standard polygon centroid formula: centroid = moment / (6*area).
func (l loop) firstMoment() (mx, my float64) {
	for i := range l {
		j := (i + 1) % len(l)
		cross := l[i].X*l[j].Y - l[j].X*l[i].Y
		mx += (l[i].X + l[j].X) * cross
		my += (l[i].Y + l[j].Y) * cross
	}
	return
}

func (l loop) extendBounds(r *program.Rect, has *bool) {
	for _, p := range l {
		if !*has {
			r.MinX, r.MaxX = p.X, p.X
			r.MinY, r.MaxY = p.Y, p.Y
			*has = true
			continue
		}
		r.MinX = math.Min(r.MinX, p.X)
		r.MaxX = math.Max(r.MaxX, p.X)
		r.MinY = math.Min(r.MinY, p.Y)
		r.MaxY = math.Max(r.MaxY, p.Y)
	}
}

// faceGeometry is the shared representation behind PolygonalFace and
// EdgedFace: one outer loop (empty if the face is entirely holes, which
// cannot happen for a valid arrangement face but is tolerated) plus zero or
// more hole loops wound opposite to the outer loop.
type faceGeometry struct {
	Outer loop
	Holes []loop
}

func (g faceGeometry) loops() []loop {
	all := make([]loop, 0, 1+len(g.Holes))
	if len(g.Outer) > 0 {
		all = append(all, g.Outer)
	}
	all = append(all, g.Holes...)
	return all
}

// Area implements program.Face via the signed-area sum over every loop.
func (g faceGeometry) Area() float64 {
	area := 0.0
	for _, l := range g.loops() {
		area += l.signedArea()
	}
	return math.Abs(area)
}

// Centroid implements program.Face via the standard polygon centroid line
// integral, accumulated across every loop (so holes correctly subtract
// their region's contribution).
func (g faceGeometry) Centroid() program.Vector2 {
	var area, mx, my float64
	for _, l := range g.loops() {
		area += l.signedArea()
		lmx, lmy := l.firstMoment()
		mx += lmx
		my += lmy
	}
	if area == 0 {
		return program.Vector2{}
	}
	return program.Vector2{X: mx / (6 * area), Y: my / (6 * area)}
}

// Bounds implements program.Face as the AABB of every vertex in the outer
// loop and the hole loops.
func (g faceGeometry) Bounds() program.Rect {
	var r program.Rect
	has := false
	g.Outer.extendBounds(&r, &has)
	for _, h := range g.Holes {
		h.extendBounds(&r, &has)
	}
	return r
}

// AverageDistanceTransformedToOrigin approximates the area-weighted average
// of |T(p)| over the face by fanning each loop into triangles from the
// face's own centroid and sampling each triangle once, at its own centroid
// (a 1-point rule per triangle). |T(p)| has no polynomial
// antiderivative, so this is a best-effort estimate used only by
// AccuracyAccurate radial-gradient evaluation; AccuracyFast callers use the
// cheap single-point centroid distance instead (see program/nodes.go).
func (g faceGeometry) AverageDistanceTransformedToOrigin(t program.Matrix) float64 {
	totalArea := g.Area()
	if totalArea == 0 {
		c := t.TransformPoint(g.Centroid())
		return math.Hypot(c.X, c.Y)
	}
	centroid := g.Centroid()
	var weighted, areaSum float64
	for _, l := range g.loops() {
		if len(l) < 3 {
			continue
		}
		for i := range l {
			j := (i + 1) % len(l)
			tri := [3]program.Vector2{centroid, l[i], l[j]}
			triArea := math.Abs(triangleArea(tri[0], tri[1], tri[2]))
			if triArea == 0 {
				continue
			}
			sample := program.Vector2{
				X: (tri[0].X + tri[1].X + tri[2].X) / 3,
				Y: (tri[0].Y + tri[1].Y + tri[2].Y) / 3,
			}
			p := t.TransformPoint(sample)
			weighted += triArea * math.Hypot(p.X, p.Y)
			areaSum += triArea
		}
	}
	if areaSum == 0 {
		c := t.TransformPoint(centroid)
		return math.Hypot(c.X, c.Y)
	}
	return weighted / areaSum
}

func triangleArea(a, b, c program.Vector2) float64 {
	return ((b.X-a.X)*(c.Y-a.Y) - (c.X-a.X)*(b.Y-a.Y)) / 2
}

// PolygonalFace is the direct output of the arrangement's face/winding
// engine: an outer boundary plus its directly-nested holes, both given as
// float64 vertex loops (already projected from the exact-rational
// arrangement, which is only needed for topology, not for the analytic
// integrals below).
type PolygonalFace struct {
	geom faceGeometry
}

// NewPolygonalFace builds a PolygonalFace from an outer loop and its holes.
func NewPolygonalFace(outer []program.Vector2, holes [][]program.Vector2) PolygonalFace {
	g := faceGeometry{Outer: append(loop(nil), outer...)}
	for _, h := range holes {
		g.Holes = append(g.Holes, append(loop(nil), h...))
	}
	return PolygonalFace{geom: g}
}

func (f PolygonalFace) Area() float64         { return f.geom.Area() }
func (f PolygonalFace) Centroid() program.Vector2 { return f.geom.Centroid() }
func (f PolygonalFace) Bounds() program.Rect  { return f.geom.Bounds() }
func (f PolygonalFace) AverageDistanceTransformedToOrigin(t program.Matrix) float64 {
	return f.geom.AverageDistanceTransformedToOrigin(t)
}

// EdgedFace is the result of clipping a face against a half-plane, a
// circle, or a stripe of parallel lines: structurally identical to
// PolygonalFace, but kept as a distinct type so the tile/bin rasterizer
// passes can tell "a face straight from the arrangement" from "a face
// already cut down to a tile or bin" at the type level.
type EdgedFace struct {
	geom faceGeometry
}

func (f EdgedFace) Area() float64         { return f.geom.Area() }
func (f EdgedFace) Centroid() program.Vector2 { return f.geom.Centroid() }
func (f EdgedFace) Bounds() program.Rect  { return f.geom.Bounds() }
func (f EdgedFace) AverageDistanceTransformedToOrigin(t program.Matrix) float64 {
	return f.geom.AverageDistanceTransformedToOrigin(t)
}

// IsFullArea reports whether f has no holes and its area equals the given
// rectangle's area (to a relative tolerance of 1e-9); the loop's vertices
// are not compared with the rectangle's corners. The coarse pass records
// the result as CoarseRenderableFace.FullArea.
func (f EdgedFace) IsFullArea(bounds program.Rect) bool {
	if len(f.geom.Holes) != 0 {
		return false
	}
	area := f.geom.Area()
	want := (bounds.MaxX - bounds.MinX) * (bounds.MaxY - bounds.MinY)
	return math.Abs(area-want) < 1e-9*math.Max(1, want)
}
