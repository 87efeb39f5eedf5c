package alpenglow

// FillRule selects how a RenderPath's subpaths resolve overlapping winding
// numbers into a boolean inside/outside test.
type FillRule int

const (
	// FillRuleNonZero treats a point inside the path if its winding number
	// across all subpaths is non-zero.
	FillRuleNonZero FillRule = iota
	// FillRuleEvenOdd treats a point inside the path if its winding number
	// is odd.
	FillRuleEvenOdd
)

// RenderPath is one input shape to Pipeline.Rasterize: a fill rule plus a
// set of subpaths, each an implicitly-closed polygon (the arrangement
// builder adds the closing edge itself; callers must not repeat the first
// point as the last). Every vertex coordinate must be finite and fit the
// pipeline's grid-snap precision budget (see WithGridBits).
type RenderPath struct {
	FillRule FillRule
	Subpaths [][]Point
}

// Bounds returns the axis-aligned bounding box of every vertex in every
// subpath. Returns the zero Rect if the path has no vertices.
func (p RenderPath) Bounds() (minX, minY, maxX, maxY float64) {
	first := true
	for _, sp := range p.Subpaths {
		for _, v := range sp {
			if first {
				minX, maxX = v.X, v.X
				minY, maxY = v.Y, v.Y
				first = false
				continue
			}
			minX, maxX = min(minX, v.X), max(maxX, v.X)
			minY, maxY = min(minY, v.Y), max(maxY, v.Y)
		}
	}
	return
}
