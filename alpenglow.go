package alpenglow

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"

	"github.com/gogpu/alpenglow/arrange"
	"github.com/gogpu/alpenglow/clipface"
	"github.com/gogpu/alpenglow/outraster"
	"github.com/gogpu/alpenglow/parallel"
	"github.com/gogpu/alpenglow/program"
	"github.com/gogpu/alpenglow/tileraster"
)

// Executor and ThreadContext alias the parallel package's dispatch
// abstraction at the root, so callers configuring WithExecutor don't need
// to import package parallel directly.
type (
	Executor      = parallel.Executor
	ThreadContext = parallel.ThreadContext
)

// Pipeline holds the configuration of a Rasterize call: color space,
// out-of-gamut visualization, and the parallel-primitive tuning knobs.
// The zero value is not usable; construct with NewPipeline.
type Pipeline struct {
	opts pipelineOptions
}

// NewPipeline builds a Pipeline from the given options, defaulting to sRGB
// output and a goroutine-backed Executor.
func NewPipeline(opts ...Option) *Pipeline {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Pipeline{opts: o}
}

// CombinedRaster is the resolved output of Rasterize: a straight-alpha RGBA8
// image in the Pipeline's configured color space, per spec §6.5.
type CombinedRaster struct {
	Width, Height int
	// Pixels is RGBA8, row-major, 4 bytes per pixel, straight (not
	// premultiplied) alpha — the same convention outraster.Accumulator's
	// resolved output uses.
	Pixels []uint8
}

// Sample returns the straight-alpha color of the pixel at (x, y).
func (r *CombinedRaster) Sample(x, y int) (red, green, blue, alpha uint8) {
	i := (y*r.Width + x) * 4
	return r.Pixels[i], r.Pixels[i+1], r.Pixels[i+2], r.Pixels[i+3]
}

// ColorModel implements image.Image.
func (r *CombinedRaster) ColorModel() color.Model { return color.NRGBAModel }

// Bounds implements image.Image.
func (r *CombinedRaster) Bounds() image.Rectangle {
	return image.Rect(0, 0, r.Width, r.Height)
}

// At implements image.Image, so a CombinedRaster can be composited with
// golang.org/x/image/draw or consumed by anything accepting an
// image.Image without copying its pixel buffer.
func (r *CombinedRaster) At(x, y int) color.Color {
	red, green, blue, alpha := r.Sample(x, y)
	return color.NRGBA{R: red, G: green, B: blue, A: alpha}
}

// DrawInto composites the raster onto dst at sp using golang.org/x/image/draw's
// Porter-Duff over operator, letting a caller target any draw.Image
// (an *image.RGBA window backbuffer, an *image.NRGBA file-export buffer,
// and so on) without alpenglow needing to know about any particular one.
func (r *CombinedRaster) DrawInto(dst draw.Image, sp image.Point) {
	draw.Draw(dst, r.Bounds().Add(sp), r, image.Point{}, draw.Over)
}

// Rasterize runs the full pipeline over paths, coloring every resulting
// face with prog, into a width x height CombinedRaster:
//
//  1. arrange.Build turns every RenderPath's subpaths into the exact-rational
//     planar arrangement (grid snap, intersection, boundary trace, winding).
//  2. arrange.TagFaces merges adjacent faces whose per-path inside/outside
//     verdict (winding number interpreted through that path's FillRule)
//     agrees, yielding one TaggedFace per maximal region of constant
//     path membership.
//  3. Each TaggedFace's outer boundary (plus the tagged group's holes)
//     becomes a clipface.PolygonalFace, paired with a PathTest closure
//     so PathBooleanNode inside prog can ask "is this face inside path N".
//  4. tileraster.Rasterize clips every face against the tile/bin grid and
//     evaluates prog analytically over each surviving fragment.
//
// Returns a NumericRangeError if width or height is non-positive.
func (p *Pipeline) Rasterize(paths []RenderPath, prog program.Node, width, height int) (*CombinedRaster, error) {
	if width <= 0 || height <= 0 {
		return nil, NumericRangeError("raster dimensions must be positive, got %dx%d", width, height)
	}

	exec := p.opts.executor
	if exec == nil {
		exec = parallel.NewGoroutineExecutor()
	}

	transform := p.opts.transform
	gridBits := p.opts.gridBits
	accuracy := program.AccuracyAccurate
	if !transform.IsIdentity() {
		prog = prog.Transformed(toProgramMatrix(transform))
		if transform.IsTranslationOnly() {
			accuracy = program.AccuracyFast
		}
		if scale := transform.MaxScaleFactor(); scale > 1 {
			gridBits += uint(math.Ceil(math.Log2(scale)))
		}
	}

	arr := arrange.Build(toInputPaths(paths, transform), arrange.Options{GridBits: gridBits, Logger: Logger()})
	fillRules := make([]FillRule, len(paths))
	for i, rp := range paths {
		fillRules[i] = rp.FillRule
	}

	tagged := arrange.TagFaces(arr, arr.BoundaryFace, membershipTag(fillRules), membershipEqual)

	var faces []tileraster.InitialFace
	for _, tf := range tagged {
		membership, _ := tf.Tag.(insideSet)
		if !membership.any() {
			continue
		}
		pathTest := membership.test()
		for _, outer := range tf.Outers {
			holes := make([][]program.Vector2, len(tf.Holes))
			for i, h := range tf.Holes {
				holes[i] = boundaryLoop(arr, h)
			}
			face := clipface.NewPolygonalFace(boundaryLoop(arr, outer), holes)
			faces = append(faces, tileraster.InitialFace{
				Face:     face,
				Node:     prog,
				PathTest: pathTest,
				Accuracy: accuracy,
			})
		}
	}

	acc := tileraster.Rasterize(faces, width, height, exec, toOutrasterColorSpace(p.opts.colorSpace))
	return &CombinedRaster{Width: width, Height: height, Pixels: acc.Output()}, nil
}

func toInputPaths(paths []RenderPath, transform Matrix) []arrange.InputPath {
	var out []arrange.InputPath
	for pathID, rp := range paths {
		for _, sp := range rp.Subpaths {
			pts := make([]arrange.Vector2, len(sp))
			for i, v := range sp {
				tv := transform.TransformPoint(v)
				pts[i] = arrange.Vector2{X: tv.X, Y: tv.Y}
			}
			out = append(out, arrange.InputPath{PathID: pathID, Points: pts})
		}
	}
	return out
}

// toProgramMatrix remaps the root Matrix's row-major (A,B,C;D,E,F) fields
// onto program.Matrix's layout (x'=A*x+C*y+E, y'=B*x+D*y+F), the conversion
// Pipeline.Rasterize applies once per WithTransform rather than the tree
// depending on the root package's Matrix directly (which would cycle back
// through program, a dependency of this package).
func toProgramMatrix(m Matrix) program.Matrix {
	return program.Matrix{A: m.A, B: m.D, C: m.B, D: m.E, E: m.C, F: m.F}
}

func toOutrasterColorSpace(cs ColorSpace) outraster.ColorSpace {
	if cs == ColorSpaceDisplayP3 {
		return outraster.ColorSpaceDisplayP3
	}
	return outraster.ColorSpaceSRGB
}

// boundaryLoop projects a traced Boundary's half-edge chain into the
// float-space polygon clipface needs, taking each edge's start point in
// order (consecutive half-edges in a Boundary are already chained
// end-to-start by traceBoundaries).
func boundaryLoop(arr *arrange.Arrangement, b arrange.Boundary) []program.Vector2 {
	loop := make([]program.Vector2, len(b.EdgeIdxs))
	for i, eIdx := range b.EdgeIdxs {
		x, y := arr.Edges[eIdx].P0.ToFloat64()
		loop[i] = program.Vector2{X: x, Y: y}
	}
	return loop
}

// insideSet records, per path index, whether a face is inside that path
// under its FillRule — the FaceTag membershipTag attaches to every
// arrangement face so TagFaces can merge adjacent faces with identical
// path membership, and Rasterize can build each merged region's PathTest.
type insideSet []bool

func (s insideSet) any() bool {
	for _, v := range s {
		if v {
			return true
		}
	}
	return false
}

func (s insideSet) test() func(pathID int) bool {
	return func(pathID int) bool {
		if pathID < 0 || pathID >= len(s) {
			return false
		}
		return s[pathID]
	}
}

// membershipTag returns a GetFaceData that evaluates every path's FillRule
// against a face's winding map.
func membershipTag(fillRules []FillRule) arrange.GetFaceData {
	return func(w arrange.WindingMap) arrange.FaceTag {
		set := make(insideSet, len(fillRules))
		for pathID, rule := range fillRules {
			n := w[pathID]
			if rule == FillRuleEvenOdd {
				set[pathID] = n%2 != 0
			} else {
				set[pathID] = n != 0
			}
		}
		return set
	}
}

// membershipEqual reports whether two insideSet tags agree on every path,
// the IsFaceDataCompatible TagFaces uses to decide whether two adjacent
// faces belong in the same merged region.
func membershipEqual(a, b arrange.FaceTag) bool {
	sa, oka := a.(insideSet)
	sb, okb := b.(insideSet)
	if !oka || !okb || len(sa) != len(sb) {
		return false
	}
	for i := range sa {
		if sa[i] != sb[i] {
			return false
		}
	}
	return true
}
