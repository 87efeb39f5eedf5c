package outraster

import "github.com/gogpu/alpenglow/program"

// ColorSpace names the output color space an Accumulator resolves into.
// Duplicated from the root package's ColorSpace to avoid an import cycle
// (outraster is a dependency of the root package, not the reverse).
type ColorSpace int

const (
	ColorSpaceSRGB ColorSpace = iota
	ColorSpaceDisplayP3
)

// Accumulator is the f64x4 premultiplied-linear accumulation buffer of
// §4.I: the fine bin pass adds area-weighted partial coverage into it with
// AddClientPartialPixel, while fully-covered opaque bins bypass
// accumulation entirely via AddClientFullPixel/AddClientFullRegion, writing
// straight into the u8 output so the two write paths can coexist.
type Accumulator struct {
	width, height int
	colorSpace    ColorSpace
	converter     program.ColorSpaceConverter

	accum  []float64 // len = width*height*4, premultiplied linear sRGB
	output []uint8   // len = width*height*4, the resolved/direct-written image

	dirty bool // true if accum holds unresolved contributions
}

// NewAccumulator allocates a width x height accumulator resolving to cs.
func NewAccumulator(width, height int, cs ColorSpace) *Accumulator {
	return &Accumulator{
		width:      width,
		height:     height,
		colorSpace: cs,
		converter:  DefaultColorSpaceConverter{},
		accum:      make([]float64, width*height*4),
		output:     make([]uint8, width*height*4),
	}
}

func (a *Accumulator) inBounds(x, y int) bool {
	return x >= 0 && x < a.width && y >= 0 && y < a.height
}

// AddClientPartialPixel adds color's premultiplied-linear contribution at
// (x,y), weighted by whatever area/coverage weight the caller has already
// folded into color's alpha. Out-of-bounds coordinates are silently
// ignored, matching the teacher's Pixmap.SetPixel convention.
func (a *Accumulator) AddClientPartialPixel(color program.Vec4, x, y int) {
	if !a.inBounds(x, y) {
		return
	}
	i := (y*a.width + x) * 4
	a.accum[i+0] += color.R
	a.accum[i+1] += color.G
	a.accum[i+2] += color.B
	a.accum[i+3] += color.A
	a.dirty = true
}

// AddClientFullPixel writes color directly to the u8 output, bypassing
// accumulation entirely (the full-area-bin fast path in §4.F's fine pass).
// color is straight (non-premultiplied) in the accumulator's working linear
// space; it is converted to the output color space and encoded with the
// output OETF before the additive u8 write.
func (a *Accumulator) AddClientFullPixel(color program.Vec4, x, y int) {
	if !a.inBounds(x, y) {
		return
	}
	r, g, b, al := a.encode(color)
	i := (y*a.width + x) * 4
	a.output[i+0] = addU8(a.output[i+0], r)
	a.output[i+1] = addU8(a.output[i+1], g)
	a.output[i+2] = addU8(a.output[i+2], b)
	a.output[i+3] = addU8(a.output[i+3], al)
}

// AddClientFullRegion writes color to every pixel in [x0,x1)x[y0,y1),
// clamped to the accumulator's bounds.
func (a *Accumulator) AddClientFullRegion(color program.Vec4, x0, y0, x1, y1 int) {
	x0, y0 = max(x0, 0), max(y0, 0)
	x1, y1 = min(x1, a.width), min(y1, a.height)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			a.AddClientFullPixel(color, x, y)
		}
	}
}

// encode converts a straight linear color to this accumulator's output
// color space and applies its OETF, returning four u8 channel values
// (encodeU8 clamps each to [0,255]).
func (a *Accumulator) encode(c program.Vec4) (r, g, b, al uint8) {
	if a.colorSpace == ColorSpaceDisplayP3 {
		c = a.converter.Convert(program.LinearSRGBToDisplayP3, c)
	}
	return encodeU8(linearToSRGB(c.R)), encodeU8(linearToSRGB(c.G)), encodeU8(linearToSRGB(c.B)), encodeU8(c.A)
}

func encodeU8(c float64) uint8 {
	v := c * 255
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}

func addU8(existing, add uint8) uint8 {
	sum := int(existing) + int(add)
	if sum > 255 {
		return 255
	}
	return uint8(sum)
}

// Resolve unpremultiplies every accumulated pixel, applies the inverse OETF
// (linear -> sRGB or Display P3), and additively composes the result into
// the u8 output buffer, then clears the accumulation buffer to zero.
// Resolve is idempotent: calling it again before any further
// AddClientPartialPixel call returns the same output without redoing the
// conversion work.
func (a *Accumulator) Resolve() []uint8 {
	if !a.dirty {
		return a.output
	}
	for px := 0; px < a.width*a.height; px++ {
		i := px * 4
		alpha := a.accum[i+3]
		if alpha == 0 {
			continue
		}
		straight := program.Vec4{
			R: a.accum[i+0] / alpha,
			G: a.accum[i+1] / alpha,
			B: a.accum[i+2] / alpha,
			A: alpha,
		}
		r, g, b, al := a.encode(straight)
		a.output[i+0] = addU8(a.output[i+0], r)
		a.output[i+1] = addU8(a.output[i+1], g)
		a.output[i+2] = addU8(a.output[i+2], b)
		a.output[i+3] = addU8(a.output[i+3], al)
		a.accum[i+0], a.accum[i+1], a.accum[i+2], a.accum[i+3] = 0, 0, 0, 0
	}
	a.dirty = false
	return a.output
}

// Output returns the current u8 RGBA buffer without forcing a Resolve.
// Row stride is Width()*4 bytes.
func (a *Accumulator) Output() []uint8 { return a.output }

func (a *Accumulator) Width() int  { return a.width }
func (a *Accumulator) Height() int { return a.height }
