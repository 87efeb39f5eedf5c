package outraster

import (
	"math"

	"github.com/gogpu/alpenglow/program"
)

// srgbOETFBreakpoint is the precise linear-light breakpoint below which the
// sRGB transfer function is the linear segment, per §6.4. The more commonly
// quoted 0.0031308 is itself a rounding of this value.
const srgbOETFBreakpoint = 0.00313066844250063

// srgbEOTFBreakpoint is the breakpoint on the encoded (nonlinear) side, the
// usual constant 0.0031308*12.92; it lies slightly above
// srgbOETFBreakpoint*12.92 (about 0.0404482).
const srgbEOTFBreakpoint = 0.040449936

// linearToSRGB applies the sRGB OETF (linear -> encoded) to one channel.
func linearToSRGB(c float64) float64 {
	if c <= 0 {
		return 0
	}
	if c <= srgbOETFBreakpoint {
		return c * 12.92
	}
	return 1.055*math.Pow(c, 1/2.4) - 0.055
}

// srgbToLinear applies the sRGB EOTF (encoded -> linear) to one channel.
func srgbToLinear(c float64) float64 {
	if c <= 0 {
		return 0
	}
	if c <= srgbEOTFBreakpoint {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

// linearSRGBToLinearDisplayP3 and its inverse are the fixed 3x3 matrices
// §6.4 requires every implementation reproduce bit-identically (the
// standard Bradford-adapted sRGB<->Display-P3 primaries conversion; D65
// white point preserved, so no chromatic adaptation term is needed).
var linearSRGBToLinearDisplayP3 = [3][3]float64{
	{0.8224621, 0.1775380, 0.0000000},
	{0.0331941, 0.9668058, 0.0000000},
	{0.0170827, 0.0723974, 0.9105199},
}

var linearDisplayP3ToLinearSRGB = [3][3]float64{
	{1.2249401, -0.2249404, 0.0000000},
	{-0.0420569, 1.0420571, 0.0000000},
	{-0.0196376, -0.0786361, 1.0982735},
}

func applyMatrix3(m [3][3]float64, r, g, b float64) (float64, float64, float64) {
	return m[0][0]*r + m[0][1]*g + m[0][2]*b,
		m[1][0]*r + m[1][1]*g + m[1][2]*b,
		m[2][0]*r + m[2][1]*g + m[2][2]*b
}

// linearSRGBToLMS/lmsToOklab and their inverses are Björn Ottosson's Oklab
// construction: a cone-response matrix, a cube-root (root-mean) nonlinearity,
// and a second matrix producing perceptually-uniform L/a/b axes.
var linearSRGBToLMS = [3][3]float64{
	{0.4122214708, 0.5363325363, 0.0514459929},
	{0.2119034982, 0.6806995451, 0.1073969566},
	{0.0883024619, 0.2817188376, 0.6299787005},
}

var lmsToOklab = [3][3]float64{
	{0.2104542553, 0.7936177850, -0.0040720468},
	{1.9779984951, -2.4285922050, 0.4505937099},
	{0.0259040371, 0.7827717662, -0.8086757660},
}

var oklabToLMS = [3][3]float64{
	{1, 0.3963377774, 0.2158037573},
	{1, -0.1055613458, -0.0638541728},
	{1, -0.0894841775, -1.2914855480},
}

var lmsToLinearSRGB = [3][3]float64{
	{4.0767416621, -3.3077115913, 0.2309699292},
	{-1.2684380046, 2.6097574011, -0.3413193965},
	{-0.0041960863, -0.7034186147, 1.7076147010},
}

// linearSRGBToOklab converts linear sRGB to Oklab, packed as (L,a,b) into a
// Vec4's (R,G,B) channels (alpha passes through unchanged).
func linearSRGBToOklab(c program.Vec4) program.Vec4 {
	l, m, s := applyMatrix3(linearSRGBToLMS, c.R, c.G, c.B)
	l, m, s = math.Cbrt(math.Max(l, 0)), math.Cbrt(math.Max(m, 0)), math.Cbrt(math.Max(s, 0))
	bigL, a, b := applyMatrix3(lmsToOklab, l, m, s)
	return program.Vec4{R: bigL, G: a, B: b, A: c.A}
}

// oklabToLinearSRGB is linearSRGBToOklab's inverse.
func oklabToLinearSRGB(c program.Vec4) program.Vec4 {
	l, m, s := applyMatrix3(oklabToLMS, c.R, c.G, c.B)
	l, m, s = l*l*l, m*m*m, s*s*s
	r, g, b := applyMatrix3(lmsToLinearSRGB, l, m, s)
	return program.Vec4{R: r, G: g, B: b, A: c.A}
}

// DefaultColorSpaceConverter implements program.ColorSpaceConverter with
// six fixed conversions (sRGB, Display P3 and Oklab to and from linear
// sRGB). It carries no state and is safe
// for concurrent use.
type DefaultColorSpaceConverter struct{}

// Convert implements program.ColorSpaceConverter.
func (DefaultColorSpaceConverter) Convert(kind program.ColorSpaceKind, c program.Vec4) program.Vec4 {
	switch kind {
	case program.SRGBToLinearSRGB:
		return program.Vec4{R: srgbToLinear(c.R), G: srgbToLinear(c.G), B: srgbToLinear(c.B), A: c.A}
	case program.LinearSRGBToSRGB:
		return program.Vec4{R: linearToSRGB(c.R), G: linearToSRGB(c.G), B: linearToSRGB(c.B), A: c.A}
	case program.LinearSRGBToDisplayP3:
		r, g, b := applyMatrix3(linearSRGBToLinearDisplayP3, c.R, c.G, c.B)
		return program.Vec4{R: r, G: g, B: b, A: c.A}
	case program.DisplayP3ToLinearSRGB:
		r, g, b := applyMatrix3(linearDisplayP3ToLinearSRGB, c.R, c.G, c.B)
		return program.Vec4{R: r, G: g, B: b, A: c.A}
	case program.LinearSRGBToOklab:
		return linearSRGBToOklab(c)
	case program.OklabToLinearSRGB:
		return oklabToLinearSRGB(c)
	default:
		return c
	}
}
