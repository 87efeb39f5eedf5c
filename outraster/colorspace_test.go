package outraster

import (
	"math"
	"testing"

	"github.com/gogpu/alpenglow/program"
)

func closeFloat(a, b, eps float64) bool { return math.Abs(a-b) < eps }

func TestLinearToSRGBRoundTrip(t *testing.T) {
	for _, c := range []float64{0, 0.001, 0.0031, 0.1, 0.5, 0.9, 1} {
		enc := linearToSRGB(c)
		back := srgbToLinear(enc)
		if !closeFloat(back, c, 1e-6) {
			t.Errorf("round trip for %v: encoded=%v decoded=%v", c, enc, back)
		}
	}
}

func TestLinearToSRGBKnownValues(t *testing.T) {
	if !closeFloat(linearToSRGB(0), 0, 1e-12) {
		t.Errorf("linearToSRGB(0) = %v, want 0", linearToSRGB(0))
	}
	if !closeFloat(linearToSRGB(1), 1, 1e-9) {
		t.Errorf("linearToSRGB(1) = %v, want 1", linearToSRGB(1))
	}
	// Mid-gray 0.5 linear should encode to roughly 0.735 sRGB.
	if got := linearToSRGB(0.5); got < 0.7 || got > 0.76 {
		t.Errorf("linearToSRGB(0.5) = %v, want ~0.735", got)
	}
}

func TestDefaultColorSpaceConverterInverseCancelOut(t *testing.T) {
	conv := DefaultColorSpaceConverter{}
	c := program.Vec4{R: 0.3, G: 0.5, B: 0.7, A: 1}
	p3 := conv.Convert(program.LinearSRGBToDisplayP3, c)
	back := conv.Convert(program.DisplayP3ToLinearSRGB, p3)
	if !closeFloat(back.R, c.R, 1e-6) || !closeFloat(back.G, c.G, 1e-6) || !closeFloat(back.B, c.B, 1e-6) {
		t.Errorf("DisplayP3 round trip = %+v, want %+v", back, c)
	}
}

func TestDefaultColorSpaceConverterSRGBRoundTrip(t *testing.T) {
	conv := DefaultColorSpaceConverter{}
	c := program.Vec4{R: 0.8, G: 0.2, B: 0.6, A: 1}
	enc := conv.Convert(program.LinearSRGBToSRGB, c)
	back := conv.Convert(program.SRGBToLinearSRGB, enc)
	if !closeFloat(back.R, c.R, 1e-6) || !closeFloat(back.G, c.G, 1e-6) || !closeFloat(back.B, c.B, 1e-6) {
		t.Errorf("sRGB round trip = %+v, want %+v", back, c)
	}
}

func TestDefaultColorSpaceConverterOklabRoundTrip(t *testing.T) {
	conv := DefaultColorSpaceConverter{}
	c := program.Vec4{R: 0.4, G: 0.2, B: 0.6, A: 1}
	lab := conv.Convert(program.LinearSRGBToOklab, c)
	back := conv.Convert(program.OklabToLinearSRGB, lab)
	if !closeFloat(back.R, c.R, 1e-5) || !closeFloat(back.G, c.G, 1e-5) || !closeFloat(back.B, c.B, 1e-5) {
		t.Errorf("Oklab round trip = %+v, want %+v", back, c)
	}
}

func TestLinearSRGBToOklabWhiteIsAchromatic(t *testing.T) {
	conv := DefaultColorSpaceConverter{}
	white := program.Vec4{R: 1, G: 1, B: 1, A: 1}
	lab := conv.Convert(program.LinearSRGBToOklab, white)
	if !closeFloat(lab.G, 0, 1e-4) || !closeFloat(lab.B, 0, 1e-4) {
		t.Errorf("Oklab(white) a/b = %v/%v, want ~0/~0", lab.G, lab.B)
	}
	if lab.R < 0.99 || lab.R > 1.01 {
		t.Errorf("Oklab(white) L = %v, want ~1", lab.R)
	}
}

func TestDisplayP3WidensPureSRGBRed(t *testing.T) {
	// Display P3's gamut is wider than sRGB's, so pure sRGB red lies inside
	// it at coordinates other than (1,0,0): the matrix's second row gives
	// it a green component of 0.0331941.
	conv := DefaultColorSpaceConverter{}
	red := program.Vec4{R: 1, G: 0, B: 0, A: 1}
	p3 := conv.Convert(program.LinearSRGBToDisplayP3, red)
	if closeFloat(p3.G, 0, 1e-9) {
		t.Error("expected LinearSRGBToDisplayP3 to introduce a nonzero green component for pure red")
	}
}
