package alpenglow

// ColorSpace names the output color space of a rasterized frame, per the
// CombinedRaster construction options in spec §6.5.
type ColorSpace int

const (
	// ColorSpaceSRGB is the standard sRGB color space.
	ColorSpaceSRGB ColorSpace = iota
	// ColorSpaceDisplayP3 is the wider-gamut Display P3 color space.
	ColorSpaceDisplayP3
)

// Option configures a Pipeline during creation.
// Use functional options to customize pipeline behavior without
// changing NewPipeline's signature as new knobs are added.
//
// Example:
//
//	p := alpenglow.NewPipeline(alpenglow.WithColorSpace(alpenglow.ColorSpaceDisplayP3))
type Option func(*pipelineOptions)

// pipelineOptions holds optional configuration for Pipeline creation.
type pipelineOptions struct {
	colorSpace     ColorSpace
	showOutOfGamut bool
	workgroupSize  int
	grainSize      int
	gridBits       uint
	executor       Executor
	transform      Matrix
}

// defaultOptions returns the default pipeline options.
func defaultOptions() pipelineOptions {
	return pipelineOptions{
		colorSpace:    ColorSpaceSRGB,
		workgroupSize: 256,
		grainSize:     4,
		gridBits:      20,
		transform:     Identity(),
	}
}

// WithColorSpace sets the output color space.
func WithColorSpace(cs ColorSpace) Option {
	return func(o *pipelineOptions) {
		o.colorSpace = cs
	}
}

// WithShowOutOfGamut records whether colors that fall outside the
// destination gamut after conversion are to be visualized. Rasterize does
// not read this setting.
func WithShowOutOfGamut(show bool) Option {
	return func(o *pipelineOptions) {
		o.showOutOfGamut = show
	}
}

// WithWorkgroupSize overrides the parallel-primitive workgroup size stored
// in the pipeline options. Defaults to 256, matching the teacher's
// velloWGSize convention. Rasterize does not read this setting.
func WithWorkgroupSize(n int) Option {
	return func(o *pipelineOptions) {
		if n > 0 {
			o.workgroupSize = n
		}
	}
}

// WithGrainSize overrides the number of elements each parallel-primitive
// thread processes per dispatch (the coalesced-raked-loop grain). Rasterize
// does not read this setting.
func WithGrainSize(n int) Option {
	return func(o *pipelineOptions) {
		if n > 0 {
			o.grainSize = n
		}
	}
}

// WithGridBits overrides the integer-grid snap precision (default 20, i.e.
// a 2^20 grid per §4.B). Lowering it trades arrangement precision for a
// smaller coordinate range.
func WithGridBits(bits uint) Option {
	return func(o *pipelineOptions) {
		if bits > 0 {
			o.gridBits = bits
		}
	}
}

// WithExecutor overrides the device-tier dispatch executor used by the
// parallel primitives. Defaults to a goroutine-backed executor; tests
// typically pass a cooperative randomized executor instead.
func WithExecutor(e Executor) Option {
	return func(o *pipelineOptions) {
		if e != nil {
			o.executor = e
		}
	}
}

// WithTransform applies m to every path's points before arrangement and to
// prog's tree before evaluation (so gradients, images, and blend ramps move
// with the geometry they color), letting a caller render into a scaled or
// rotated coordinate system without pre-transforming RenderPath points
// itself. Defaults to Identity.
func WithTransform(m Matrix) Option {
	return func(o *pipelineOptions) {
		o.transform = m
	}
}
