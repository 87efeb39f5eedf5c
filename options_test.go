package alpenglow

import "testing"

func TestDefaultOptions(t *testing.T) {
	o := defaultOptions()
	if o.colorSpace != ColorSpaceSRGB {
		t.Errorf("colorSpace = %v, want ColorSpaceSRGB", o.colorSpace)
	}
	if o.showOutOfGamut {
		t.Error("showOutOfGamut = true, want false")
	}
	if o.workgroupSize != 256 {
		t.Errorf("workgroupSize = %d, want 256", o.workgroupSize)
	}
	if o.grainSize != 4 {
		t.Errorf("grainSize = %d, want 4", o.grainSize)
	}
	if o.gridBits != 20 {
		t.Errorf("gridBits = %d, want 20", o.gridBits)
	}
	if o.executor != nil {
		t.Error("executor should be nil by default (Pipeline picks a GoroutineExecutor)")
	}
	if o.transform != Identity() {
		t.Errorf("transform = %+v, want Identity", o.transform)
	}
}

func applyOptions(opts ...Option) pipelineOptions {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func TestWithColorSpace(t *testing.T) {
	o := applyOptions(WithColorSpace(ColorSpaceDisplayP3))
	if o.colorSpace != ColorSpaceDisplayP3 {
		t.Errorf("colorSpace = %v, want ColorSpaceDisplayP3", o.colorSpace)
	}
}

func TestWithShowOutOfGamut(t *testing.T) {
	o := applyOptions(WithShowOutOfGamut(true))
	if !o.showOutOfGamut {
		t.Error("showOutOfGamut = false, want true")
	}
}

func TestWithWorkgroupSize(t *testing.T) {
	o := applyOptions(WithWorkgroupSize(64))
	if o.workgroupSize != 64 {
		t.Errorf("workgroupSize = %d, want 64", o.workgroupSize)
	}
}

func TestWithWorkgroupSizeIgnoresNonPositive(t *testing.T) {
	o := applyOptions(WithWorkgroupSize(0), WithWorkgroupSize(-5))
	if o.workgroupSize != 256 {
		t.Errorf("workgroupSize = %d, want default 256 (non-positive values ignored)", o.workgroupSize)
	}
}

func TestWithGrainSize(t *testing.T) {
	o := applyOptions(WithGrainSize(8))
	if o.grainSize != 8 {
		t.Errorf("grainSize = %d, want 8", o.grainSize)
	}
}

func TestWithGridBits(t *testing.T) {
	o := applyOptions(WithGridBits(16))
	if o.gridBits != 16 {
		t.Errorf("gridBits = %d, want 16", o.gridBits)
	}
}

func TestWithGridBitsIgnoresZero(t *testing.T) {
	o := applyOptions(WithGridBits(0))
	if o.gridBits != 20 {
		t.Errorf("gridBits = %d, want default 20 (zero ignored)", o.gridBits)
	}
}

type stubExecutor struct{}

func (stubExecutor) Dispatch(numWorkgroups, workgroupSize int, kernel func(tc *ThreadContext)) {}

func TestWithExecutor(t *testing.T) {
	exec := stubExecutor{}
	o := applyOptions(WithExecutor(exec))
	if o.executor != exec {
		t.Error("executor is not the injected stub")
	}
}

func TestWithTransform(t *testing.T) {
	m := Translate(3, 4)
	o := applyOptions(WithTransform(m))
	if o.transform != m {
		t.Errorf("transform = %+v, want %+v", o.transform, m)
	}
}

func TestWithExecutorIgnoresNil(t *testing.T) {
	o := applyOptions(WithExecutor(nil))
	if o.executor != nil {
		t.Error("executor should remain nil when WithExecutor(nil) is passed")
	}
}

func TestMultipleOptionsCompose(t *testing.T) {
	o := applyOptions(
		WithColorSpace(ColorSpaceDisplayP3),
		WithShowOutOfGamut(true),
		WithWorkgroupSize(128),
		WithGrainSize(2),
		WithGridBits(18),
	)
	if o.colorSpace != ColorSpaceDisplayP3 || !o.showOutOfGamut ||
		o.workgroupSize != 128 || o.grainSize != 2 || o.gridBits != 18 {
		t.Errorf("composed options = %+v, want all five overrides applied", o)
	}
}
