package alpenglow

import (
	"errors"
	"fmt"
)

// Sentinel errors identifying the four failure categories a Pipeline can
// report. Use errors.Is against these, not type assertions, since every
// constructor below wraps one of them with %w.
var (
	// ErrInvariantViolation marks a failure of an internal consistency
	// invariant (e.g. a half-edge whose reverse doesn't point back to it).
	// Always a bug in this module, never a caller input problem.
	ErrInvariantViolation = errors.New("alpenglow: invariant violation")

	// ErrNumericRange marks an input value outside the range the exact
	// arithmetic in this module can represent (e.g. a vertex coordinate
	// that doesn't fit the configured grid-snap precision).
	ErrNumericRange = errors.New("alpenglow: numeric range exceeded")

	// ErrUnsupportedCapability marks a RenderEvaluationContext capability a
	// node declared it needs (face, area, centroid) that the caller didn't
	// supply.
	ErrUnsupportedCapability = errors.New("alpenglow: unsupported capability")

	// ErrResourceExhausted marks a fixed-size buffer (tile/bin/edge table)
	// running out of room. It is the one error category a caller can retry
	// past, with a larger buffer or coarser tiling.
	ErrResourceExhausted = errors.New("alpenglow: resource exhausted")
)

// InvariantError wraps ErrInvariantViolation with the specific condition
// that failed, e.g. "half-edge 12 reverse mismatch".
func InvariantError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvariantViolation, fmt.Sprintf(format, args...))
}

// NumericRangeError wraps ErrNumericRange with the offending value.
func NumericRangeError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrNumericRange, fmt.Sprintf(format, args...))
}

// UnsupportedCapabilityError wraps ErrUnsupportedCapability with the name of
// the missing capability (e.g. "face", "area", "centroid").
func UnsupportedCapabilityError(capability string) error {
	return fmt.Errorf("%w: %s", ErrUnsupportedCapability, capability)
}

// ResourceExhaustedError wraps ErrResourceExhausted with which fixed-size
// resource ran out and its capacity.
func ResourceExhaustedError(resource string, capacity int) error {
	return fmt.Errorf("%w: %s (capacity %d)", ErrResourceExhausted, resource, capacity)
}

// debugAssert panics with an InvariantError when cond is false. It only
// does anything when built with -tags alpenglowdebug (see
// invariant_debug.go / invariant_release.go); the release build is a no-op
// so hot loops don't pay for checks only useful while developing this
// module itself.
func debugAssert(cond bool, format string, args ...any) {
	debugAssertImpl(cond, format, args...)
}
