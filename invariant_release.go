//go:build !alpenglowdebug

package alpenglow

// debugAssertImpl is a no-op in release builds.
func debugAssertImpl(cond bool, format string, args ...any) {}
