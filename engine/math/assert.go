//go:build !mathdebug

package math

// debugAssert is compiled out of release builds. Build with -tags mathdebug
// to turn degenerate-input checks into panics.
func debugAssert(bool, string) {}
