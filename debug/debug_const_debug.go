//go:build debug

package debug

// Debug enables the precondition checks in the hot loops.
const Debug = true
