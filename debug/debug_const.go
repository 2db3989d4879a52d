//go:build !debug

package debug

// Debug is false unless built with -tags=debug.
const Debug = false
