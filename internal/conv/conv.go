// Package conv provides checked integer conversions for the grep engine.
//
// NFA state IDs are uint32. These helpers panic on overflow since that
// indicates a pattern too large for the ID space, which the compiler's
// state limit is meant to prevent.
package conv

import "math"

// IntToUint32 converts n to uint32.
// Panics if n < 0 or n > math.MaxUint32.
func IntToUint32(n int) uint32 {
	// uint comparison avoids overflow on 32-bit platforms where int cannot
	// represent math.MaxUint32
	if n < 0 || uint(n) > math.MaxUint32 {
		panic("integer overflow: int value out of uint32 range")
	}
	return uint32(n)
}
