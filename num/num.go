// Package num implements various utility functions regarding numeric types.
package num

import "math/bits"

// IsPowerOfTwo returns whether x is a power of two.
// If x <= 0, it always returns false.
func IsPowerOfTwo(x int) bool {
	return x > 0 && x&(x-1) == 0
}

// Log2 returns floor(log2(x)).
// Panics if x is not a power of two.
func Log2(x int) int {
	if !IsPowerOfTwo(x) {
		panic("x not power of two")
	}
	return bits.Len64(uint64(x)) - 1
}

// BitReverse returns the bit-reversal of x with respect to logN bits.
func BitReverse(x, logN int) int {
	return int(bits.Reverse64(uint64(x)) >> (64 - logN))
}

// BitReverseInPlace reorders v into bit-reversal order in-place.
func BitReverseInPlace[T any](v []T) {
	var bit, j int
	for i := 1; i < len(v); i++ {
		bit = len(v) >> 1
		for j >= bit {
			j -= bit
			bit >>= 1
		}
		j += bit
		if i < j {
			v[i], v[j] = v[j], v[i]
		}
	}
}
