// Package m31 implements arithmetic over the Mersenne prime field with modulus 2^31 - 1.
package m31

import (
	"fmt"

	"github.com/holiman/uint256"
)

// P is the field modulus 2^31 - 1.
const P uint32 = (1 << 31) - 1

// Elem is a field element, always kept fully reduced to [0, P).
type Elem uint32

// New creates a new Elem from v, reducing it modulo P.
func New(v uint32) Elem {
	return reduce64(uint64(v))
}

// FromUint64 creates a new Elem from v, reducing it modulo P.
func FromUint64(v uint64) Elem {
	return Elem(v % uint64(P))
}

// FromInt64 creates a new Elem from v.
// Negative values map to P - (|v| mod P).
func FromInt64(v int64) Elem {
	if v >= 0 {
		return FromUint64(uint64(v))
	}

	abs := uint64(-(v + 1)) + 1
	r := uint32(abs % uint64(P))
	if r == 0 {
		return 0
	}
	return Elem(P - r)
}

// FromUint256 creates a new Elem from the lowest 64 bits of v, reducing it modulo P.
// The upper 192 bits are discarded.
func FromUint256(v *uint256.Int) Elem {
	return FromUint64(v.Uint64())
}

// Uint32 returns x as a uint32 in [0, P).
func (x Elem) Uint32() uint32 {
	return uint32(x)
}

// Uint64 returns x as a uint64 in [0, P).
func (x Elem) Uint64() uint64 {
	return uint64(x)
}

// IsZero returns whether x is zero.
func (x Elem) IsZero() bool {
	return x == 0
}

// Add returns x + y.
func (x Elem) Add(y Elem) Elem {
	s := uint32(x) + uint32(y)
	if s >= P {
		s -= P
	}
	return Elem(s)
}

// Sub returns x - y.
func (x Elem) Sub(y Elem) Elem {
	d := uint32(x) - uint32(y)
	if d >= P {
		d += P
	}
	return Elem(d)
}

// Neg returns -x.
func (x Elem) Neg() Elem {
	if x == 0 {
		return 0
	}
	return Elem(P - uint32(x))
}

// Mul returns x * y.
func (x Elem) Mul(y Elem) Elem {
	return reduce64(uint64(x) * uint64(y))
}

// Double returns 2x.
func (x Elem) Double() Elem {
	return x.Add(x)
}

// String returns a string representation of x.
func (x Elem) String() string {
	return fmt.Sprint(uint32(x))
}

// reduce64 reduces v < 2^62 modulo P, using 2^31 = 1 mod P.
func reduce64(v uint64) Elem {
	v = (v >> 31) + (v & uint64(P))
	v = (v >> 31) + (v & uint64(P))
	if v >= uint64(P) {
		v -= uint64(P)
	}
	return Elem(v)
}
