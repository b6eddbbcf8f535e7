package protocol

import (
	"encoding/binary"
	"math"

	"github.com/tuneinsight/lattigo/v6/utils/sampling"

	"github.com/sp301415/ember-stark/m31"
)

// GenerateBurnKey samples a fresh burn key uniformly from the field
// using prng. Panics when prng fails.
func GenerateBurnKey(prng sampling.PRNG) m31.Elem {
	bound := math.MaxUint64 - (math.MaxUint64 % uint64(m31.P))

	var buf [8]byte
	for {
		if _, err := prng.Read(buf[:]); err != nil {
			panic(err)
		}

		v := binary.LittleEndian.Uint64(buf[:])
		if v < bound {
			return m31.Elem(v % uint64(m31.P))
		}
	}
}
