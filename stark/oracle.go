package stark

import (
	"encoding/binary"
	"fmt"
	"io"
	"math/bits"

	"github.com/bits-and-blooms/bitset"
	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/crypto/blake2b"

	"github.com/sp301415/ember-stark/csprng"
	"github.com/sp301415/ember-stark/m31"
)

// RandomOracle is the Fiat-Shamir transcript of the STARK protocol.
// Prover and verifier must write the same values in the same order
// to sample the same challenges.
type RandomOracle struct {
	*csprng.UniformSampler
}

// NewRandomOracle creates a new RandomOracle.
func NewRandomOracle() *RandomOracle {
	return &RandomOracle{
		UniformSampler: csprng.NewUniformSamplerWithSeed(nil),
	}
}

// WriteUint64 writes x to the random oracle.
func (o *RandomOracle) WriteUint64(x uint64) {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], x)
	if _, err := o.Write(buf[:]); err != nil {
		panic(err)
	}
}

// WriteElem writes x to the random oracle.
func (o *RandomOracle) WriteElem(x m31.Elem) {
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], x.Uint32())
	if _, err := o.Write(buf[:]); err != nil {
		panic(err)
	}
}

// WriteElemVec writes v to the random oracle.
func (o *RandomOracle) WriteElemVec(v m31.Vec) {
	for _, x := range v {
		o.WriteElem(x)
	}
}

// WriteHash writes h to the random oracle.
func (o *RandomOracle) WriteHash(h common.Hash) {
	if _, err := o.Write(h[:]); err != nil {
		panic(err)
	}
}

// SamplePowSeed derives the grinding seed from the current transcript state.
func (o *RandomOracle) SamplePowSeed() [32]byte {
	o.Finalize()

	var seed [32]byte
	if _, err := io.ReadFull(o, seed[:]); err != nil {
		panic(err)
	}
	return seed
}

// SampleQueries samples n distinct query positions in [0, bound),
// in ascending order.
func (o *RandomOracle) SampleQueries(n, bound int) []int {
	if n > bound {
		panic(fmt.Errorf("cannot sample %v distinct queries from %v positions", n, bound))
	}

	drawn := bitset.New(uint(bound))
	for drawn.Count() < uint(n) {
		drawn.Set(uint(o.SampleN(uint64(bound))))
	}

	queries := make([]int, 0, n)
	for q, ok := drawn.NextSet(0); ok; q, ok = drawn.NextSet(q + 1) {
		queries = append(queries, int(q))
	}
	return queries
}

// GrindPow searches the smallest nonce whose digest over seed
// has at least powBits leading zero bits.
func GrindPow(seed [32]byte, powBits int) uint64 {
	for nonce := uint64(0); ; nonce++ {
		if CheckPow(seed, nonce, powBits) {
			return nonce
		}
	}
}

// CheckPow checks if the digest over seed and nonce
// has at least powBits leading zero bits.
func CheckPow(seed [32]byte, nonce uint64, powBits int) bool {
	var buf [40]byte
	copy(buf[:32], seed[:])
	binary.BigEndian.PutUint64(buf[32:], nonce)

	digest := blake2b.Sum256(buf[:])

	zeros := 0
	for _, b := range digest {
		if b == 0 {
			zeros += 8
			continue
		}
		zeros += bits.LeadingZeros8(b)
		break
	}
	return zeros >= powBits
}
