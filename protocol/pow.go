package protocol

import (
	"encoding/binary"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/holiman/uint256"

	"github.com/sp301415/ember-stark/m31"
)

// PowDigest computes the proof-of-work digest of a burn key:
// the Keccak-256 hash of the key, reveal amount and extra commitment,
// each padded to 32 bytes, terminated by the domain tag.
func PowDigest(params Parameters, burnKey m31.Elem, revealAmount *uint256.Int, extraCommitment m31.Elem) common.Hash {
	buf := make([]byte, 0, 96+len(params.domainTag))

	var word [4]byte
	var pad [28]byte

	binary.BigEndian.PutUint32(word[:], burnKey.Uint32())
	buf = append(buf, word[:]...)
	buf = append(buf, pad[:]...)

	amount := revealAmount.Bytes32()
	buf = append(buf, amount[:]...)

	binary.BigEndian.PutUint32(word[:], extraCommitment.Uint32())
	buf = append(buf, word[:]...)
	buf = append(buf, pad[:]...)

	buf = append(buf, params.domainTag...)

	return crypto.Keccak256Hash(buf)
}

// VerifyPow reports whether the proof-of-work digest of burnKey starts with
// at least minZeroBytes zero bytes. A requirement of zero or less always
// passes, and one above 32 always fails.
func VerifyPow(params Parameters, burnKey m31.Elem, revealAmount *uint256.Int, extraCommitment m31.Elem, minZeroBytes int) bool {
	if minZeroBytes <= 0 {
		return true
	}
	if minZeroBytes > 32 {
		return false
	}

	digest := PowDigest(params, burnKey, revealAmount, extraCommitment)
	for _, b := range digest[:minZeroBytes] {
		if b != 0 {
			return false
		}
	}
	return true
}

// MineBurnKey searches burn keys 0, 1, 2, ... for one whose proof-of-work
// digest has at least minZeroBytes leading zero bytes, giving up after
// maxCandidates keys. Mining is an offline utility and must never run on
// the proving path.
func MineBurnKey(params Parameters, revealAmount *uint256.Int, extraCommitment m31.Elem, minZeroBytes int, maxCandidates uint32) (m31.Elem, bool) {
	for i := uint32(0); i < maxCandidates; i++ {
		candidate := m31.New(i)
		if VerifyPow(params, candidate, revealAmount, extraCommitment, minZeroBytes) {
			return candidate, true
		}
	}
	return 0, false
}
