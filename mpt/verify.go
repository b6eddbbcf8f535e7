// Package mpt verifies Merkle-Patricia-Trie inclusion proofs for a single
// account leaf against an Ethereum state root.
//
// Verification follows the hash-linked layer chain without parsing the RLP
// structure of internal nodes: a child layer is accepted when its Keccak-256
// hash appears as a contiguous 32 byte window inside its parent, and the
// leaf is accepted when the canonical account encoding appears as a
// contiguous window inside the last layer.
package mpt

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/holiman/uint256"
)

// ErrEmptyProof is returned when a proof has no layers.
var ErrEmptyProof = errors.New("mpt: empty proof")

// RootMismatchError is returned when the first proof layer does not hash to
// the expected state root.
type RootMismatchError struct {
	Expected common.Hash
	Computed common.Hash
}

func (e RootMismatchError) Error() string {
	return fmt.Sprintf("mpt: state root mismatch: expected %x, computed %x", e.Expected, e.Computed)
}

// MissingChildError is returned when the hash of a proof layer does not
// appear in the layer above it.
type MissingChildError struct {
	Layer int
	Hash  common.Hash
}

func (e MissingChildError) Error() string {
	return fmt.Sprintf("mpt: hash of layer %d not found in parent: %x", e.Layer, e.Hash)
}

// LeafMismatchError is returned when the last proof layer does not contain
// the expected account encoding.
type LeafMismatchError struct {
	Account []byte
}

func (e LeafMismatchError) Error() string {
	return fmt.Sprintf("mpt: account encoding not found in leaf: %x", e.Account)
}

// Verify checks that an account with the given balance is reachable from
// stateRoot through the proof layers: the first layer must hash to
// stateRoot, the hash of every following layer must appear in the layer
// above it, and the burn account encoding with the given balance must
// appear in the last layer.
//
// The address hash is not matched against the leaf path; the nibble count
// floor is enforced by the caller at construction time.
func Verify(layers [][]byte, stateRoot, addressHash common.Hash, balance *uint256.Int) error {
	if len(layers) == 0 {
		return ErrEmptyProof
	}

	computed := crypto.Keccak256Hash(layers[0])
	if computed != stateRoot {
		return RootMismatchError{Expected: stateRoot, Computed: computed}
	}

	for i := 1; i < len(layers); i++ {
		hash := crypto.Keccak256Hash(layers[i])
		if !bytes.Contains(layers[i-1], hash[:]) {
			return MissingChildError{Layer: i, Hash: hash}
		}
	}

	account := NewBurnAccount(balance).Bytes()
	if !bytes.Contains(layers[len(layers)-1], account) {
		return LeafMismatchError{Account: account}
	}

	return nil
}
