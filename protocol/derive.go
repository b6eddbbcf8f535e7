package protocol

import (
	"encoding/binary"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/holiman/uint256"

	"github.com/sp301415/ember-stark/m31"
	"github.com/sp301415/ember-stark/poseidon2"
)

// Nullifier derives the nullifier of a burn key.
// The nullifier reveals nothing about the key, but is unique to it,
// and is published on spend to prevent double-spending.
func Nullifier(params Parameters, burnKey m31.Elem) m31.Elem {
	return poseidon2.Hash2(params.NullifierPrefix(), burnKey)
}

// Coin derives the coin hiding balance under burnKey.
// The balance is reduced into the field before hashing.
func Coin(params Parameters, burnKey m31.Elem, balance *uint256.Int) m31.Elem {
	return poseidon2.Hash3(params.CoinPrefix(), burnKey, m31.FromUint256(balance))
}

// BurnAddress derives the unspendable address bound to a burn key.
// The Poseidon2 output is expanded to an address by Keccak-256,
// taking the first 20 digest bytes.
func BurnAddress(params Parameters, burnKey m31.Elem, revealAmount *uint256.Int, burnExtra m31.Elem) common.Address {
	h := poseidon2.Hash4(params.BurnAddressPrefix(), burnKey, m31.FromUint256(revealAmount), burnExtra)

	var word [4]byte
	binary.BigEndian.PutUint32(word[:], h.Uint32())
	digest := crypto.Keccak256(word[:])

	var addr common.Address
	copy(addr[:], digest[:common.AddressLength])
	return addr
}

// BurnAddressHash derives the state trie key of the burn address,
// the Keccak-256 digest of the address bytes.
func BurnAddressHash(params Parameters, burnKey m31.Elem, revealAmount *uint256.Int, burnExtra m31.Elem) common.Hash {
	addr := BurnAddress(params, burnKey, revealAmount, burnExtra)
	return crypto.Keccak256Hash(addr[:])
}

// BurnCommitment derives the public commitment of a burn proof,
// binding the block root, nullifier, remaining coin, reveal amount
// and both extra commitments into a single field element.
func BurnCommitment(
	params Parameters,
	blockRoot common.Hash,
	nullifier, remainingCoin m31.Elem,
	revealAmount *uint256.Int,
	burnExtra, proofExtra m31.Elem,
) m31.Elem {
	rootWord := m31.New(binary.BigEndian.Uint32(blockRoot[:4]))
	inner := poseidon2.Hash4(rootWord, nullifier, remainingCoin, m31.FromUint256(revealAmount))
	return poseidon2.Hash3(inner, burnExtra, proofExtra)
}

// SpendCommitment derives the public commitment of a spend,
// binding the spent coin, withdrawn amount, remaining coin and
// the extra commitment into a single field element.
func SpendCommitment(coin m31.Elem, withdrawnBalance *uint256.Int, remainingCoin, extra m31.Elem) m31.Elem {
	return poseidon2.Hash4(coin, m31.FromUint256(withdrawnBalance), remainingCoin, extra)
}
