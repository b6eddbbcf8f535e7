// Package protocol implements the derivations of the proof-of-burn protocol:
// domain prefixes, nullifiers, coins, burn addresses, public commitments
// and the proof-of-work gate over burn keys.
package protocol

import (
	"encoding/binary"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/holiman/uint256"

	"github.com/sp301415/ember-stark/m31"
)

// KeccakBlockBytes is the rate of Keccak-256 in bytes.
const KeccakBlockBytes = 136

// ParametersLiteral is a structure for protocol parameters.
type ParametersLiteral struct {
	// DomainTag is the domain separation string of the protocol.
	// The Poseidon2 prefixes are derived from its Keccak-256 digest,
	// and it terminates every proof-of-work message.
	DomainTag string

	// MaxIntendedBalance is the maximum intended balance, in wei.
	MaxIntendedBalance *uint256.Int
	// MaxActualBalance is the maximum actual balance of a burn address, in wei.
	// May exceed MaxIntendedBalance to allow for dust sent by third parties.
	MaxActualBalance *uint256.Int

	// MaxAmountBytes is the byte length of spendable amounts.
	MaxAmountBytes int

	// MinLeafAddressNibbles is the minimum number of address-hash nibbles
	// that must remain in the leaf node.
	MinLeafAddressNibbles int
	// MaxProofLayers is the maximum number of Merkle-Patricia-Trie proof nodes.
	MaxProofLayers int
	// MaxHeaderBlocks is the maximum block header length in Keccak blocks.
	MaxHeaderBlocks int

	// PowMinZeroBytes is the number of leading zero bytes
	// required of a burn key's proof-of-work digest.
	PowMinZeroBytes int
}

// Compile transforms ParametersLiteral to read-only Parameters.
// If there is any invalid parameter in the literal, it panics.
// Default parameters are guaranteed to be compiled without panics.
func (p ParametersLiteral) Compile() Parameters {
	switch {
	case len(p.DomainTag) == 0:
		panic("DomainTag must not be empty")
	case p.MaxIntendedBalance == nil || p.MaxActualBalance == nil:
		panic("balance ceilings must not be nil")
	case p.MaxIntendedBalance.Gt(p.MaxActualBalance):
		panic("MaxIntendedBalance must not exceed MaxActualBalance")
	case p.MaxAmountBytes <= 0 || p.MaxAmountBytes >= 32:
		panic("MaxAmountBytes must be in [1, 31]")
	case p.MinLeafAddressNibbles < 0 || p.MinLeafAddressNibbles > 64:
		panic("MinLeafAddressNibbles must be in [0, 64]")
	case p.MaxProofLayers <= 0:
		panic("MaxProofLayers must be positive")
	case p.MaxHeaderBlocks <= 0:
		panic("MaxHeaderBlocks must be positive")
	case p.PowMinZeroBytes < 0 || p.PowMinZeroBytes > 32:
		panic("PowMinZeroBytes must be in [0, 32]")
	}

	digest := crypto.Keccak256([]byte(p.DomainTag))
	prefix := m31.New(binary.BigEndian.Uint32(digest[:4]))

	maxAmount := new(uint256.Int).Lsh(uint256.NewInt(1), uint(8*p.MaxAmountBytes))
	maxAmount.SubUint64(maxAmount, 1)

	return Parameters{
		domainTag: p.DomainTag,

		burnAddressPrefix: prefix,
		nullifierPrefix:   prefix.Add(1),
		coinPrefix:        prefix.Add(2),

		maxIntendedBalance: new(uint256.Int).Set(p.MaxIntendedBalance),
		maxActualBalance:   new(uint256.Int).Set(p.MaxActualBalance),
		maxAmount:          maxAmount,

		minLeafAddressNibbles: p.MinLeafAddressNibbles,
		maxProofLayers:        p.MaxProofLayers,
		maxHeaderBytes:        p.MaxHeaderBlocks * KeccakBlockBytes,

		powMinZeroBytes: p.PowMinZeroBytes,
	}
}

// Parameters is a read-only structure for protocol parameters.
type Parameters struct {
	// domainTag is the domain separation string of the protocol.
	domainTag string

	// burnAddressPrefix is the Poseidon2 prefix for burn address derivation.
	// Equals to the first four big-endian digest bytes of the domain tag, reduced into the field.
	burnAddressPrefix m31.Elem
	// nullifierPrefix is the Poseidon2 prefix for nullifier derivation.
	// Equals to burnAddressPrefix + 1.
	nullifierPrefix m31.Elem
	// coinPrefix is the Poseidon2 prefix for coin derivation.
	// Equals to burnAddressPrefix + 2.
	coinPrefix m31.Elem

	// maxIntendedBalance is the maximum intended balance, in wei.
	maxIntendedBalance *uint256.Int
	// maxActualBalance is the maximum actual balance of a burn address, in wei.
	maxActualBalance *uint256.Int
	// maxAmount is the maximum spendable amount.
	// Equals to 2^(8*MaxAmountBytes) - 1.
	maxAmount *uint256.Int

	// minLeafAddressNibbles is the minimum number of address-hash nibbles in the leaf node.
	minLeafAddressNibbles int
	// maxProofLayers is the maximum number of Merkle-Patricia-Trie proof nodes.
	maxProofLayers int
	// maxHeaderBytes is the maximum block header length in bytes.
	maxHeaderBytes int

	// powMinZeroBytes is the number of leading zero bytes
	// required of a burn key's proof-of-work digest.
	powMinZeroBytes int
}

// DomainTag returns the domain separation string of the protocol.
func (p Parameters) DomainTag() string {
	return p.domainTag
}

// BurnAddressPrefix returns the Poseidon2 prefix for burn address derivation.
func (p Parameters) BurnAddressPrefix() m31.Elem {
	return p.burnAddressPrefix
}

// NullifierPrefix returns the Poseidon2 prefix for nullifier derivation.
func (p Parameters) NullifierPrefix() m31.Elem {
	return p.nullifierPrefix
}

// CoinPrefix returns the Poseidon2 prefix for coin derivation.
func (p Parameters) CoinPrefix() m31.Elem {
	return p.coinPrefix
}

// MaxIntendedBalance returns the maximum intended balance, in wei.
func (p Parameters) MaxIntendedBalance() *uint256.Int {
	return p.maxIntendedBalance
}

// MaxActualBalance returns the maximum actual balance of a burn address, in wei.
func (p Parameters) MaxActualBalance() *uint256.Int {
	return p.maxActualBalance
}

// MaxAmount returns the maximum spendable amount.
func (p Parameters) MaxAmount() *uint256.Int {
	return p.maxAmount
}

// MinLeafAddressNibbles returns the minimum number of address-hash nibbles in the leaf node.
func (p Parameters) MinLeafAddressNibbles() int {
	return p.minLeafAddressNibbles
}

// MaxProofLayers returns the maximum number of Merkle-Patricia-Trie proof nodes.
func (p Parameters) MaxProofLayers() int {
	return p.maxProofLayers
}

// MaxHeaderBytes returns the maximum block header length in bytes.
func (p Parameters) MaxHeaderBytes() int {
	return p.maxHeaderBytes
}

// PowMinZeroBytes returns the number of leading zero bytes
// required of a burn key's proof-of-work digest.
func (p Parameters) PowMinZeroBytes() int {
	return p.powMinZeroBytes
}
