// Package circuit implements the burn and spend circuits: input validation,
// public output derivation, execution trace generation and the constraint
// evaluators handed to the STARK backend.
package circuit

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/holiman/uint256"

	"github.com/sp301415/ember-stark/m31"
	"github.com/sp301415/ember-stark/mpt"
	"github.com/sp301415/ember-stark/protocol"
)

// stateRootOffset is the byte offset of the state root in an RLP encoded
// block header.
const stateRootOffset = 91

// BurnInputs is the private witness of a burn proof.
type BurnInputs struct {
	// BurnKey is the secret burn key.
	BurnKey m31.Elem `json:"burn_key"`
	// ActualBalance is the full balance of the burn address.
	ActualBalance *uint256.Int `json:"actual_balance"`
	// IntendedBalance is the part of the balance being claimed.
	IntendedBalance *uint256.Int `json:"intended_balance"`
	// RevealAmount is the part of the intended balance revealed publicly.
	RevealAmount *uint256.Int `json:"reveal_amount"`
	// BurnExtraCommitment is the extra commitment bound to the burn address.
	BurnExtraCommitment m31.Elem `json:"burn_extra_commitment"`
	// Layers is the state inclusion proof, root layer first.
	Layers []hexutil.Bytes `json:"layers"`
	// BlockHeader is the RLP encoded block header carrying the state root.
	BlockHeader hexutil.Bytes `json:"block_header"`
	// NumLeafAddressNibbles is the number of address nibbles in the leaf path.
	NumLeafAddressNibbles int `json:"num_leaf_address_nibbles"`
	// ByteSecurityRelax lowers the nibble floor in exchange for a stronger
	// proof of work.
	ByteSecurityRelax int `json:"byte_security_relax"`
	// ProofExtraCommitment is the extra commitment bound to the proof.
	ProofExtraCommitment m31.Elem `json:"proof_extra_commitment"`
}

// BurnOutputs is the public output of a burn proof.
type BurnOutputs struct {
	// Commitment binds the block root, nullifier, remaining coin,
	// reveal amount and extra commitments.
	Commitment m31.Elem `json:"commitment"`
	// Nullifier is the double-spend tag of the burn key.
	Nullifier m31.Elem `json:"nullifier"`
	// RemainingCoin hides the unrevealed part of the intended balance.
	RemainingCoin m31.Elem `json:"remaining_coin"`
}

// BurnCircuit proves that a burn address derived from a secret key holds a
// balance inside a block, without revealing the key or the address.
type BurnCircuit struct {
	Parameters protocol.Parameters

	Inputs BurnInputs
}

// NewBurnCircuit validates inputs against params and creates a new BurnCircuit.
func NewBurnCircuit(params protocol.Parameters, inputs BurnInputs) (*BurnCircuit, error) {
	if inputs.IntendedBalance.Gt(params.MaxIntendedBalance()) {
		return nil, IntendedBalanceError{Balance: inputs.IntendedBalance, Max: params.MaxIntendedBalance()}
	}
	if inputs.ActualBalance.Gt(params.MaxActualBalance()) {
		return nil, ActualBalanceError{Balance: inputs.ActualBalance, Max: params.MaxActualBalance()}
	}
	if inputs.IntendedBalance.Gt(inputs.ActualBalance) {
		return nil, BalanceOrderError{Intended: inputs.IntendedBalance, Actual: inputs.ActualBalance}
	}
	if inputs.RevealAmount.Gt(inputs.IntendedBalance) {
		return nil, RevealAmountError{Reveal: inputs.RevealAmount, Intended: inputs.IntendedBalance}
	}

	requiredNibbles := params.MinLeafAddressNibbles() - 2*inputs.ByteSecurityRelax
	if requiredNibbles < 0 {
		requiredNibbles = 0
	}
	if inputs.NumLeafAddressNibbles < requiredNibbles {
		return nil, NibbleCountError{Provided: inputs.NumLeafAddressNibbles, Required: requiredNibbles}
	}

	if len(inputs.Layers) > params.MaxProofLayers() {
		return nil, LayerCountError{Provided: len(inputs.Layers), Max: params.MaxProofLayers()}
	}
	if len(inputs.BlockHeader) > params.MaxHeaderBytes() {
		return nil, HeaderSizeError{Size: len(inputs.BlockHeader), Max: params.MaxHeaderBytes()}
	}

	return &BurnCircuit{
		Parameters: params,

		Inputs: inputs,
	}, nil
}

// RemainingBalance returns the unrevealed part of the intended balance.
func (c *BurnCircuit) RemainingBalance() *uint256.Int {
	return new(uint256.Int).Sub(c.Inputs.IntendedBalance, c.Inputs.RevealAmount)
}

// BlockRoot returns the Keccak-256 digest of the block header.
func (c *BurnCircuit) BlockRoot() common.Hash {
	return crypto.Keccak256Hash(c.Inputs.BlockHeader)
}

// ComputeOutputs derives the public outputs of the burn,
// checking state inclusion and proof of work along the way.
func (c *BurnCircuit) ComputeOutputs() (BurnOutputs, error) {
	remainingCoin := protocol.Coin(c.Parameters, c.Inputs.BurnKey, c.RemainingBalance())
	nullifier := protocol.Nullifier(c.Parameters, c.Inputs.BurnKey)
	addressHash := protocol.BurnAddressHash(c.Parameters, c.Inputs.BurnKey, c.Inputs.RevealAmount, c.Inputs.BurnExtraCommitment)

	blockRoot := c.BlockRoot()
	if len(c.Inputs.BlockHeader) < stateRootOffset+common.HashLength {
		return BurnOutputs{}, ErrHeaderTooShort
	}
	stateRoot := common.BytesToHash(c.Inputs.BlockHeader[stateRootOffset : stateRootOffset+common.HashLength])

	layers := make([][]byte, len(c.Inputs.Layers))
	for i := range layers {
		layers[i] = c.Inputs.Layers[i]
	}
	if err := mpt.Verify(layers, stateRoot, addressHash, c.Inputs.ActualBalance); err != nil {
		return BurnOutputs{}, InclusionError{Err: err}
	}

	requiredZeroBytes := c.Parameters.PowMinZeroBytes() + c.Inputs.ByteSecurityRelax
	if !protocol.VerifyPow(c.Parameters, c.Inputs.BurnKey, c.Inputs.RevealAmount, c.Inputs.BurnExtraCommitment, requiredZeroBytes) {
		return BurnOutputs{}, PowError{RequiredZeroBytes: requiredZeroBytes}
	}

	commitment := protocol.BurnCommitment(
		c.Parameters,
		blockRoot,
		nullifier, remainingCoin,
		c.Inputs.RevealAmount,
		c.Inputs.BurnExtraCommitment, c.Inputs.ProofExtraCommitment,
	)

	return BurnOutputs{
		Commitment:    commitment,
		Nullifier:     nullifier,
		RemainingCoin: remainingCoin,
	}, nil
}
