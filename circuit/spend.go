package circuit

import (
	"github.com/holiman/uint256"

	"github.com/sp301415/ember-stark/m31"
	"github.com/sp301415/ember-stark/protocol"
)

// SpendInputs is the private witness of a spend proof.
type SpendInputs struct {
	// BurnKey is the secret burn key of the coin.
	BurnKey m31.Elem `json:"burn_key"`
	// Balance is the full balance hidden in the coin.
	Balance *uint256.Int `json:"balance"`
	// WithdrawnBalance is the amount being withdrawn.
	WithdrawnBalance *uint256.Int `json:"withdrawn_balance"`
	// ExtraCommitment is the extra commitment bound to the spend.
	ExtraCommitment m31.Elem `json:"extra_commitment"`
}

// SpendOutputs is the public output of a spend proof.
type SpendOutputs struct {
	// Coin is the coin being spent.
	Coin m31.Elem `json:"coin"`
	// RemainingCoin hides the balance left after the withdrawal.
	RemainingCoin m31.Elem `json:"remaining_coin"`
	// Commitment binds the coin, withdrawn amount, remaining coin and
	// extra commitment.
	Commitment m31.Elem `json:"commitment"`
}

// SpendCircuit proves that a withdrawal from a coin leaves a correctly
// reduced remaining coin, without revealing the burn key or balances.
type SpendCircuit struct {
	Parameters protocol.Parameters

	Inputs SpendInputs
}

// NewSpendCircuit validates inputs against params and creates a new SpendCircuit.
func NewSpendCircuit(params protocol.Parameters, inputs SpendInputs) (*SpendCircuit, error) {
	if inputs.WithdrawnBalance.Gt(inputs.Balance) {
		return nil, InsufficientBalanceError{Balance: inputs.Balance, Withdrawn: inputs.WithdrawnBalance}
	}
	if inputs.Balance.Gt(params.MaxAmount()) {
		return nil, AmountTooLargeError{Amount: inputs.Balance, Max: params.MaxAmount()}
	}
	if inputs.WithdrawnBalance.Gt(params.MaxAmount()) {
		return nil, AmountTooLargeError{Amount: inputs.WithdrawnBalance, Max: params.MaxAmount()}
	}

	return &SpendCircuit{
		Parameters: params,

		Inputs: inputs,
	}, nil
}

// RemainingBalance returns the balance left after the withdrawal.
func (c *SpendCircuit) RemainingBalance() *uint256.Int {
	return new(uint256.Int).Sub(c.Inputs.Balance, c.Inputs.WithdrawnBalance)
}

// ComputeOutputs derives the public outputs of the spend.
func (c *SpendCircuit) ComputeOutputs() SpendOutputs {
	coin := protocol.Coin(c.Parameters, c.Inputs.BurnKey, c.Inputs.Balance)
	remainingCoin := protocol.Coin(c.Parameters, c.Inputs.BurnKey, c.RemainingBalance())
	commitment := protocol.SpendCommitment(coin, c.Inputs.WithdrawnBalance, remainingCoin, c.Inputs.ExtraCommitment)

	return SpendOutputs{
		Coin:          coin,
		RemainingCoin: remainingCoin,
		Commitment:    commitment,
	}
}
