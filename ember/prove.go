// Package ember orchestrates the burn and spend provers: input validation,
// public output derivation, STARK proving and the persisted proof artifacts.
package ember

import (
	"time"

	"github.com/sp301415/ember-stark/circuit"
	"github.com/sp301415/ember-stark/logger"
	"github.com/sp301415/ember-stark/protocol"
	"github.com/sp301415/ember-stark/stark"
)

// BurnProof bundles a burn STARK proof with its public outputs and the
// persisted artifact record.
type BurnProof struct {
	Proof   stark.Proof         `json:"proof"`
	Outputs circuit.BurnOutputs `json:"outputs"`
	Simple  SimpleProof         `json:"simple"`
}

// SpendProof bundles a spend STARK proof with its public outputs.
type SpendProof struct {
	Proof   stark.Proof          `json:"proof"`
	Outputs circuit.SpendOutputs `json:"outputs"`
}

// ProveBurn validates inputs, derives the public outputs and proves the
// burn trace.
func ProveBurn(params protocol.Parameters, starkParams stark.Parameters, inputs circuit.BurnInputs) (BurnProof, error) {
	c, err := circuit.NewBurnCircuit(params, inputs)
	if err != nil {
		return BurnProof{}, err
	}
	outputs, err := c.ComputeOutputs()
	if err != nil {
		return BurnProof{}, err
	}

	log := logger.Logger().With().Str("circuit", "burn").Int("logNRows", starkParams.LogNRows()).Logger()
	log.Debug().Msg("prover started")
	start := time.Now()

	prover := stark.NewProver(starkParams)
	pf := prover.Prove(c.Trace(starkParams.LogNRows()), c.Evaluator())

	log.Debug().Dur("took", time.Since(start)).Msg("prover done")

	nullifier := elemToUint256(outputs.Nullifier)
	commitment := elemToUint256(outputs.Commitment)
	publicCommitment := PublicCommitment(c.BlockRoot(), nullifier, commitment, inputs.RevealAmount)

	return BurnProof{
		Proof:   pf,
		Outputs: outputs,
		Simple: SimpleProof{
			TraceCommitment:       pf.TraceRoot,
			CompositionCommitment: pf.CompositionRoot,
			ProofID:               ProofID(publicCommitment, nullifier, commitment),
		},
	}, nil
}

// VerifyBurn checks the STARK proof of a burn proof bundle.
// Returns nil if the proof is valid.
func VerifyBurn(params protocol.Parameters, starkParams stark.Parameters, pf BurnProof) error {
	verifier := stark.NewVerifier(starkParams)
	return verifier.Verify(circuit.BurnEvaluator{Parameters: params}, pf.Proof)
}

// ProveSpend validates inputs, derives the public outputs and proves the
// spend trace.
func ProveSpend(params protocol.Parameters, starkParams stark.Parameters, inputs circuit.SpendInputs) (SpendProof, error) {
	c, err := circuit.NewSpendCircuit(params, inputs)
	if err != nil {
		return SpendProof{}, err
	}
	outputs := c.ComputeOutputs()

	log := logger.Logger().With().Str("circuit", "spend").Int("logNRows", starkParams.LogNRows()).Logger()
	log.Debug().Msg("prover started")
	start := time.Now()

	prover := stark.NewProver(starkParams)
	pf := prover.Prove(c.Trace(starkParams.LogNRows()), c.Evaluator())

	log.Debug().Dur("took", time.Since(start)).Msg("prover done")

	return SpendProof{
		Proof:   pf,
		Outputs: outputs,
	}, nil
}

// VerifySpend checks the STARK proof of a spend proof bundle.
// Returns nil if the proof is valid.
func VerifySpend(params protocol.Parameters, starkParams stark.Parameters, pf SpendProof) error {
	verifier := stark.NewVerifier(starkParams)
	return verifier.Verify(circuit.SpendEvaluator{}, pf.Proof)
}
