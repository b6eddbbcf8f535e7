package circuit

import (
	"github.com/holiman/uint256"

	"github.com/sp301415/ember-stark/m31"
	"github.com/sp301415/ember-stark/poseidon2"
	"github.com/sp301415/ember-stark/protocol"
	"github.com/sp301415/ember-stark/stark"
)

// BurnTraceColumns is the number of columns of the burn trace:
// nine witness scalars followed by the three Poseidon2 critical blocks
// of the nullifier, remaining coin and commitment.
const BurnTraceColumns = 9 + 3*(2*poseidon2.Width+1)

// limbHalves splits the low 64 bits of x into reduced 32-bit halves.
func limbHalves(x *uint256.Int) (lo, hi m31.Elem) {
	return m31.New(uint32(x.Uint64())), m31.New(uint32(x.Uint64() >> 32))
}

// writeCriticalBlock writes the critical states of one Poseidon2 permutation
// into row zero starting at column col, returning the permutation output and
// the column after the block.
func writeCriticalBlock(trace stark.Trace, col int, state poseidon2.State) (final m31.Elem, next int) {
	initial, afterFirstRound, final := poseidon2.CriticalStates(state)
	for i := 0; i < poseidon2.Width; i++ {
		trace[col+i][0] = initial[i]
		trace[col+poseidon2.Width+i][0] = afterFirstRound[i]
	}
	trace[col+2*poseidon2.Width][0] = final

	return final, col + 2*poseidon2.Width + 1
}

// Trace builds the execution trace of c with 2^logNRows rows.
// The witness occupies row zero; all other rows are zero padding.
func (c *BurnCircuit) Trace(logNRows int) stark.Trace {
	trace := stark.NewTrace(BurnTraceColumns, 1<<logNRows)

	actualLo, actualHi := limbHalves(c.Inputs.ActualBalance)
	intendedLo, intendedHi := limbHalves(c.Inputs.IntendedBalance)
	revealLo, revealHi := limbHalves(c.Inputs.RevealAmount)

	trace[0][0] = c.Inputs.BurnKey
	trace[1][0] = actualLo
	trace[2][0] = actualHi
	trace[3][0] = intendedLo
	trace[4][0] = intendedHi
	trace[5][0] = revealLo
	trace[6][0] = revealHi
	trace[7][0] = c.Inputs.BurnExtraCommitment
	trace[8][0] = c.Inputs.ProofExtraCommitment

	var nullifierState poseidon2.State
	nullifierState[0] = c.Parameters.NullifierPrefix()
	nullifierState[1] = c.Inputs.BurnKey
	nullifierFinal, col := writeCriticalBlock(trace, 9, nullifierState)

	var remainingState poseidon2.State
	remainingState[0] = c.Parameters.CoinPrefix()
	remainingState[1] = c.Inputs.BurnKey
	remainingState[2] = intendedLo.Sub(revealLo)
	remainingFinal, col := writeCriticalBlock(trace, col, remainingState)

	var commitmentState poseidon2.State
	commitmentState[0] = nullifierFinal
	commitmentState[1] = remainingFinal
	commitmentState[2] = revealLo
	commitmentState[3] = c.Inputs.BurnExtraCommitment
	commitmentState[4] = c.Inputs.ProofExtraCommitment
	writeCriticalBlock(trace, col, commitmentState)

	return trace
}

// Evaluator returns the constraint evaluator of the circuit.
func (c *BurnCircuit) Evaluator() BurnEvaluator {
	return BurnEvaluator{Parameters: c.Parameters}
}

// criticalBlock is the in-trace image of one Poseidon2 permutation.
type criticalBlock struct {
	initial         poseidon2.State
	afterFirstRound poseidon2.State
	final           m31.Elem
}

func readCriticalBlock(eval stark.RowEval) criticalBlock {
	var blk criticalBlock
	for i := range blk.initial {
		blk.initial[i] = eval.NextCell()
	}
	for i := range blk.afterFirstRound {
		blk.afterFirstRound[i] = eval.NextCell()
	}
	blk.final = eval.NextCell()

	return blk
}

// BurnEvaluator is the constraint evaluator of the burn circuit.
// It wires the witness scalars to the hash input slots of the committed
// critical blocks and chains the nullifier and remaining coin outputs
// into the commitment inputs.
type BurnEvaluator struct {
	Parameters protocol.Parameters
}

// NumColumns implements the [stark.Evaluator] interface.
func (e BurnEvaluator) NumColumns() int {
	return BurnTraceColumns
}

// LookupRelations implements the [stark.Evaluator] interface.
func (e BurnEvaluator) LookupRelations() []stark.LookupRelation {
	return []stark.LookupRelation{
		{Name: "NullifierElements", Size: poseidon2.Width},
		{Name: "RemainingCoinElements", Size: poseidon2.Width},
		{Name: "CommitmentElements", Size: poseidon2.Width},
	}
}

// ClaimedSum implements the [stark.Evaluator] interface.
func (e BurnEvaluator) ClaimedSum() m31.Elem {
	return m31.New(0)
}

// Evaluate implements the [stark.Evaluator] interface.
// Every constraint vanishes on zero padding rows, so the prefix slots are
// pinned with a quadratic instead of a difference.
func (e BurnEvaluator) Evaluate(eval stark.RowEval) {
	burnKey := eval.NextCell()
	eval.NextCell()
	eval.NextCell()
	intendedLo := eval.NextCell()
	eval.NextCell()
	revealLo := eval.NextCell()
	eval.NextCell()
	burnExtra := eval.NextCell()
	proofExtra := eval.NextCell()

	nullifier := readCriticalBlock(eval)
	remaining := readCriticalBlock(eval)
	commitment := readCriticalBlock(eval)

	eval.AddConstraint(nullifier.initial[0].Mul(nullifier.initial[0].Sub(e.Parameters.NullifierPrefix())))
	eval.AddConstraint(nullifier.initial[1].Sub(burnKey))
	for i := 2; i < poseidon2.Width; i++ {
		eval.AddConstraint(nullifier.initial[i])
	}

	eval.AddConstraint(remaining.initial[0].Mul(remaining.initial[0].Sub(e.Parameters.CoinPrefix())))
	eval.AddConstraint(remaining.initial[1].Sub(burnKey))
	eval.AddConstraint(remaining.initial[2].Sub(intendedLo.Sub(revealLo)))
	for i := 3; i < poseidon2.Width; i++ {
		eval.AddConstraint(remaining.initial[i])
	}

	eval.AddConstraint(commitment.initial[0].Sub(nullifier.final))
	eval.AddConstraint(commitment.initial[1].Sub(remaining.final))
	eval.AddConstraint(commitment.initial[2].Sub(revealLo))
	eval.AddConstraint(commitment.initial[3].Sub(burnExtra))
	eval.AddConstraint(commitment.initial[4].Sub(proofExtra))
	for i := 5; i < poseidon2.Width; i++ {
		eval.AddConstraint(commitment.initial[i])
	}
}
