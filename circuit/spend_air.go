package circuit

import (
	"github.com/sp301415/ember-stark/m31"
	"github.com/sp301415/ember-stark/poseidon2"
	"github.com/sp301415/ember-stark/stark"
)

// SpendTraceColumns is the number of columns of the spend trace:
// six witness scalars, the three hash outputs, the second and third
// permutation output words of each hash, and one pinned zero column.
const SpendTraceColumns = 16

// Trace builds the execution trace of c with 2^logNRows rows.
// The witness occupies row zero; all other rows are zero padding.
func (c *SpendCircuit) Trace(logNRows int) stark.Trace {
	trace := stark.NewTrace(SpendTraceColumns, 1<<logNRows)

	balanceLo, balanceHi := limbHalves(c.Inputs.Balance)
	withdrawnLo, withdrawnHi := limbHalves(c.Inputs.WithdrawnBalance)

	var coinState poseidon2.State
	coinState[0] = c.Parameters.CoinPrefix()
	coinState[1] = c.Inputs.BurnKey
	coinState[2] = balanceLo
	coinOut := poseidon2.Permute(coinState)

	var remainingState poseidon2.State
	remainingState[0] = c.Parameters.CoinPrefix()
	remainingState[1] = c.Inputs.BurnKey
	remainingState[2] = balanceLo.Sub(withdrawnLo)
	remainingOut := poseidon2.Permute(remainingState)

	var commitmentState poseidon2.State
	commitmentState[0] = coinOut[0]
	commitmentState[1] = withdrawnLo
	commitmentState[2] = remainingOut[0]
	commitmentState[3] = c.Inputs.ExtraCommitment
	commitmentOut := poseidon2.Permute(commitmentState)

	trace[0][0] = c.Inputs.BurnKey
	trace[1][0] = balanceLo
	trace[2][0] = balanceHi
	trace[3][0] = withdrawnLo
	trace[4][0] = withdrawnHi
	trace[5][0] = c.Inputs.ExtraCommitment
	trace[6][0] = coinOut[0]
	trace[7][0] = remainingOut[0]
	trace[8][0] = commitmentOut[0]
	trace[9][0] = coinOut[1]
	trace[10][0] = coinOut[2]
	trace[11][0] = remainingOut[1]
	trace[12][0] = remainingOut[2]
	trace[13][0] = commitmentOut[1]
	trace[14][0] = commitmentOut[2]

	return trace
}

// Evaluator returns the constraint evaluator of the circuit.
func (c *SpendCircuit) Evaluator() SpendEvaluator {
	return SpendEvaluator{}
}

// SpendEvaluator is the constraint evaluator of the spend circuit.
type SpendEvaluator struct{}

// NumColumns implements the [stark.Evaluator] interface.
func (e SpendEvaluator) NumColumns() int {
	return SpendTraceColumns
}

// LookupRelations implements the [stark.Evaluator] interface.
func (e SpendEvaluator) LookupRelations() []stark.LookupRelation {
	return nil
}

// ClaimedSum implements the [stark.Evaluator] interface.
func (e SpendEvaluator) ClaimedSum() m31.Elem {
	return m31.New(0)
}

// Evaluate implements the [stark.Evaluator] interface.
// The last column is pinned to zero on every row.
func (e SpendEvaluator) Evaluate(eval stark.RowEval) {
	for i := 0; i < SpendTraceColumns-1; i++ {
		eval.NextCell()
	}
	eval.AddConstraint(eval.NextCell())
}
