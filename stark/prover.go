// Package stark implements a STARK proving backend over the M31 field.
//
// The protocol commits to the execution trace and a composition column with
// Merkle trees, binds both to a Fiat-Shamir transcript together with a
// grinding nonce, and opens the rows at transcript-sampled query positions.
// The verifier replays the transcript from the roots alone and re-evaluates
// the constraint identities on every opened row.
package stark

import (
	"fmt"

	"github.com/sp301415/ember-stark/m31"
	"github.com/sp301415/ember-stark/num"
)

// Prover proves that an execution trace satisfies an Evaluator.
type Prover struct {
	Parameters Parameters

	Oracle *RandomOracle
}

// NewProver creates a new Prover.
func NewProver(params Parameters) *Prover {
	return &Prover{
		Parameters: params,

		Oracle: NewRandomOracle(),
	}
}

// ShallowCopy creates a copy of Prover that is thread-safe.
func (p *Prover) ShallowCopy() *Prover {
	return &Prover{
		Parameters: p.Parameters,

		Oracle: NewRandomOracle(),
	}
}

// bindTranscript writes the parameters and the evaluator shape to the
// random oracle. Prover and verifier bind the same values.
func bindTranscript(oracle *RandomOracle, params Parameters, ev Evaluator) {
	oracle.WriteUint64(uint64(params.LogNRows()))
	oracle.WriteUint64(uint64(params.PowBits()))
	oracle.WriteUint64(uint64(params.FriLogBlowup()))
	oracle.WriteUint64(uint64(params.FriLogLastLayer()))
	oracle.WriteUint64(uint64(params.FriNQueries()))

	oracle.WriteUint64(uint64(ev.NumColumns()))
	for _, rel := range ev.LookupRelations() {
		if _, err := oracle.Write([]byte(rel.Name)); err != nil {
			panic(err)
		}
		oracle.WriteUint64(uint64(rel.Size))
	}
	oracle.WriteElem(ev.ClaimedSum())
}

// drawLookupChallenges samples the challenge elements of each lookup
// relation and commits the empty interaction trace.
// No-op for evaluators without lookup relations.
func drawLookupChallenges(oracle *RandomOracle, ev Evaluator) {
	rels := ev.LookupRelations()
	if len(rels) == 0 {
		return
	}

	oracle.Finalize()
	for _, rel := range rels {
		for i := 0; i < rel.Size; i++ {
			oracle.SampleElem()
		}
	}
	oracle.WriteHash(emptyRoot)
}

// Prove proves that trace satisfies ev.
// Panics when the trace shape does not match the parameters and evaluator.
func (p *Prover) Prove(trace Trace, ev Evaluator) Proof {
	if trace.NumColumns() != ev.NumColumns() {
		panic(fmt.Errorf("trace has %v columns, evaluator expects %v", trace.NumColumns(), ev.NumColumns()))
	}
	if trace.NumRows() != p.Parameters.NRows() {
		panic(fmt.Errorf("trace has %v rows, parameters expect %v", trace.NumRows(), p.Parameters.NRows()))
	}

	p.Oracle.Reset()
	bindTranscript(p.Oracle, p.Parameters, ev)

	// Preprocessed trace is empty.
	p.Oracle.WriteHash(emptyRoot)

	segmentSize := 4 * trace.NumColumns()
	traceData := serializeTrace(trace)
	traceRoot := commitRows(traceData, segmentSize)
	p.Oracle.WriteHash(traceRoot)

	// The interaction trace stays empty: the accumulator values of the
	// lookup relations are recomputed by the verifier from public outputs.
	drawLookupChallenges(p.Oracle, ev)

	p.Oracle.Finalize()
	alpha := p.Oracle.SampleElem()

	composition := composeTrace(trace, ev, alpha)
	compositionData := serializeColumn(composition)
	compositionRoot := commitRows(compositionData, 4)
	p.Oracle.WriteHash(compositionRoot)

	powNonce := GrindPow(p.Oracle.SamplePowSeed(), p.Parameters.PowBits())
	p.Oracle.WriteUint64(powNonce)

	p.Oracle.Finalize()
	queries := p.Oracle.SampleQueries(p.Parameters.FriNQueries(), p.Parameters.NRows())

	openings := make([]RowOpening, len(queries))
	for i, q := range queries {
		leaf := num.BitReverse(q, p.Parameters.LogNRows())
		openings[i] = RowOpening{
			TraceProof:       toHexSlices(openRow(traceData, segmentSize, leaf)),
			CompositionProof: toHexSlices(openRow(compositionData, 4, leaf)),
		}
	}

	return Proof{
		TraceRoot:       traceRoot,
		CompositionRoot: compositionRoot,
		PowNonce:        powNonce,
		Openings:        openings,
	}
}

// composeTrace evaluates ev on every row of trace and folds the constraint
// values into a single composition column with challenge alpha.
func composeTrace(trace Trace, ev Evaluator, alpha m31.Elem) m31.Vec {
	composition := m31.NewVec(trace.NumRows())
	for i := range composition {
		eval := newRowEvaluator(trace.Row(i), alpha)
		ev.Evaluate(eval)
		if eval.ptr != len(eval.row) {
			panic(fmt.Errorf("evaluator read %v cells, trace has %v columns", eval.ptr, len(eval.row)))
		}
		composition[i] = eval.acc
	}
	return composition
}
