package stark

import (
	"fmt"

	"github.com/sp301415/ember-stark/num"
)

// Verifier verifies STARK proofs.
type Verifier struct {
	Parameters Parameters

	Oracle *RandomOracle
}

// NewVerifier creates a new Verifier.
func NewVerifier(params Parameters) *Verifier {
	return &Verifier{
		Parameters: params,

		Oracle: NewRandomOracle(),
	}
}

// ShallowCopy creates a copy of Verifier that is thread-safe.
func (v *Verifier) ShallowCopy() *Verifier {
	return &Verifier{
		Parameters: v.Parameters,

		Oracle: NewRandomOracle(),
	}
}

// Verify checks pf against ev by replaying the transcript and re-evaluating
// the constraint identities on every opened row.
// Returns nil if the proof is valid, and a VerificationError otherwise.
func (v *Verifier) Verify(ev Evaluator, pf Proof) error {
	v.Oracle.Reset()
	bindTranscript(v.Oracle, v.Parameters, ev)

	v.Oracle.WriteHash(emptyRoot)
	v.Oracle.WriteHash(pf.TraceRoot)
	drawLookupChallenges(v.Oracle, ev)

	v.Oracle.Finalize()
	alpha := v.Oracle.SampleElem()

	v.Oracle.WriteHash(pf.CompositionRoot)

	if !CheckPow(v.Oracle.SamplePowSeed(), pf.PowNonce, v.Parameters.PowBits()) {
		return VerificationError{Reason: "grinding nonce rejected", Query: -1}
	}
	v.Oracle.WriteUint64(pf.PowNonce)

	v.Oracle.Finalize()
	queries := v.Oracle.SampleQueries(v.Parameters.FriNQueries(), v.Parameters.NRows())

	if len(pf.Openings) != len(queries) {
		return VerificationError{Reason: fmt.Sprintf("expected %v openings, got %v", len(queries), len(pf.Openings)), Query: -1}
	}

	for i, q := range queries {
		leaf := num.BitReverse(q, v.Parameters.LogNRows())

		traceProof := toByteSlices(pf.Openings[i].TraceProof)
		compositionProof := toByteSlices(pf.Openings[i].CompositionProof)
		if len(traceProof) == 0 || len(compositionProof) == 0 {
			return VerificationError{Reason: "empty proof set", Query: q}
		}

		if !verifyRow(pf.TraceRoot, traceProof, leaf, v.Parameters.NRows()) {
			return VerificationError{Reason: "trace opening rejected", Query: q}
		}
		if !verifyRow(pf.CompositionRoot, compositionProof, leaf, v.Parameters.NRows()) {
			return VerificationError{Reason: "composition opening rejected", Query: q}
		}

		row, ok := decodeRow(traceProof[0])
		if !ok || len(row) != ev.NumColumns() {
			return VerificationError{Reason: "malformed trace row", Query: q}
		}
		compositionCell, ok := decodeRow(compositionProof[0])
		if !ok || len(compositionCell) != 1 {
			return VerificationError{Reason: "malformed composition cell", Query: q}
		}

		eval := newRowEvaluator(row, alpha)
		ev.Evaluate(eval)
		if eval.ptr != len(eval.row) {
			panic(fmt.Errorf("evaluator read %v cells, row has %v", eval.ptr, len(eval.row)))
		}

		if eval.acc != compositionCell[0] {
			return VerificationError{Reason: "composition cell mismatch", Query: q}
		}
		if !eval.acc.IsZero() {
			return VerificationError{Reason: "constraints do not vanish", Query: q}
		}
	}

	return nil
}
