package stark_test

import (
	"testing"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/stretchr/testify/assert"

	"github.com/sp301415/ember-stark/csprng"
	"github.com/sp301415/ember-stark/m31"
	"github.com/sp301415/ember-stark/stark"
)

var (
	params = stark.ParamsLogN8.Compile()
)

// mulEvaluator checks col0 * col1 = col2 on every row.
type mulEvaluator struct {
	relations []stark.LookupRelation
}

func (e mulEvaluator) NumColumns() int {
	return 3
}

func (e mulEvaluator) LookupRelations() []stark.LookupRelation {
	return e.relations
}

func (e mulEvaluator) ClaimedSum() m31.Elem {
	return m31.New(0)
}

func (e mulEvaluator) Evaluate(eval stark.RowEval) {
	x := eval.NextCell()
	y := eval.NextCell()
	z := eval.NextCell()
	eval.AddConstraint(x.Mul(y).Sub(z))
}

// newMulTrace returns a trace satisfying mulEvaluator on every row.
func newMulTrace(numRows int) stark.Trace {
	us := csprng.NewUniformSamplerWithSeed([]byte("mul-trace"))

	trace := stark.NewTrace(3, numRows)
	for i := 0; i < numRows; i++ {
		x, y := us.SampleElem(), us.SampleElem()
		trace[0][i] = x
		trace[1][i] = y
		trace[2][i] = x.Mul(y)
	}
	return trace
}

func TestParams(t *testing.T) {
	t.Run("Compile", func(t *testing.T) {
		assert.NotPanics(t, func() { stark.ParamsLogN16.Compile() })
		assert.NotPanics(t, func() { stark.ParamsLogN8.Compile() })
	})

	t.Run("CompileFail", func(t *testing.T) {
		logNRowsSmall := stark.ParamsLogN8
		logNRowsSmall.LogNRows = 3
		assert.Panics(t, func() { logNRowsSmall.Compile() })

		logNRowsLarge := stark.ParamsLogN8
		logNRowsLarge.LogNRows = 21
		assert.Panics(t, func() { logNRowsLarge.Compile() })

		blowupZero := stark.ParamsLogN8
		blowupZero.FriLogBlowup = 0
		assert.Panics(t, func() { blowupZero.Compile() })

		queriesZero := stark.ParamsLogN8
		queriesZero.FriNQueries = 0
		assert.Panics(t, func() { queriesZero.Compile() })
	})

	t.Run("DegreeBound", func(t *testing.T) {
		assert.Equal(t, params.LogNRows()+2, params.MaxConstraintLogDegreeBound())
	})
}

func TestOracle(t *testing.T) {
	t.Run("Deterministic", func(t *testing.T) {
		oracle0 := stark.NewRandomOracle()
		oracle1 := stark.NewRandomOracle()

		oracle0.WriteUint64(1 << 40)
		oracle0.WriteElem(m31.New(12345))
		oracle1.WriteUint64(1 << 40)
		oracle1.WriteElem(m31.New(12345))

		oracle0.Finalize()
		oracle1.Finalize()

		for i := 0; i < 64; i++ {
			assert.Equal(t, oracle0.SampleElem(), oracle1.SampleElem())
		}
	})

	t.Run("Diverges", func(t *testing.T) {
		oracle0 := stark.NewRandomOracle()
		oracle1 := stark.NewRandomOracle()

		oracle0.WriteUint64(0)
		oracle1.WriteUint64(1)

		oracle0.Finalize()
		oracle1.Finalize()

		assert.NotEqual(t, oracle0.SamplePowSeed(), oracle1.SamplePowSeed())
	})

	t.Run("SampleQueries", func(t *testing.T) {
		oracle := stark.NewRandomOracle()
		oracle.WriteUint64(42)
		oracle.Finalize()

		queries := oracle.SampleQueries(params.FriNQueries(), params.NRows())
		assert.Equal(t, params.FriNQueries(), len(queries))
		for i := range queries {
			assert.GreaterOrEqual(t, queries[i], 0)
			assert.Less(t, queries[i], params.NRows())
			if i > 0 {
				assert.Greater(t, queries[i], queries[i-1])
			}
		}
	})

	t.Run("Pow", func(t *testing.T) {
		oracle := stark.NewRandomOracle()
		oracle.WriteUint64(42)
		seed := oracle.SamplePowSeed()

		nonce := stark.GrindPow(seed, 4)
		assert.True(t, stark.CheckPow(seed, nonce, 4))
		for n := uint64(0); n < nonce; n++ {
			assert.False(t, stark.CheckPow(seed, n, 4))
		}
	})
}

func TestProve(t *testing.T) {
	prover := stark.NewProver(params)
	verifier := stark.NewVerifier(params)

	t.Run("RoundTrip", func(t *testing.T) {
		ev := mulEvaluator{}
		pf := prover.Prove(newMulTrace(params.NRows()), ev)

		assert.NoError(t, verifier.Verify(ev, pf))
	})

	t.Run("RoundTripWithLookup", func(t *testing.T) {
		ev := mulEvaluator{relations: []stark.LookupRelation{{Name: "MulElements", Size: 16}}}
		pf := prover.Prove(newMulTrace(params.NRows()), ev)

		assert.NoError(t, verifier.Verify(ev, pf))
	})

	t.Run("ShapeMismatch", func(t *testing.T) {
		narrow := stark.NewTrace(2, params.NRows())
		assert.Panics(t, func() { prover.Prove(narrow, mulEvaluator{}) })

		short := stark.NewTrace(3, params.NRows()/2)
		assert.Panics(t, func() { prover.Prove(short, mulEvaluator{}) })
	})
}

func TestVerify(t *testing.T) {
	prover := stark.NewProver(params)
	verifier := stark.NewVerifier(params)

	ev := mulEvaluator{}
	pf := prover.Prove(newMulTrace(params.NRows()), ev)

	t.Run("FlippedTraceRoot", func(t *testing.T) {
		pfBad := pf
		pfBad.TraceRoot[0] ^= 1

		assert.Error(t, verifier.Verify(ev, pfBad))
	})

	t.Run("FlippedCompositionRoot", func(t *testing.T) {
		pfBad := pf
		pfBad.CompositionRoot[0] ^= 1

		assert.Error(t, verifier.Verify(ev, pfBad))
	})

	t.Run("WrongPowNonce", func(t *testing.T) {
		pfBad := pf
		pfBad.PowNonce++

		assert.Error(t, verifier.Verify(ev, pfBad))
	})

	t.Run("DroppedOpening", func(t *testing.T) {
		pfBad := pf
		pfBad.Openings = pf.Openings[:len(pf.Openings)-1]

		assert.Error(t, verifier.Verify(ev, pfBad))
	})

	t.Run("TamperedOpening", func(t *testing.T) {
		pfBad := pf
		pfBad.Openings = make([]stark.RowOpening, len(pf.Openings))
		copy(pfBad.Openings, pf.Openings)

		rowData := make([]byte, len(pf.Openings[0].TraceProof[0]))
		copy(rowData, pf.Openings[0].TraceProof[0])
		rowData[0] ^= 1

		traceProof := make([]hexutil.Bytes, len(pf.Openings[0].TraceProof))
		copy(traceProof, pf.Openings[0].TraceProof)
		traceProof[0] = rowData
		pfBad.Openings[0] = stark.RowOpening{
			TraceProof:       traceProof,
			CompositionProof: pf.Openings[0].CompositionProof,
		}

		err := verifier.Verify(ev, pfBad)
		assert.Error(t, err)

		var vErr stark.VerificationError
		assert.ErrorAs(t, err, &vErr)
	})

	t.Run("UnsatisfiedTrace", func(t *testing.T) {
		badTrace := newMulTrace(params.NRows())
		for i := 0; i < params.NRows(); i++ {
			badTrace[2][i] = badTrace[2][i].Add(m31.New(1))
		}

		pfBad := prover.Prove(badTrace, ev)
		err := verifier.Verify(ev, pfBad)
		assert.Error(t, err)

		var vErr stark.VerificationError
		assert.ErrorAs(t, err, &vErr)
		assert.Equal(t, "constraints do not vanish", vErr.Reason)
	})

	t.Run("WrongEvaluator", func(t *testing.T) {
		evOther := mulEvaluator{relations: []stark.LookupRelation{{Name: "OtherElements", Size: 16}}}

		assert.Error(t, verifier.Verify(evOther, pf))
	})
}
