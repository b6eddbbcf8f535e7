package stark

import (
	"github.com/sp301415/ember-stark/m31"
)

// Trace is an execution trace: an ordered list of equal-length columns of
// field elements. Column order is part of the circuit contract, since
// evaluators read cells by position.
type Trace []m31.Vec

// NewTrace creates a new Trace with numColumns columns of numRows rows.
func NewTrace(numColumns, numRows int) Trace {
	t := make(Trace, numColumns)
	for i := range t {
		t[i] = m31.NewVec(numRows)
	}
	return t
}

// NumColumns returns the number of columns of t.
func (t Trace) NumColumns() int {
	return len(t)
}

// NumRows returns the number of rows of t.
func (t Trace) NumRows() int {
	if len(t) == 0 {
		return 0
	}
	return len(t[0])
}

// Row returns row i of t as a fresh vector.
func (t Trace) Row(i int) m31.Vec {
	row := m31.NewVec(len(t))
	for j, col := range t {
		row[j] = col[i]
	}
	return row
}

// RowEval gives an Evaluator sequential access to the cells of one trace
// row.
type RowEval interface {
	// NextCell returns the next cell of the row, in column order.
	NextCell() m31.Elem
	// AddConstraint asserts that v vanishes on this row.
	AddConstraint(v m31.Elem)
}

// LookupRelation is a named challenge draw of the commit schedule.
type LookupRelation struct {
	// Name of the relation.
	Name string
	// Size is the number of challenge elements drawn for the relation.
	Size int
}

// Evaluator defines the polynomial identities every trace row must satisfy.
// An implementation must read exactly NumColumns cells per row through
// RowEval, in column order.
type Evaluator interface {
	// NumColumns is the trace width the evaluator reads.
	NumColumns() int
	// LookupRelations lists the challenge draws between the main trace and
	// interaction trace commitments, in order. An evaluator without lookup
	// relations has no interaction trace.
	LookupRelations() []LookupRelation
	// ClaimedSum is the public accumulator value of the interaction trace.
	ClaimedSum() m31.Elem
	// Evaluate reads one row through eval and asserts its identities.
	Evaluate(eval RowEval)
}

// rowEvaluator implements RowEval over one materialized row, folding the
// asserted constraints into a random linear combination with powers of alpha.
type rowEvaluator struct {
	row m31.Vec
	ptr int

	alpha m31.Elem
	pow   m31.Elem
	acc   m31.Elem
}

func newRowEvaluator(row m31.Vec, alpha m31.Elem) *rowEvaluator {
	return &rowEvaluator{
		row:   row,
		alpha: alpha,
		pow:   m31.New(1),
	}
}

// NextCell implements the [RowEval] interface.
func (e *rowEvaluator) NextCell() m31.Elem {
	c := e.row[e.ptr]
	e.ptr++
	return c
}

// AddConstraint implements the [RowEval] interface.
func (e *rowEvaluator) AddConstraint(v m31.Elem) {
	e.acc = e.acc.Add(v.Mul(e.pow))
	e.pow = e.pow.Mul(e.alpha)
}
