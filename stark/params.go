package stark

import (
	"fmt"
)

// logExpand is the gap between the trace degree and the composition
// polynomial degree bound.
const logExpand = 2

// ParametersLiteral is a structure for STARK parameters.
type ParametersLiteral struct {
	// LogNRows is the log2 of the number of trace rows.
	// Must be between 4 and 20.
	LogNRows int
	// PowBits is the number of leading zero bits the grinding nonce
	// must produce in the transcript digest.
	PowBits int
	// FriLogBlowup is the log2 of the low degree extension blowup factor.
	// Must be at least 1.
	FriLogBlowup int
	// FriLogLastLayer is the log2 of the degree of the last FRI layer.
	FriLogLastLayer int
	// FriNQueries is the number of decommitment queries.
	// Must be positive.
	FriNQueries int
}

// Compile transforms ParametersLiteral to read-only Parameters.
// If there are invalid parameters in the literal, it panics.
func (p ParametersLiteral) Compile() Parameters {
	switch {
	case p.LogNRows < 4 || p.LogNRows > 20:
		panic(fmt.Errorf("LogNRows should be between 4 and 20"))
	case p.PowBits < 0:
		panic(fmt.Errorf("PowBits should be non-negative"))
	case p.FriLogBlowup < 1:
		panic(fmt.Errorf("FriLogBlowup should be at least 1"))
	case p.FriLogLastLayer < 0:
		panic(fmt.Errorf("FriLogLastLayer should be non-negative"))
	case p.FriNQueries <= 0:
		panic(fmt.Errorf("FriNQueries should be positive"))
	}

	return Parameters{
		logNRows: p.LogNRows,
		nRows:    1 << p.LogNRows,

		powBits: p.PowBits,

		friLogBlowup:    p.FriLogBlowup,
		friLogLastLayer: p.FriLogLastLayer,
		friNQueries:     p.FriNQueries,

		maxConstraintLogDegreeBound: p.LogNRows + logExpand,
	}
}

// Parameters is a read-only structure for STARK parameters.
type Parameters struct {
	logNRows int
	nRows    int

	powBits int

	friLogBlowup    int
	friLogLastLayer int
	friNQueries     int

	maxConstraintLogDegreeBound int
}

// LogNRows returns the log2 of the number of trace rows.
func (p Parameters) LogNRows() int {
	return p.logNRows
}

// NRows returns the number of trace rows.
func (p Parameters) NRows() int {
	return p.nRows
}

// PowBits returns the number of leading zero bits required of the
// grinding nonce digest.
func (p Parameters) PowBits() int {
	return p.powBits
}

// FriLogBlowup returns the log2 of the low degree extension blowup factor.
func (p Parameters) FriLogBlowup() int {
	return p.friLogBlowup
}

// FriLogLastLayer returns the log2 of the degree of the last FRI layer.
func (p Parameters) FriLogLastLayer() int {
	return p.friLogLastLayer
}

// FriNQueries returns the number of decommitment queries.
func (p Parameters) FriNQueries() int {
	return p.friNQueries
}

// MaxConstraintLogDegreeBound returns the log2 of the composition
// polynomial degree bound.
func (p Parameters) MaxConstraintLogDegreeBound() int {
	return p.maxConstraintLogDegreeBound
}
