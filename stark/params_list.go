package stark

var (
	// ParamsLogN16 is the default parameter set with 2^16 trace rows.
	ParamsLogN16 = ParametersLiteral{
		LogNRows: 16,

		PowBits: 10,

		FriLogBlowup:    1,
		FriLogLastLayer: 2,
		FriNQueries:     64,
	}

	// ParamsLogN8 is a small parameter set with 2^8 trace rows,
	// mainly for tests and examples.
	ParamsLogN8 = ParametersLiteral{
		LogNRows: 8,

		PowBits: 4,

		FriLogBlowup:    1,
		FriLogLastLayer: 2,
		FriNQueries:     16,
	}
)
