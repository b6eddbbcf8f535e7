package m31_test

import (
	"math"
	"testing"

	"github.com/holiman/uint256"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"

	"github.com/sp301415/ember-stark/m31"
)

func genElem() gopter.Gen {
	return func(genParams *gopter.GenParameters) *gopter.GenResult {
		return gopter.NewGenResult(m31.FromUint64(genParams.NextUint64()), gopter.NoShrinker)
	}
}

func TestFieldLaws(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 1000

	properties := gopter.NewProperties(parameters)

	properties.Property("addition commutes", prop.ForAll(
		func(a, b m31.Elem) bool { return a.Add(b) == b.Add(a) },
		genElem(), genElem(),
	))

	properties.Property("multiplication commutes", prop.ForAll(
		func(a, b m31.Elem) bool { return a.Mul(b) == b.Mul(a) },
		genElem(), genElem(),
	))

	properties.Property("addition associates", prop.ForAll(
		func(a, b, c m31.Elem) bool { return a.Add(b).Add(c) == a.Add(b.Add(c)) },
		genElem(), genElem(), genElem(),
	))

	properties.Property("multiplication associates", prop.ForAll(
		func(a, b, c m31.Elem) bool { return a.Mul(b).Mul(c) == a.Mul(b.Mul(c)) },
		genElem(), genElem(), genElem(),
	))

	properties.Property("multiplication distributes over addition", prop.ForAll(
		func(a, b, c m31.Elem) bool { return a.Mul(b.Add(c)) == a.Mul(b).Add(a.Mul(c)) },
		genElem(), genElem(), genElem(),
	))

	properties.Property("zero is the additive identity", prop.ForAll(
		func(a m31.Elem) bool { return a.Add(m31.New(0)) == a },
		genElem(),
	))

	properties.Property("one is the multiplicative identity", prop.ForAll(
		func(a m31.Elem) bool { return a.Mul(m31.New(1)) == a },
		genElem(),
	))

	properties.Property("subtraction inverts addition", prop.ForAll(
		func(a, b m31.Elem) bool { return a.Add(b).Sub(b) == a },
		genElem(), genElem(),
	))

	properties.Property("negation is the additive inverse", prop.ForAll(
		func(a m31.Elem) bool { return a.Add(a.Neg()).IsZero() },
		genElem(),
	))

	properties.Property("double equals self addition", prop.ForAll(
		func(a m31.Elem) bool { return a.Double() == a.Add(a) },
		genElem(),
	))

	properties.Property("results stay fully reduced", prop.ForAll(
		func(a, b m31.Elem) bool {
			return a.Add(b).Uint32() < m31.P && a.Sub(b).Uint32() < m31.P && a.Mul(b).Uint32() < m31.P
		},
		genElem(), genElem(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestWraparound(t *testing.T) {
	assert.Equal(t, m31.New(0), m31.New(m31.P))
	assert.Equal(t, m31.New(1), m31.New(m31.P-1).Add(m31.New(2)))
	assert.Equal(t, m31.New(m31.P-2), m31.New(m31.P-1).Add(m31.New(m31.P-1)))
	assert.Equal(t, m31.New(m31.P-1), m31.New(0).Sub(m31.New(1)))
	assert.Equal(t, m31.New(m31.P-1), m31.New(1).Neg())
	assert.Equal(t, m31.New(1), m31.New(m31.P-1).Mul(m31.New(m31.P-1)))
	assert.True(t, m31.New(0).Neg().IsZero())
}

func TestConversion(t *testing.T) {
	t.Run("FromUint64", func(t *testing.T) {
		assert.Equal(t, m31.New(0), m31.FromUint64(uint64(m31.P)))
		assert.Equal(t, m31.New(1), m31.FromUint64(uint64(m31.P)+1))
		assert.Equal(t, m31.New(3), m31.FromUint64(math.MaxUint64))
	})

	t.Run("FromInt64", func(t *testing.T) {
		assert.Equal(t, m31.New(123), m31.FromInt64(123))
		assert.Equal(t, m31.New(m31.P-1), m31.FromInt64(-1))
		assert.Equal(t, m31.New(0), m31.FromInt64(-int64(m31.P)))
		assert.Equal(t, m31.New(m31.P-2), m31.FromInt64(math.MinInt64))
	})

	t.Run("FromUint256", func(t *testing.T) {
		assert.Equal(t, m31.New(123), m31.FromUint256(uint256.NewInt(123)))

		max64 := new(uint256.Int).Lsh(uint256.NewInt(1), 64)
		max64.SubUint64(max64, 1)
		assert.Equal(t, m31.New(3), m31.FromUint256(max64))

		pow64 := new(uint256.Int).Lsh(uint256.NewInt(1), 64)
		assert.Equal(t, m31.New(0), m31.FromUint256(pow64))
	})
}
