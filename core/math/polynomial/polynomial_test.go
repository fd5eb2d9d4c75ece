package polynomial_test

import (
	"math/big"
	"testing"

	"github.com/cronokirby/saferith"
	"github.com/mr-shifu/shamir-lib/core/math/arith"
	"github.com/mr-shifu/shamir-lib/core/math/polynomial"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func coefficients(cs ...int64) []*big.Int {
	out := make([]*big.Int, len(cs))
	for i, c := range cs {
		out[i] = big.NewInt(c)
	}
	return out
}

func TestPolynomial_Evaluate(t *testing.T) {
	m, err := arith.ModulusFromUint64(11)
	require.NoError(t, err)

	// f(x) = 3 + 5x
	f, err := polynomial.NewPolynomial(m, coefficients(3, 5))
	require.NoError(t, err)

	assert.Equal(t, uint64(8), f.Evaluate(new(saferith.Nat).SetUint64(1)).Big().Uint64())
	// 13 mod 11 = 2
	assert.Equal(t, uint64(2), f.Evaluate(new(saferith.Nat).SetUint64(2)).Big().Uint64())
}

func TestPolynomial_Evaluate_MatchesPowerForm(t *testing.T) {
	p := big.NewInt(1009)
	m, err := arith.NewModulus(p)
	require.NoError(t, err)

	// f(x) = 7 + 3x + 11x² + 2x³
	cs := coefficients(7, 3, 11, 2)
	f, err := polynomial.NewPolynomial(m, cs)
	require.NoError(t, err)

	for x := int64(1); x <= 20; x++ {
		want := new(big.Int)
		for i, c := range cs {
			term := new(big.Int).Exp(big.NewInt(x), big.NewInt(int64(i)), p)
			term.Mul(term, c)
			want.Add(want, term)
		}
		want.Mod(want, p)

		got := f.Evaluate(new(saferith.Nat).SetUint64(uint64(x)))
		assert.Equal(t, want.Uint64(), got.Big().Uint64(), "x = %d", x)
	}
}

func TestPolynomial_ConstantAndDegree(t *testing.T) {
	m, err := arith.ModulusFromUint64(101)
	require.NoError(t, err)

	f, err := polynomial.NewPolynomial(m, coefficients(97, 54, 54))
	require.NoError(t, err)

	assert.Equal(t, uint32(2), f.Degree())
	assert.Equal(t, uint64(97), f.Constant().Big().Uint64())

	// negative and nil coefficients are reduced into the field
	g, err := polynomial.NewPolynomial(m, []*big.Int{big.NewInt(-4), nil, big.NewInt(103)})
	require.NoError(t, err)
	assert.Equal(t, uint64(97), g.Constant().Big().Uint64())
	assert.Equal(t, uint64(99), g.Evaluate(new(saferith.Nat).SetUint64(1)).Big().Uint64())
}

func TestPolynomial_EvaluateZero_Panics(t *testing.T) {
	m, err := arith.ModulusFromUint64(11)
	require.NoError(t, err)

	f, err := polynomial.NewPolynomial(m, coefficients(3, 5))
	require.NoError(t, err)

	assert.Panics(t, func() { f.Evaluate(new(saferith.Nat).SetUint64(0)) })
	// 11 ≡ 0 (mod 11)
	assert.Panics(t, func() { f.Evaluate(new(saferith.Nat).SetUint64(11)) })
}

func TestPolynomial_NoCoefficients(t *testing.T) {
	m, err := arith.ModulusFromUint64(11)
	require.NoError(t, err)

	_, err = polynomial.NewPolynomial(m, nil)
	assert.ErrorIs(t, err, polynomial.ErrNoCoefficients)
}

func TestPolynomial_MarshalBinary(t *testing.T) {
	m, err := arith.ModulusFromUint64(5575621)
	require.NoError(t, err)

	f, err := polynomial.NewPolynomial(m, coefficients(1935737, 42, 7, 1))
	require.NoError(t, err)

	data, err := f.MarshalBinary()
	require.NoError(t, err)

	g := &polynomial.Polynomial{}
	require.NoError(t, g.UnmarshalBinary(data))

	assert.Equal(t, f.Degree(), g.Degree())
	x := new(saferith.Nat).SetUint64(12345)
	assert.Equal(t, saferith.Choice(1), f.Evaluate(x).Eq(g.Evaluate(x)))
}
