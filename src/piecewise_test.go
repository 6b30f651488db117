package gnssgo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestPiecewisePolynomial_Scenario(t *testing.T) {
	pp, err := NewPiecewisePolynomial([]float64{0, 1, 2}, [][]float64{{0, 1, 0}, {0, 1, 1}})
	require.NoError(t, err)

	xs := []float64{-1, 0, 0.5, 1, 1.5, 3}
	want := []float64{-1, 0, 0.5, 1, 1.5, 3}
	got := pp.EvalAll(xs)
	for i := range want {
		assert.InDeltaf(t, want[i], got[i], 1e-9, "x=%v", xs[i])
	}
}

func TestPiecewisePolynomial_ConstructionErrors(t *testing.T) {
	_, err := NewPiecewisePolynomial([]float64{0}, nil)
	assert.ErrorIs(t, err, ErrTooFewBreaks)

	_, err = NewPiecewisePolynomial([]float64{1, 0}, [][]float64{{1}})
	assert.ErrorIs(t, err, ErrNonIncreasingBreaks)

	_, err = NewPiecewisePolynomial([]float64{0, 1, 2}, [][]float64{{1}})
	assert.ErrorIs(t, err, ErrBadCoefCount)
}

// evaluation at a breakpoint equals Horner on the piece ending there, and
// evaluation at Breaks[0] equals the leading piece's constant term.
func TestPiecewisePolynomial_BreakpointInvariant(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(2, 6).Draw(t, "n")
		breaks := make([]float64, n)
		breaks[0] = rapid.Float64Range(-10, 10).Draw(t, "b0")
		for i := 1; i < n; i++ {
			breaks[i] = breaks[i-1] + rapid.Float64Range(0.1, 5).Draw(t, "gap")
		}
		order := rapid.IntRange(1, 4).Draw(t, "order")
		coefs := make([][]float64, n-1)
		for i := range coefs {
			row := make([]float64, order)
			for k := range row {
				row[k] = rapid.Float64Range(-5, 5).Draw(t, "coef")
			}
			coefs[i] = row
		}
		pp, err := NewPiecewisePolynomial(breaks, coefs)
		require.NoError(t, err)

		assert.InDelta(t, pp.Coefs[0][pp.Order()-1], pp.Eval(breaks[0]), 1e-9)

		for i := 1; i < n-1; i++ {
			// the piece ending at breaks[i] is piece i-1.
			dx := breaks[i] - breaks[i-1]
			row := pp.Coefs[i-1]
			want := row[0]
			for k := 1; k < len(row); k++ {
				want = want*dx + row[k]
			}
			assert.InDelta(t, want, pp.Eval(breaks[i]), 1e-6)
		}
	})
}

func TestPiecewisePolynomial_Equal(t *testing.T) {
	a, _ := NewPiecewisePolynomial([]float64{0, 1}, [][]float64{{1, 2}})
	b, _ := NewPiecewisePolynomial([]float64{0, 1}, [][]float64{{1, 2}})
	c, _ := NewPiecewisePolynomial([]float64{0, 1}, [][]float64{{1, 3}})
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}
