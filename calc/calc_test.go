package calc_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/meenmo/bondcalc/calc"
)

func TestDivide(t *testing.T) {
	t.Parallel()

	t.Run("nonzero denominator", func(t *testing.T) {
		got, err := calc.Divide(9, 3)
		require.NoError(t, err)
		require.Equal(t, 3.0, got)
	})

	t.Run("zero denominator", func(t *testing.T) {
		for _, numerator := range []float64{1, -2.5, 0, math.MaxFloat64} {
			_, err := calc.Divide(numerator, 0)
			require.ErrorIs(t, err, calc.ErrDivisionByZero)
		}
	})
}

func TestPrimitives(t *testing.T) {
	t.Parallel()

	require.Equal(t, 5.0, calc.Add(2, 3))
	require.Equal(t, -1.0, calc.Subtract(2, 3))
	require.Equal(t, 6.0, calc.Multiply(2, 3))
	require.Equal(t, 8.0, calc.Power(2, 3))
}

func TestPowerFollowsMathPow(t *testing.T) {
	t.Parallel()

	// Negative base with fractional exponent passes through unchecked.
	require.True(t, math.IsNaN(calc.Power(-2, 0.5)))
}
