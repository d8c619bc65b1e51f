// Package calc provides the scalar arithmetic primitives the analytics
// packages are built on. All operations are pure.
package calc

import (
	"errors"
	"math"
)

// ErrDivisionByZero is returned by Divide when the denominator is exactly zero.
// It is the only error the arithmetic layer produces; higher layers propagate
// it unmodified.
var ErrDivisionByZero = errors.New("division by zero")

func Add(a, b float64) float64 {
	return a + b
}

func Subtract(a, b float64) float64 {
	return a - b
}

func Multiply(a, b float64) float64 {
	return a * b
}

// Divide returns a/b, or ErrDivisionByZero when b == 0. It never returns
// ±Inf or NaN silently for a zero denominator.
func Divide(a, b float64) (float64, error) {
	if b == 0 {
		return 0, ErrDivisionByZero
	}
	return a / b, nil
}

// Power returns base**exponent. Domain edge cases (negative base with a
// fractional exponent, etc.) follow math.Pow semantics unchecked.
func Power(base, exponent float64) float64 {
	return math.Pow(base, exponent)
}
