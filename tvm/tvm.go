// Package tvm implements time-value-of-money functions on top of the calc
// primitives. The dependency direction is strictly one-way: bond -> tvm -> calc.
package tvm

import "github.com/meenmo/bondcalc/calc"

// PresentValue discounts a single cash flow:
//
//	PV = CF / (1 + r)^t
//
// rate is the per-period rate and period the number of periods until the flow.
// It returns calc.ErrDivisionByZero when the discount factor is exactly zero
// (rate == -1 with a suitable period).
func PresentValue(cashFlow, rate float64, period float64) (float64, error) {
	discountFactor := calc.Power(calc.Add(1, rate), period)
	return calc.Divide(cashFlow, discountFactor)
}

// FutureValue compounds a single cash flow:
//
//	FV = CF * (1 + r)^t
func FutureValue(cashFlow, rate float64, period float64) float64 {
	growthFactor := calc.Power(calc.Add(1, rate), period)
	return calc.Multiply(cashFlow, growthFactor)
}
