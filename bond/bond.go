// Package bond models a fixed-coupon bond and computes its price and
// interest-rate risk measures (Macaulay/modified duration, convexity).
//
// Discounting is period-indexed: the instrument is described by its terms
// (face, coupon, yield, maturity, payment frequency) rather than by dated
// market cashflows. DatedCashflows maps the schedule onto calendar dates
// when needed for display.
package bond

// Terms holds the contractual parameters of a fixed-coupon bond.
type Terms struct {
	// FaceValue is the principal repaid at maturity, in currency units.
	FaceValue float64
	// CouponRate is the annual coupon as a fraction of face (e.g. 0.06).
	CouponRate float64
	// YieldToMaturity is the annual discount rate as a fraction (e.g. 0.08).
	YieldToMaturity float64
	// MaturityYears is the whole number of years to maturity.
	MaturityYears int
	// PaymentsPerYear is the coupon frequency (1 = annual, 2 = semi-annual).
	// Zero means the default of 1.
	PaymentsPerYear int
}

// Bond is a fixed-coupon bond with its per-period quantities derived once at
// construction. The value is immutable; every analytics method is a pure
// query against it.
type Bond struct {
	Terms

	// TotalPeriods is MaturityYears * PaymentsPerYear.
	TotalPeriods int
	// PeriodicCoupon is the coupon amount paid each period, in currency units.
	PeriodicCoupon float64
	// PeriodicYield is the per-period discount rate.
	PeriodicYield float64
}

// New derives the periodic schedule quantities from the terms.
//
// A zero PaymentsPerYear is treated as annual. No further validation is
// applied: negative rates or non-positive maturities pass through and yield
// whatever the arithmetic produces.
func New(terms Terms) Bond {
	if terms.PaymentsPerYear == 0 {
		terms.PaymentsPerYear = 1
	}

	freq := float64(terms.PaymentsPerYear)
	return Bond{
		Terms:          terms,
		TotalPeriods:   terms.MaturityYears * terms.PaymentsPerYear,
		PeriodicCoupon: terms.FaceValue * terms.CouponRate / freq,
		PeriodicYield:  terms.YieldToMaturity / freq,
	}
}
