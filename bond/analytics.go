package bond

import (
	"github.com/meenmo/bondcalc/calc"
	"github.com/meenmo/bondcalc/tvm"
)

// Analytics bundles the price and risk measures of a bond in one result.
type Analytics struct {
	// Price is the present value of the schedule, in currency units.
	Price float64
	// MacaulayDuration is in years.
	MacaulayDuration float64
	// ModifiedDuration is in years (approximate %-price per unit yield).
	ModifiedDuration float64
	// Convexity is in years squared.
	Convexity float64
}

// Price discounts the full schedule at the periodic yield:
//
//	P = Σ CF_t / (1+y)^t   for t = 1..TotalPeriods
//
// It is recomputed on every call; nothing is cached on the instance.
func (b Bond) Price() (float64, error) {
	price := 0.0
	for _, cf := range b.Cashflows() {
		pv, err := tvm.PresentValue(cf.Amount(), b.PeriodicYield, float64(cf.Period))
		if err != nil {
			return 0, err
		}
		price += pv
	}
	return price, nil
}

// MacaulayDuration is the PV-weighted average time to receive the cashflows:
//
//	D_mac = Σ [ t * PV(CF_t) ] / P
//
// converted from coupon periods to years. A zero price (degenerate schedule)
// surfaces as calc.ErrDivisionByZero.
func (b Bond) MacaulayDuration() (float64, error) {
	price, err := b.Price()
	if err != nil {
		return 0, err
	}

	weightedSum := 0.0
	for _, cf := range b.Cashflows() {
		pv, err := tvm.PresentValue(cf.Amount(), b.PeriodicYield, float64(cf.Period))
		if err != nil {
			return 0, err
		}
		weightedSum += float64(cf.Period) * pv
	}

	durationInPeriods, err := calc.Divide(weightedSum, price)
	if err != nil {
		return 0, err
	}
	return durationInPeriods / float64(b.PaymentsPerYear), nil
}

// ModifiedDuration adjusts Macaulay duration for the periodic yield:
//
//	D_mod = D_mac / (1 + y/m)
func (b Bond) ModifiedDuration() (float64, error) {
	macDur, err := b.MacaulayDuration()
	if err != nil {
		return 0, err
	}
	return calc.Divide(macDur, 1+b.PeriodicYield)
}

// Convexity is the second-order price sensitivity, in years squared:
//
//	C = (1/P) * Σ [ CF_t * t(t+1) / (1+y)^(t+2) ] / m^2
func (b Bond) Convexity() (float64, error) {
	price, err := b.Price()
	if err != nil {
		return 0, err
	}

	convexitySum := 0.0
	for _, cf := range b.Cashflows() {
		t := float64(cf.Period)
		discount := calc.Power(1+b.PeriodicYield, t+2)
		term, err := calc.Divide(cf.Amount()*t*(t+1), discount)
		if err != nil {
			return 0, err
		}
		convexitySum += term
	}

	inPeriods, err := calc.Divide(convexitySum, price)
	if err != nil {
		return 0, err
	}
	freq := float64(b.PaymentsPerYear)
	return inPeriods / (freq * freq), nil
}

// PricePercentageChange approximates the fractional price change for an
// instantaneous yield shift via the second-order Taylor expansion:
//
//	ΔP/P ≈ -D_mod * Δy + 0.5 * C * Δy²
//
// The result is a signed fraction; multiply by 100 for percent.
func (b Bond) PricePercentageChange(deltaYield float64) (float64, error) {
	dMod, err := b.ModifiedDuration()
	if err != nil {
		return 0, err
	}
	conv, err := b.Convexity()
	if err != nil {
		return 0, err
	}
	return -dMod*deltaYield + 0.5*conv*deltaYield*deltaYield, nil
}

// Analytics computes price, durations, and convexity in one call.
func (b Bond) Analytics() (Analytics, error) {
	price, err := b.Price()
	if err != nil {
		return Analytics{}, err
	}
	macDur, err := b.MacaulayDuration()
	if err != nil {
		return Analytics{}, err
	}
	modDur, err := b.ModifiedDuration()
	if err != nil {
		return Analytics{}, err
	}
	conv, err := b.Convexity()
	if err != nil {
		return Analytics{}, err
	}

	return Analytics{
		Price:            price,
		MacaulayDuration: macDur,
		ModifiedDuration: modDur,
		Convexity:        conv,
	}, nil
}
