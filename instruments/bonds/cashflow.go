package bonds

import (
	"github.com/shopspring/decimal"

	"github.com/meenmo/bondcalc/bond"
)

var centsPerUnit = decimal.NewFromInt(100)

// CashflowCents mirrors cashflow feeds where coupon/principal are stored as
// integer minor units (e.g., cents for EUR). Conversion goes through decimal
// so amounts stay exact until the final float64 handoff to the analytics.
type CashflowCents struct {
	Period         int
	CouponCents    int64
	PrincipalCents int64
}

func (c CashflowCents) ToCashflow() bond.Cashflow {
	return bond.Cashflow{
		Period:    c.Period,
		Coupon:    decimal.NewFromInt(c.CouponCents).Div(centsPerUnit).InexactFloat64(),
		Principal: decimal.NewFromInt(c.PrincipalCents).Div(centsPerUnit).InexactFloat64(),
	}
}

func ToCashflows(in []CashflowCents) []bond.Cashflow {
	out := make([]bond.Cashflow, 0, len(in))
	for _, cf := range in {
		out = append(out, cf.ToCashflow())
	}
	return out
}

// FromCashflows converts a currency-unit schedule to minor units, rounding
// half away from zero at the cent.
func FromCashflows(in []bond.Cashflow) []CashflowCents {
	out := make([]CashflowCents, 0, len(in))
	for _, cf := range in {
		out = append(out, CashflowCents{
			Period:         cf.Period,
			CouponCents:    decimal.NewFromFloat(cf.Coupon).Mul(centsPerUnit).Round(0).IntPart(),
			PrincipalCents: decimal.NewFromFloat(cf.Principal).Mul(centsPerUnit).Round(0).IntPart(),
		})
	}
	return out
}
