package bond

import "time"

// Cashflow is one scheduled payment of the bond, indexed by coupon period
// (1-based). Amounts are in currency units, not price-per-100.
type Cashflow struct {
	Period    int
	Coupon    float64
	Principal float64
}

func (c Cashflow) Amount() float64 {
	return c.Coupon + c.Principal
}

// DatedCashflow is a Cashflow pinned to a business-day adjusted payment date.
type DatedCashflow struct {
	Cashflow
	Date time.Time
}
