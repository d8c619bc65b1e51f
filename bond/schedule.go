package bond

import (
	"time"

	"github.com/meenmo/bondcalc/calendar"
	"github.com/meenmo/bondcalc/utils"
)

// Cashflows builds the bond's payment schedule: TotalPeriods entries, each
// the periodic coupon, with the face value repaid as principal alongside the
// final coupon. The slice is built fresh on every call so callers cannot
// alias the schedule of another query.
func (b Bond) Cashflows() []Cashflow {
	cfs := make([]Cashflow, 0, b.TotalPeriods)
	for t := 1; t <= b.TotalPeriods; t++ {
		cf := Cashflow{Period: t, Coupon: b.PeriodicCoupon}
		if t == b.TotalPeriods {
			cf.Principal = b.FaceValue
		}
		cfs = append(cfs, cf)
	}
	return cfs
}

// DatedCashflows pins the schedule to payment dates: one coupon period every
// 12/PaymentsPerYear months from issue, EDATE month stepping, adjusted
// Modified Following on cal.
func (b Bond) DatedCashflows(issue time.Time, cal calendar.CalendarID) []DatedCashflow {
	monthsPerPeriod := 12 / b.PaymentsPerYear

	cfs := b.Cashflows()
	dated := make([]DatedCashflow, 0, len(cfs))
	for _, cf := range cfs {
		date := calendar.Adjust(cal, utils.AddMonth(issue, monthsPerPeriod*cf.Period))
		dated = append(dated, DatedCashflow{Cashflow: cf, Date: date})
	}
	return dated
}
