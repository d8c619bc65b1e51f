package bonds_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/meenmo/bondcalc/bond"
	"github.com/meenmo/bondcalc/instruments/bonds"
)

func TestToCashflows(t *testing.T) {
	t.Parallel()

	in := []bonds.CashflowCents{
		{Period: 1, CouponCents: 3333},
		{Period: 2, CouponCents: 3333, PrincipalCents: 100000},
	}

	want := []bond.Cashflow{
		{Period: 1, Coupon: 33.33},
		{Period: 2, Coupon: 33.33, Principal: 1000},
	}
	if diff := cmp.Diff(want, bonds.ToCashflows(in)); diff != "" {
		t.Fatalf("cashflow mismatch (-want +got):\n%s", diff)
	}
}

func TestFromCashflowsRoundsAtCent(t *testing.T) {
	t.Parallel()

	// 1000 * 0.0333 / 2 carries float noise around 16.65.
	b := bond.New(bond.Terms{
		FaceValue:       1000,
		CouponRate:      0.0333,
		YieldToMaturity: 0.05,
		MaturityYears:   1,
		PaymentsPerYear: 2,
	})

	got := bonds.FromCashflows(b.Cashflows())
	require.Equal(t, []bonds.CashflowCents{
		{Period: 1, CouponCents: 1665},
		{Period: 2, CouponCents: 1665, PrincipalCents: 100000},
	}, got)
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	in := []bonds.CashflowCents{
		{Period: 1, CouponCents: 1250},
		{Period: 2, CouponCents: 1250, PrincipalCents: 50000},
	}
	require.Equal(t, in, bonds.FromCashflows(bonds.ToCashflows(in)))
}
