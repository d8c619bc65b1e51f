package calendar_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/meenmo/bondcalc/calendar"
)

func TestIsBusinessDay(t *testing.T) {
	t.Parallel()

	saturday := time.Date(2026, 1, 17, 0, 0, 0, 0, time.UTC)
	monday := time.Date(2026, 1, 19, 0, 0, 0, 0, time.UTC)

	require.False(t, calendar.IsBusinessDay(calendar.Weekend, saturday))
	require.True(t, calendar.IsBusinessDay(calendar.Weekend, monday))
}

func TestAdjustModifiedFollowing(t *testing.T) {
	t.Parallel()

	t.Run("rolls forward within month", func(t *testing.T) {
		saturday := time.Date(2026, 1, 17, 0, 0, 0, 0, time.UTC)
		got := calendar.Adjust(calendar.Weekend, saturday)
		require.Equal(t, time.Date(2026, 1, 19, 0, 0, 0, 0, time.UTC), got)
	})

	t.Run("rolls back at month end", func(t *testing.T) {
		// 2026-05-31 is a Sunday; Following would cross into June.
		sunday := time.Date(2026, 5, 31, 0, 0, 0, 0, time.UTC)
		got := calendar.Adjust(calendar.Weekend, sunday)
		require.Equal(t, time.Date(2026, 5, 29, 0, 0, 0, 0, time.UTC), got)
	})
}
