package monitor

import (
	"sessionwatch/lib/telemetry"
	"sessionwatch/lib/timezone"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTargetSaturday(t *testing.T) {
	cleanup := telemetry.SetupForTesting(t, "test:services/monitor")
	defer cleanup()

	loc := timezone.Location

	testCases := []struct {
		now      time.Time
		expected time.Time
	}{
		{
			// midweek points at the coming saturday
			now:      time.Date(2026, time.February, 18, 10, 0, 0, 0, loc),
			expected: time.Date(2026, time.February, 21, 0, 0, 0, 0, loc),
		},
		{
			// sunday rolls a full week forward
			now:      time.Date(2026, time.February, 22, 9, 0, 0, 0, loc),
			expected: time.Date(2026, time.February, 28, 0, 0, 0, 0, loc),
		},
		{
			// late friday still means tomorrow
			now:      time.Date(2026, time.February, 20, 23, 59, 0, 0, loc),
			expected: time.Date(2026, time.February, 21, 0, 0, 0, 0, loc),
		},
		{
			// saturday morning is still today's occurrence
			now:      time.Date(2026, time.February, 21, 0, 0, 0, 0, loc),
			expected: time.Date(2026, time.February, 21, 0, 0, 0, 0, loc),
		},
		{
			// one minute before cutover
			now:      time.Date(2026, time.February, 21, 14, 29, 0, 0, loc),
			expected: time.Date(2026, time.February, 21, 0, 0, 0, 0, loc),
		},
		{
			// exactly at cutover the occurrence is over
			now:      time.Date(2026, time.February, 21, 14, 30, 0, 0, loc),
			expected: time.Date(2026, time.February, 28, 0, 0, 0, 0, loc),
		},
		{
			now:      time.Date(2026, time.February, 21, 23, 0, 0, 0, loc),
			expected: time.Date(2026, time.February, 28, 0, 0, 0, 0, loc),
		},
	}

	for _, test := range testCases {
		target := TargetSaturday(test.now)
		require.True(
			t, target.Equal(test.expected),
			"now=%s expected=%s got=%s", test.now, test.expected, target,
		)
		require.Equal(t, time.Saturday, target.Weekday())
		require.Less(t, target.Sub(test.now), time.Hour*24*8)
	}
}
