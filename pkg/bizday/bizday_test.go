package bizday_test

import (
	"testing"
	"time"

	"github.com/limbo/myfit/pkg/bizday"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToday(t *testing.T) {
	testCases := []struct {
		Desc     string
		Now      time.Time
		Expected string
	}{
		{
			Desc:     "afternoon utc",
			Now:      time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC),
			Expected: "2026-03-10",
		},
		{
			Desc:     "just after utc midnight is still yesterday",
			Now:      time.Date(2026, 3, 10, 2, 59, 59, 0, time.UTC),
			Expected: "2026-03-09",
		},
		{
			Desc:     "exactly 03:00 utc starts the day",
			Now:      time.Date(2026, 3, 10, 3, 0, 0, 0, time.UTC),
			Expected: "2026-03-10",
		},
		{
			Desc:     "server clock in another zone",
			Now:      time.Date(2026, 1, 1, 1, 0, 0, 0, time.FixedZone("CET", 3600)),
			Expected: "2025-12-31",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			assert.Equal(t, tc.Expected, bizday.Today(tc.Now))
		})
	}
}

func TestDaysAgo(t *testing.T) {
	now := time.Date(2026, 3, 1, 1, 0, 0, 0, time.UTC)
	assert.Equal(t, "2026-02-28", bizday.DaysAgo(now, 0))
	assert.Equal(t, "2026-02-21", bizday.DaysAgo(now, 7))
}

func TestBounds(t *testing.T) {
	start, end, err := bizday.Bounds("2026-03-10")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 10, 3, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2026, 3, 11, 3, 0, 0, 0, time.UTC), end)
	assert.Equal(t, "2026-03-10", bizday.Of(start))
	assert.Equal(t, "2026-03-10", bizday.Of(end.Add(-time.Nanosecond)))

	_, _, err = bizday.Bounds("10/03/2026")
	assert.ErrorIs(t, err, bizday.ErrInvalidDay)
}
