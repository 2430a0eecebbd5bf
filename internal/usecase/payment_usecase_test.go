package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDayWindow(t *testing.T) {
	date, err := time.Parse(dateLayout, "2026-08-28")
	require.NoError(t, err)

	start, end := dayWindow(date)
	assert.Equal(t, time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC).Add(-time.Nanosecond), end)

	t.Run("payment late in the day falls inside", func(t *testing.T) {
		paidAt := time.Date(2026, 8, 28, 23, 59, 59, 0, time.UTC)
		assert.False(t, paidAt.Before(start))
		assert.False(t, paidAt.After(end))
	})

	t.Run("next midnight falls outside", func(t *testing.T) {
		paidAt := time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)
		assert.True(t, paidAt.After(end))
	})

	t.Run("server timezone does not shift the bucket", func(t *testing.T) {
		// 20:00 in UTC-5 is already past this day's UTC boundary, so
		// a payment stamped then belongs to the next day's bucket.
		loc := time.FixedZone("UTC-5", -5*60*60)
		paidAt := time.Date(2026, 8, 28, 20, 0, 0, 0, loc).UTC()
		assert.True(t, paidAt.After(end))
	})
}
