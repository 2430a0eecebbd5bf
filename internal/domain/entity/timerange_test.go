package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		input   string
		want    int
		wantErr bool
	}{
		{"00:00", 0, false},
		{"09:30", 570, false},
		{"23:59", 1439, false},
		{"09:00:00", 540, false},
		{"23:59:59", 1439, false},
		{"24:00", 0, true},
		{"9:30", 0, true},
		{"09:60", 0, true},
		{"09:00:60", 0, true},
		{"not a time", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseClock(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "00:00", FormatClock(0))
	assert.Equal(t, "09:30", FormatClock(570))
	assert.Equal(t, "10:05", FormatClock(605))
	assert.Equal(t, "23:59", FormatClock(1439))
}

func TestClockScan(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  Clock
	}{
		{"database time rendering", "09:00:00", "09:00"},
		{"bytes", []byte("14:45:00"), "14:45"},
		{"already normalized", "09:30", "09:30"},
		{"time value", time.Date(0, 1, 1, 8, 15, 0, 0, time.UTC), "08:15"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c Clock
			require.NoError(t, c.Scan(tt.value))
			assert.Equal(t, tt.want, c)
		})
	}

	t.Run("rejects non-clock values", func(t *testing.T) {
		var c Clock
		assert.Error(t, c.Scan("not a time"))
		assert.Error(t, c.Scan(42))
	})
}

func TestClockValue(t *testing.T) {
	v, err := Clock("09:30").Value()
	require.NoError(t, err)
	assert.Equal(t, "09:30", v)
}

func TestTimeRangeOverlaps(t *testing.T) {
	mustRange := func(start, end string) TimeRange {
		r, err := NewTimeRange(start, end)
		require.NoError(t, err)
		return r
	}

	tests := []struct {
		name string
		a, b TimeRange
		want bool
	}{
		{"disjoint", mustRange("09:00", "10:00"), mustRange("11:00", "12:00"), false},
		{"touching endpoints do not conflict", mustRange("09:00", "10:00"), mustRange("10:00", "11:00"), false},
		{"one minute past the boundary", mustRange("09:00", "10:01"), mustRange("10:00", "11:00"), true},
		{"partial overlap", mustRange("09:30", "10:30"), mustRange("10:00", "11:00"), true},
		{"containment", mustRange("09:00", "12:00"), mustRange("10:00", "11:00"), true},
		{"identical", mustRange("09:00", "10:00"), mustRange("09:00", "10:00"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Overlaps(tt.b))
			assert.Equal(t, tt.want, tt.b.Overlaps(tt.a), "overlap must be symmetric")
		})
	}
}

func TestTimeRangeString(t *testing.T) {
	r, err := NewTimeRange("09:00", "10:30")
	require.NoError(t, err)
	assert.Equal(t, "09:00 - 10:30", r.String())
}

func TestFirstConflict(t *testing.T) {
	existing := []Appointment{
		{StartTime: "09:00", EndTime: "10:00"},
		{StartTime: "11:00", EndTime: "12:00"},
	}

	t.Run("free slot between bookings", func(t *testing.T) {
		candidate, err := NewTimeRange("10:00", "11:00")
		require.NoError(t, err)

		conflict, err := FirstConflict(candidate, existing)
		require.NoError(t, err)
		assert.Nil(t, conflict)
	})

	t.Run("returns earliest conflicting appointment", func(t *testing.T) {
		candidate, err := NewTimeRange("09:30", "11:30")
		require.NoError(t, err)

		conflict, err := FirstConflict(candidate, existing)
		require.NoError(t, err)
		require.NotNil(t, conflict)
		assert.Equal(t, Clock("09:00"), conflict.StartTime)
	})

	t.Run("booking inside an occupied window conflicts", func(t *testing.T) {
		booked := []Appointment{{StartTime: "09:00", EndTime: "09:30"}}

		candidate, err := NewTimeRange("09:15", "09:45")
		require.NoError(t, err)
		conflict, err := FirstConflict(candidate, booked)
		require.NoError(t, err)
		assert.NotNil(t, conflict)

		candidate, err = NewTimeRange("09:30", "10:00")
		require.NoError(t, err)
		conflict, err = FirstConflict(candidate, booked)
		require.NoError(t, err)
		assert.Nil(t, conflict)
	})

	t.Run("windows stored with seconds still compare", func(t *testing.T) {
		booked := []Appointment{{StartTime: "09:00:00", EndTime: "09:30:00"}}

		window, err := booked[0].Window()
		require.NoError(t, err)
		assert.Equal(t, TimeRange{StartMin: 540, EndMin: 570}, window)

		candidate, err := NewTimeRange("09:30", "10:00")
		require.NoError(t, err)
		conflict, err := FirstConflict(candidate, booked)
		require.NoError(t, err)
		assert.Nil(t, conflict)

		candidate, err = NewTimeRange("09:15", "09:45")
		require.NoError(t, err)
		conflict, err = FirstConflict(candidate, booked)
		require.NoError(t, err)
		assert.NotNil(t, conflict)
	})

	t.Run("no existing appointments", func(t *testing.T) {
		candidate, err := NewTimeRange("09:00", "10:00")
		require.NoError(t, err)

		conflict, err := FirstConflict(candidate, nil)
		require.NoError(t, err)
		assert.Nil(t, conflict)
	})

	t.Run("corrupt stored window surfaces an error", func(t *testing.T) {
		candidate, err := NewTimeRange("09:00", "10:00")
		require.NoError(t, err)

		_, err = FirstConflict(candidate, []Appointment{{StartTime: "bad", EndTime: "10:00"}})
		assert.Error(t, err)
	})
}
