package entity

import (
	"database/sql/driver"
	"fmt"
	"time"
)

const (
	// ClockLayout is the wire format for appointment times
	ClockLayout = "15:04"

	// clockLayoutSeconds is how Postgres renders TIME columns.
	clockLayoutSeconds = "15:04:05"

	MinutesPerDay = 24 * 60
)

// ParseClock converts an HH:MM string into minutes since midnight.
// The HH:MM:SS form is accepted too; seconds are dropped.
func ParseClock(s string) (int, error) {
	t, err := time.Parse(ClockLayout, s)
	if err != nil {
		var secErr error
		if t, secErr = time.Parse(clockLayoutSeconds, s); secErr != nil {
			return 0, err
		}
	}
	return t.Hour()*60 + t.Minute(), nil
}

// Clock is a time of day in HH:MM form. Scanning normalizes the
// HH:MM:SS rendering Postgres uses for TIME columns back to HH:MM,
// so stored appointments compare and serialize the same as fresh ones.
type Clock string

func (c *Clock) Scan(value any) error {
	switch v := value.(type) {
	case string:
		return c.scanString(v)
	case []byte:
		return c.scanString(string(v))
	case time.Time:
		*c = Clock(v.Format(ClockLayout))
		return nil
	default:
		return fmt.Errorf("cannot scan %T into Clock", value)
	}
}

func (c *Clock) scanString(s string) error {
	minutes, err := ParseClock(s)
	if err != nil {
		return fmt.Errorf("invalid clock value %q: %w", s, err)
	}
	*c = Clock(FormatClock(minutes))
	return nil
}

func (c Clock) Value() (driver.Value, error) {
	return string(c), nil
}

func (c Clock) String() string {
	return string(c)
}

// FormatClock renders minutes since midnight as HH:MM.
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// TimeRange is a half-open interval [StartMin, EndMin) of minutes
// since midnight within a single day.
type TimeRange struct {
	StartMin int
	EndMin   int
}

// NewTimeRange builds a range from HH:MM strings.
func NewTimeRange(start, end string) (TimeRange, error) {
	startMin, err := ParseClock(start)
	if err != nil {
		return TimeRange{}, fmt.Errorf("invalid start time %q: %w", start, err)
	}
	endMin, err := ParseClock(end)
	if err != nil {
		return TimeRange{}, fmt.Errorf("invalid end time %q: %w", end, err)
	}
	return TimeRange{StartMin: startMin, EndMin: endMin}, nil
}

// Overlaps reports whether two half-open ranges share more than a
// touching instant: s1 < e2 && e1 > s2. An appointment ending at 10:00
// does not conflict with one starting at 10:00.
func (r TimeRange) Overlaps(other TimeRange) bool {
	return r.StartMin < other.EndMin && r.EndMin > other.StartMin
}

func (r TimeRange) String() string {
	return FormatClock(r.StartMin) + " - " + FormatClock(r.EndMin)
}

// FirstConflict returns the first existing appointment whose window
// overlaps the candidate range, or nil when the slot is free. The
// caller is expected to have filtered out cancelled appointments.
func FirstConflict(candidate TimeRange, existing []Appointment) (*Appointment, error) {
	for i := range existing {
		window, err := existing[i].Window()
		if err != nil {
			return nil, err
		}
		if candidate.Overlaps(window) {
			return &existing[i], nil
		}
	}
	return nil, nil
}
