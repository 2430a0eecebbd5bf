package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAppointmentStatus(t *testing.T) {
	for _, name := range []string{"pending", "confirmed", "in_progress", "finished", "cancelled", "reprogrammed"} {
		status, ok := ParseAppointmentStatus(name)
		assert.True(t, ok, name)
		assert.Equal(t, AppointmentStatus(name), status)
	}

	_, ok := ParseAppointmentStatus("Pending")
	assert.False(t, ok, "status names are case sensitive")
	_, ok = ParseAppointmentStatus("unknown")
	assert.False(t, ok)
	_, ok = ParseAppointmentStatus("")
	assert.False(t, ok)
}

func TestStatusCanTransitionTo(t *testing.T) {
	allowed := map[AppointmentStatus][]AppointmentStatus{
		AppointmentStatusPending:    {AppointmentStatusConfirmed, AppointmentStatusCancelled, AppointmentStatusReprogrammed},
		AppointmentStatusConfirmed:  {AppointmentStatusInProgress, AppointmentStatusCancelled, AppointmentStatusReprogrammed},
		AppointmentStatusInProgress: {AppointmentStatusFinished, AppointmentStatusCancelled},
	}

	all := []AppointmentStatus{
		AppointmentStatusPending,
		AppointmentStatusConfirmed,
		AppointmentStatusInProgress,
		AppointmentStatusFinished,
		AppointmentStatusCancelled,
		AppointmentStatusReprogrammed,
	}

	for _, from := range all {
		for _, to := range all {
			want := false
			for _, next := range allowed[from] {
				if next == to {
					want = true
				}
			}
			assert.Equal(t, want, from.CanTransitionTo(to), "%s -> %s", from, to)
		}
	}
}

func TestStatusIsTerminal(t *testing.T) {
	assert.False(t, AppointmentStatusPending.IsTerminal())
	assert.False(t, AppointmentStatusConfirmed.IsTerminal())
	assert.False(t, AppointmentStatusInProgress.IsTerminal())
	assert.True(t, AppointmentStatusFinished.IsTerminal())
	assert.True(t, AppointmentStatusCancelled.IsTerminal())
	assert.True(t, AppointmentStatusReprogrammed.IsTerminal())
}

func TestAppointmentWindow(t *testing.T) {
	a := Appointment{StartTime: "09:00", EndTime: "10:30"}
	window, err := a.Window()
	assert.NoError(t, err)
	assert.Equal(t, TimeRange{StartMin: 540, EndMin: 630}, window)
}

func TestAppointmentIsCancelled(t *testing.T) {
	assert.True(t, (&Appointment{Status: AppointmentStatusCancelled}).IsCancelled())
	assert.False(t, (&Appointment{Status: AppointmentStatusReprogrammed}).IsCancelled())
	assert.False(t, (&Appointment{Status: AppointmentStatusPending}).IsCancelled())
}
