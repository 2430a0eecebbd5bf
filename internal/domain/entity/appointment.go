package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AppointmentStatus represents the lifecycle state of an appointment
type AppointmentStatus string

const (
	AppointmentStatusPending      AppointmentStatus = "pending"
	AppointmentStatusConfirmed    AppointmentStatus = "confirmed"
	AppointmentStatusInProgress   AppointmentStatus = "in_progress"
	AppointmentStatusFinished     AppointmentStatus = "finished"
	AppointmentStatusCancelled    AppointmentStatus = "cancelled"
	AppointmentStatusReprogrammed AppointmentStatus = "reprogrammed"
)

// statusTransitions is the allowed lifecycle graph. finished, cancelled
// and reprogrammed have no outgoing edges.
var statusTransitions = map[AppointmentStatus][]AppointmentStatus{
	AppointmentStatusPending: {
		AppointmentStatusConfirmed,
		AppointmentStatusCancelled,
		AppointmentStatusReprogrammed,
	},
	AppointmentStatusConfirmed: {
		AppointmentStatusInProgress,
		AppointmentStatusCancelled,
		AppointmentStatusReprogrammed,
	},
	AppointmentStatusInProgress: {
		AppointmentStatusFinished,
		AppointmentStatusCancelled,
	},
	AppointmentStatusFinished:     {},
	AppointmentStatusCancelled:    {},
	AppointmentStatusReprogrammed: {},
}

// ParseAppointmentStatus resolves a status name, rejecting unknown names.
func ParseAppointmentStatus(s string) (AppointmentStatus, bool) {
	status := AppointmentStatus(s)
	_, ok := statusTransitions[status]
	return status, ok
}

// CanTransitionTo reports whether moving from s to next is allowed by
// the lifecycle graph.
func (s AppointmentStatus) CanTransitionTo(next AppointmentStatus) bool {
	for _, allowed := range statusTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transition is allowed from s.
func (s AppointmentStatus) IsTerminal() bool {
	return len(statusTransitions[s]) == 0
}

// Appointment represents a booked slot for one client with one
// specialist covering one or more services. Price, duration and end
// time are derived at booking time and never recomputed.
type Appointment struct {
	ID               uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ClientID         int               `gorm:"not null;index" json:"client_id"`
	SpecialistID     int               `gorm:"not null;index" json:"specialist_id"`
	AppointmentDate  time.Time         `gorm:"type:date;not null;index" json:"appointment_date"`
	StartTime        Clock             `gorm:"type:time;not null" json:"start_time"`
	EndTime          Clock             `gorm:"type:time;not null" json:"end_time"`
	Status           AppointmentStatus `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	TotalPrice       decimal.Decimal   `gorm:"type:decimal(10,2);not null" json:"total_price"`
	TotalDurationMin int               `gorm:"not null" json:"total_duration_min"`
	Notes            string            `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt        time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time         `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Client     Client                   `gorm:"foreignKey:ClientID" json:"client,omitempty"`
	Specialist User                     `gorm:"foreignKey:SpecialistID" json:"specialist,omitempty"`
	Lines      []AppointmentServiceLine `gorm:"foreignKey:AppointmentID" json:"lines,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// Window returns the appointment's occupied time range.
func (a *Appointment) Window() (TimeRange, error) {
	return NewTimeRange(string(a.StartTime), string(a.EndTime))
}

// IsCancelled checks if the appointment no longer blocks its slot
func (a *Appointment) IsCancelled() bool {
	return a.Status == AppointmentStatusCancelled
}
