package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type BookAppointmentRequest struct {
	ClientID     int    `json:"client_id" validate:"required,min=1"`
	SpecialistID int    `json:"specialist_id" validate:"required,min=1"`
	Date         string `json:"date" validate:"required"`       // Format: YYYY-MM-DD
	StartTime    string `json:"start_time" validate:"required"` // Format: HH:MM
	ServiceIDs   []int  `json:"service_ids" validate:"required,min=1,dive,min=1"`
	Notes        string `json:"notes" validate:"omitempty,max=1000"`
}

type UpdateAppointmentStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type CheckAvailabilityRequest struct {
	SpecialistID         int    `json:"specialist_id" validate:"required,min=1"`
	Date                 string `json:"date" validate:"required"`       // Format: YYYY-MM-DD
	StartTime            string `json:"start_time" validate:"required"` // Format: HH:MM
	EndTime              string `json:"end_time" validate:"required"`   // Format: HH:MM
	ExcludeAppointmentID string `json:"exclude_appointment_id" validate:"omitempty,uuid"`
}

// Response DTOs

type AppointmentLineResponse struct {
	ServiceID          int             `json:"service_id"`
	ServiceName        string          `json:"service_name,omitempty"`
	UnitPriceAtBooking decimal.Decimal `json:"unit_price_at_booking"`
}

type AppointmentResponse struct {
	ID               uuid.UUID                 `json:"id"`
	ClientID         int                       `json:"client_id"`
	SpecialistID     int                       `json:"specialist_id"`
	Date             string                    `json:"date"`
	StartTime        string                    `json:"start_time"`
	EndTime          string                    `json:"end_time"`
	Status           string                    `json:"status"`
	TotalPrice       decimal.Decimal           `json:"total_price"`
	TotalDurationMin int                       `json:"total_duration_min"`
	Notes            string                    `json:"notes,omitempty"`
	Client           *ClientResponse           `json:"client,omitempty"`
	Specialist       *UserResponse             `json:"specialist,omitempty"`
	Lines            []AppointmentLineResponse `json:"lines,omitempty"`
	CreatedAt        time.Time                 `json:"created_at"`
	UpdatedAt        time.Time                 `json:"updated_at"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}

type AvailabilityResponse struct {
	Available bool `json:"available"`
}
