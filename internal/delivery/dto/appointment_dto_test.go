package dto

import (
	"testing"

	"salon-booking-api/pkg/validator"

	"github.com/stretchr/testify/assert"
)

func TestBookAppointmentRequestValidation(t *testing.T) {
	v := validator.NewValidator()

	valid := BookAppointmentRequest{
		ClientID:     1,
		SpecialistID: 2,
		Date:         "2026-08-28",
		StartTime:    "09:30",
		ServiceIDs:   []int{1, 2},
	}
	assert.NoError(t, v.Validate(&valid))

	tests := []struct {
		name   string
		mutate func(r *BookAppointmentRequest)
	}{
		{"missing client", func(r *BookAppointmentRequest) { r.ClientID = 0 }},
		{"missing specialist", func(r *BookAppointmentRequest) { r.SpecialistID = 0 }},
		{"missing date", func(r *BookAppointmentRequest) { r.Date = "" }},
		{"missing start time", func(r *BookAppointmentRequest) { r.StartTime = "" }},
		{"empty service list", func(r *BookAppointmentRequest) { r.ServiceIDs = nil }},
		{"non-positive service id", func(r *BookAppointmentRequest) { r.ServiceIDs = []int{1, 0} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)
			assert.Error(t, v.Validate(&req))
		})
	}
}

func TestCheckAvailabilityRequestValidation(t *testing.T) {
	v := validator.NewValidator()

	valid := CheckAvailabilityRequest{
		SpecialistID: 1,
		Date:         "2026-08-28",
		StartTime:    "09:00",
		EndTime:      "10:00",
	}
	assert.NoError(t, v.Validate(&valid))

	withExclude := valid
	withExclude.ExcludeAppointmentID = "6f1f64bc-59c2-4aad-9a14-402bf8f70d41"
	assert.NoError(t, v.Validate(&withExclude))

	badExclude := valid
	badExclude.ExcludeAppointmentID = "not-a-uuid"
	assert.Error(t, v.Validate(&badExclude))
}
