package converter

import (
	"salon-booking-api/internal/delivery/dto"
	"salon-booking-api/internal/domain/entity"
)

// AppointmentToResponse converts an Appointment entity to AppointmentResponse DTO
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	response := &dto.AppointmentResponse{
		ID:               appointment.ID,
		ClientID:         appointment.ClientID,
		SpecialistID:     appointment.SpecialistID,
		Date:             appointment.AppointmentDate.Format("2006-01-02"),
		StartTime:        string(appointment.StartTime),
		EndTime:          string(appointment.EndTime),
		Status:           string(appointment.Status),
		TotalPrice:       appointment.TotalPrice,
		TotalDurationMin: appointment.TotalDurationMin,
		Notes:            appointment.Notes,
		CreatedAt:        appointment.CreatedAt,
		UpdatedAt:        appointment.UpdatedAt,
	}

	if appointment.Client.ID != 0 {
		response.Client = ClientToResponse(&appointment.Client)
	}
	if appointment.Specialist.ID != 0 {
		response.Specialist = UserToResponse(&appointment.Specialist)
	}

	for _, line := range appointment.Lines {
		lineResponse := dto.AppointmentLineResponse{
			ServiceID:          line.ServiceID,
			UnitPriceAtBooking: line.UnitPriceAtBooking,
		}
		if line.Service.ID != 0 {
			lineResponse.ServiceName = line.Service.Name
		}
		response.Lines = append(response.Lines, lineResponse)
	}

	return response
}

// AppointmentsToResponses converts a slice of Appointment entities to response DTOs
func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i := range appointments {
		if resp := AppointmentToResponse(&appointments[i]); resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
