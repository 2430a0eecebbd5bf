package converter

import (
	"salon-booking-api/internal/delivery/dto"
	"salon-booking-api/internal/domain/entity"
)

func ServiceToResponse(service *entity.Service) *dto.ServiceResponse {
	if service == nil {
		return nil
	}

	return &dto.ServiceResponse{
		ID:          service.ID,
		Name:        service.Name,
		Description: service.Description,
		Price:       service.Price,
		DurationMin: service.DurationMin,
		Category:    service.Category,
		Active:      service.IsActive(),
		CreatedAt:   service.CreatedAt,
		UpdatedAt:   service.UpdatedAt,
	}
}

func ServicesToResponses(services []entity.Service) []dto.ServiceResponse {
	responses := make([]dto.ServiceResponse, len(services))
	for i := range services {
		if resp := ServiceToResponse(&services[i]); resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
