package converter

import (
	"salon-booking-api/internal/delivery/dto"
	"salon-booking-api/internal/domain/entity"
)

func ClientToResponse(client *entity.Client) *dto.ClientResponse {
	if client == nil {
		return nil
	}

	response := &dto.ClientResponse{
		ID:        client.ID,
		FirstName: client.FirstName,
		LastName:  client.LastName,
		Phone:     client.Phone,
		Email:     client.Email,
		Alias:     client.Alias,
		CreatedAt: client.CreatedAt,
		UpdatedAt: client.UpdatedAt,
	}
	if client.NationalID != nil {
		response.NationalID = *client.NationalID
	}
	return response
}

func ClientsToResponses(clients []entity.Client) []dto.ClientResponse {
	responses := make([]dto.ClientResponse, len(clients))
	for i := range clients {
		if resp := ClientToResponse(&clients[i]); resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
