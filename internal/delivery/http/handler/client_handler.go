package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"salon-booking-api/internal/delivery/dto"
	"salon-booking-api/internal/usecase"
	"salon-booking-api/pkg/response"
	"salon-booking-api/pkg/validator"

	"github.com/gorilla/mux"
)

type ClientHandler struct {
	clientUsecase usecase.ClientUsecase
	validator     *validator.CustomValidator
}

func NewClientHandler(clientUsecase usecase.ClientUsecase, validator *validator.CustomValidator) *ClientHandler {
	return &ClientHandler{
		clientUsecase: clientUsecase,
		validator:     validator,
	}
}

func (h *ClientHandler) CreateClient(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	client, err := h.clientUsecase.CreateClient(r.Context(), &req)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusCreated, "Client created successfully", client)
}

func (h *ClientHandler) GetClient(w http.ResponseWriter, r *http.Request) {
	clientID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid client ID", nil)
		return
	}

	client, err := h.clientUsecase.GetClient(r.Context(), clientID)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Client retrieved successfully", client)
}

func (h *ClientHandler) GetAllClients(w http.ResponseWriter, r *http.Request) {
	clients, err := h.clientUsecase.GetAllClients(r.Context())
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Clients retrieved successfully", clients)
}

func (h *ClientHandler) UpdateClient(w http.ResponseWriter, r *http.Request) {
	clientID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid client ID", nil)
		return
	}

	var req dto.UpdateClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	client, err := h.clientUsecase.UpdateClient(r.Context(), clientID, &req)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Client updated successfully", client)
}

func (h *ClientHandler) GetAppointmentHistory(w http.ResponseWriter, r *http.Request) {
	clientID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid client ID", nil)
		return
	}

	history, err := h.clientUsecase.GetAppointmentHistory(r.Context(), clientID)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Appointment history retrieved successfully", history)
}
