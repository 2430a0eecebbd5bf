package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"salon-booking-api/internal/delivery/dto"
	"salon-booking-api/internal/usecase"
	"salon-booking-api/pkg/response"
	"salon-booking-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type PaymentHandler struct {
	paymentUsecase usecase.PaymentUsecase
	validator      *validator.CustomValidator
}

func NewPaymentHandler(paymentUsecase usecase.PaymentUsecase, validator *validator.CustomValidator) *PaymentHandler {
	return &PaymentHandler{
		paymentUsecase: paymentUsecase,
		validator:      validator,
	}
}

func (h *PaymentHandler) RegisterPayment(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	payment, err := h.paymentUsecase.RegisterPayment(r.Context(), &req)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusCreated, "Payment registered successfully", payment)
}

func (h *PaymentHandler) GetPaymentsByAppointment(w http.ResponseWriter, r *http.Request) {
	appointmentID, err := uuid.Parse(mux.Vars(r)["appointment_id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid appointment ID", nil)
		return
	}

	payments, err := h.paymentUsecase.GetPaymentsByAppointment(r.Context(), appointmentID)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Payments retrieved successfully", payments)
}

func (h *PaymentHandler) GetDailyTotal(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	total, err := h.paymentUsecase.GetDailyTotal(r.Context(), date)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Daily total retrieved successfully", total)
}

func (h *PaymentHandler) GetPaymentReport(w http.ResponseWriter, r *http.Request) {
	startStr := r.URL.Query().Get("start")
	endStr := r.URL.Query().Get("end")
	if startStr == "" || endStr == "" {
		response.Error(w, http.StatusBadRequest, "Query parameters 'start' and 'end' are required", nil)
		return
	}

	start, err := time.Parse("2006-01-02", startStr)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid start date, expected YYYY-MM-DD", nil)
		return
	}

	end, err := time.Parse("2006-01-02", endStr)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid end date, expected YYYY-MM-DD", nil)
		return
	}

	// Make the end date inclusive of the whole day.
	end = end.Add(24*time.Hour - time.Nanosecond)

	report, err := h.paymentUsecase.SummarizeByPeriod(r.Context(), start, end)
	if err != nil {
		response.FromError(w, err)
		return
	}

	response.Success(w, http.StatusOK, "Payment report retrieved successfully", report)
}
