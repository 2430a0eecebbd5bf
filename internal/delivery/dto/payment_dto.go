package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type RegisterPaymentRequest struct {
	AppointmentID uuid.UUID       `json:"appointment_id" validate:"required"`
	Method        string          `json:"method" validate:"required"`
	Amount        decimal.Decimal `json:"amount" validate:"required"`
	Reference     string          `json:"reference" validate:"omitempty,max=100"`
}

// Response DTOs

type PaymentResponse struct {
	ID            int64           `json:"id"`
	AppointmentID uuid.UUID       `json:"appointment_id"`
	Method        string          `json:"method"`
	Amount        decimal.Decimal `json:"amount"`
	PaidAt        time.Time       `json:"paid_at"`
	Reference     string          `json:"reference,omitempty"`
}

type PaymentListResponse struct {
	Payments []PaymentResponse `json:"payments"`
	Total    int               `json:"total"`
}

type PaymentReportResponse struct {
	Start    time.Time                  `json:"start"`
	End      time.Time                  `json:"end"`
	Total    decimal.Decimal            `json:"total"`
	ByMethod map[string]decimal.Decimal `json:"by_method"`
	Count    int                        `json:"count"`
}

type DailyTotalResponse struct {
	Date  string          `json:"date"`
	Total decimal.Decimal `json:"total"`
}
