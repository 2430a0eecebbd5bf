package converter

import (
	"salon-booking-api/internal/delivery/dto"
	"salon-booking-api/internal/domain/entity"

	"github.com/shopspring/decimal"
)

func PaymentToResponse(payment *entity.Payment) *dto.PaymentResponse {
	if payment == nil {
		return nil
	}

	return &dto.PaymentResponse{
		ID:            payment.ID,
		AppointmentID: payment.AppointmentID,
		Method:        string(payment.Method),
		Amount:        payment.Amount,
		PaidAt:        payment.PaidAt,
		Reference:     payment.Reference,
	}
}

func PaymentsToResponses(payments []entity.Payment) []dto.PaymentResponse {
	responses := make([]dto.PaymentResponse, len(payments))
	for i := range payments {
		if resp := PaymentToResponse(&payments[i]); resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}

// PaymentSummaryToReport maps the domain fold onto the report DTO.
func PaymentSummaryToReport(summary entity.PaymentSummary) *dto.PaymentReportResponse {
	byMethod := make(map[string]decimal.Decimal, len(summary.ByMethod))
	for method, subtotal := range summary.ByMethod {
		byMethod[string(method)] = subtotal
	}

	return &dto.PaymentReportResponse{
		Total:    summary.Total,
		ByMethod: byMethod,
		Count:    summary.Count,
	}
}
