package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// Request DTOs

type CreateServiceRequest struct {
	Name        string          `json:"name" validate:"required,max=255"`
	Description string          `json:"description" validate:"omitempty,max=2000"`
	Price       decimal.Decimal `json:"price" validate:"required"`
	DurationMin int             `json:"duration_min" validate:"required,min=1"`
	Category    string          `json:"category" validate:"omitempty,max=100"`
	Active      *bool           `json:"active" validate:"omitempty"`
}

type UpdateServiceRequest struct {
	Name        string          `json:"name" validate:"required,max=255"`
	Description string          `json:"description" validate:"omitempty,max=2000"`
	Price       decimal.Decimal `json:"price" validate:"required"`
	DurationMin int             `json:"duration_min" validate:"required,min=1"`
	Category    string          `json:"category" validate:"omitempty,max=100"`
	Active      *bool           `json:"active" validate:"omitempty"`
}

type UpdateServicePriceRequest struct {
	Price decimal.Decimal `json:"price" validate:"required"`
}

// Response DTOs

type ServiceResponse struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	DurationMin int             `json:"duration_min"`
	Category    string          `json:"category,omitempty"`
	Active      bool            `json:"active"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

type ServiceListResponse struct {
	Services []ServiceResponse `json:"services"`
	Total    int               `json:"total"`
}
