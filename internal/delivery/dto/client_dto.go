package dto

import "time"

// Request DTOs

type CreateClientRequest struct {
	FirstName  string `json:"first_name" validate:"required,max=100"`
	LastName   string `json:"last_name" validate:"required,max=100"`
	Phone      string `json:"phone" validate:"required,max=30"`
	Email      string `json:"email" validate:"omitempty,email"`
	Alias      string `json:"alias" validate:"omitempty,max=100"`
	NationalID string `json:"national_id" validate:"omitempty,max=30"`
}

type UpdateClientRequest struct {
	FirstName  string `json:"first_name" validate:"required,max=100"`
	LastName   string `json:"last_name" validate:"required,max=100"`
	Phone      string `json:"phone" validate:"required,max=30"`
	Email      string `json:"email" validate:"omitempty,email"`
	Alias      string `json:"alias" validate:"omitempty,max=100"`
	NationalID string `json:"national_id" validate:"omitempty,max=30"`
}

// Response DTOs

type ClientResponse struct {
	ID         int       `json:"id"`
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	Phone      string    `json:"phone"`
	Email      string    `json:"email,omitempty"`
	Alias      string    `json:"alias,omitempty"`
	NationalID string    `json:"national_id,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type ClientListResponse struct {
	Clients []ClientResponse `json:"clients"`
	Total   int              `json:"total"`
}
