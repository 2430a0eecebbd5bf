package repository

import (
	"time"

	"salon-booking-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PaymentRepository interface {
	Create(db *gorm.DB, payment *entity.Payment) error
	FindByAppointmentID(db *gorm.DB, appointmentID uuid.UUID) ([]entity.Payment, error)
	// FindByPaidAtRange returns payments whose paid-at timestamp falls
	// in [start, end] inclusive.
	FindByPaidAtRange(db *gorm.DB, start, end time.Time) ([]entity.Payment, error)
}
