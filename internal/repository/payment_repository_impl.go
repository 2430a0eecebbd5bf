package repository

import (
	"time"

	"salon-booking-api/internal/domain/entity"
	domainRepo "salon-booking-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type paymentRepository struct{}

func NewPaymentRepository() domainRepo.PaymentRepository {
	return &paymentRepository{}
}

func (r *paymentRepository) Create(db *gorm.DB, payment *entity.Payment) error {
	return db.Create(payment).Error
}

func (r *paymentRepository) FindByAppointmentID(db *gorm.DB, appointmentID uuid.UUID) ([]entity.Payment, error) {
	var payments []entity.Payment
	err := db.Where("appointment_id = ?", appointmentID).
		Order("paid_at ASC").
		Find(&payments).Error
	if err != nil {
		return nil, err
	}
	return payments, nil
}

func (r *paymentRepository) FindByPaidAtRange(db *gorm.DB, start, end time.Time) ([]entity.Payment, error) {
	var payments []entity.Payment
	err := db.Where("paid_at >= ? AND paid_at <= ?", start, end).
		Order("paid_at ASC").
		Find(&payments).Error
	if err != nil {
		return nil, err
	}
	return payments, nil
}
