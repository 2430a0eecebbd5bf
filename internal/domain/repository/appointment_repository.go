package repository

import (
	"time"

	"salon-booking-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AppointmentRepository is the durable store for appointments and
// their service lines. Create persists the appointment together with
// its lines as one atomic unit.
type AppointmentRepository interface {
	Create(db *gorm.DB, appointment *entity.Appointment) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error)
	// FindBySpecialistAndDate returns the specialist's non-cancelled
	// appointments on a date, optionally excluding one appointment id
	// (used when re-checking a reschedule).
	FindBySpecialistAndDate(db *gorm.DB, specialistID int, date time.Time, excludeID *uuid.UUID) ([]entity.Appointment, error)
	FindAll(db *gorm.DB) ([]entity.Appointment, error)
	FindByDate(db *gorm.DB, date time.Time) ([]entity.Appointment, error)
	FindByStatus(db *gorm.DB, status entity.AppointmentStatus) ([]entity.Appointment, error)
	FindByClientID(db *gorm.DB, clientID int) ([]entity.Appointment, error)
	Update(db *gorm.DB, appointment *entity.Appointment) error
}
