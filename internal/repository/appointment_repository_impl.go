package repository

import (
	"errors"
	"time"

	"salon-booking-api/internal/domain/entity"
	domainRepo "salon-booking-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type appointmentRepository struct{}

func NewAppointmentRepository() domainRepo.AppointmentRepository {
	return &appointmentRepository{}
}

// Create inserts the appointment and its service lines in one go.
// GORM persists the Lines association within the same statement batch,
// so inside the caller's transaction the commit is all-or-nothing.
func (r *appointmentRepository) Create(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Create(appointment).Error
}

func (r *appointmentRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := db.Preload("Lines.Service").Preload("Client").Preload("Specialist").
		Where("id = ?", id).
		First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) FindBySpecialistAndDate(db *gorm.DB, specialistID int, date time.Time, excludeID *uuid.UUID) ([]entity.Appointment, error) {
	query := db.
		Where("specialist_id = ? AND appointment_date = ? AND status != ?",
			specialistID, date.Format("2006-01-02"), entity.AppointmentStatusCancelled)
	if excludeID != nil {
		query = query.Where("id != ?", *excludeID)
	}

	var appointments []entity.Appointment
	if err := query.Order("start_time ASC").Find(&appointments).Error; err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindAll(db *gorm.DB) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.Preload("Client").Preload("Specialist").
		Order("appointment_date DESC, start_time DESC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindByDate(db *gorm.DB, date time.Time) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.Preload("Client").Preload("Specialist").
		Where("appointment_date = ?", date.Format("2006-01-02")).
		Order("start_time ASC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindByStatus(db *gorm.DB, status entity.AppointmentStatus) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.Preload("Client").Preload("Specialist").
		Where("status = ?", status).
		Order("appointment_date ASC, start_time ASC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindByClientID(db *gorm.DB, clientID int) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.Preload("Specialist").
		Where("client_id = ?", clientID).
		Order("appointment_date DESC, start_time DESC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) Update(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Omit("Lines", "Client", "Specialist").Save(appointment).Error
}
