package repository

import (
	"salon-booking-api/internal/domain/entity"

	"gorm.io/gorm"
)

type ServiceRepository interface {
	Create(db *gorm.DB, service *entity.Service) error
	FindByID(db *gorm.DB, id int) (*entity.Service, error)
	FindAll(db *gorm.DB) ([]entity.Service, error)
	FindActive(db *gorm.DB) ([]entity.Service, error)
	Update(db *gorm.DB, service *entity.Service) error
}
