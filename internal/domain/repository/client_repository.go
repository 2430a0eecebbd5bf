package repository

import (
	"salon-booking-api/internal/domain/entity"

	"gorm.io/gorm"
)

type ClientRepository interface {
	Create(db *gorm.DB, client *entity.Client) error
	FindByID(db *gorm.DB, id int) (*entity.Client, error)
	FindAll(db *gorm.DB) ([]entity.Client, error)
	Update(db *gorm.DB, client *entity.Client) error
}
