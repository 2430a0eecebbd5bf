package repository

import (
	"errors"

	"salon-booking-api/internal/domain/entity"
	domainRepo "salon-booking-api/internal/domain/repository"

	"gorm.io/gorm"
)

type clientRepository struct{}

func NewClientRepository() domainRepo.ClientRepository {
	return &clientRepository{}
}

func (r *clientRepository) Create(db *gorm.DB, client *entity.Client) error {
	return db.Create(client).Error
}

func (r *clientRepository) FindByID(db *gorm.DB, id int) (*entity.Client, error) {
	var client entity.Client
	err := db.Where("id = ?", id).First(&client).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &client, nil
}

func (r *clientRepository) FindAll(db *gorm.DB) ([]entity.Client, error) {
	var clients []entity.Client
	if err := db.Order("last_name ASC, first_name ASC").Find(&clients).Error; err != nil {
		return nil, err
	}
	return clients, nil
}

func (r *clientRepository) Update(db *gorm.DB, client *entity.Client) error {
	return db.Save(client).Error
}
