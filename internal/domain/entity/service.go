package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Service is one offerable catalog entry with its current price and
// estimated duration.
type Service struct {
	ID          int             `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string          `gorm:"type:varchar(255);not null" json:"name"`
	Description string          `gorm:"type:text" json:"description,omitempty"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	DurationMin int             `gorm:"not null" json:"duration_min"`
	Category    string          `gorm:"type:varchar(100);index" json:"category,omitempty"`
	Active      *bool           `gorm:"not null;default:true;index" json:"active"`
	CreatedAt   time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Service) TableName() string {
	return "services"
}

// IsActive reports whether the service may be booked.
func (s *Service) IsActive() bool {
	return s.Active != nil && *s.Active
}
