package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AppointmentServiceLine records one service included in one
// appointment. UnitPriceAtBooking freezes the catalog price at booking
// time so later repricing never alters historical totals.
type AppointmentServiceLine struct {
	ID                 int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	AppointmentID      uuid.UUID       `gorm:"type:uuid;not null;index" json:"appointment_id"`
	ServiceID          int             `gorm:"not null;index" json:"service_id"`
	UnitPriceAtBooking decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"unit_price_at_booking"`

	// Relationships
	Service Service `gorm:"foreignKey:ServiceID" json:"service,omitempty"`
}

func (AppointmentServiceLine) TableName() string {
	return "appointment_services"
}
