package entity

import "time"

// Client is a customer record. NationalID is optional but unique when
// present; it stays NULL when absent so blank ids never collide.
type Client struct {
	ID         int       `gorm:"primaryKey;autoIncrement" json:"id"`
	FirstName  string    `gorm:"type:varchar(100);not null" json:"first_name"`
	LastName   string    `gorm:"type:varchar(100);not null" json:"last_name"`
	Phone      string    `gorm:"type:varchar(30);not null" json:"phone"`
	Email      string    `gorm:"type:varchar(255)" json:"email,omitempty"`
	Alias      string    `gorm:"type:varchar(100)" json:"alias,omitempty"`
	NationalID *string   `gorm:"type:varchar(30);uniqueIndex" json:"national_id,omitempty"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Appointments []Appointment `gorm:"foreignKey:ClientID" json:"appointments,omitempty"`
}

func (Client) TableName() string {
	return "clients"
}
