package entity

import "time"

// User roles
const (
	RoleAdmin      = "admin"
	RoleSpecialist = "specialist"
)

// User is a staff account: the administrator who schedules and the
// specialists who perform the services.
type User struct {
	ID        int       `gorm:"primaryKey;autoIncrement" json:"id"`
	FullName  string    `gorm:"type:varchar(255);not null" json:"full_name"`
	Email     string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"type:text;not null" json:"-"`
	Phone     string    `gorm:"type:varchar(30)" json:"phone,omitempty"`
	Role      string    `gorm:"type:varchar(20);not null;default:'admin'" json:"role"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Appointments []Appointment `gorm:"foreignKey:SpecialistID" json:"appointments,omitempty"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
