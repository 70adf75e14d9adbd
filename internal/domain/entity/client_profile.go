package entity

import (
	"github.com/google/uuid"
)

// ClientProfile represents client-specific profile data
type ClientProfile struct {
	UserID      uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	FirstName   string    `gorm:"type:varchar(255);not null" json:"first_name"`
	LastName    string    `gorm:"type:varchar(255);not null" json:"last_name"`
	PhoneNumber string    `gorm:"type:varchar(20);index" json:"phone_number,omitempty"`
	Gender      string    `gorm:"type:char(1);not null" json:"gender"`
	Age         int       `gorm:"not null;default:18" json:"age"`

	// Relationships
	User     User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Bookings []Booking `gorm:"foreignKey:ClientID" json:"bookings,omitempty"`
	Reviews  []Review  `gorm:"foreignKey:AuthorID" json:"reviews,omitempty"`
}

func (ClientProfile) TableName() string {
	return "client_profiles"
}

// Gender constants
const (
	GenderMale   = "M"
	GenderFemale = "F"
)
