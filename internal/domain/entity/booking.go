package entity

import (
	"time"

	"github.com/google/uuid"
)

// Booking is a client's claim on exactly one visit. Deleting the booking
// keeps the visit open; deleting the visit removes the booking with it.
type Booking struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	VisitID   int       `gorm:"not null;uniqueIndex" json:"visit_id"`
	ClientID  uuid.UUID `gorm:"type:uuid;not null;index" json:"client_id"`
	Service   string    `gorm:"type:text" json:"service,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Visit  Visit         `gorm:"foreignKey:VisitID" json:"visit,omitempty"`
	Client ClientProfile `gorm:"foreignKey:ClientID" json:"client,omitempty"`
}

func (Booking) TableName() string {
	return "bookings"
}
