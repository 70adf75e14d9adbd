package entity

import (
	"hospital-booking-api/internal/scheduling"

	"github.com/shopspring/decimal"
)

// Hospital holds a published hospital together with its denormalized
// review aggregates. Rating and ReviewsAmount must only be touched
// through the rating service so they stay consistent with the review set.
type Hospital struct {
	ID                  int                  `gorm:"primaryKey;autoIncrement" json:"id"`
	Title               string               `gorm:"type:varchar(255);uniqueIndex;not null" json:"title"`
	ShortTitle          string               `gorm:"type:varchar(255)" json:"short_title,omitempty"`
	Type                string               `gorm:"type:varchar(255)" json:"type,omitempty"`
	Description         string               `gorm:"type:text" json:"description,omitempty"`
	Address             string               `gorm:"type:varchar(255);not null" json:"address"`
	PhoneNumber         string               `gorm:"type:varchar(17)" json:"phone_number,omitempty"`
	OpeningTime         scheduling.TimeOfDay `gorm:"type:time;not null" json:"opening_time"`
	ClosingTime         scheduling.TimeOfDay `gorm:"type:time;not null" json:"closing_time"`
	ReviewsAmount       int                  `gorm:"not null;default:0" json:"reviews_amount"`
	HospitalLikesAmount int                  `gorm:"not null;default:0" json:"hospital_likes_amount"`
	Rating              decimal.Decimal      `gorm:"type:numeric(3,2);not null;default:0" json:"rating"`

	// Relationships
	Services []Service       `gorm:"many2many:hospital_services" json:"services,omitempty"`
	Doctors  []DoctorProfile `gorm:"foreignKey:HospitalID" json:"doctors,omitempty"`
	Reviews  []Review        `gorm:"foreignKey:HospitalID" json:"reviews,omitempty"`
}

func (Hospital) TableName() string {
	return "hospitals"
}
