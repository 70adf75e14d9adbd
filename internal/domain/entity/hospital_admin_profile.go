package entity

import (
	"github.com/google/uuid"
)

// HospitalAdminProfile represents hospital-administrator profile data
type HospitalAdminProfile struct {
	UserID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	FirstName  string    `gorm:"type:varchar(255);not null" json:"first_name"`
	LastName   string    `gorm:"type:varchar(255);not null" json:"last_name"`
	HospitalID *int      `gorm:"index" json:"hospital_id,omitempty"`

	// Relationships
	User     User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Hospital *Hospital `gorm:"foreignKey:HospitalID" json:"hospital,omitempty"`
}

func (HospitalAdminProfile) TableName() string {
	return "hospital_admin_profiles"
}
