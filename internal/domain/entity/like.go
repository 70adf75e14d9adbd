package entity

import (
	"github.com/google/uuid"
)

// HospitalLike is a client's like of a hospital; one per pair.
type HospitalLike struct {
	ID         int       `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_hospital_likes_user_hospital" json:"user_id"`
	HospitalID int       `gorm:"not null;uniqueIndex:idx_hospital_likes_user_hospital;index" json:"hospital_id"`

	// Relationships
	User     ClientProfile `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Hospital Hospital      `gorm:"foreignKey:HospitalID" json:"hospital,omitempty"`
}

func (HospitalLike) TableName() string {
	return "hospital_likes"
}

// DoctorLike is a client's like of a doctor; one per pair.
type DoctorLike struct {
	ID       int       `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_doctor_likes_user_doctor" json:"user_id"`
	DoctorID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_doctor_likes_user_doctor;index" json:"doctor_id"`

	// Relationships
	User   ClientProfile `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Doctor DoctorProfile `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

func (DoctorLike) TableName() string {
	return "doctor_likes"
}
