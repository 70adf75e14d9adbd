package repository

import (
	"hospital-booking-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ClientProfileRepository interface {
	Create(db *gorm.DB, profile *entity.ClientProfile) error
	FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.ClientProfile, error)
}

type DoctorProfileRepository interface {
	Create(db *gorm.DB, profile *entity.DoctorProfile) error
	FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.DoctorProfile, error)
	FindByHospitalID(db *gorm.DB, hospitalID int) ([]entity.DoctorProfile, error)
	FindBySpecializationURL(db *gorm.DB, url string) ([]entity.DoctorProfile, error)
	SearchByLastName(db *gorm.DB, q string) ([]entity.DoctorProfile, error)
	Update(db *gorm.DB, profile *entity.DoctorProfile) error
}

type HospitalAdminProfileRepository interface {
	Create(db *gorm.DB, profile *entity.HospitalAdminProfile) error
	FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.HospitalAdminProfile, error)
}
