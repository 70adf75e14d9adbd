package repository

import (
	"hospital-booking-api/internal/domain/entity"

	"gorm.io/gorm"
)

type HospitalRepository interface {
	Create(db *gorm.DB, hospital *entity.Hospital) error
	FindByID(db *gorm.DB, id int) (*entity.Hospital, error)
	FindAll(db *gorm.DB) ([]entity.Hospital, error)
	FindByServiceURL(db *gorm.DB, url string) ([]entity.Hospital, error)
	SearchByTitle(db *gorm.DB, q string) ([]entity.Hospital, error)
	Update(db *gorm.DB, hospital *entity.Hospital) error
	Delete(db *gorm.DB, id int) (int64, error)
}

type ServiceRepository interface {
	FindAll(db *gorm.DB) ([]entity.Service, error)
	FindByURL(db *gorm.DB, url string) (*entity.Service, error)
	SearchByTitle(db *gorm.DB, q string) ([]entity.Service, error)
}

type SpecializationRepository interface {
	FindAll(db *gorm.DB) ([]entity.Specialization, error)
	FindByURL(db *gorm.DB, url string) (*entity.Specialization, error)
	SearchByTitle(db *gorm.DB, q string) ([]entity.Specialization, error)
}
