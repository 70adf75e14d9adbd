package repository

import (
	"hospital-booking-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BookingRepository interface {
	Create(db *gorm.DB, booking *entity.Booking) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Booking, error)
	FindByClientID(db *gorm.DB, clientID uuid.UUID) ([]entity.Booking, error)
	FindByDoctorID(db *gorm.DB, doctorID uuid.UUID) ([]entity.Booking, error)
	FindByVisitID(db *gorm.DB, visitID int) (*entity.Booking, error)
	Delete(db *gorm.DB, id uuid.UUID) (int64, error)
}

type AuditLogRepository interface {
	Create(db *gorm.DB, log *entity.AuditLog) error
}
