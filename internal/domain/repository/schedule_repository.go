package repository

import (
	"time"

	"hospital-booking-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ScheduleRepository interface {
	CreateBatch(db *gorm.DB, schedules []entity.Schedule) error
	FindByID(db *gorm.DB, id int) (*entity.Schedule, error)
	FindByDoctorID(db *gorm.DB, doctorID uuid.UUID) ([]entity.Schedule, error)
	Delete(db *gorm.DB, id int) (int64, error)
	DeleteExpired(db *gorm.DB, cutoff time.Time) (int64, error)
}

type VisitRepository interface {
	CreateBatch(db *gorm.DB, visits []entity.Visit) error
	FindByID(db *gorm.DB, id int) (*entity.Visit, error)
	FindOpenByDoctorID(db *gorm.DB, doctorID uuid.UUID, limit int) ([]entity.Visit, error)
	Delete(db *gorm.DB, id int) (int64, error)
	DeleteByDoctorAndDate(db *gorm.DB, doctorID uuid.UUID, date time.Time) (int64, error)
	DeleteExpired(db *gorm.DB, cutoff time.Time) (int64, error)
}
