package repository

import (
	"errors"
	"time"

	"hospital-booking-api/internal/domain/entity"
	domainRepo "hospital-booking-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type scheduleRepository struct{}

func NewScheduleRepository() domainRepo.ScheduleRepository {
	return &scheduleRepository{}
}

func (r *scheduleRepository) CreateBatch(db *gorm.DB, schedules []entity.Schedule) error {
	return db.Create(&schedules).Error
}

func (r *scheduleRepository) FindByID(db *gorm.DB, id int) (*entity.Schedule, error) {
	var schedule entity.Schedule
	err := db.Where("id = ?", id).First(&schedule).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &schedule, nil
}

func (r *scheduleRepository) FindByDoctorID(db *gorm.DB, doctorID uuid.UUID) ([]entity.Schedule, error) {
	var schedules []entity.Schedule
	err := db.Where("doctor_id = ?", doctorID).
		Order("date ASC, time_from ASC").
		Find(&schedules).Error
	if err != nil {
		return nil, err
	}
	return schedules, nil
}

func (r *scheduleRepository) Delete(db *gorm.DB, id int) (int64, error) {
	affected := db.Where("id = ?", id).Delete(&entity.Schedule{})
	return affected.RowsAffected, affected.Error
}

func (r *scheduleRepository) DeleteExpired(db *gorm.DB, cutoff time.Time) (int64, error) {
	affected := db.Where("date <= ?", cutoff).Delete(&entity.Schedule{})
	return affected.RowsAffected, affected.Error
}

type visitRepository struct{}

func NewVisitRepository() domainRepo.VisitRepository {
	return &visitRepository{}
}

func (r *visitRepository) CreateBatch(db *gorm.DB, visits []entity.Visit) error {
	return db.Create(&visits).Error
}

func (r *visitRepository) FindByID(db *gorm.DB, id int) (*entity.Visit, error) {
	var visit entity.Visit
	err := db.Preload("Booking").Where("id = ?", id).First(&visit).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &visit, nil
}

// FindOpenByDoctorID returns visits without a booking, soonest first.
func (r *visitRepository) FindOpenByDoctorID(db *gorm.DB, doctorID uuid.UUID, limit int) ([]entity.Visit, error) {
	var visits []entity.Visit
	err := db.
		Joins("LEFT JOIN bookings ON bookings.visit_id = visits.id").
		Where("visits.doctor_id = ? AND bookings.id IS NULL", doctorID).
		Order("visits.date ASC, visits.time ASC").
		Limit(limit).
		Find(&visits).Error
	if err != nil {
		return nil, err
	}
	return visits, nil
}

func (r *visitRepository) Delete(db *gorm.DB, id int) (int64, error) {
	affected := db.Where("id = ?", id).Delete(&entity.Visit{})
	return affected.RowsAffected, affected.Error
}

func (r *visitRepository) DeleteByDoctorAndDate(db *gorm.DB, doctorID uuid.UUID, date time.Time) (int64, error) {
	affected := db.Where("doctor_id = ? AND date = ?", doctorID, date).Delete(&entity.Visit{})
	return affected.RowsAffected, affected.Error
}

func (r *visitRepository) DeleteExpired(db *gorm.DB, cutoff time.Time) (int64, error) {
	affected := db.Where("date <= ?", cutoff).Delete(&entity.Visit{})
	return affected.RowsAffected, affected.Error
}
