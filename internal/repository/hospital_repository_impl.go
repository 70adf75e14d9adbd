package repository

import (
	"errors"

	"hospital-booking-api/internal/domain/entity"
	domainRepo "hospital-booking-api/internal/domain/repository"

	"gorm.io/gorm"
)

type hospitalRepository struct{}

func NewHospitalRepository() domainRepo.HospitalRepository {
	return &hospitalRepository{}
}

func (r *hospitalRepository) Create(db *gorm.DB, hospital *entity.Hospital) error {
	return db.Create(hospital).Error
}

func (r *hospitalRepository) FindByID(db *gorm.DB, id int) (*entity.Hospital, error) {
	var hospital entity.Hospital
	err := db.Preload("Services").Where("id = ?", id).First(&hospital).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &hospital, nil
}

func (r *hospitalRepository) FindAll(db *gorm.DB) ([]entity.Hospital, error) {
	var hospitals []entity.Hospital
	err := db.Order("title ASC").Find(&hospitals).Error
	if err != nil {
		return nil, err
	}
	return hospitals, nil
}

func (r *hospitalRepository) FindByServiceURL(db *gorm.DB, url string) ([]entity.Hospital, error) {
	var hospitals []entity.Hospital
	err := db.
		Joins("JOIN hospital_services ON hospital_services.hospital_id = hospitals.id").
		Joins("JOIN services ON services.id = hospital_services.service_id").
		Where("services.url = ?", url).
		Order("hospital_likes_amount DESC").
		Find(&hospitals).Error
	if err != nil {
		return nil, err
	}
	return hospitals, nil
}

func (r *hospitalRepository) SearchByTitle(db *gorm.DB, q string) ([]entity.Hospital, error) {
	var hospitals []entity.Hospital
	err := db.Where("title ILIKE ?", "%"+q+"%").Find(&hospitals).Error
	if err != nil {
		return nil, err
	}
	return hospitals, nil
}

func (r *hospitalRepository) Update(db *gorm.DB, hospital *entity.Hospital) error {
	return db.Omit("Services", "Doctors", "Reviews").Save(hospital).Error
}

func (r *hospitalRepository) Delete(db *gorm.DB, id int) (int64, error) {
	affected := db.Where("id = ?", id).Delete(&entity.Hospital{})
	return affected.RowsAffected, affected.Error
}

type serviceRepository struct{}

func NewServiceRepository() domainRepo.ServiceRepository {
	return &serviceRepository{}
}

func (r *serviceRepository) FindAll(db *gorm.DB) ([]entity.Service, error) {
	var services []entity.Service
	err := db.Order("title ASC").Find(&services).Error
	if err != nil {
		return nil, err
	}
	return services, nil
}

func (r *serviceRepository) FindByURL(db *gorm.DB, url string) (*entity.Service, error) {
	var service entity.Service
	err := db.Where("url = ?", url).First(&service).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &service, nil
}

func (r *serviceRepository) SearchByTitle(db *gorm.DB, q string) ([]entity.Service, error) {
	var services []entity.Service
	err := db.Where("title ILIKE ?", "%"+q+"%").Find(&services).Error
	if err != nil {
		return nil, err
	}
	return services, nil
}

type specializationRepository struct{}

func NewSpecializationRepository() domainRepo.SpecializationRepository {
	return &specializationRepository{}
}

func (r *specializationRepository) FindAll(db *gorm.DB) ([]entity.Specialization, error) {
	var specializations []entity.Specialization
	err := db.Order("title ASC").Find(&specializations).Error
	if err != nil {
		return nil, err
	}
	return specializations, nil
}

func (r *specializationRepository) FindByURL(db *gorm.DB, url string) (*entity.Specialization, error) {
	var specialization entity.Specialization
	err := db.Where("url = ?", url).First(&specialization).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &specialization, nil
}

func (r *specializationRepository) SearchByTitle(db *gorm.DB, q string) ([]entity.Specialization, error) {
	var specializations []entity.Specialization
	err := db.Where("title ILIKE ?", "%"+q+"%").Find(&specializations).Error
	if err != nil {
		return nil, err
	}
	return specializations, nil
}
