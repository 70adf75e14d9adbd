package repository

import (
	"errors"

	"hospital-booking-api/internal/domain/entity"
	domainRepo "hospital-booking-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type clientProfileRepository struct{}

func NewClientProfileRepository() domainRepo.ClientProfileRepository {
	return &clientProfileRepository{}
}

func (r *clientProfileRepository) Create(db *gorm.DB, profile *entity.ClientProfile) error {
	return db.Create(profile).Error
}

func (r *clientProfileRepository) FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.ClientProfile, error) {
	var profile entity.ClientProfile
	err := db.Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

type doctorProfileRepository struct{}

func NewDoctorProfileRepository() domainRepo.DoctorProfileRepository {
	return &doctorProfileRepository{}
}

func (r *doctorProfileRepository) Create(db *gorm.DB, profile *entity.DoctorProfile) error {
	return db.Create(profile).Error
}

func (r *doctorProfileRepository) FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.DoctorProfile, error) {
	var profile entity.DoctorProfile
	err := db.Preload("Specializations").Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *doctorProfileRepository) FindByHospitalID(db *gorm.DB, hospitalID int) ([]entity.DoctorProfile, error) {
	var doctors []entity.DoctorProfile
	err := db.Where("hospital_id = ?", hospitalID).
		Order("doctor_likes_amount DESC").
		Find(&doctors).Error
	if err != nil {
		return nil, err
	}
	return doctors, nil
}

func (r *doctorProfileRepository) FindBySpecializationURL(db *gorm.DB, url string) ([]entity.DoctorProfile, error) {
	var doctors []entity.DoctorProfile
	err := db.
		Joins("JOIN doctor_specializations ON doctor_specializations.doctor_id = doctor_profiles.user_id").
		Joins("JOIN specializations ON specializations.id = doctor_specializations.specialization_id").
		Where("specializations.url = ?", url).
		Order("doctor_likes_amount DESC").
		Find(&doctors).Error
	if err != nil {
		return nil, err
	}
	return doctors, nil
}

func (r *doctorProfileRepository) SearchByLastName(db *gorm.DB, q string) ([]entity.DoctorProfile, error) {
	var doctors []entity.DoctorProfile
	err := db.Where("last_name ILIKE ?", "%"+q+"%").Find(&doctors).Error
	if err != nil {
		return nil, err
	}
	return doctors, nil
}

func (r *doctorProfileRepository) Update(db *gorm.DB, profile *entity.DoctorProfile) error {
	return db.Omit("Hospital", "Specializations", "User").Save(profile).Error
}

type hospitalAdminProfileRepository struct{}

func NewHospitalAdminProfileRepository() domainRepo.HospitalAdminProfileRepository {
	return &hospitalAdminProfileRepository{}
}

func (r *hospitalAdminProfileRepository) Create(db *gorm.DB, profile *entity.HospitalAdminProfile) error {
	return db.Create(profile).Error
}

func (r *hospitalAdminProfileRepository) FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.HospitalAdminProfile, error) {
	var profile entity.HospitalAdminProfile
	err := db.Where("user_id = ?", userID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}
