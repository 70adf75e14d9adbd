package usecase

import (
	"context"
	"errors"
	"strings"

	"hospital-booking-api/internal/converter"
	"hospital-booking-api/internal/delivery/dto"
	"hospital-booking-api/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrEmptySearchQuery = errors.New("search query must not be empty")

type SearchUsecase interface {
	Search(ctx context.Context, query string) (*dto.SearchResponse, error)
}

type searchUsecase struct {
	db                 *gorm.DB
	log                *logrus.Logger
	doctorRepo         repository.DoctorProfileRepository
	hospitalRepo       repository.HospitalRepository
	serviceRepo        repository.ServiceRepository
	specializationRepo repository.SpecializationRepository
}

func NewSearchUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	doctorRepo repository.DoctorProfileRepository,
	hospitalRepo repository.HospitalRepository,
	serviceRepo repository.ServiceRepository,
	specializationRepo repository.SpecializationRepository,
) SearchUsecase {
	return &searchUsecase{
		db:                 db,
		log:                log,
		doctorRepo:         doctorRepo,
		hospitalRepo:       hospitalRepo,
		serviceRepo:        serviceRepo,
		specializationRepo: specializationRepo,
	}
}

// Search runs a case-insensitive substring match across the four public
// catalogs and returns whatever matched, grouped per kind.
func (u *searchUsecase) Search(ctx context.Context, query string) (*dto.SearchResponse, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrEmptySearchQuery
	}

	db := u.db.WithContext(ctx)

	doctors, err := u.doctorRepo.SearchByLastName(db, query)
	if err != nil {
		u.log.Warnf("Failed to search doctors: %+v", err)
		return nil, err
	}

	hospitals, err := u.hospitalRepo.SearchByTitle(db, query)
	if err != nil {
		u.log.Warnf("Failed to search hospitals: %+v", err)
		return nil, err
	}

	specializations, err := u.specializationRepo.SearchByTitle(db, query)
	if err != nil {
		u.log.Warnf("Failed to search specializations: %+v", err)
		return nil, err
	}

	services, err := u.serviceRepo.SearchByTitle(db, query)
	if err != nil {
		u.log.Warnf("Failed to search services: %+v", err)
		return nil, err
	}

	return &dto.SearchResponse{
		Doctors:         converter.DoctorProfilesToResponses(doctors),
		Hospitals:       converter.HospitalsToResponses(hospitals),
		Specializations: converter.SpecializationsToCatalogs(specializations),
		Services:        converter.ServicesToCatalogs(services),
	}, nil
}
