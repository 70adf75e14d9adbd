package usecase

import (
	"context"

	"hospital-booking-api/internal/converter"
	"hospital-booking-api/internal/delivery/dto"
	"hospital-booking-api/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type CatalogUsecase interface {
	ListServices(ctx context.Context) (*dto.CatalogListResponse, error)
	ListSpecializations(ctx context.Context) (*dto.CatalogListResponse, error)
}

type catalogUsecase struct {
	db                 *gorm.DB
	log                *logrus.Logger
	serviceRepo        repository.ServiceRepository
	specializationRepo repository.SpecializationRepository
}

func NewCatalogUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	serviceRepo repository.ServiceRepository,
	specializationRepo repository.SpecializationRepository,
) CatalogUsecase {
	return &catalogUsecase{
		db:                 db,
		log:                log,
		serviceRepo:        serviceRepo,
		specializationRepo: specializationRepo,
	}
}

func (u *catalogUsecase) ListServices(ctx context.Context) (*dto.CatalogListResponse, error) {
	services, err := u.serviceRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list services: %+v", err)
		return nil, err
	}

	items := converter.ServicesToCatalogs(services)
	return &dto.CatalogListResponse{Items: items, Total: len(items)}, nil
}

func (u *catalogUsecase) ListSpecializations(ctx context.Context) (*dto.CatalogListResponse, error) {
	specializations, err := u.specializationRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list specializations: %+v", err)
		return nil, err
	}

	items := converter.SpecializationsToCatalogs(specializations)
	return &dto.CatalogListResponse{Items: items, Total: len(items)}, nil
}
