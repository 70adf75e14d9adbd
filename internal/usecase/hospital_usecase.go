package usecase

import (
	"context"
	"errors"

	"hospital-booking-api/internal/converter"
	"hospital-booking-api/internal/delivery/dto"
	"hospital-booking-api/internal/domain/entity"
	"hospital-booking-api/internal/domain/repository"
	"hospital-booking-api/internal/scheduling"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrHospitalTitleExists = errors.New("hospital title already exists")
	ErrServiceNotFound     = errors.New("service not found")
)

type HospitalUsecase interface {
	CreateHospital(ctx context.Context, req *dto.CreateHospitalRequest) (*dto.HospitalResponse, error)
	GetHospital(ctx context.Context, id int) (*dto.HospitalResponse, error)
	ListHospitals(ctx context.Context) (*dto.HospitalListResponse, error)
	ListHospitalsByService(ctx context.Context, serviceURL string) (*dto.HospitalListResponse, error)
	UpdateHospital(ctx context.Context, id int, req *dto.UpdateHospitalRequest) (*dto.HospitalResponse, error)
	DeleteHospital(ctx context.Context, id int) error
}

type hospitalUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	hospitalRepo repository.HospitalRepository
	serviceRepo  repository.ServiceRepository
}

func NewHospitalUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	hospitalRepo repository.HospitalRepository,
	serviceRepo repository.ServiceRepository,
) HospitalUsecase {
	return &hospitalUsecase{
		db:           db,
		log:          log,
		hospitalRepo: hospitalRepo,
		serviceRepo:  serviceRepo,
	}
}

func (u *hospitalUsecase) CreateHospital(ctx context.Context, req *dto.CreateHospitalRequest) (*dto.HospitalResponse, error) {
	openingTime, err := scheduling.ParseTimeOfDay(req.OpeningTime)
	if err != nil {
		return nil, ErrInvalidTimeFormat
	}
	closingTime, err := scheduling.ParseTimeOfDay(req.ClosingTime)
	if err != nil {
		return nil, ErrInvalidTimeFormat
	}
	if !openingTime.Before(closingTime) {
		return nil, ErrInvalidTimeRange
	}

	hospital := &entity.Hospital{
		Title:       req.Title,
		ShortTitle:  req.ShortTitle,
		Type:        req.Type,
		Description: req.Description,
		Address:     req.Address,
		PhoneNumber: req.PhoneNumber,
		OpeningTime: openingTime,
		ClosingTime: closingTime,
	}

	if err := u.hospitalRepo.Create(u.db.WithContext(ctx), hospital); err != nil {
		if isDuplicateKeyError(err, "title") {
			return nil, ErrHospitalTitleExists
		}
		u.log.Warnf("Failed to create hospital: %+v", err)
		return nil, err
	}

	return converter.HospitalToResponse(hospital), nil
}

func (u *hospitalUsecase) GetHospital(ctx context.Context, id int) (*dto.HospitalResponse, error) {
	hospital, err := u.hospitalRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find hospital: %+v", err)
		return nil, err
	}
	if hospital == nil {
		return nil, ErrHospitalNotFound
	}

	return converter.HospitalToResponse(hospital), nil
}

func (u *hospitalUsecase) ListHospitals(ctx context.Context) (*dto.HospitalListResponse, error) {
	hospitals, err := u.hospitalRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to list hospitals: %+v", err)
		return nil, err
	}

	responses := converter.HospitalsToResponses(hospitals)
	return &dto.HospitalListResponse{Hospitals: responses, Total: len(responses)}, nil
}

func (u *hospitalUsecase) ListHospitalsByService(ctx context.Context, serviceURL string) (*dto.HospitalListResponse, error) {
	svc, err := u.serviceRepo.FindByURL(u.db.WithContext(ctx), serviceURL)
	if err != nil {
		u.log.Warnf("Failed to find service: %+v", err)
		return nil, err
	}
	if svc == nil {
		return nil, ErrServiceNotFound
	}

	hospitals, err := u.hospitalRepo.FindByServiceURL(u.db.WithContext(ctx), serviceURL)
	if err != nil {
		u.log.Warnf("Failed to list hospitals by service: %+v", err)
		return nil, err
	}

	responses := converter.HospitalsToResponses(hospitals)
	return &dto.HospitalListResponse{Hospitals: responses, Total: len(responses)}, nil
}

func (u *hospitalUsecase) UpdateHospital(ctx context.Context, id int, req *dto.UpdateHospitalRequest) (*dto.HospitalResponse, error) {
	hospital, err := u.hospitalRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find hospital: %+v", err)
		return nil, err
	}
	if hospital == nil {
		return nil, ErrHospitalNotFound
	}

	if req.Title != "" {
		hospital.Title = req.Title
	}
	if req.ShortTitle != "" {
		hospital.ShortTitle = req.ShortTitle
	}
	if req.Type != "" {
		hospital.Type = req.Type
	}
	if req.Description != "" {
		hospital.Description = req.Description
	}
	if req.Address != "" {
		hospital.Address = req.Address
	}
	if req.PhoneNumber != "" {
		hospital.PhoneNumber = req.PhoneNumber
	}
	if req.OpeningTime != "" {
		openingTime, err := scheduling.ParseTimeOfDay(req.OpeningTime)
		if err != nil {
			return nil, ErrInvalidTimeFormat
		}
		hospital.OpeningTime = openingTime
	}
	if req.ClosingTime != "" {
		closingTime, err := scheduling.ParseTimeOfDay(req.ClosingTime)
		if err != nil {
			return nil, ErrInvalidTimeFormat
		}
		hospital.ClosingTime = closingTime
	}
	if !hospital.OpeningTime.Before(hospital.ClosingTime) {
		return nil, ErrInvalidTimeRange
	}

	if err := u.hospitalRepo.Update(u.db.WithContext(ctx), hospital); err != nil {
		if isDuplicateKeyError(err, "title") {
			return nil, ErrHospitalTitleExists
		}
		u.log.Warnf("Failed to update hospital: %+v", err)
		return nil, err
	}

	return converter.HospitalToResponse(hospital), nil
}

func (u *hospitalUsecase) DeleteHospital(ctx context.Context, id int) error {
	rows, err := u.hospitalRepo.Delete(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to delete hospital: %+v", err)
		return err
	}
	if rows == 0 {
		return ErrHospitalNotFound
	}
	return nil
}
