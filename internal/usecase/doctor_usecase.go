package usecase

import (
	"context"
	"errors"

	"hospital-booking-api/internal/converter"
	"hospital-booking-api/internal/delivery/dto"
	"hospital-booking-api/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrSpecializationNotFound = errors.New("specialization not found")

type DoctorUsecase interface {
	GetDoctor(ctx context.Context, doctorID uuid.UUID) (*dto.DoctorResponse, error)
	ListDoctorsByHospital(ctx context.Context, hospitalID int) (*dto.DoctorListResponse, error)
	ListDoctorsBySpecialization(ctx context.Context, specializationURL string) (*dto.DoctorListResponse, error)
	UpdateDoctor(ctx context.Context, doctorID uuid.UUID, req *dto.UpdateDoctorRequest) (*dto.DoctorResponse, error)
}

type doctorUsecase struct {
	db                 *gorm.DB
	log                *logrus.Logger
	doctorRepo         repository.DoctorProfileRepository
	hospitalRepo       repository.HospitalRepository
	specializationRepo repository.SpecializationRepository
}

func NewDoctorUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	doctorRepo repository.DoctorProfileRepository,
	hospitalRepo repository.HospitalRepository,
	specializationRepo repository.SpecializationRepository,
) DoctorUsecase {
	return &doctorUsecase{
		db:                 db,
		log:                log,
		doctorRepo:         doctorRepo,
		hospitalRepo:       hospitalRepo,
		specializationRepo: specializationRepo,
	}
}

func (u *doctorUsecase) GetDoctor(ctx context.Context, doctorID uuid.UUID) (*dto.DoctorResponse, error) {
	doctor, err := u.doctorRepo.FindByUserID(u.db.WithContext(ctx), doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	return converter.DoctorProfileToResponse(doctor), nil
}

func (u *doctorUsecase) ListDoctorsByHospital(ctx context.Context, hospitalID int) (*dto.DoctorListResponse, error) {
	hospital, err := u.hospitalRepo.FindByID(u.db.WithContext(ctx), hospitalID)
	if err != nil {
		u.log.Warnf("Failed to find hospital: %+v", err)
		return nil, err
	}
	if hospital == nil {
		return nil, ErrHospitalNotFound
	}

	doctors, err := u.doctorRepo.FindByHospitalID(u.db.WithContext(ctx), hospitalID)
	if err != nil {
		u.log.Warnf("Failed to list doctors by hospital: %+v", err)
		return nil, err
	}

	responses := converter.DoctorProfilesToResponses(doctors)
	return &dto.DoctorListResponse{Doctors: responses, Total: len(responses)}, nil
}

func (u *doctorUsecase) ListDoctorsBySpecialization(ctx context.Context, specializationURL string) (*dto.DoctorListResponse, error) {
	specialization, err := u.specializationRepo.FindByURL(u.db.WithContext(ctx), specializationURL)
	if err != nil {
		u.log.Warnf("Failed to find specialization: %+v", err)
		return nil, err
	}
	if specialization == nil {
		return nil, ErrSpecializationNotFound
	}

	doctors, err := u.doctorRepo.FindBySpecializationURL(u.db.WithContext(ctx), specializationURL)
	if err != nil {
		u.log.Warnf("Failed to list doctors by specialization: %+v", err)
		return nil, err
	}

	responses := converter.DoctorProfilesToResponses(doctors)
	return &dto.DoctorListResponse{Doctors: responses, Total: len(responses)}, nil
}

func (u *doctorUsecase) UpdateDoctor(ctx context.Context, doctorID uuid.UUID, req *dto.UpdateDoctorRequest) (*dto.DoctorResponse, error) {
	doctor, err := u.doctorRepo.FindByUserID(u.db.WithContext(ctx), doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	if req.Biography != "" {
		doctor.Biography = req.Biography
	}
	if req.Experience != nil {
		doctor.Experience = *req.Experience
	}
	if req.VisitDuration != nil {
		doctor.VisitDuration = req.VisitDuration
	}
	if req.HospitalID != nil {
		doctor.HospitalID = req.HospitalID
	}

	if err := u.doctorRepo.Update(u.db.WithContext(ctx), doctor); err != nil {
		if isForeignKeyError(err, "hospital") {
			return nil, ErrHospitalNotFound
		}
		u.log.Warnf("Failed to update doctor: %+v", err)
		return nil, err
	}

	return converter.DoctorProfileToResponse(doctor), nil
}
