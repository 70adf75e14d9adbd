package usecase

import (
	"context"
	"errors"

	"hospital-booking-api/internal/domain/entity"
	"hospital-booking-api/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrAlreadyLiked = errors.New("already liked")
	ErrLikeNotFound = errors.New("like not found")
)

type LikeUsecase interface {
	LikeHospital(ctx context.Context, userID uuid.UUID, hospitalID int) error
	UnlikeHospital(ctx context.Context, userID uuid.UUID, hospitalID int) error
	LikeDoctor(ctx context.Context, userID, doctorID uuid.UUID) error
	UnlikeDoctor(ctx context.Context, userID, doctorID uuid.UUID) error
}

type likeUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	hospitalLikeRepo repository.HospitalLikeRepository
	doctorLikeRepo   repository.DoctorLikeRepository
	hospitalRepo     repository.HospitalRepository
	doctorRepo       repository.DoctorProfileRepository
}

func NewLikeUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	hospitalLikeRepo repository.HospitalLikeRepository,
	doctorLikeRepo repository.DoctorLikeRepository,
	hospitalRepo repository.HospitalRepository,
	doctorRepo repository.DoctorProfileRepository,
) LikeUsecase {
	return &likeUsecase{
		db:               db,
		log:              log,
		hospitalLikeRepo: hospitalLikeRepo,
		doctorLikeRepo:   doctorLikeRepo,
		hospitalRepo:     hospitalRepo,
		doctorRepo:       doctorRepo,
	}
}

// LikeHospital inserts the like row and bumps the hospital counter in one
// transaction. The unique (user, hospital) constraint is the real guard
// against double likes.
func (u *likeUsecase) LikeHospital(ctx context.Context, userID uuid.UUID, hospitalID int) error {
	hospital, err := u.hospitalRepo.FindByID(u.db.WithContext(ctx), hospitalID)
	if err != nil {
		u.log.Warnf("Failed to find hospital: %+v", err)
		return err
	}
	if hospital == nil {
		return ErrHospitalNotFound
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	like := &entity.HospitalLike{UserID: userID, HospitalID: hospitalID}
	if err := u.hospitalLikeRepo.Create(tx, like); err != nil {
		if isDuplicateKeyError(err, "idx_hospital_likes_user_hospital") {
			return ErrAlreadyLiked
		}
		u.log.Warnf("Failed to create hospital like: %+v", err)
		return err
	}

	hospital.HospitalLikesAmount++
	if err := u.hospitalRepo.Update(tx, hospital); err != nil {
		u.log.Warnf("Failed to update hospital likes counter: %+v", err)
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}
	return nil
}

func (u *likeUsecase) UnlikeHospital(ctx context.Context, userID uuid.UUID, hospitalID int) error {
	hospital, err := u.hospitalRepo.FindByID(u.db.WithContext(ctx), hospitalID)
	if err != nil {
		u.log.Warnf("Failed to find hospital: %+v", err)
		return err
	}
	if hospital == nil {
		return ErrHospitalNotFound
	}

	like, err := u.hospitalLikeRepo.FindByUserAndHospital(u.db.WithContext(ctx), userID, hospitalID)
	if err != nil {
		u.log.Warnf("Failed to find hospital like: %+v", err)
		return err
	}
	if like == nil {
		return ErrLikeNotFound
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if _, err := u.hospitalLikeRepo.Delete(tx, like.ID); err != nil {
		u.log.Warnf("Failed to delete hospital like: %+v", err)
		return err
	}

	hospital.HospitalLikesAmount--
	if hospital.HospitalLikesAmount < 0 {
		hospital.HospitalLikesAmount = 0
	}
	if err := u.hospitalRepo.Update(tx, hospital); err != nil {
		u.log.Warnf("Failed to update hospital likes counter: %+v", err)
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}
	return nil
}

func (u *likeUsecase) LikeDoctor(ctx context.Context, userID, doctorID uuid.UUID) error {
	doctor, err := u.doctorRepo.FindByUserID(u.db.WithContext(ctx), doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return err
	}
	if doctor == nil {
		return ErrDoctorNotFound
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	like := &entity.DoctorLike{UserID: userID, DoctorID: doctorID}
	if err := u.doctorLikeRepo.Create(tx, like); err != nil {
		if isDuplicateKeyError(err, "idx_doctor_likes_user_doctor") {
			return ErrAlreadyLiked
		}
		u.log.Warnf("Failed to create doctor like: %+v", err)
		return err
	}

	doctor.DoctorLikesAmount++
	if err := u.doctorRepo.Update(tx, doctor); err != nil {
		u.log.Warnf("Failed to update doctor likes counter: %+v", err)
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}
	return nil
}

func (u *likeUsecase) UnlikeDoctor(ctx context.Context, userID, doctorID uuid.UUID) error {
	doctor, err := u.doctorRepo.FindByUserID(u.db.WithContext(ctx), doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return err
	}
	if doctor == nil {
		return ErrDoctorNotFound
	}

	like, err := u.doctorLikeRepo.FindByUserAndDoctor(u.db.WithContext(ctx), userID, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor like: %+v", err)
		return err
	}
	if like == nil {
		return ErrLikeNotFound
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if _, err := u.doctorLikeRepo.Delete(tx, like.ID); err != nil {
		u.log.Warnf("Failed to delete doctor like: %+v", err)
		return err
	}

	doctor.DoctorLikesAmount--
	if doctor.DoctorLikesAmount < 0 {
		doctor.DoctorLikesAmount = 0
	}
	if err := u.doctorRepo.Update(tx, doctor); err != nil {
		u.log.Warnf("Failed to update doctor likes counter: %+v", err)
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}
	return nil
}
