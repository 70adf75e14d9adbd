package usecase

import (
	"context"
	"errors"

	"hospital-booking-api/internal/converter"
	"hospital-booking-api/internal/delivery/dto"
	"hospital-booking-api/internal/domain/entity"
	"hospital-booking-api/internal/domain/repository"
	"hospital-booking-api/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrFeedbackNotFound     = errors.New("feedback not found")
	ErrFeedbackNotOwned     = errors.New("feedback does not belong to you")
	ErrAlreadyGivenFeedback = errors.New("you have already left feedback for this doctor")
)

type FeedbackUsecase interface {
	CreateFeedback(ctx context.Context, authorID, doctorID uuid.UUID, req *dto.CreateFeedbackRequest) (*dto.FeedbackResponse, error)
	DeleteFeedback(ctx context.Context, authorID uuid.UUID, feedbackID int) error
}

type feedbackUsecase struct {
	db             *gorm.DB
	log            *logrus.Logger
	feedbackRepo   repository.FeedbackRepository
	doctorRepo     repository.DoctorProfileRepository
	ratingStarRepo repository.RatingStarRepository
	ratingService  *service.RatingService
	auditService   service.AuditService
}

func NewFeedbackUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	feedbackRepo repository.FeedbackRepository,
	doctorRepo repository.DoctorProfileRepository,
	ratingStarRepo repository.RatingStarRepository,
	ratingService *service.RatingService,
	auditService service.AuditService,
) FeedbackUsecase {
	return &feedbackUsecase{
		db:             db,
		log:            log,
		feedbackRepo:   feedbackRepo,
		doctorRepo:     doctorRepo,
		ratingStarRepo: ratingStarRepo,
		ratingService:  ratingService,
		auditService:   auditService,
	}
}

// CreateFeedback mirrors review creation for doctors: insert and
// aggregate update share one transaction, and the stored mean reflects
// the rating set as it stood before this row.
func (u *feedbackUsecase) CreateFeedback(ctx context.Context, authorID, doctorID uuid.UUID, req *dto.CreateFeedbackRequest) (*dto.FeedbackResponse, error) {
	doctor, err := u.doctorRepo.FindByUserID(u.db.WithContext(ctx), doctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	exists, err := u.feedbackRepo.ExistsByAuthorAndDoctor(u.db.WithContext(ctx), authorID, doctorID)
	if err != nil {
		u.log.Warnf("Failed to check existing feedback: %+v", err)
		return nil, err
	}
	if exists {
		return nil, ErrAlreadyGivenFeedback
	}

	star, err := u.ratingStarRepo.FindByValue(u.db.WithContext(ctx), req.Rating)
	if err != nil {
		u.log.Warnf("Failed to find rating star: %+v", err)
		return nil, err
	}
	if star == nil {
		return nil, ErrInvalidRatingStar
	}

	feedback := &entity.Feedback{
		AuthorID:     authorID,
		DoctorID:     doctorID,
		RatingStarID: star.ID,
		Text:         req.Text,
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.ratingService.FeedbackCreated(tx, doctor, star.Value); err != nil {
		return nil, err
	}

	if err := u.feedbackRepo.Create(tx, feedback); err != nil {
		if isDuplicateKeyError(err, "idx_feedbacks_author_doctor") {
			return nil, ErrAlreadyGivenFeedback
		}
		u.log.Warnf("Failed to create feedback: %+v", err)
		return nil, err
	}

	_ = u.auditService.LogAction(tx, &authorID, entity.AuditActionFeedbackCreate, entity.JSON{
		"doctor_id": doctorID.String(),
		"rating":    star.Value,
	})

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	feedback.RatingStar = *star
	return converter.FeedbackToResponse(feedback), nil
}

func (u *feedbackUsecase) DeleteFeedback(ctx context.Context, authorID uuid.UUID, feedbackID int) error {
	feedback, err := u.feedbackRepo.FindByID(u.db.WithContext(ctx), feedbackID)
	if err != nil {
		u.log.Warnf("Failed to find feedback: %+v", err)
		return err
	}
	if feedback == nil {
		return ErrFeedbackNotFound
	}
	if feedback.AuthorID != authorID {
		return ErrFeedbackNotOwned
	}

	doctor, err := u.doctorRepo.FindByUserID(u.db.WithContext(ctx), feedback.DoctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return err
	}
	if doctor == nil {
		return ErrDoctorNotFound
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if _, err := u.feedbackRepo.Delete(tx, feedbackID); err != nil {
		u.log.Warnf("Failed to delete feedback: %+v", err)
		return err
	}

	if err := u.ratingService.FeedbackDeleted(tx, doctor); err != nil {
		return err
	}

	_ = u.auditService.LogAction(tx, &authorID, entity.AuditActionFeedbackDelete, entity.JSON{
		"feedback_id": feedbackID,
		"doctor_id":   feedback.DoctorID.String(),
	})

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}
	return nil
}
