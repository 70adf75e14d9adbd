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
	ErrReviewNotFound    = errors.New("review not found")
	ErrReviewNotOwned    = errors.New("review does not belong to you")
	ErrAlreadyReviewed   = errors.New("you have already reviewed this hospital")
	ErrInvalidRatingStar = errors.New("rating must reference an existing star value")
)

type ReviewUsecase interface {
	CreateReview(ctx context.Context, authorID uuid.UUID, hospitalID int, req *dto.CreateReviewRequest) (*dto.ReviewResponse, error)
	DeleteReview(ctx context.Context, authorID uuid.UUID, reviewID int) error
}

type reviewUsecase struct {
	db             *gorm.DB
	log            *logrus.Logger
	reviewRepo     repository.ReviewRepository
	hospitalRepo   repository.HospitalRepository
	ratingStarRepo repository.RatingStarRepository
	ratingService  *service.RatingService
	auditService   service.AuditService
}

func NewReviewUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	reviewRepo repository.ReviewRepository,
	hospitalRepo repository.HospitalRepository,
	ratingStarRepo repository.RatingStarRepository,
	ratingService *service.RatingService,
	auditService service.AuditService,
) ReviewUsecase {
	return &reviewUsecase{
		db:             db,
		log:            log,
		reviewRepo:     reviewRepo,
		hospitalRepo:   hospitalRepo,
		ratingStarRepo: ratingStarRepo,
		ratingService:  ratingService,
		auditService:   auditService,
	}
}

// CreateReview inserts the review and updates the hospital aggregates in
// one transaction. The aggregate update reads the rating set before the
// insert lands, so the stored mean trails the live set by the newest row.
func (u *reviewUsecase) CreateReview(ctx context.Context, authorID uuid.UUID, hospitalID int, req *dto.CreateReviewRequest) (*dto.ReviewResponse, error) {
	hospital, err := u.hospitalRepo.FindByID(u.db.WithContext(ctx), hospitalID)
	if err != nil {
		u.log.Warnf("Failed to find hospital: %+v", err)
		return nil, err
	}
	if hospital == nil {
		return nil, ErrHospitalNotFound
	}

	exists, err := u.reviewRepo.ExistsByAuthorAndHospital(u.db.WithContext(ctx), authorID, hospitalID)
	if err != nil {
		u.log.Warnf("Failed to check existing review: %+v", err)
		return nil, err
	}
	if exists {
		return nil, ErrAlreadyReviewed
	}

	star, err := u.ratingStarRepo.FindByValue(u.db.WithContext(ctx), req.Rating)
	if err != nil {
		u.log.Warnf("Failed to find rating star: %+v", err)
		return nil, err
	}
	if star == nil {
		return nil, ErrInvalidRatingStar
	}

	review := &entity.Review{
		AuthorID:     authorID,
		HospitalID:   hospitalID,
		RatingStarID: star.ID,
		Text:         req.Text,
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if err := u.ratingService.ReviewCreated(tx, hospital, star.Value); err != nil {
		return nil, err
	}

	if err := u.reviewRepo.Create(tx, review); err != nil {
		if isDuplicateKeyError(err, "idx_reviews_author_hospital") {
			return nil, ErrAlreadyReviewed
		}
		u.log.Warnf("Failed to create review: %+v", err)
		return nil, err
	}

	_ = u.auditService.LogAction(tx, &authorID, entity.AuditActionReviewCreate, entity.JSON{
		"hospital_id": hospitalID,
		"rating":      star.Value,
	})

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	review.RatingStar = *star
	return converter.ReviewToResponse(review), nil
}

// DeleteReview removes the review and recomputes the hospital aggregates
// over the remaining set, in one transaction.
func (u *reviewUsecase) DeleteReview(ctx context.Context, authorID uuid.UUID, reviewID int) error {
	review, err := u.reviewRepo.FindByID(u.db.WithContext(ctx), reviewID)
	if err != nil {
		u.log.Warnf("Failed to find review: %+v", err)
		return err
	}
	if review == nil {
		return ErrReviewNotFound
	}
	if review.AuthorID != authorID {
		return ErrReviewNotOwned
	}

	hospital, err := u.hospitalRepo.FindByID(u.db.WithContext(ctx), review.HospitalID)
	if err != nil {
		u.log.Warnf("Failed to find hospital: %+v", err)
		return err
	}
	if hospital == nil {
		return ErrHospitalNotFound
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	if _, err := u.reviewRepo.Delete(tx, reviewID); err != nil {
		u.log.Warnf("Failed to delete review: %+v", err)
		return err
	}

	if err := u.ratingService.ReviewDeleted(tx, hospital); err != nil {
		return err
	}

	_ = u.auditService.LogAction(tx, &authorID, entity.AuditActionReviewDelete, entity.JSON{
		"review_id":   reviewID,
		"hospital_id": review.HospitalID,
	})

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}
	return nil
}
