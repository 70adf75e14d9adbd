package repository

import (
	"errors"

	"hospital-booking-api/internal/domain/entity"
	domainRepo "hospital-booking-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ratingStarRepository struct{}

func NewRatingStarRepository() domainRepo.RatingStarRepository {
	return &ratingStarRepository{}
}

func (r *ratingStarRepository) FindByID(db *gorm.DB, id int) (*entity.RatingStar, error) {
	var star entity.RatingStar
	err := db.Where("id = ?", id).First(&star).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &star, nil
}

func (r *ratingStarRepository) FindByValue(db *gorm.DB, value int) (*entity.RatingStar, error) {
	var star entity.RatingStar
	err := db.Where("value = ?", value).First(&star).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &star, nil
}

type reviewRepository struct{}

func NewReviewRepository() domainRepo.ReviewRepository {
	return &reviewRepository{}
}

func (r *reviewRepository) Create(db *gorm.DB, review *entity.Review) error {
	return db.Create(review).Error
}

func (r *reviewRepository) FindByID(db *gorm.DB, id int) (*entity.Review, error) {
	var review entity.Review
	err := db.Preload("RatingStar").Where("id = ?", id).First(&review).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepository) ExistsByAuthorAndHospital(db *gorm.DB, authorID uuid.UUID, hospitalID int) (bool, error) {
	var count int64
	err := db.Model(&entity.Review{}).
		Where("author_id = ? AND hospital_id = ?", authorID, hospitalID).
		Count(&count).Error
	return count > 0, err
}

// RatingValues returns the star value of every review for the hospital.
func (r *reviewRepository) RatingValues(db *gorm.DB, hospitalID int) ([]int, error) {
	var values []int
	err := db.Model(&entity.Review{}).
		Joins("JOIN rating_stars ON rating_stars.id = reviews.rating_star_id").
		Where("reviews.hospital_id = ?", hospitalID).
		Pluck("rating_stars.value", &values).Error
	if err != nil {
		return nil, err
	}
	return values, nil
}

func (r *reviewRepository) Delete(db *gorm.DB, id int) (int64, error) {
	affected := db.Where("id = ?", id).Delete(&entity.Review{})
	return affected.RowsAffected, affected.Error
}

type feedbackRepository struct{}

func NewFeedbackRepository() domainRepo.FeedbackRepository {
	return &feedbackRepository{}
}

func (r *feedbackRepository) Create(db *gorm.DB, feedback *entity.Feedback) error {
	return db.Create(feedback).Error
}

func (r *feedbackRepository) FindByID(db *gorm.DB, id int) (*entity.Feedback, error) {
	var feedback entity.Feedback
	err := db.Preload("RatingStar").Where("id = ?", id).First(&feedback).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &feedback, nil
}

func (r *feedbackRepository) ExistsByAuthorAndDoctor(db *gorm.DB, authorID, doctorID uuid.UUID) (bool, error) {
	var count int64
	err := db.Model(&entity.Feedback{}).
		Where("author_id = ? AND doctor_id = ?", authorID, doctorID).
		Count(&count).Error
	return count > 0, err
}

// RatingValues returns the star value of every feedback for the doctor.
func (r *feedbackRepository) RatingValues(db *gorm.DB, doctorID uuid.UUID) ([]int, error) {
	var values []int
	err := db.Model(&entity.Feedback{}).
		Joins("JOIN rating_stars ON rating_stars.id = feedbacks.rating_star_id").
		Where("feedbacks.doctor_id = ?", doctorID).
		Pluck("rating_stars.value", &values).Error
	if err != nil {
		return nil, err
	}
	return values, nil
}

func (r *feedbackRepository) Delete(db *gorm.DB, id int) (int64, error) {
	affected := db.Where("id = ?", id).Delete(&entity.Feedback{})
	return affected.RowsAffected, affected.Error
}

type hospitalLikeRepository struct{}

func NewHospitalLikeRepository() domainRepo.HospitalLikeRepository {
	return &hospitalLikeRepository{}
}

func (r *hospitalLikeRepository) Create(db *gorm.DB, like *entity.HospitalLike) error {
	return db.Create(like).Error
}

func (r *hospitalLikeRepository) FindByUserAndHospital(db *gorm.DB, userID uuid.UUID, hospitalID int) (*entity.HospitalLike, error) {
	var like entity.HospitalLike
	err := db.Where("user_id = ? AND hospital_id = ?", userID, hospitalID).First(&like).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &like, nil
}

func (r *hospitalLikeRepository) Delete(db *gorm.DB, id int) (int64, error) {
	affected := db.Where("id = ?", id).Delete(&entity.HospitalLike{})
	return affected.RowsAffected, affected.Error
}

type doctorLikeRepository struct{}

func NewDoctorLikeRepository() domainRepo.DoctorLikeRepository {
	return &doctorLikeRepository{}
}

func (r *doctorLikeRepository) Create(db *gorm.DB, like *entity.DoctorLike) error {
	return db.Create(like).Error
}

func (r *doctorLikeRepository) FindByUserAndDoctor(db *gorm.DB, userID, doctorID uuid.UUID) (*entity.DoctorLike, error) {
	var like entity.DoctorLike
	err := db.Where("user_id = ? AND doctor_id = ?", userID, doctorID).First(&like).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &like, nil
}

func (r *doctorLikeRepository) Delete(db *gorm.DB, id int) (int64, error) {
	affected := db.Where("id = ?", id).Delete(&entity.DoctorLike{})
	return affected.RowsAffected, affected.Error
}
