package repository

import (
	"hospital-booking-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RatingStarRepository interface {
	FindByID(db *gorm.DB, id int) (*entity.RatingStar, error)
	FindByValue(db *gorm.DB, value int) (*entity.RatingStar, error)
}

type ReviewRepository interface {
	Create(db *gorm.DB, review *entity.Review) error
	FindByID(db *gorm.DB, id int) (*entity.Review, error)
	ExistsByAuthorAndHospital(db *gorm.DB, authorID uuid.UUID, hospitalID int) (bool, error)
	RatingValues(db *gorm.DB, hospitalID int) ([]int, error)
	Delete(db *gorm.DB, id int) (int64, error)
}

type FeedbackRepository interface {
	Create(db *gorm.DB, feedback *entity.Feedback) error
	FindByID(db *gorm.DB, id int) (*entity.Feedback, error)
	ExistsByAuthorAndDoctor(db *gorm.DB, authorID, doctorID uuid.UUID) (bool, error)
	RatingValues(db *gorm.DB, doctorID uuid.UUID) ([]int, error)
	Delete(db *gorm.DB, id int) (int64, error)
}

type HospitalLikeRepository interface {
	Create(db *gorm.DB, like *entity.HospitalLike) error
	FindByUserAndHospital(db *gorm.DB, userID uuid.UUID, hospitalID int) (*entity.HospitalLike, error)
	Delete(db *gorm.DB, id int) (int64, error)
}

type DoctorLikeRepository interface {
	Create(db *gorm.DB, like *entity.DoctorLike) error
	FindByUserAndDoctor(db *gorm.DB, userID, doctorID uuid.UUID) (*entity.DoctorLike, error)
	Delete(db *gorm.DB, id int) (int64, error)
}
