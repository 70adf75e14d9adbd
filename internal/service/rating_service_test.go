package service

import (
	"testing"

	"hospital-booking-api/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestMeanRating(t *testing.T) {
	cases := []struct {
		name   string
		values []int
		want   string
	}{
		{"empty set", nil, "0"},
		{"single value", []int{5}, "5"},
		{"mixed values", []int{3, 5}, "4"},
		{"two decimal places", []int{5, 4, 4}, "4.33"},
		{"repeating decimal", []int{1, 2}, "1.5"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := MeanRating(c.values)
			assert.True(t, got.Equal(decimal.RequireFromString(c.want)),
				"MeanRating(%v) = %s, want %s", c.values, got, c.want)
		})
	}
}

type stubReviewRepo struct {
	values []int
}

func (s *stubReviewRepo) Create(db *gorm.DB, review *entity.Review) error { return nil }
func (s *stubReviewRepo) FindByID(db *gorm.DB, id int) (*entity.Review, error) {
	return nil, nil
}
func (s *stubReviewRepo) ExistsByAuthorAndHospital(db *gorm.DB, authorID uuid.UUID, hospitalID int) (bool, error) {
	return false, nil
}
func (s *stubReviewRepo) RatingValues(db *gorm.DB, hospitalID int) ([]int, error) {
	return s.values, nil
}
func (s *stubReviewRepo) Delete(db *gorm.DB, id int) (int64, error) { return 1, nil }

type stubFeedbackRepo struct {
	values []int
}

func (s *stubFeedbackRepo) Create(db *gorm.DB, feedback *entity.Feedback) error { return nil }
func (s *stubFeedbackRepo) FindByID(db *gorm.DB, id int) (*entity.Feedback, error) {
	return nil, nil
}
func (s *stubFeedbackRepo) ExistsByAuthorAndDoctor(db *gorm.DB, authorID, doctorID uuid.UUID) (bool, error) {
	return false, nil
}
func (s *stubFeedbackRepo) RatingValues(db *gorm.DB, doctorID uuid.UUID) ([]int, error) {
	return s.values, nil
}
func (s *stubFeedbackRepo) Delete(db *gorm.DB, id int) (int64, error) { return 1, nil }

type stubHospitalRepo struct {
	updated *entity.Hospital
}

func (s *stubHospitalRepo) Create(db *gorm.DB, hospital *entity.Hospital) error { return nil }
func (s *stubHospitalRepo) FindByID(db *gorm.DB, id int) (*entity.Hospital, error) {
	return nil, nil
}
func (s *stubHospitalRepo) FindAll(db *gorm.DB) ([]entity.Hospital, error) { return nil, nil }
func (s *stubHospitalRepo) FindByServiceURL(db *gorm.DB, url string) ([]entity.Hospital, error) {
	return nil, nil
}
func (s *stubHospitalRepo) SearchByTitle(db *gorm.DB, q string) ([]entity.Hospital, error) {
	return nil, nil
}
func (s *stubHospitalRepo) Update(db *gorm.DB, hospital *entity.Hospital) error {
	s.updated = hospital
	return nil
}
func (s *stubHospitalRepo) Delete(db *gorm.DB, id int) (int64, error) { return 1, nil }

type stubDoctorRepo struct {
	updated *entity.DoctorProfile
}

func (s *stubDoctorRepo) Create(db *gorm.DB, profile *entity.DoctorProfile) error { return nil }
func (s *stubDoctorRepo) FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.DoctorProfile, error) {
	return nil, nil
}
func (s *stubDoctorRepo) FindByHospitalID(db *gorm.DB, hospitalID int) ([]entity.DoctorProfile, error) {
	return nil, nil
}
func (s *stubDoctorRepo) FindBySpecializationURL(db *gorm.DB, url string) ([]entity.DoctorProfile, error) {
	return nil, nil
}
func (s *stubDoctorRepo) SearchByLastName(db *gorm.DB, q string) ([]entity.DoctorProfile, error) {
	return nil, nil
}
func (s *stubDoctorRepo) Update(db *gorm.DB, profile *entity.DoctorProfile) error {
	s.updated = profile
	return nil
}

func newRatingService(reviews *stubReviewRepo, feedbacks *stubFeedbackRepo, hospitals *stubHospitalRepo, doctors *stubDoctorRepo) *RatingService {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return NewRatingService(log, reviews, feedbacks, hospitals, doctors)
}

func TestReviewCreatedFirstReviewSeedsOwnValue(t *testing.T) {
	hospitals := &stubHospitalRepo{}
	svc := newRatingService(&stubReviewRepo{}, &stubFeedbackRepo{}, hospitals, &stubDoctorRepo{})
	hospital := &entity.Hospital{ID: 1}

	require.NoError(t, svc.ReviewCreated(nil, hospital, 4))

	assert.Equal(t, 1, hospital.ReviewsAmount)
	assert.True(t, hospital.Rating.Equal(decimal.NewFromInt(4)))
	assert.Same(t, hospital, hospitals.updated)
}

func TestReviewCreatedAveragesPriorSetOnly(t *testing.T) {
	// The stored aggregate is the mean of the pre-existing ratings; the
	// incoming review's value does not enter the mean yet.
	hospitals := &stubHospitalRepo{}
	svc := newRatingService(&stubReviewRepo{values: []int{3, 5}}, &stubFeedbackRepo{}, hospitals, &stubDoctorRepo{})
	hospital := &entity.Hospital{ID: 1, ReviewsAmount: 2, Rating: decimal.NewFromInt(4)}

	require.NoError(t, svc.ReviewCreated(nil, hospital, 1))

	assert.Equal(t, 3, hospital.ReviewsAmount)
	assert.True(t, hospital.Rating.Equal(decimal.NewFromInt(4)), "got %s", hospital.Rating)
}

func TestReviewDeletedRecomputesRemainder(t *testing.T) {
	// Hospital had reviews rated [3,5]; the 3 was deleted before the
	// recompute runs, so only the 5 remains.
	hospitals := &stubHospitalRepo{}
	svc := newRatingService(&stubReviewRepo{values: []int{5}}, &stubFeedbackRepo{}, hospitals, &stubDoctorRepo{})
	hospital := &entity.Hospital{ID: 1, ReviewsAmount: 2, Rating: decimal.NewFromInt(4)}

	require.NoError(t, svc.ReviewDeleted(nil, hospital))

	assert.Equal(t, 1, hospital.ReviewsAmount)
	assert.True(t, hospital.Rating.Equal(decimal.NewFromInt(5)), "got %s", hospital.Rating)
}

func TestReviewDeletedLastReviewZeroesAggregates(t *testing.T) {
	hospitals := &stubHospitalRepo{}
	svc := newRatingService(&stubReviewRepo{}, &stubFeedbackRepo{}, hospitals, &stubDoctorRepo{})
	hospital := &entity.Hospital{ID: 1, ReviewsAmount: 1, Rating: decimal.NewFromInt(5)}

	require.NoError(t, svc.ReviewDeleted(nil, hospital))

	assert.Equal(t, 0, hospital.ReviewsAmount)
	assert.True(t, hospital.Rating.IsZero())
}

func TestFeedbackCreatedAndDeleted(t *testing.T) {
	doctors := &stubDoctorRepo{}
	feedbacks := &stubFeedbackRepo{}
	svc := newRatingService(&stubReviewRepo{}, feedbacks, &stubHospitalRepo{}, doctors)
	doctor := &entity.DoctorProfile{UserID: uuid.New()}

	require.NoError(t, svc.FeedbackCreated(nil, doctor, 5))
	assert.Equal(t, 1, doctor.FeedbacksAmount)
	assert.True(t, doctor.Rating.Equal(decimal.NewFromInt(5)))

	feedbacks.values = []int{2, 4}
	require.NoError(t, svc.FeedbackDeleted(nil, doctor))
	assert.Equal(t, 0, doctor.FeedbacksAmount)
	assert.True(t, doctor.Rating.Equal(decimal.NewFromInt(3)), "got %s", doctor.Rating)
}

// Guard against count underflow when a delete races a recompute.
func TestDeletedNeverGoesNegative(t *testing.T) {
	hospitals := &stubHospitalRepo{}
	svc := newRatingService(&stubReviewRepo{}, &stubFeedbackRepo{}, hospitals, &stubDoctorRepo{})
	hospital := &entity.Hospital{ID: 1}

	require.NoError(t, svc.ReviewDeleted(nil, hospital))
	assert.Equal(t, 0, hospital.ReviewsAmount)
}
