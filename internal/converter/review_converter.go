package converter

import (
	"hospital-booking-api/internal/delivery/dto"
	"hospital-booking-api/internal/domain/entity"
)

// ReviewToResponse converts a Review entity to ReviewResponse DTO. The
// star value is only accurate when the RatingStar association was
// preloaded or set by the caller.
func ReviewToResponse(review *entity.Review) *dto.ReviewResponse {
	if review == nil {
		return nil
	}

	return &dto.ReviewResponse{
		ID:         review.ID,
		AuthorID:   review.AuthorID,
		HospitalID: review.HospitalID,
		Rating:     review.RatingStar.Value,
		Text:       review.Text,
		CreatedAt:  review.CreatedAt,
	}
}

// FeedbackToResponse converts a Feedback entity to FeedbackResponse DTO
func FeedbackToResponse(feedback *entity.Feedback) *dto.FeedbackResponse {
	if feedback == nil {
		return nil
	}

	return &dto.FeedbackResponse{
		ID:        feedback.ID,
		AuthorID:  feedback.AuthorID,
		DoctorID:  feedback.DoctorID,
		Rating:    feedback.RatingStar.Value,
		Text:      feedback.Text,
		CreatedAt: feedback.CreatedAt,
	}
}
