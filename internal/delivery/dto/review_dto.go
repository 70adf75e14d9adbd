package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateReviewRequest struct {
	Rating int    `json:"rating" validate:"required,min=1,max=5"`
	Text   string `json:"text" validate:"required"`
}

type CreateFeedbackRequest struct {
	Rating int    `json:"rating" validate:"required,min=1,max=5"`
	Text   string `json:"text" validate:"required"`
}

// Response DTOs

type ReviewResponse struct {
	ID         int       `json:"id"`
	AuthorID   uuid.UUID `json:"author_id"`
	HospitalID int       `json:"hospital_id"`
	Rating     int       `json:"rating"`
	Text       string    `json:"text"`
	CreatedAt  time.Time `json:"created_at"`
}

type FeedbackResponse struct {
	ID        int       `json:"id"`
	AuthorID  uuid.UUID `json:"author_id"`
	DoctorID  uuid.UUID `json:"doctor_id"`
	Rating    int       `json:"rating"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}
