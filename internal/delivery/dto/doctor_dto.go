package dto

import (
	"github.com/google/uuid"
)

// Response DTOs

type DoctorResponse struct {
	ID                uuid.UUID         `json:"id"`
	FirstName         string            `json:"first_name"`
	LastName          string            `json:"last_name"`
	HospitalID        *int              `json:"hospital_id,omitempty"`
	Experience        int               `json:"experience"`
	Biography         string            `json:"biography,omitempty"`
	Price             string            `json:"price,omitempty"`
	VisitDuration     *int              `json:"visit_duration,omitempty"`
	DoctorLikesAmount int               `json:"doctor_likes_amount"`
	FeedbacksAmount   int               `json:"feedbacks_amount"`
	Rating            string            `json:"rating"`
	Specializations   []CatalogResponse `json:"specializations,omitempty"`
}

type DoctorListResponse struct {
	Doctors []DoctorResponse `json:"doctors"`
	Total   int              `json:"total"`
}

type UpdateDoctorRequest struct {
	Biography     string `json:"biography" validate:"omitempty"`
	Experience    *int   `json:"experience" validate:"omitempty,gte=0"`
	VisitDuration *int   `json:"visit_duration" validate:"omitempty,min=1"`
	HospitalID    *int   `json:"hospital_id" validate:"omitempty,min=1"`
}
