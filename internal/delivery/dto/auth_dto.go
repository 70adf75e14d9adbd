package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type RegisterClientRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=8"`
	FirstName   string `json:"first_name" validate:"required,max=255"`
	LastName    string `json:"last_name" validate:"required,max=255"`
	PhoneNumber string `json:"phone_number" validate:"required,e164"`
	Gender      string `json:"gender" validate:"required,oneof=M F"`
	Age         int    `json:"age" validate:"required,gte=0,lte=150"`
}

type RegisterDoctorRequest struct {
	Email         string `json:"email" validate:"required,email"`
	Password      string `json:"password" validate:"required,min=8"`
	FirstName     string `json:"first_name" validate:"required,max=255"`
	LastName      string `json:"last_name" validate:"required,max=255"`
	Biography     string `json:"biography" validate:"omitempty"`
	Experience    int    `json:"experience" validate:"omitempty,gte=0"`
	VisitDuration *int   `json:"visit_duration" validate:"omitempty,min=1"`
	HospitalID    *int   `json:"hospital_id" validate:"omitempty,min=1"`
}

type RegisterHospitalAdminRequest struct {
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required,min=8"`
	FirstName  string `json:"first_name" validate:"required,max=255"`
	LastName   string `json:"last_name" validate:"required,max=255"`
	HospitalID *int   `json:"hospital_id" validate:"omitempty,min=1"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// Response DTOs

type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	FirstName string    `json:"first_name,omitempty"`
	LastName  string    `json:"last_name,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}
