package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateBookingRequest struct {
	VisitID int    `json:"visit_id" validate:"required,min=1"`
	Service string `json:"service" validate:"omitempty"`
}

// Response DTOs

type BookingResponse struct {
	ID        uuid.UUID      `json:"id"`
	ClientID  uuid.UUID      `json:"client_id"`
	Service   string         `json:"service,omitempty"`
	Visit     *VisitResponse `json:"visit,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}

type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Total    int               `json:"total"`
}
