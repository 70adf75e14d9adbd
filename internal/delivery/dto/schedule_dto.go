package dto

import (
	"github.com/google/uuid"
)

// Request DTOs

type CreateScheduleRequest struct {
	Date        string `json:"date" validate:"required"`      // Format: YYYY-MM-DD
	TimeFrom    string `json:"time_from" validate:"required"` // Format: HH:MM:SS
	TimeTo      string `json:"time_to" validate:"required"`   // Format: HH:MM:SS
	Periodicity string `json:"periodicity" validate:"required,oneof='Once' 'Every day' 'Every week' 'Except weekend'"`
}

// Response DTOs

type ScheduleResponse struct {
	ID          int       `json:"id"`
	DoctorID    uuid.UUID `json:"doctor_id"`
	Date        string    `json:"date"`
	TimeFrom    string    `json:"time_from"`
	TimeTo      string    `json:"time_to"`
	Periodicity string    `json:"periodicity"`
}

type ScheduleListResponse struct {
	Schedules []ScheduleResponse `json:"schedules"`
	Total     int                `json:"total"`
}

type VisitResponse struct {
	ID       int       `json:"id"`
	DoctorID uuid.UUID `json:"doctor_id"`
	Date     string    `json:"date"`
	Time     string    `json:"time"`
	Booked   bool      `json:"booked"`
}

type VisitListResponse struct {
	Visits []VisitResponse `json:"visits"`
	Total  int             `json:"total"`
}
