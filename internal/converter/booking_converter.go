package converter

import (
	"hospital-booking-api/internal/delivery/dto"
	"hospital-booking-api/internal/domain/entity"
)

// BookingToResponse converts a Booking entity to BookingResponse DTO
func BookingToResponse(booking *entity.Booking) *dto.BookingResponse {
	if booking == nil {
		return nil
	}

	resp := &dto.BookingResponse{
		ID:        booking.ID,
		ClientID:  booking.ClientID,
		Service:   booking.Service,
		CreatedAt: booking.CreatedAt,
	}
	if booking.Visit.ID != 0 {
		resp.Visit = VisitToResponse(&booking.Visit)
	}
	return resp
}

// BookingsToResponses converts a slice of Booking entities to slice of BookingResponse DTOs
func BookingsToResponses(bookings []entity.Booking) []dto.BookingResponse {
	responses := make([]dto.BookingResponse, len(bookings))
	for i := range bookings {
		responses[i] = *BookingToResponse(&bookings[i])
	}
	return responses
}
