package converter

import (
	"hospital-booking-api/internal/delivery/dto"
	"hospital-booking-api/internal/domain/entity"
)

// VisitToResponse converts a Visit entity to VisitResponse DTO. Booked is
// only accurate when the Booking association was preloaded.
func VisitToResponse(visit *entity.Visit) *dto.VisitResponse {
	if visit == nil {
		return nil
	}

	return &dto.VisitResponse{
		ID:       visit.ID,
		DoctorID: visit.DoctorID,
		Date:     visit.Date.Format("2006-01-02"),
		Time:     visit.Time.String(),
		Booked:   visit.IsBooked(),
	}
}

// VisitsToResponses converts a slice of Visit entities to slice of VisitResponse DTOs
func VisitsToResponses(visits []entity.Visit) []dto.VisitResponse {
	responses := make([]dto.VisitResponse, len(visits))
	for i := range visits {
		responses[i] = *VisitToResponse(&visits[i])
	}
	return responses
}
