package converter

import (
	"hospital-booking-api/internal/delivery/dto"
	"hospital-booking-api/internal/domain/entity"
)

// HospitalToResponse converts a Hospital entity to HospitalResponse DTO
func HospitalToResponse(hospital *entity.Hospital) *dto.HospitalResponse {
	if hospital == nil {
		return nil
	}

	return &dto.HospitalResponse{
		ID:                  hospital.ID,
		Title:               hospital.Title,
		ShortTitle:          hospital.ShortTitle,
		Type:                hospital.Type,
		Description:         hospital.Description,
		Address:             hospital.Address,
		PhoneNumber:         hospital.PhoneNumber,
		OpeningTime:         hospital.OpeningTime.String(),
		ClosingTime:         hospital.ClosingTime.String(),
		ReviewsAmount:       hospital.ReviewsAmount,
		HospitalLikesAmount: hospital.HospitalLikesAmount,
		Rating:              hospital.Rating.StringFixed(2),
		Services:            ServicesToCatalogs(hospital.Services),
	}
}

// HospitalsToResponses converts a slice of Hospital entities to slice of HospitalResponse DTOs
func HospitalsToResponses(hospitals []entity.Hospital) []dto.HospitalResponse {
	responses := make([]dto.HospitalResponse, len(hospitals))
	for i := range hospitals {
		responses[i] = *HospitalToResponse(&hospitals[i])
	}
	return responses
}
