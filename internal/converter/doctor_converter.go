package converter

import (
	"hospital-booking-api/internal/delivery/dto"
	"hospital-booking-api/internal/domain/entity"
)

// DoctorProfileToResponse converts a DoctorProfile entity to DoctorResponse DTO
func DoctorProfileToResponse(profile *entity.DoctorProfile) *dto.DoctorResponse {
	if profile == nil {
		return nil
	}

	resp := &dto.DoctorResponse{
		ID:                profile.UserID,
		FirstName:         profile.FirstName,
		LastName:          profile.LastName,
		HospitalID:        profile.HospitalID,
		Experience:        profile.Experience,
		Biography:         profile.Biography,
		VisitDuration:     profile.VisitDuration,
		DoctorLikesAmount: profile.DoctorLikesAmount,
		FeedbacksAmount:   profile.FeedbacksAmount,
		Rating:            profile.Rating.StringFixed(2),
		Specializations:   SpecializationsToCatalogs(profile.Specializations),
	}
	if profile.Price != nil {
		resp.Price = profile.Price.StringFixed(2)
	}
	return resp
}

// DoctorProfilesToResponses converts a slice of DoctorProfile entities to slice of DoctorResponse DTOs
func DoctorProfilesToResponses(profiles []entity.DoctorProfile) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, len(profiles))
	for i := range profiles {
		responses[i] = *DoctorProfileToResponse(&profiles[i])
	}
	return responses
}
