package converter

import (
	"hospital-booking-api/internal/delivery/dto"
	"hospital-booking-api/internal/domain/entity"
)

func ServicesToCatalogs(services []entity.Service) []dto.CatalogResponse {
	if len(services) == 0 {
		return nil
	}
	items := make([]dto.CatalogResponse, len(services))
	for i, s := range services {
		items[i] = dto.CatalogResponse{ID: s.ID, Title: s.Title, URL: s.URL}
	}
	return items
}

func SpecializationsToCatalogs(specializations []entity.Specialization) []dto.CatalogResponse {
	if len(specializations) == 0 {
		return nil
	}
	items := make([]dto.CatalogResponse, len(specializations))
	for i, s := range specializations {
		items[i] = dto.CatalogResponse{ID: s.ID, Title: s.Title, URL: s.URL}
	}
	return items
}
