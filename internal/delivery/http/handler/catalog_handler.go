package handler

import (
	"net/http"

	"hospital-booking-api/internal/usecase"
	"hospital-booking-api/pkg/response"
)

type CatalogHandler struct {
	catalogUsecase usecase.CatalogUsecase
}

func NewCatalogHandler(catalogUsecase usecase.CatalogUsecase) *CatalogHandler {
	return &CatalogHandler{catalogUsecase: catalogUsecase}
}

// ListServices handles listing all medical services
// @Summary List services
// @Tags Catalog
// @Produce json
// @Success 200 {object} response.Response
// @Router /services [get]
func (h *CatalogHandler) ListServices(w http.ResponseWriter, r *http.Request) {
	services, err := h.catalogUsecase.ListServices(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list services")
		return
	}

	response.Success(w, http.StatusOK, "Services retrieved successfully", services)
}

// ListSpecializations handles listing all doctor specializations
// @Summary List specializations
// @Tags Catalog
// @Produce json
// @Success 200 {object} response.Response
// @Router /specializations [get]
func (h *CatalogHandler) ListSpecializations(w http.ResponseWriter, r *http.Request) {
	specializations, err := h.catalogUsecase.ListSpecializations(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list specializations")
		return
	}

	response.Success(w, http.StatusOK, "Specializations retrieved successfully", specializations)
}
