package handler

import (
	"net/http"
	"strconv"

	"hospital-booking-api/internal/delivery/http/middleware"
	"hospital-booking-api/internal/usecase"
	"hospital-booking-api/pkg/response"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type VisitHandler struct {
	visitUsecase usecase.VisitUsecase
}

func NewVisitHandler(visitUsecase usecase.VisitUsecase) *VisitHandler {
	return &VisitHandler{visitUsecase: visitUsecase}
}

// ListOpen handles listing a doctor's free visit slots
// @Summary List open visits for a doctor
// @Tags Visits
// @Produce json
// @Param id path string true "Doctor ID (UUID)"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /doctors/{id}/visits [get]
func (h *VisitHandler) ListOpen(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	doctorID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.BadRequest(w, "Invalid doctor ID")
		return
	}

	visits, err := h.visitUsecase.ListOpenVisits(r.Context(), doctorID)
	if err != nil {
		if err == usecase.ErrDoctorNotFound {
			response.NotFound(w, "Doctor not found")
			return
		}
		response.InternalServerError(w, "Failed to list visits")
		return
	}

	response.Success(w, http.StatusOK, "Visits retrieved successfully", visits)
}

// Get handles fetching one visit
// @Summary Get visit by ID
// @Tags Visits
// @Produce json
// @Param id path int true "Visit ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /visits/{id} [get]
func (h *VisitHandler) Get(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	visitID, err := strconv.Atoi(vars["id"])
	if err != nil {
		response.BadRequest(w, "Invalid visit ID")
		return
	}

	visit, err := h.visitUsecase.GetVisit(r.Context(), visitID)
	if err != nil {
		if err == usecase.ErrVisitNotFound {
			response.NotFound(w, "Visit not found")
			return
		}
		response.InternalServerError(w, "Failed to get visit")
		return
	}

	response.Success(w, http.StatusOK, "Visit retrieved successfully", visit)
}

// Delete handles a doctor removing one of their own visit slots
// @Summary Delete visit
// @Tags Visits
// @Security BearerAuth
// @Produce json
// @Param id path int true "Visit ID"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /visits/{id} [delete]
func (h *VisitHandler) Delete(w http.ResponseWriter, r *http.Request) {
	doctorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	vars := mux.Vars(r)
	visitID, err := strconv.Atoi(vars["id"])
	if err != nil {
		response.BadRequest(w, "Invalid visit ID")
		return
	}

	if err := h.visitUsecase.DeleteVisit(r.Context(), doctorID, visitID); err != nil {
		switch err {
		case usecase.ErrVisitNotFound:
			response.NotFound(w, "Visit not found")
		case usecase.ErrVisitNotOwned:
			response.Forbidden(w, "Visit does not belong to you")
		default:
			response.InternalServerError(w, "Failed to delete visit")
		}
		return
	}

	response.Success(w, http.StatusOK, "Visit deleted successfully", nil)
}
