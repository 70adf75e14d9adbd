package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"hospital-booking-api/internal/delivery/dto"
	"hospital-booking-api/internal/delivery/http/middleware"
	"hospital-booking-api/internal/usecase"
	"hospital-booking-api/pkg/response"
	"hospital-booking-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type DoctorHandler struct {
	doctorUsecase usecase.DoctorUsecase
	validator     *validator.CustomValidator
}

func NewDoctorHandler(doctorUsecase usecase.DoctorUsecase, validator *validator.CustomValidator) *DoctorHandler {
	return &DoctorHandler{
		doctorUsecase: doctorUsecase,
		validator:     validator,
	}
}

// Get handles fetching a single doctor profile
// @Summary Get doctor by ID
// @Tags Doctors
// @Produce json
// @Param id path string true "Doctor ID (UUID)"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /doctors/{id} [get]
func (h *DoctorHandler) Get(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	doctorID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.BadRequest(w, "Invalid doctor ID")
		return
	}

	doctor, err := h.doctorUsecase.GetDoctor(r.Context(), doctorID)
	if err != nil {
		if err == usecase.ErrDoctorNotFound {
			response.NotFound(w, "Doctor not found")
			return
		}
		response.InternalServerError(w, "Failed to get doctor")
		return
	}

	response.Success(w, http.StatusOK, "Doctor retrieved successfully", doctor)
}

// ListByHospital handles listing doctors working at a hospital
// @Summary List doctors by hospital
// @Tags Doctors
// @Produce json
// @Param id path int true "Hospital ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /hospitals/{id}/doctors [get]
func (h *DoctorHandler) ListByHospital(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	hospitalID, err := strconv.Atoi(vars["id"])
	if err != nil {
		response.BadRequest(w, "Invalid hospital ID")
		return
	}

	doctors, err := h.doctorUsecase.ListDoctorsByHospital(r.Context(), hospitalID)
	if err != nil {
		if err == usecase.ErrHospitalNotFound {
			response.NotFound(w, "Hospital not found")
			return
		}
		response.InternalServerError(w, "Failed to list doctors")
		return
	}

	response.Success(w, http.StatusOK, "Doctors retrieved successfully", doctors)
}

// ListBySpecialization handles listing doctors by specialization slug
// @Summary List doctors by specialization
// @Tags Doctors
// @Produce json
// @Param url path string true "Specialization URL slug"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /specializations/{url}/doctors [get]
func (h *DoctorHandler) ListBySpecialization(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	doctors, err := h.doctorUsecase.ListDoctorsBySpecialization(r.Context(), vars["url"])
	if err != nil {
		if err == usecase.ErrSpecializationNotFound {
			response.NotFound(w, "Specialization not found")
			return
		}
		response.InternalServerError(w, "Failed to list doctors")
		return
	}

	response.Success(w, http.StatusOK, "Doctors retrieved successfully", doctors)
}

// UpdateMe handles the authenticated doctor updating their own profile
// @Summary Update own doctor profile
// @Tags Doctors
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.UpdateDoctorRequest true "Update Doctor Request"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /doctors/me [put]
func (h *DoctorHandler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	doctorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.UpdateDoctorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	doctor, err := h.doctorUsecase.UpdateDoctor(r.Context(), doctorID, &req)
	if err != nil {
		switch err {
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Doctor not found")
		case usecase.ErrHospitalNotFound:
			response.NotFound(w, "Hospital not found")
		default:
			response.InternalServerError(w, "Failed to update doctor")
		}
		return
	}

	response.Success(w, http.StatusOK, "Doctor updated successfully", doctor)
}
