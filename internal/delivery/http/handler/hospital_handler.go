package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"hospital-booking-api/internal/delivery/dto"
	"hospital-booking-api/internal/usecase"
	"hospital-booking-api/pkg/response"
	"hospital-booking-api/pkg/validator"

	"github.com/gorilla/mux"
)

type HospitalHandler struct {
	hospitalUsecase usecase.HospitalUsecase
	validator       *validator.CustomValidator
}

func NewHospitalHandler(hospitalUsecase usecase.HospitalUsecase, validator *validator.CustomValidator) *HospitalHandler {
	return &HospitalHandler{
		hospitalUsecase: hospitalUsecase,
		validator:       validator,
	}
}

// Create handles hospital creation
// @Summary Create a new hospital
// @Tags Hospitals
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateHospitalRequest true "Create Hospital Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /hospitals [post]
func (h *HospitalHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateHospitalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	hospital, err := h.hospitalUsecase.CreateHospital(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrHospitalTitleExists:
			response.Conflict(w, "Hospital title already exists")
		case usecase.ErrInvalidTimeFormat:
			response.BadRequest(w, "Invalid time format, use HH:MM:SS")
		case usecase.ErrInvalidTimeRange:
			response.BadRequest(w, "Opening time must be earlier than closing time")
		default:
			response.InternalServerError(w, "Failed to create hospital")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Hospital created successfully", hospital)
}

// Get handles fetching a single hospital
// @Summary Get hospital by ID
// @Tags Hospitals
// @Produce json
// @Param id path int true "Hospital ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /hospitals/{id} [get]
func (h *HospitalHandler) Get(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		response.BadRequest(w, "Invalid hospital ID")
		return
	}

	hospital, err := h.hospitalUsecase.GetHospital(r.Context(), id)
	if err != nil {
		if err == usecase.ErrHospitalNotFound {
			response.NotFound(w, "Hospital not found")
			return
		}
		response.InternalServerError(w, "Failed to get hospital")
		return
	}

	response.Success(w, http.StatusOK, "Hospital retrieved successfully", hospital)
}

// List handles listing all hospitals
// @Summary List hospitals
// @Tags Hospitals
// @Produce json
// @Success 200 {object} response.Response
// @Router /hospitals [get]
func (h *HospitalHandler) List(w http.ResponseWriter, r *http.Request) {
	hospitals, err := h.hospitalUsecase.ListHospitals(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to list hospitals")
		return
	}

	response.Success(w, http.StatusOK, "Hospitals retrieved successfully", hospitals)
}

// ListByService handles listing hospitals providing a service
// @Summary List hospitals by service
// @Tags Hospitals
// @Produce json
// @Param url path string true "Service URL slug"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /services/{url}/hospitals [get]
func (h *HospitalHandler) ListByService(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	hospitals, err := h.hospitalUsecase.ListHospitalsByService(r.Context(), vars["url"])
	if err != nil {
		if err == usecase.ErrServiceNotFound {
			response.NotFound(w, "Service not found")
			return
		}
		response.InternalServerError(w, "Failed to list hospitals")
		return
	}

	response.Success(w, http.StatusOK, "Hospitals retrieved successfully", hospitals)
}

// Update handles hospital updates
// @Summary Update hospital
// @Tags Hospitals
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Hospital ID"
// @Param request body dto.UpdateHospitalRequest true "Update Hospital Request"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /hospitals/{id} [put]
func (h *HospitalHandler) Update(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		response.BadRequest(w, "Invalid hospital ID")
		return
	}

	var req dto.UpdateHospitalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	hospital, err := h.hospitalUsecase.UpdateHospital(r.Context(), id, &req)
	if err != nil {
		switch err {
		case usecase.ErrHospitalNotFound:
			response.NotFound(w, "Hospital not found")
		case usecase.ErrHospitalTitleExists:
			response.Conflict(w, "Hospital title already exists")
		case usecase.ErrInvalidTimeFormat:
			response.BadRequest(w, "Invalid time format, use HH:MM:SS")
		case usecase.ErrInvalidTimeRange:
			response.BadRequest(w, "Opening time must be earlier than closing time")
		default:
			response.InternalServerError(w, "Failed to update hospital")
		}
		return
	}

	response.Success(w, http.StatusOK, "Hospital updated successfully", hospital)
}

// Delete handles hospital deletion
// @Summary Delete hospital
// @Tags Hospitals
// @Security BearerAuth
// @Produce json
// @Param id path int true "Hospital ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /hospitals/{id} [delete]
func (h *HospitalHandler) Delete(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		response.BadRequest(w, "Invalid hospital ID")
		return
	}

	if err := h.hospitalUsecase.DeleteHospital(r.Context(), id); err != nil {
		if err == usecase.ErrHospitalNotFound {
			response.NotFound(w, "Hospital not found")
			return
		}
		response.InternalServerError(w, "Failed to delete hospital")
		return
	}

	response.Success(w, http.StatusOK, "Hospital deleted successfully", nil)
}
