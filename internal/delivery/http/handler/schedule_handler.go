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

	"github.com/gorilla/mux"
)

type ScheduleHandler struct {
	scheduleUsecase usecase.ScheduleUsecase
	validator       *validator.CustomValidator
}

func NewScheduleHandler(scheduleUsecase usecase.ScheduleUsecase, validator *validator.CustomValidator) *ScheduleHandler {
	return &ScheduleHandler{
		scheduleUsecase: scheduleUsecase,
		validator:       validator,
	}
}

// Create handles schedule creation for the authenticated doctor. One
// request may expand into many schedule rows depending on periodicity.
// @Summary Create schedules
// @Tags Schedules
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateScheduleRequest true "Create Schedule Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /schedules [post]
func (h *ScheduleHandler) Create(w http.ResponseWriter, r *http.Request) {
	doctorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	var req dto.CreateScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	schedules, err := h.scheduleUsecase.CreateSchedule(r.Context(), doctorID, &req)
	if err != nil {
		switch err {
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Doctor not found")
		case usecase.ErrInvalidScheduleDate:
			response.BadRequest(w, "Invalid schedule date format, use YYYY-MM-DD")
		case usecase.ErrInvalidTimeFormat:
			response.BadRequest(w, "Invalid time format, use HH:MM:SS")
		case usecase.ErrInvalidTimeRange:
			response.BadRequest(w, "time_from must be earlier than time_to")
		case usecase.ErrInvalidPeriodicity:
			response.BadRequest(w, "Invalid periodicity")
		case usecase.ErrWeekendStart:
			response.BadRequest(w, "Schedule cannot start on a weekend")
		case usecase.ErrVisitDurationNotSet:
			response.BadRequest(w, "Set your visit duration before creating schedules")
		case usecase.ErrScheduleConflict:
			response.Conflict(w, "You already have a schedule on one of the generated dates")
		case usecase.ErrVisitConflict:
			response.Conflict(w, "You already have a visit at one of the generated times")
		default:
			response.InternalServerError(w, "Failed to create schedule")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Schedules created successfully", schedules)
}

// ListMine handles listing the authenticated doctor's schedules
// @Summary List own schedules
// @Tags Schedules
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /schedules [get]
func (h *ScheduleHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	doctorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	schedules, err := h.scheduleUsecase.GetSchedulesByDoctor(r.Context(), doctorID)
	if err != nil {
		response.InternalServerError(w, "Failed to list schedules")
		return
	}

	response.Success(w, http.StatusOK, "Schedules retrieved successfully", schedules)
}

// Delete handles deleting one schedule and its generated visits
// @Summary Delete schedule
// @Tags Schedules
// @Security BearerAuth
// @Produce json
// @Param id path int true "Schedule ID"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /schedules/{id} [delete]
func (h *ScheduleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	doctorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	vars := mux.Vars(r)
	scheduleID, err := strconv.Atoi(vars["id"])
	if err != nil {
		response.BadRequest(w, "Invalid schedule ID")
		return
	}

	if err := h.scheduleUsecase.DeleteSchedule(r.Context(), doctorID, scheduleID); err != nil {
		switch err {
		case usecase.ErrScheduleNotFound:
			response.NotFound(w, "Schedule not found")
		case usecase.ErrScheduleNotOwned:
			response.Forbidden(w, "Schedule does not belong to you")
		default:
			response.InternalServerError(w, "Failed to delete schedule")
		}
		return
	}

	response.Success(w, http.StatusOK, "Schedule deleted successfully", nil)
}
