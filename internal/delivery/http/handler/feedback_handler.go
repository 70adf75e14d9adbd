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

type FeedbackHandler struct {
	feedbackUsecase usecase.FeedbackUsecase
	validator       *validator.CustomValidator
}

func NewFeedbackHandler(feedbackUsecase usecase.FeedbackUsecase, validator *validator.CustomValidator) *FeedbackHandler {
	return &FeedbackHandler{
		feedbackUsecase: feedbackUsecase,
		validator:       validator,
	}
}

// Create handles a client leaving feedback for a doctor
// @Summary Leave feedback for a doctor
// @Tags Feedbacks
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Doctor ID (UUID)"
// @Param request body dto.CreateFeedbackRequest true "Create Feedback Request"
// @Success 201 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /doctors/{id}/feedbacks [post]
func (h *FeedbackHandler) Create(w http.ResponseWriter, r *http.Request) {
	authorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	vars := mux.Vars(r)
	doctorID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.BadRequest(w, "Invalid doctor ID")
		return
	}

	var req dto.CreateFeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	feedback, err := h.feedbackUsecase.CreateFeedback(r.Context(), authorID, doctorID, &req)
	if err != nil {
		switch err {
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Doctor not found")
		case usecase.ErrAlreadyGivenFeedback:
			response.Conflict(w, "You have already left feedback for this doctor")
		case usecase.ErrInvalidRatingStar:
			response.BadRequest(w, "Rating must be between 1 and 5")
		default:
			response.InternalServerError(w, "Failed to create feedback")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Feedback created successfully", feedback)
}

// Delete handles a client removing their own feedback
// @Summary Delete feedback
// @Tags Feedbacks
// @Security BearerAuth
// @Produce json
// @Param id path int true "Feedback ID"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /feedbacks/{id} [delete]
func (h *FeedbackHandler) Delete(w http.ResponseWriter, r *http.Request) {
	authorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	vars := mux.Vars(r)
	feedbackID, err := strconv.Atoi(vars["id"])
	if err != nil {
		response.BadRequest(w, "Invalid feedback ID")
		return
	}

	if err := h.feedbackUsecase.DeleteFeedback(r.Context(), authorID, feedbackID); err != nil {
		switch err {
		case usecase.ErrFeedbackNotFound:
			response.NotFound(w, "Feedback not found")
		case usecase.ErrFeedbackNotOwned:
			response.Forbidden(w, "Feedback does not belong to you")
		default:
			response.InternalServerError(w, "Failed to delete feedback")
		}
		return
	}

	response.Success(w, http.StatusOK, "Feedback deleted successfully", nil)
}
