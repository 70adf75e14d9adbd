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

type ReviewHandler struct {
	reviewUsecase usecase.ReviewUsecase
	validator     *validator.CustomValidator
}

func NewReviewHandler(reviewUsecase usecase.ReviewUsecase, validator *validator.CustomValidator) *ReviewHandler {
	return &ReviewHandler{
		reviewUsecase: reviewUsecase,
		validator:     validator,
	}
}

// Create handles a client reviewing a hospital
// @Summary Review a hospital
// @Tags Reviews
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Hospital ID"
// @Param request body dto.CreateReviewRequest true "Create Review Request"
// @Success 201 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /hospitals/{id}/reviews [post]
func (h *ReviewHandler) Create(w http.ResponseWriter, r *http.Request) {
	authorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	vars := mux.Vars(r)
	hospitalID, err := strconv.Atoi(vars["id"])
	if err != nil {
		response.BadRequest(w, "Invalid hospital ID")
		return
	}

	var req dto.CreateReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	review, err := h.reviewUsecase.CreateReview(r.Context(), authorID, hospitalID, &req)
	if err != nil {
		switch err {
		case usecase.ErrHospitalNotFound:
			response.NotFound(w, "Hospital not found")
		case usecase.ErrAlreadyReviewed:
			response.Conflict(w, "You have already reviewed this hospital")
		case usecase.ErrInvalidRatingStar:
			response.BadRequest(w, "Rating must be between 1 and 5")
		default:
			response.InternalServerError(w, "Failed to create review")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Review created successfully", review)
}

// Delete handles a client removing their own review
// @Summary Delete review
// @Tags Reviews
// @Security BearerAuth
// @Produce json
// @Param id path int true "Review ID"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /reviews/{id} [delete]
func (h *ReviewHandler) Delete(w http.ResponseWriter, r *http.Request) {
	authorID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	vars := mux.Vars(r)
	reviewID, err := strconv.Atoi(vars["id"])
	if err != nil {
		response.BadRequest(w, "Invalid review ID")
		return
	}

	if err := h.reviewUsecase.DeleteReview(r.Context(), authorID, reviewID); err != nil {
		switch err {
		case usecase.ErrReviewNotFound:
			response.NotFound(w, "Review not found")
		case usecase.ErrReviewNotOwned:
			response.Forbidden(w, "Review does not belong to you")
		default:
			response.InternalServerError(w, "Failed to delete review")
		}
		return
	}

	response.Success(w, http.StatusOK, "Review deleted successfully", nil)
}
