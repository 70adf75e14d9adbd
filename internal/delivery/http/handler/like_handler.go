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

type LikeHandler struct {
	likeUsecase usecase.LikeUsecase
}

func NewLikeHandler(likeUsecase usecase.LikeUsecase) *LikeHandler {
	return &LikeHandler{likeUsecase: likeUsecase}
}

// LikeHospital handles a client liking a hospital
// @Summary Like a hospital
// @Tags Likes
// @Security BearerAuth
// @Produce json
// @Param id path int true "Hospital ID"
// @Success 201 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /hospitals/{id}/like [post]
func (h *LikeHandler) LikeHospital(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
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

	if err := h.likeUsecase.LikeHospital(r.Context(), userID, hospitalID); err != nil {
		switch err {
		case usecase.ErrHospitalNotFound:
			response.NotFound(w, "Hospital not found")
		case usecase.ErrAlreadyLiked:
			response.Conflict(w, "You have already liked this hospital")
		default:
			response.InternalServerError(w, "Failed to like hospital")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Hospital liked successfully", nil)
}

// UnlikeHospital handles a client removing their hospital like
// @Summary Unlike a hospital
// @Tags Likes
// @Security BearerAuth
// @Produce json
// @Param id path int true "Hospital ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /hospitals/{id}/like [delete]
func (h *LikeHandler) UnlikeHospital(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
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

	if err := h.likeUsecase.UnlikeHospital(r.Context(), userID, hospitalID); err != nil {
		switch err {
		case usecase.ErrHospitalNotFound:
			response.NotFound(w, "Hospital not found")
		case usecase.ErrLikeNotFound:
			response.NotFound(w, "Like not found")
		default:
			response.InternalServerError(w, "Failed to unlike hospital")
		}
		return
	}

	response.Success(w, http.StatusOK, "Hospital unliked successfully", nil)
}

// LikeDoctor handles a client liking a doctor
// @Summary Like a doctor
// @Tags Likes
// @Security BearerAuth
// @Produce json
// @Param id path string true "Doctor ID (UUID)"
// @Success 201 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /doctors/{id}/like [post]
func (h *LikeHandler) LikeDoctor(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
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

	if err := h.likeUsecase.LikeDoctor(r.Context(), userID, doctorID); err != nil {
		switch err {
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Doctor not found")
		case usecase.ErrAlreadyLiked:
			response.Conflict(w, "You have already liked this doctor")
		default:
			response.InternalServerError(w, "Failed to like doctor")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Doctor liked successfully", nil)
}

// UnlikeDoctor handles a client removing their doctor like
// @Summary Unlike a doctor
// @Tags Likes
// @Security BearerAuth
// @Produce json
// @Param id path string true "Doctor ID (UUID)"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /doctors/{id}/like [delete]
func (h *LikeHandler) UnlikeDoctor(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
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

	if err := h.likeUsecase.UnlikeDoctor(r.Context(), userID, doctorID); err != nil {
		switch err {
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Doctor not found")
		case usecase.ErrLikeNotFound:
			response.NotFound(w, "Like not found")
		default:
			response.InternalServerError(w, "Failed to unlike doctor")
		}
		return
	}

	response.Success(w, http.StatusOK, "Doctor unliked successfully", nil)
}
