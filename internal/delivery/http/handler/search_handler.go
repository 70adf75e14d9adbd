package handler

import (
	"net/http"

	"hospital-booking-api/internal/usecase"
	"hospital-booking-api/pkg/response"

	"github.com/gorilla/mux"
)

type SearchHandler struct {
	searchUsecase usecase.SearchUsecase
}

func NewSearchHandler(searchUsecase usecase.SearchUsecase) *SearchHandler {
	return &SearchHandler{searchUsecase: searchUsecase}
}

// Search handles substring search across doctors, hospitals,
// specializations and services
// @Summary Search the public catalogs
// @Tags Search
// @Produce json
// @Param q path string true "Search query"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /search/{q} [get]
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	results, err := h.searchUsecase.Search(r.Context(), vars["q"])
	if err != nil {
		if err == usecase.ErrEmptySearchQuery {
			response.BadRequest(w, "Search query must not be empty")
			return
		}
		response.InternalServerError(w, "Failed to search")
		return
	}

	response.Success(w, http.StatusOK, "Search completed successfully", results)
}
