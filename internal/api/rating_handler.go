package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/wayfinder/wayfinder-api/internal/model"
)

// CreateRating handles POST /api/v1/ratings
func (h *Handler) CreateRating(w http.ResponseWriter, r *http.Request) {
	user, ok := UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "you must be authenticated to perform this action")
		return
	}

	var req model.CreateRatingRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	rating, err := h.service.CreateRating(r.Context(), user.ID, req)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}
	writeData(w, http.StatusCreated, rating)
}

// ListExperienceRatings handles GET /api/v1/experiences/{id}/ratings
func (h *Handler) ListExperienceRatings(w http.ResponseWriter, r *http.Request) {
	experienceID := mux.Vars(r)["id"]

	ratings, err := h.service.ListExperienceRatings(r.Context(), experienceID)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}
	writeData(w, http.StatusOK, ratings)
}
