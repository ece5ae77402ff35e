package api

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/wayfinder/wayfinder-api/internal/model"
)

// CreateTip handles POST /api/v1/tips
func (h *Handler) CreateTip(w http.ResponseWriter, r *http.Request) {
	user, ok := UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "you must be authenticated to perform this action")
		return
	}

	var req model.CreateTipRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	tip, err := h.service.CreateTip(r.Context(), user.ID, req)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}
	writeData(w, http.StatusCreated, tip)
}

// ListTips handles GET /api/v1/tips
func (h *Handler) ListTips(w http.ResponseWriter, r *http.Request) {
	var filter model.TipFilter

	locationType := r.URL.Query().Get("location_type")
	locationID := r.URL.Query().Get("location_id")
	if locationType != "" && locationID != "" {
		id, err := strconv.Atoi(locationID)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid location_id parameter")
			return
		}
		filter.LocationType = locationType
		filter.LocationID = id
		filter.HasLocation = true
	}

	tips, err := h.service.ListTips(r.Context(), filter)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}
	writeData(w, http.StatusOK, tips)
}

// ListUserTips handles GET /api/v1/users/{id}/tips
func (h *Handler) ListUserTips(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["id"]

	tips, err := h.service.ListUserTips(r.Context(), userID)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}
	writeData(w, http.StatusOK, tips)
}
