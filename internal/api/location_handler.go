package api

import (
	"net/http"
)

// SearchPlaces handles GET /api/v1/locations/search. The query may match
// countries and cities; both appear in one response.
func (h *Handler) SearchPlaces(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	suggestions, err := h.service.SearchPlaces(r.Context(), query)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}
	writeData(w, http.StatusOK, suggestions)
}
