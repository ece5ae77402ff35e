package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/wayfinder/wayfinder-api/internal/model"
)

// CreateWishlist handles POST /api/v1/wishlists
func (h *Handler) CreateWishlist(w http.ResponseWriter, r *http.Request) {
	user, ok := UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "you must be authenticated to perform this action")
		return
	}

	var req model.CreateWishlistRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	wishlist, err := h.service.CreateWishlist(r.Context(), user.ID, req)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}
	writeData(w, http.StatusCreated, wishlist)
}

// ListUserWishlists handles GET /api/v1/users/{id}/wishlists
func (h *Handler) ListUserWishlists(w http.ResponseWriter, r *http.Request) {
	user, ok := UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "you must be authenticated to perform this action")
		return
	}
	userID := mux.Vars(r)["id"]

	wishlists, err := h.service.ListUserWishlists(r.Context(), user.ID, userID)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}
	writeData(w, http.StatusOK, wishlists)
}

// AddWishlistItem handles POST /api/v1/wishlists/{id}/items
func (h *Handler) AddWishlistItem(w http.ResponseWriter, r *http.Request) {
	user, ok := UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "you must be authenticated to perform this action")
		return
	}
	wishlistID := mux.Vars(r)["id"]

	var req model.CreateWishlistItemRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	item, err := h.service.AddWishlistItem(r.Context(), user.ID, wishlistID, req)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}
	writeData(w, http.StatusCreated, item)
}

// ListWishlistItems handles GET /api/v1/wishlists/{id}/items
func (h *Handler) ListWishlistItems(w http.ResponseWriter, r *http.Request) {
	user, ok := UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "you must be authenticated to perform this action")
		return
	}
	wishlistID := mux.Vars(r)["id"]

	items, err := h.service.ListWishlistItems(r.Context(), user.ID, wishlistID)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}
	writeData(w, http.StatusOK, items)
}
