package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/wayfinder/wayfinder-api/internal/config"
	"github.com/wayfinder/wayfinder-api/internal/model"
	"github.com/wayfinder/wayfinder-api/internal/service"
)

// Handler handles HTTP requests
type Handler struct {
	service   service.Interface
	jwtConfig config.JWTConfig
	validate  *validator.Validate
	logger    *zap.Logger
}

// NewHandler creates a new handler instance
func NewHandler(svc service.Interface, jwtConfig config.JWTConfig, logger *zap.Logger) *Handler {
	return &Handler{
		service:   svc,
		jwtConfig: jwtConfig,
		validate:  validator.New(),
		logger:    logger,
	}
}

// decodeAndValidate unmarshals a JSON body and runs struct validation
func (h *Handler) decodeAndValidate(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return false
	}
	if err := h.validate.Struct(dst); err != nil {
		writeError(w, http.StatusBadRequest, "missing required fields: "+err.Error())
		return false
	}
	return true
}

// CreateExperience handles POST /api/v1/experiences
func (h *Handler) CreateExperience(w http.ResponseWriter, r *http.Request) {
	user, ok := UserFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "you must be authenticated to perform this action")
		return
	}

	var req model.CreateExperienceRequest
	if !h.decodeAndValidate(w, r, &req) {
		return
	}

	exp, err := h.service.CreateExperience(r.Context(), user.ID, req)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}
	writeData(w, http.StatusCreated, exp)
}

// ListExperiences handles GET /api/v1/experiences
func (h *Handler) ListExperiences(w http.ResponseWriter, r *http.Request) {
	filter := model.ExperienceFilter{
		SearchQuery: r.URL.Query().Get("search_query"),
	}

	if raw := r.URL.Query().Get("tags"); raw != "" {
		for _, tag := range strings.Split(raw, ",") {
			if trimmed := strings.TrimSpace(tag); trimmed != "" {
				filter.Tags = append(filter.Tags, trimmed)
			}
		}
	}

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

	experiences, err := h.service.ListExperiences(r.Context(), filter)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}
	writeData(w, http.StatusOK, experiences)
}

// GetExperience handles GET /api/v1/experiences/{id}
func (h *Handler) GetExperience(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	exp, err := h.service.GetExperience(r.Context(), id)
	if err != nil {
		writeServiceError(w, h.logger, err)
		return
	}
	writeData(w, http.StatusOK, exp)
}

// HealthCheck handles GET /health
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}
