package api

import (
	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/wayfinder/wayfinder-api/internal/config"
	"github.com/wayfinder/wayfinder-api/internal/service"
	"github.com/wayfinder/wayfinder-api/internal/stats"
)

// NewRouter creates a new HTTP router
func NewRouter(svc service.Interface, jwtConfig config.JWTConfig, statsCollector *stats.Collector, logger *zap.Logger) *mux.Router {
	handler := NewHandler(svc, jwtConfig, logger)
	statsHandler := NewStatsHandler(statsCollector, logger)

	router := mux.NewRouter()

	// Health check
	router.HandleFunc("/health", handler.HealthCheck).Methods("GET")

	// API v1
	v1 := router.PathPrefix("/api/v1").Subrouter()

	v1.Handle("/experiences", handler.requireAuth(handler.CreateExperience)).Methods("POST")
	v1.HandleFunc("/experiences", handler.ListExperiences).Methods("GET")
	v1.HandleFunc("/experiences/{id}", handler.GetExperience).Methods("GET")
	v1.HandleFunc("/experiences/{id}/ratings", handler.ListExperienceRatings).Methods("GET")

	v1.Handle("/ratings", handler.requireAuth(handler.CreateRating)).Methods("POST")

	v1.HandleFunc("/locations/search", handler.SearchPlaces).Methods("GET")
	v1.HandleFunc("/tags", handler.ListTags).Methods("GET")

	v1.Handle("/tips", handler.requireAuth(handler.CreateTip)).Methods("POST")
	v1.HandleFunc("/tips", handler.ListTips).Methods("GET")
	v1.HandleFunc("/users/{id}/tips", handler.ListUserTips).Methods("GET")

	v1.Handle("/wishlists", handler.requireAuth(handler.CreateWishlist)).Methods("POST")
	v1.Handle("/users/{id}/wishlists", handler.requireAuth(handler.ListUserWishlists)).Methods("GET")
	v1.Handle("/wishlists/{id}/items", handler.requireAuth(handler.AddWishlistItem)).Methods("POST")
	v1.Handle("/wishlists/{id}/items", handler.requireAuth(handler.ListWishlistItems)).Methods("GET")

	v1.HandleFunc("/users/{id}", handler.GetUser).Methods("GET")
	v1.HandleFunc("/stats", statsHandler.GetStats).Methods("GET")

	return router
}
