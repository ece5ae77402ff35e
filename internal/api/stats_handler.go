package api

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/wayfinder/wayfinder-api/internal/stats"
)

// StatsHandler handles statistics requests
type StatsHandler struct {
	collector *stats.Collector
	logger    *zap.Logger
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(collector *stats.Collector, logger *zap.Logger) *StatsHandler {
	return &StatsHandler{collector: collector, logger: logger}
}

// GetStats handles GET /api/v1/stats
func (h *StatsHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	collected, err := h.collector.Collect(r.Context())
	if err != nil {
		h.logger.Error("failed to collect statistics", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to collect statistics")
		return
	}
	writeData(w, http.StatusOK, collected)
}
