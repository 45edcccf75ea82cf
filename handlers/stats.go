// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/bio-mbti/middleware"
	"github.com/danielhkuo/bio-mbti/stats"
)

const msgStatsUnavailable = "Database is not available. Statistics are empty."

type StatsHandler struct {
	aggregator *stats.Aggregator
}

func NewStatsHandler(aggregator *stats.Aggregator) *StatsHandler {
	return &StatsHandler{aggregator: aggregator}
}

// GetStats handles GET /api/get-stats.
// Always 200; an unreadable store yields zero counts plus a message.
func (h *StatsHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	result := h.aggregator.Compute(r.Context())
	if !result.Available {
		result.Message = msgStatsUnavailable
	}
	middleware.JSONResponse(w, http.StatusOK, result.Stats)
}
