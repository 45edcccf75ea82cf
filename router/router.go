// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/bio-mbti/classifier"
	"github.com/danielhkuo/bio-mbti/cliparse"
	"github.com/danielhkuo/bio-mbti/handlers"
	"github.com/danielhkuo/bio-mbti/middleware"
	"github.com/danielhkuo/bio-mbti/registry"
	"github.com/danielhkuo/bio-mbti/stats"
	"github.com/danielhkuo/bio-mbti/store"
	"github.com/danielhkuo/bio-mbti/submission"
)

// NewRouter wires the API. s and gen may be nil when storage or the
// classifier is not configured; the affected routes then degrade.
func NewRouter(s store.Store, gen classifier.Generator, cfg cliparse.Config) http.Handler {
	mux := http.NewServeMux()
	reg := registry.Default()

	// Initialize handlers
	resultHandler := handlers.NewResultHandler(classifier.NewGateway(reg, gen, cfg.ClassifyTimeout))
	submissionHandler := handlers.NewSubmissionHandler(submission.NewDeduplicator(s, reg, cfg.FingerprintSalt))
	statsHandler := handlers.NewStatsHandler(stats.NewAggregator(s, reg))

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Quiz API
	mux.HandleFunc("POST /api/get-result", middleware.WithLogging(resultHandler.GetResult))
	mux.HandleFunc("POST /api/submit-result", middleware.WithLogging(submissionHandler.SubmitResult))
	mux.HandleFunc("GET /api/get-stats", middleware.WithLogging(statsHandler.GetStats))

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("Bio-MBTI backend server is running."))
	})

	return middleware.CORS(cfg.AllowedOrigins)(mux)
}
