// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Bio-MBTI API.

# Route Registration

NewRouter returns the configured mux wrapped in CORS:

	handler := router.NewRouter(s, gen, cfg)

The store and the generator may be nil. Without a store, submissions get 503
and statistics are zero-filled. Without a generator, classification gets 500.

# Endpoints

	GET  /                   - Liveness text
	GET  /health             - "OK"
	POST /api/get-result     - Classify an answer set
	POST /api/submit-result  - Record a participation (30s duplicate window)
	GET  /api/get-stats      - Per-type counts

# Handler Initialization

The router builds the domain services once and injects them:

	reg := registry.Default()
	handlers.NewResultHandler(classifier.NewGateway(reg, gen, cfg.ClassifyTimeout))
	handlers.NewSubmissionHandler(submission.NewDeduplicator(s, reg, cfg.FingerprintSalt))
	handlers.NewStatsHandler(stats.NewAggregator(s, reg))
*/
package router
