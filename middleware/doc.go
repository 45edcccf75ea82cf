// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /api/get-stats", middleware.WithLogging(handler))

Logs request start (method, path) and completion (status, duration_ms).

# CORS Middleware

Enable cross-origin requests for the quiz frontend:

	server := http.Server{
		Handler: middleware.CORS(cfg.AllowedOrigins)(mux),
	}

An empty allowlist accepts every origin. Preflight requests get 204.

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message") // {"error": "message"}

Parse JSON request bodies (limited to 1 MiB):

	var req models.SubmitResultRequest
	if err := middleware.ParseJSONBody(w, r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON body.")
		return
	}

# Client IP Extraction

Get the original client IP (first X-Forwarded-For entry, else RemoteAddr):

	ip := middleware.GetClientIP(r)

Used as the input to the participation fingerprint.
*/
package middleware
