// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/bio-mbti/middleware"
	"github.com/danielhkuo/bio-mbti/models"
	"github.com/danielhkuo/bio-mbti/submission"
)

const (
	msgStorageUnavailable = "Database is not available. Please configure the database."
	msgSaveFailed         = "Server error while saving result."
	msgDuplicateSkipped   = "Duplicate submission skipped"
)

type SubmissionHandler struct {
	dedup *submission.Deduplicator
}

func NewSubmissionHandler(dedup *submission.Deduplicator) *SubmissionHandler {
	return &SubmissionHandler{dedup: dedup}
}

// SubmitResult handles POST /api/submit-result
func (h *SubmissionHandler) SubmitResult(w http.ResponseWriter, r *http.Request) {
	var req models.SubmitResultRequest
	if !parseBody(w, r, &req) {
		return
	}

	outcome, err := h.dedup.Submit(r.Context(), req.TypeCode, middleware.GetClientIP(r))
	if err != nil {
		var verr *models.ValidationError
		switch {
		case errors.As(err, &verr):
			middleware.ErrorResponse(w, http.StatusBadRequest, verr.Message)
		case errors.Is(err, models.ErrStorageUnavailable):
			slog.Error("submission not stored", "error", err)
			middleware.ErrorResponse(w, http.StatusServiceUnavailable, msgStorageUnavailable)
		default:
			slog.Error("submission failed", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, msgSaveFailed)
		}
		return
	}

	if outcome.Skipped {
		middleware.JSONResponse(w, http.StatusOK, models.SubmitResultResponse{
			Success: true,
			Skipped: true,
			Message: msgDuplicateSkipped,
		})
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.SubmitResultResponse{
		Success: true,
		ID:      outcome.ID,
	})
}
