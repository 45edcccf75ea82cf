// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/bio-mbti/classifier"
	"github.com/danielhkuo/bio-mbti/middleware"
	"github.com/danielhkuo/bio-mbti/models"
)

const (
	msgInvalidJSON   = "Invalid JSON body."
	msgBodyTooLarge  = "Request body too large. Maximum 1mb allowed."
	msgAnalyzeFailed = "Server error while analyzing results."
)

type ResultHandler struct {
	gateway *classifier.Gateway
}

func NewResultHandler(gateway *classifier.Gateway) *ResultHandler {
	return &ResultHandler{gateway: gateway}
}

// GetResult handles POST /api/get-result
func (h *ResultHandler) GetResult(w http.ResponseWriter, r *http.Request) {
	var req models.GetResultRequest
	if !parseBody(w, r, &req) {
		return
	}

	result, err := h.gateway.Classify(r.Context(), req.Answers)
	if err != nil {
		var verr *models.ValidationError
		if errors.As(err, &verr) {
			middleware.ErrorResponse(w, http.StatusBadRequest, verr.Message)
			return
		}

		slog.Error("classification failed", "error", err, "answers", len(req.Answers))
		middleware.ErrorResponse(w, http.StatusInternalServerError, msgAnalyzeFailed)
		return
	}

	slog.Info("classification served", "type_code", result.TypeCode)
	middleware.JSONResponse(w, http.StatusOK, result)
}

// parseBody decodes the JSON body and writes a 400 on failure
func parseBody(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	err := middleware.ParseJSONBody(w, r, v)
	if err == nil {
		return true
	}

	if middleware.IsBodyTooLarge(err) {
		middleware.ErrorResponse(w, http.StatusRequestEntityTooLarge, msgBodyTooLarge)
	} else {
		middleware.ErrorResponse(w, http.StatusBadRequest, msgInvalidJSON)
	}
	return false
}
