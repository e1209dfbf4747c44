// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/quiz-night/game"
	"github.com/danielhkuo/quiz-night/middleware"
)

type ResultsHandler struct {
	svc *game.Service
}

func NewResultsHandler(svc *game.Service) *ResultsHandler {
	return &ResultsHandler{svc: svc}
}

// Get handles GET /questions/{id}/results
// Results are sealed until the question is finished.
func (h *ResultsHandler) Get(w http.ResponseWriter, r *http.Request) {
	questionID := r.PathValue("id")
	if questionID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, game.CodeInvalidRequest, "question id is required")
		return
	}

	results, err := h.svc.Results(questionID)
	if err != nil {
		writeError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, results)
}
