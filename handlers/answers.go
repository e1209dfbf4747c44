// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/quiz-night/game"
	"github.com/danielhkuo/quiz-night/middleware"
	"github.com/danielhkuo/quiz-night/models"
)

type AnswerHandler struct {
	svc *game.Service
}

func NewAnswerHandler(svc *game.Service) *AnswerHandler {
	return &AnswerHandler{svc: svc}
}

// List handles GET /questions/{id}/options
func (h *AnswerHandler) List(w http.ResponseWriter, r *http.Request) {
	questionID := r.PathValue("id")
	if questionID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, game.CodeInvalidRequest, "question id is required")
		return
	}

	resp, err := h.svc.ListOptions(questionID, r.Header.Get(HeaderTeamID))
	if err != nil {
		writeError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, resp)
}

// Submit handles POST /questions/{id}/options
func (h *AnswerHandler) Submit(w http.ResponseWriter, r *http.Request) {
	questionID := r.PathValue("id")
	if questionID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, game.CodeInvalidRequest, "question id is required")
		return
	}

	var req models.SubmitAnswerRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, game.CodeInvalidRequest, "Invalid JSON")
		return
	}

	option, err := h.svc.SubmitAnswer(questionID, r.Header.Get(HeaderTeamID), req)
	if err != nil {
		writeError(w, err)
		return
	}

	slog.Info("answer submitted", "question_id", questionID, "team_id", option.TeamID, "option_id", option.ID)

	middleware.JSONResponse(w, http.StatusCreated, option)
}
