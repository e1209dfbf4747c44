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

type VoteHandler struct {
	svc *game.Service
}

func NewVoteHandler(svc *game.Service) *VoteHandler {
	return &VoteHandler{svc: svc}
}

// Cast handles POST /questions/{id}/votes
func (h *VoteHandler) Cast(w http.ResponseWriter, r *http.Request) {
	questionID := r.PathValue("id")
	if questionID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, game.CodeInvalidRequest, "question id is required")
		return
	}

	var req models.CastVoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, game.CodeInvalidRequest, "Invalid JSON")
		return
	}

	vote, err := h.svc.CastVote(questionID, r.Header.Get(HeaderMemberID), req.OptionID)
	if err != nil {
		writeError(w, err)
		return
	}

	slog.Info("vote cast", "question_id", questionID, "vote_id", vote.ID)

	middleware.JSONResponse(w, http.StatusCreated, vote)
}
