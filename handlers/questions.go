// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/quiz-night/auth"
	"github.com/danielhkuo/quiz-night/cliparse"
	"github.com/danielhkuo/quiz-night/game"
	"github.com/danielhkuo/quiz-night/middleware"
	"github.com/danielhkuo/quiz-night/models"
)

type QuestionHandler struct {
	svc *game.Service
	cfg cliparse.Config
}

func NewQuestionHandler(svc *game.Service, cfg cliparse.Config) *QuestionHandler {
	return &QuestionHandler{svc: svc, cfg: cfg}
}

// Create handles POST /questions
func (h *QuestionHandler) Create(w http.ResponseWriter, r *http.Request) {
	key := r.Header.Get(HeaderModeratorKey)
	if err := auth.ValidateModeratorKey(key, h.cfg.ModeratorKeySalt); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, game.CodeUnauthorized, "Invalid moderator key")
		return
	}

	var req models.CreateQuestionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, game.CodeInvalidRequest, "Invalid JSON")
		return
	}

	question, err := h.svc.CreateQuestion(req)
	if err != nil {
		writeError(w, err)
		return
	}

	slog.Info("question created", "question_id", question.ID, "title", question.Title)

	middleware.JSONResponse(w, http.StatusCreated, question)
}

// List handles GET /questions
func (h *QuestionHandler) List(w http.ResponseWriter, r *http.Request) {
	questions, err := h.svc.ListQuestions(r.URL.Query().Get("status"))
	if err != nil {
		writeError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ListQuestionsResponse{Questions: questions})
}

// Get handles GET /questions/{id}
func (h *QuestionHandler) Get(w http.ResponseWriter, r *http.Request) {
	questionID := r.PathValue("id")
	if questionID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, game.CodeInvalidRequest, "question id is required")
		return
	}

	detail, err := h.svc.Get(questionID, r.Header.Get(HeaderMemberID), r.Header.Get(HeaderTeamID))
	if err != nil {
		writeError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, detail)
}

// AdvanceStatus handles PATCH /questions/{id}/status
func (h *QuestionHandler) AdvanceStatus(w http.ResponseWriter, r *http.Request) {
	questionID := r.PathValue("id")
	if questionID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, game.CodeInvalidRequest, "question id is required")
		return
	}

	key := r.Header.Get(HeaderModeratorKey)
	if err := auth.ValidateModeratorKey(key, h.cfg.ModeratorKeySalt); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, game.CodeUnauthorized, "Invalid moderator key")
		return
	}

	var req models.AdvanceStatusRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, game.CodeInvalidRequest, "Invalid JSON")
		return
	}
	if req.Status == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, game.CodeInvalidRequest, "Status is required")
		return
	}

	question, err := h.svc.Advance(questionID, req.Status)
	if err != nil {
		writeError(w, err)
		return
	}

	slog.Info("question advanced", "question_id", question.ID, "status", question.Status)

	middleware.JSONResponse(w, http.StatusOK, question)
}
