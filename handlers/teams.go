// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/quiz-night/game"
	"github.com/danielhkuo/quiz-night/middleware"
	"github.com/danielhkuo/quiz-night/models"
)

type TeamHandler struct {
	db *sql.DB
}

func NewTeamHandler(db *sql.DB) *TeamHandler {
	return &TeamHandler{db: db}
}

// Create handles POST /teams
func (h *TeamHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateTeamRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, game.CodeInvalidRequest, "Invalid JSON")
		return
	}

	if req.Name == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, game.CodeInvalidRequest, "Team name is required")
		return
	}

	teamID := uuid.NewString()
	now := time.Now()

	var color any
	if req.Color != "" {
		color = req.Color
	}

	_, err := h.db.Exec(`
		INSERT INTO teams (id, name, color, score, created_at)
		VALUES ($1, $2, $3, 0, $4)
	`, teamID, req.Name, color, now)
	if err != nil {
		writeError(w, err)
		return
	}

	slog.Info("team created", "team_id", teamID, "name", req.Name)

	team := models.Team{ID: teamID, Name: req.Name, CreatedAt: now}
	if req.Color != "" {
		team.Color = &req.Color
	}

	middleware.JSONResponse(w, http.StatusCreated, team)
}

// List handles GET /teams
// Teams are ordered by score so the lobby doubles as a standings view.
func (h *TeamHandler) List(w http.ResponseWriter, r *http.Request) {
	rows, err := h.db.Query(`
		SELECT t.id, t.name, t.color, t.score, t.created_at,
		       (SELECT COUNT(*) FROM members m WHERE m.team_id = t.id)
		FROM teams t
		ORDER BY t.score DESC, t.created_at
	`)
	if err != nil {
		writeError(w, err)
		return
	}
	defer rows.Close()

	teams := []models.TeamSummary{}
	for rows.Next() {
		var (
			team  models.TeamSummary
			color sql.NullString
		)
		if err := rows.Scan(&team.ID, &team.Name, &color, &team.Score, &team.CreatedAt, &team.MemberCount); err != nil {
			writeError(w, err)
			return
		}
		if color.Valid {
			team.Color = &color.String
		}
		teams = append(teams, team)
	}
	if err := rows.Err(); err != nil {
		writeError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ListTeamsResponse{Teams: teams})
}
