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

type MemberHandler struct {
	db *sql.DB
}

func NewMemberHandler(db *sql.DB) *MemberHandler {
	return &MemberHandler{db: db}
}

// Join handles POST /members
// The "login": a display name and a team, nothing else. The returned id is
// the member's identity for the rest of the game.
func (h *MemberHandler) Join(w http.ResponseWriter, r *http.Request) {
	var req models.JoinRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, game.CodeInvalidRequest, "Invalid JSON")
		return
	}

	if req.Name == "" || req.TeamID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, game.CodeInvalidRequest, "Name and team_id are required")
		return
	}

	var teamName string
	err := h.db.QueryRow(`
		SELECT name FROM teams WHERE id = $1
	`, req.TeamID).Scan(&teamName)
	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, game.CodeNotFound, "Team not found")
		return
	}
	if err != nil {
		writeError(w, err)
		return
	}

	memberID := uuid.NewString()
	now := time.Now()

	_, err = h.db.Exec(`
		INSERT INTO members (id, name, team_id, created_at)
		VALUES ($1, $2, $3, $4)
	`, memberID, req.Name, req.TeamID, now)
	if err != nil {
		writeError(w, err)
		return
	}

	slog.Info("member joined", "member_id", memberID, "name", req.Name, "team_id", req.TeamID)

	middleware.JSONResponse(w, http.StatusCreated, models.JoinResponse{
		ID:        memberID,
		Name:      req.Name,
		TeamID:    req.TeamID,
		TeamName:  teamName,
		CreatedAt: now,
	})
}

// Me handles GET /members/me
func (h *MemberHandler) Me(w http.ResponseWriter, r *http.Request) {
	memberID := r.Header.Get(HeaderMemberID)
	if memberID == "" {
		middleware.ErrorResponse(w, http.StatusUnauthorized, game.CodeUnauthorized, "Member ID is required")
		return
	}

	var (
		profile models.MemberProfile
		teamID  sql.NullString
	)
	err := h.db.QueryRow(`
		SELECT id, name, team_id FROM members WHERE id = $1
	`, memberID).Scan(&profile.ID, &profile.Name, &teamID)
	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, game.CodeNotFound, "Member not found")
		return
	}
	if err != nil {
		writeError(w, err)
		return
	}

	if teamID.Valid {
		var (
			team  models.Team
			color sql.NullString
		)
		err = h.db.QueryRow(`
			SELECT id, name, color, score, created_at FROM teams WHERE id = $1
		`, teamID.String).Scan(&team.ID, &team.Name, &color, &team.Score, &team.CreatedAt)
		if err != nil {
			writeError(w, err)
			return
		}
		if color.Valid {
			team.Color = &color.String
		}
		profile.Team = &team
	}

	middleware.JSONResponse(w, http.StatusOK, profile)
}

// Reassign handles PATCH /members/me
// A member may switch teams only before they have cast a vote and before
// their current team has submitted an answer; after that, team membership
// is frozen for the rest of the game.
func (h *MemberHandler) Reassign(w http.ResponseWriter, r *http.Request) {
	memberID := r.Header.Get(HeaderMemberID)
	if memberID == "" {
		middleware.ErrorResponse(w, http.StatusUnauthorized, game.CodeUnauthorized, "Member ID is required")
		return
	}

	var req models.ReassignTeamRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, game.CodeInvalidRequest, "Invalid JSON")
		return
	}
	if req.TeamID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, game.CodeInvalidRequest, "team_id is required")
		return
	}

	var currentTeamID sql.NullString
	err := h.db.QueryRow(`
		SELECT team_id FROM members WHERE id = $1
	`, memberID).Scan(&currentTeamID)
	if err == sql.ErrNoRows {
		middleware.ErrorResponse(w, http.StatusNotFound, game.CodeNotFound, "Member not found")
		return
	}
	if err != nil {
		writeError(w, err)
		return
	}

	var teamExists bool
	err = h.db.QueryRow(`
		SELECT EXISTS(SELECT 1 FROM teams WHERE id = $1)
	`, req.TeamID).Scan(&teamExists)
	if err != nil {
		writeError(w, err)
		return
	}
	if !teamExists {
		middleware.ErrorResponse(w, http.StatusNotFound, game.CodeNotFound, "Team not found")
		return
	}

	var hasVoted bool
	err = h.db.QueryRow(`
		SELECT EXISTS(SELECT 1 FROM votes WHERE member_id = $1)
	`, memberID).Scan(&hasVoted)
	if err != nil {
		writeError(w, err)
		return
	}

	var teamAnswered bool
	if currentTeamID.Valid {
		err = h.db.QueryRow(`
			SELECT EXISTS(SELECT 1 FROM options WHERE team_id = $1)
		`, currentTeamID.String).Scan(&teamAnswered)
		if err != nil {
			writeError(w, err)
			return
		}
	}

	if hasVoted || teamAnswered {
		middleware.ErrorResponse(w, http.StatusConflict, game.CodeInvalidStatus, "Team can no longer be changed")
		return
	}

	_, err = h.db.Exec(`
		UPDATE members SET team_id = $1 WHERE id = $2
	`, req.TeamID, memberID)
	if err != nil {
		writeError(w, err)
		return
	}

	slog.Info("member reassigned", "member_id", memberID, "team_id", req.TeamID)

	h.Me(w, r)
}
