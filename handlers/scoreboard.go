// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/quiz-night/middleware"
	"github.com/danielhkuo/quiz-night/models"
)

type ScoreboardHandler struct {
	db *sql.DB
}

func NewScoreboardHandler(db *sql.DB) *ScoreboardHandler {
	return &ScoreboardHandler{db: db}
}

// Get handles GET /scoreboard
func (h *ScoreboardHandler) Get(w http.ResponseWriter, r *http.Request) {
	rows, err := h.db.Query(`
		SELECT t.id, t.name, t.color, t.score,
		       (SELECT COUNT(*) FROM members m WHERE m.team_id = t.id)
		FROM teams t
		ORDER BY t.score DESC, t.created_at
	`)
	if err != nil {
		writeError(w, err)
		return
	}
	defer rows.Close()

	board := models.Scoreboard{Teams: []models.ScoreboardRow{}}
	for rows.Next() {
		var (
			row   models.ScoreboardRow
			color sql.NullString
		)
		if err := rows.Scan(&row.TeamID, &row.TeamName, &color, &row.Score, &row.MemberCount); err != nil {
			writeError(w, err)
			return
		}
		if color.Valid {
			row.TeamColor = &color.String
		}
		row.Rank = len(board.Teams) + 1
		board.Teams = append(board.Teams, row)
	}
	if err := rows.Err(); err != nil {
		writeError(w, err)
		return
	}

	err = h.db.QueryRow(`SELECT COUNT(*) FROM questions`).Scan(&board.TotalQuestions)
	if err != nil {
		writeError(w, err)
		return
	}
	err = h.db.QueryRow(`
		SELECT COUNT(*) FROM questions WHERE status = $1
	`, models.StatusFinished).Scan(&board.CompletedQuestions)
	if err != nil {
		writeError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, board)
}
