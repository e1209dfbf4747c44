// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/quiz-night/cliparse"
	"github.com/danielhkuo/quiz-night/game"
	"github.com/danielhkuo/quiz-night/handlers"
	"github.com/danielhkuo/quiz-night/middleware"
	"github.com/danielhkuo/quiz-night/ws"
)

func NewRouter(db *sql.DB, cfg cliparse.Config, hub *ws.Hub) *http.ServeMux {
	mux := http.NewServeMux()

	svc := game.NewService(db, hub)

	// Initialize handlers
	questionHandler := handlers.NewQuestionHandler(svc, cfg)
	answerHandler := handlers.NewAnswerHandler(svc)
	voteHandler := handlers.NewVoteHandler(svc)
	resultsHandler := handlers.NewResultsHandler(svc)
	teamHandler := handlers.NewTeamHandler(db)
	memberHandler := handlers.NewMemberHandler(db)
	scoreboardHandler := handlers.NewScoreboardHandler(db)
	wsHandler := handlers.NewWSHandler(hub)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Team formation
	mux.HandleFunc("POST /teams", middleware.WithLogging(teamHandler.Create))
	mux.HandleFunc("GET /teams", middleware.WithLogging(teamHandler.List))

	// Members (name-only login)
	mux.HandleFunc("POST /members", middleware.WithLogging(memberHandler.Join))
	mux.HandleFunc("GET /members/me", middleware.WithLogging(memberHandler.Me))
	mux.HandleFunc("PATCH /members/me", middleware.WithLogging(memberHandler.Reassign))

	// Question lifecycle (moderator operations)
	mux.HandleFunc("POST /questions", middleware.WithLogging(questionHandler.Create))
	mux.HandleFunc("GET /questions", middleware.WithLogging(questionHandler.List))
	mux.HandleFunc("GET /questions/{id}", middleware.WithLogging(questionHandler.Get))
	mux.HandleFunc("PATCH /questions/{id}/status", middleware.WithLogging(questionHandler.AdvanceStatus))

	// Answers and votes (public, guarded by the game core)
	mux.HandleFunc("GET /questions/{id}/options", middleware.WithLogging(answerHandler.List))
	mux.HandleFunc("POST /questions/{id}/options", middleware.WithLogging(answerHandler.Submit))
	mux.HandleFunc("POST /questions/{id}/votes", middleware.WithLogging(voteHandler.Cast))

	// Results (sealed until finished)
	mux.HandleFunc("GET /questions/{id}/results", middleware.WithLogging(resultsHandler.Get))

	// Leaderboard
	mux.HandleFunc("GET /scoreboard", middleware.WithLogging(scoreboardHandler.Get))

	// Status event stream
	mux.HandleFunc("GET /ws", wsHandler.Serve)

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("quiz-night API v1"))
	})

	return mux
}
