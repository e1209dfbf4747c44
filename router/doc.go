// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Quiz Night API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(db, cfg, hub)

# Endpoints

Health:

	GET /health

Team formation and members (public):

	POST  /teams      - Create team
	GET   /teams      - List teams with standings
	POST  /members    - Join with a name and team
	GET   /members/me - Own profile (X-Member-ID)
	PATCH /members/me - Switch team (before answering/voting)

Question management (moderator, requires X-Moderator-Key):

	POST  /questions             - Create question
	PATCH /questions/{id}/status - Advance lifecycle

Game flow (public, guarded by the game core):

	GET  /questions                - List questions
	GET  /questions/{id}           - Question with counters
	GET  /questions/{id}/options   - Answers (masked while active)
	POST /questions/{id}/options   - Submit answer (X-Team-ID)
	POST /questions/{id}/votes     - Cast vote (X-Member-ID)
	GET  /questions/{id}/results   - Ranked results (finished only)
	GET  /scoreboard               - Leaderboard

Events:

	GET /ws - WebSocket stream of question status changes

# Handler Initialization

The router builds the game service and injects it into the handlers:

	svc := game.NewService(db, hub)
	questionHandler := handlers.NewQuestionHandler(svc, cfg)

Roster handlers (teams, members, scoreboard) receive the database directly.
*/
package router
