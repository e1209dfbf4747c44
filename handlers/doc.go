// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Quiz Night API.

# Handler Types

Each handler is a struct with its dependencies injected via constructor:

  - QuestionHandler: Question CRUD and lifecycle advancement
  - AnswerHandler: Answer submission and listing
  - VoteHandler: Vote casting
  - ResultsHandler: Finished-question results
  - TeamHandler: Team formation and standings
  - MemberHandler: Join, profile, and team reassignment
  - ScoreboardHandler: Game-wide leaderboard
  - WSHandler: WebSocket event stream

Game-rule handlers receive a *game.Service; roster handlers go straight to
*sql.DB:

	questionHandler := handlers.NewQuestionHandler(svc, cfg)
	teamHandler := handlers.NewTeamHandler(db)

# Identity

There are no sessions. Callers identify themselves per request:

	X-Member-ID     member identity (from POST /members)
	X-Team-ID       team identity (from POST /teams)
	X-Moderator-Key moderator key (logged at server startup)

# Question Lifecycle

Questions progress through four states: draft → active → voting → finished

	POST  /questions             → Create (moderator)
	PATCH /questions/{id}/status → AdvanceStatus (moderator)

# Game Flow

	POST /questions/{id}/options → Submit answer (active, one per team)
	POST /questions/{id}/votes   → Cast vote (voting, one per member,
	                               never own team)
	GET  /questions/{id}/results → Ranked results (finished only)

# Error Shape

All errors render as:

	{"error": {"code": "ALREADY_VOTED", "message": "..."}}

Rule violations (wrong phase, duplicates, self-votes) map to 409 Conflict;
the code tells the frontend which rule fired.
*/
package handlers
