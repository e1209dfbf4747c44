// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - CreateTeamRequest: name, color
  - JoinRequest: name, team_id
  - ReassignTeamRequest: team_id
  - CreateQuestionRequest: title, description, answer_kind, time_limit, points
  - AdvanceStatusRequest: status
  - SubmitAnswerRequest: content, image_url
  - CastVoteRequest: option_id

# Domain Types

  - Team: team identity, color, and running score
  - Member / MemberProfile: a player, optionally with their team
  - Question: question metadata and lifecycle state
  - QuestionDetail: question plus derived counters for lobby polling
  - Option / OptionView: a team's answer, raw and caller-relative
  - Vote: a member's vote
  - OptionResult / QuestionResults: ranked payouts of a finished question
  - Scoreboard / ScoreboardRow: game-wide standings

# Constants

Status values:

	StatusDraft    = "draft"
	StatusActive   = "active"
	StatusVoting   = "voting"
	StatusFinished = "finished"

Answer kinds:

	KindText  = "text"
	KindImage = "image"
	KindBoth  = "both"

DefaultPoints (100) is the base point value when the moderator doesn't pick
one.

# Error Shape

ErrorResponse nests a code and message:

	{"error": {"code": "INVALID_STATUS", "message": "..."}}
*/
package models
