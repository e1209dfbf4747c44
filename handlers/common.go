// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/quiz-night/game"
	"github.com/danielhkuo/quiz-night/middleware"
)

// Identity headers. The core never reads ambient session state; callers pass
// explicit IDs on every request.
const (
	HeaderMemberID     = "X-Member-ID"
	HeaderTeamID       = "X-Team-ID"
	HeaderModeratorKey = "X-Moderator-Key"
)

// statusForCode maps a domain error code to an HTTP status. Phase and
// uniqueness violations are conflicts: the request was well-formed, the game
// state just disagrees.
func statusForCode(code string) int {
	switch code {
	case game.CodeUnauthorized:
		return http.StatusUnauthorized
	case game.CodeNotFound:
		return http.StatusNotFound
	case game.CodeInvalidRequest:
		return http.StatusBadRequest
	case game.CodeInvalidStatus, game.CodeAlreadyAnswered, game.CodeAlreadyVoted, game.CodeCannotVoteOwnTeam:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// writeError renders a game error with its code preserved. Anything that is
// not a domain error is a persistence failure and is logged, not leaked.
func writeError(w http.ResponseWriter, err error) {
	var gerr *game.Error
	if errors.As(err, &gerr) {
		middleware.ErrorResponse(w, statusForCode(gerr.Code), gerr.Code, gerr.Message)
		return
	}

	slog.Error("storage failure", "error", err)
	middleware.ErrorResponse(w, http.StatusInternalServerError, game.CodeStorageConflict, "Storage failure")
}
