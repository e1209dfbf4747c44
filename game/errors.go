// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package game

import "errors"

// Error codes surfaced to the HTTP layer. These are stable identifiers the
// frontend switches on; never collapse them into a generic failure.
const (
	CodeUnauthorized      = "UNAUTHORIZED"
	CodeNotFound          = "NOT_FOUND"
	CodeInvalidRequest    = "INVALID_REQUEST"
	CodeInvalidStatus     = "INVALID_STATUS"
	CodeAlreadyAnswered   = "ALREADY_ANSWERED"
	CodeAlreadyVoted      = "ALREADY_VOTED"
	CodeCannotVoteOwnTeam = "CANNOT_VOTE_OWN_TEAM"
	CodeStorageConflict   = "STORAGE_CONFLICT"
)

// Error is a domain error with a stable code.
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string {
	return e.Code + ": " + e.Message
}

func newError(code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// CodeOf returns the domain code carried by err, or CodeStorageConflict for
// anything that is not a domain error (by construction those are persistence
// failures).
func CodeOf(err error) string {
	var gerr *Error
	if errors.As(err, &gerr) {
		return gerr.Code
	}
	return CodeStorageConflict
}
