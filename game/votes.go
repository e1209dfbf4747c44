// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package game

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/quiz-night/db"
	"github.com/danielhkuo/quiz-night/models"
)

// CastVote records a member's single vote on a question in its voting phase.
// The at-most-one-vote-per-member invariant is enforced by the
// UNIQUE(question_id, member_id) constraint; the self-vote prohibition is
// checked against the member's team resolved here, never trusted from the
// caller.
func (s *Service) CastVote(questionID, memberID, optionID string) (models.Vote, error) {
	if memberID == "" {
		return models.Vote{}, newError(CodeUnauthorized, "Member ID is required")
	}
	if optionID == "" {
		return models.Vote{}, newError(CodeInvalidRequest, "Option ID is required")
	}

	q, err := s.questionByID(questionID)
	if err != nil {
		return models.Vote{}, err
	}
	if q.Status != models.StatusVoting {
		return models.Vote{}, newError(CodeInvalidStatus, "Question is not accepting votes")
	}

	opt, err := s.optionByID(optionID)
	if err != nil {
		return models.Vote{}, err
	}
	if opt.QuestionID != questionID {
		return models.Vote{}, newError(CodeNotFound, "Option not found")
	}

	var memberTeamID sql.NullString
	err = s.db.QueryRow(`
		SELECT team_id FROM members WHERE id = $1
	`, memberID).Scan(&memberTeamID)
	if err == sql.ErrNoRows {
		return models.Vote{}, newError(CodeNotFound, "Member not found")
	}
	if err != nil {
		return models.Vote{}, err
	}
	if !memberTeamID.Valid {
		return models.Vote{}, newError(CodeUnauthorized, "Member has no team")
	}

	if memberTeamID.String == opt.TeamID {
		return models.Vote{}, newError(CodeCannotVoteOwnTeam, "Cannot vote for your own team")
	}

	voteID := uuid.NewString()
	now := time.Now()

	_, err = s.db.Exec(`
		INSERT INTO votes (id, question_id, member_id, option_id, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, voteID, questionID, memberID, optionID, now)
	if err != nil {
		if db.IsUniqueViolation(err) {
			return models.Vote{}, newError(CodeAlreadyVoted, "Member has already voted")
		}
		return models.Vote{}, fmt.Errorf("failed to insert vote: %w", err)
	}

	vote := models.Vote{
		ID:         voteID,
		QuestionID: questionID,
		MemberID:   memberID,
		OptionID:   optionID,
		CreatedAt:  now,
	}

	return vote, nil
}
