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

// maskedContent replaces other teams' answer content while answers are still
// being collected.
const maskedContent = "***"

// SubmitAnswer records a team's single answer to an active question. The
// at-most-one-answer-per-team invariant is enforced by the
// UNIQUE(question_id, team_id) constraint, not by the read we do here, so two
// racing submitters from the same team cannot both succeed.
func (s *Service) SubmitAnswer(questionID, teamID string, req models.SubmitAnswerRequest) (models.Option, error) {
	if teamID == "" {
		return models.Option{}, newError(CodeUnauthorized, "Team ID is required")
	}

	q, err := s.questionByID(questionID)
	if err != nil {
		return models.Option{}, err
	}
	if q.Status != models.StatusActive {
		return models.Option{}, newError(CodeInvalidStatus, "Question is not accepting answers")
	}

	if req.Content == "" && req.ImageURL == "" {
		return models.Option{}, newError(CodeInvalidRequest, "Answer needs text or an image")
	}

	var teamExists bool
	err = s.db.QueryRow(`
		SELECT EXISTS(SELECT 1 FROM teams WHERE id = $1)
	`, teamID).Scan(&teamExists)
	if err != nil {
		return models.Option{}, err
	}
	if !teamExists {
		return models.Option{}, newError(CodeNotFound, "Team not found")
	}

	optionID := uuid.NewString()
	now := time.Now()

	var content, imageURL any
	if req.Content != "" {
		content = req.Content
	}
	if req.ImageURL != "" {
		imageURL = req.ImageURL
	}

	_, err = s.db.Exec(`
		INSERT INTO options (id, question_id, team_id, content, image_url, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, optionID, questionID, teamID, content, imageURL, now)
	if err != nil {
		if db.IsUniqueViolation(err) {
			return models.Option{}, newError(CodeAlreadyAnswered, "Team has already answered")
		}
		return models.Option{}, fmt.Errorf("failed to insert answer: %w", err)
	}

	return s.optionByID(optionID)
}

// ListOptions returns a question's answers as seen by the given team. While
// the question is active, other teams' content is masked; vote counts are
// attached only once voting has begun.
func (s *Service) ListOptions(questionID, teamID string) (models.ListOptionsResponse, error) {
	q, err := s.questionByID(questionID)
	if err != nil {
		return models.ListOptionsResponse{}, err
	}

	rows, err := s.db.Query(`
		SELECT o.id, o.team_id, t.name, t.color, o.content, o.image_url,
		       (SELECT COUNT(*) FROM votes v WHERE v.option_id = o.id)
		FROM options o
		JOIN teams t ON t.id = o.team_id
		WHERE o.question_id = $1
		ORDER BY o.created_at, o.id
	`, questionID)
	if err != nil {
		return models.ListOptionsResponse{}, fmt.Errorf("failed to query options: %w", err)
	}
	defer rows.Close()

	options := []models.OptionView{}
	for rows.Next() {
		var (
			view      models.OptionView
			color     sql.NullString
			content   sql.NullString
			imageURL  sql.NullString
			voteCount int
		)
		if err := rows.Scan(&view.ID, &view.TeamID, &view.TeamName, &color, &content, &imageURL, &voteCount); err != nil {
			return models.ListOptionsResponse{}, fmt.Errorf("failed to scan option: %w", err)
		}

		if color.Valid {
			view.TeamColor = &color.String
		}
		if content.Valid {
			view.Content = &content.String
		}
		if imageURL.Valid {
			view.ImageURL = &imageURL.String
		}
		view.IsMyTeam = teamID != "" && view.TeamID == teamID

		// Answers stay sealed from other teams until voting opens.
		if q.Status == models.StatusActive && !view.IsMyTeam {
			masked := maskedContent
			view.Content = &masked
			view.ImageURL = nil
		}

		if q.Status == models.StatusVoting || q.Status == models.StatusFinished {
			view.VoteCount = voteCount
		}

		options = append(options, view)
	}
	if err := rows.Err(); err != nil {
		return models.ListOptionsResponse{}, err
	}

	var totalTeams int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM teams`).Scan(&totalTeams); err != nil {
		return models.ListOptionsResponse{}, err
	}

	return models.ListOptionsResponse{
		Options:      options,
		TotalOptions: len(options),
		TotalTeams:   totalTeams,
	}, nil
}

// optionByID loads an option or returns NOT_FOUND.
func (s *Service) optionByID(optionID string) (models.Option, error) {
	var (
		opt      models.Option
		content  sql.NullString
		imageURL sql.NullString
	)
	err := s.db.QueryRow(`
		SELECT id, question_id, team_id, content, image_url, created_at
		FROM options
		WHERE id = $1
	`, optionID).Scan(&opt.ID, &opt.QuestionID, &opt.TeamID, &content, &imageURL, &opt.CreatedAt)
	if err == sql.ErrNoRows {
		return models.Option{}, newError(CodeNotFound, "Option not found")
	}
	if err != nil {
		return models.Option{}, err
	}

	if content.Valid {
		opt.Content = &content.String
	}
	if imageURL.Valid {
		opt.ImageURL = &imageURL.String
	}

	return opt, nil
}
