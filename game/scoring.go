// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package game

import (
	"database/sql"
	"fmt"
	"sort"
	"time"

	"github.com/danielhkuo/quiz-night/models"
)

// awardPoints converts a 1-indexed rank into points against the question's
// base value. Ranks four and below earn nothing.
func awardPoints(rank, base int) int {
	switch rank {
	case 1:
		return base * 3
	case 2:
		return base
	case 3:
		return base / 2
	default:
		return 0
	}
}

// optionTally is one answer's vote count in insertion order.
type optionTally struct {
	optionID string
	teamID   string
	votes    int
}

// Results returns the ranked results of a finished question. It finalizes
// scores first, which is a no-op when they have already been applied. Results
// are never computed or exposed before the question is finished.
func (s *Service) Results(questionID string) (models.QuestionResults, error) {
	q, err := s.questionByID(questionID)
	if err != nil {
		return models.QuestionResults{}, err
	}
	if q.Status != models.StatusFinished {
		return models.QuestionResults{}, newError(CodeInvalidStatus, "Results are not final yet")
	}

	if err := s.finalizeScores(questionID); err != nil {
		return models.QuestionResults{}, err
	}

	rows, err := s.db.Query(`
		SELECT a.rank, a.option_id, a.team_id, t.name, t.color,
		       o.content, o.image_url, a.vote_count, a.points
		FROM score_awards a
		JOIN teams t ON t.id = a.team_id
		JOIN options o ON o.id = a.option_id
		WHERE a.question_id = $1
		ORDER BY a.rank
	`, questionID)
	if err != nil {
		return models.QuestionResults{}, fmt.Errorf("failed to query awards: %w", err)
	}
	defer rows.Close()

	results := []models.OptionResult{}
	for rows.Next() {
		var (
			res      models.OptionResult
			color    sql.NullString
			content  sql.NullString
			imageURL sql.NullString
		)
		if err := rows.Scan(&res.Rank, &res.OptionID, &res.TeamID, &res.TeamName, &color,
			&content, &imageURL, &res.VoteCount, &res.PointsEarned); err != nil {
			return models.QuestionResults{}, fmt.Errorf("failed to scan award: %w", err)
		}
		if color.Valid {
			res.TeamColor = &color.String
		}
		if content.Valid {
			res.Content = &content.String
		}
		if imageURL.Valid {
			res.ImageURL = &imageURL.String
		}
		results = append(results, res)
	}
	if err := rows.Err(); err != nil {
		return models.QuestionResults{}, err
	}

	var totalVotes int
	err = s.db.QueryRow(`
		SELECT COUNT(*) FROM votes WHERE question_id = $1
	`, questionID).Scan(&totalVotes)
	if err != nil {
		return models.QuestionResults{}, err
	}

	return models.QuestionResults{
		Question:   q,
		Results:    results,
		TotalVotes: totalVotes,
	}, nil
}

// finalizeScores tallies votes, ranks answers, and credits team scores.
// Safe to invoke any number of times: each (question, team) award row can be
// inserted exactly once, and the score increment only runs for the request
// that wins that insert. Ties keep answer insertion order (stable sort); no
// secondary tie-break exists.
func (s *Service) finalizeScores(questionID string) error {
	var points int
	err := s.db.QueryRow(`
		SELECT points FROM questions WHERE id = $1
	`, questionID).Scan(&points)
	if err == sql.ErrNoRows {
		return newError(CodeNotFound, "Question not found")
	}
	if err != nil {
		return err
	}

	rows, err := s.db.Query(`
		SELECT o.id, o.team_id,
		       (SELECT COUNT(*) FROM votes v WHERE v.option_id = o.id)
		FROM options o
		WHERE o.question_id = $1
		ORDER BY o.created_at, o.id
	`, questionID)
	if err != nil {
		return fmt.Errorf("failed to tally votes: %w", err)
	}
	defer rows.Close()

	tallies := []optionTally{}
	for rows.Next() {
		var t optionTally
		if err := rows.Scan(&t.optionID, &t.teamID, &t.votes); err != nil {
			return fmt.Errorf("failed to scan tally: %w", err)
		}
		tallies = append(tallies, t)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	sort.SliceStable(tallies, func(i, j int) bool {
		return tallies[i].votes > tallies[j].votes
	})

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	now := time.Now()
	for i, t := range tallies {
		rank := i + 1
		earned := awardPoints(rank, points)

		// The award row is the idempotency gate: only the insert that
		// actually lands gets to credit the team.
		res, err := tx.Exec(`
			INSERT INTO score_awards (question_id, team_id, option_id, rank, vote_count, points, applied_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			ON CONFLICT (question_id, team_id) DO NOTHING
		`, questionID, t.teamID, t.optionID, rank, t.votes, earned, now)
		if err != nil {
			return fmt.Errorf("failed to insert award: %w", err)
		}

		inserted, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if inserted == 0 || earned == 0 {
			continue
		}

		_, err = tx.Exec(`
			UPDATE teams SET score = score + $1 WHERE id = $2
		`, earned, t.teamID)
		if err != nil {
			return fmt.Errorf("failed to credit team score: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit awards: %w", err)
	}

	return nil
}
