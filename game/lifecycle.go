// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package game

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/quiz-night/models"
)

// statusRank orders the lifecycle. Transitions only ever move to an equal or
// higher rank; no state is revisited.
var statusRank = map[string]int{
	models.StatusDraft:    0,
	models.StatusActive:   1,
	models.StatusVoting:   2,
	models.StatusFinished: 3,
}

// CreateQuestion inserts a new draft question.
func (s *Service) CreateQuestion(req models.CreateQuestionRequest) (models.Question, error) {
	if req.Title == "" {
		return models.Question{}, newError(CodeInvalidRequest, "Title is required")
	}
	switch req.AnswerKind {
	case models.KindText, models.KindImage, models.KindBoth:
	case "":
		req.AnswerKind = models.KindText
	default:
		return models.Question{}, newError(CodeInvalidRequest, "Invalid answer_kind")
	}
	if req.TimeLimit != nil && *req.TimeLimit <= 0 {
		return models.Question{}, newError(CodeInvalidRequest, "time_limit must be positive")
	}
	if req.Points <= 0 {
		req.Points = models.DefaultPoints
	}

	questionID := uuid.NewString()
	now := time.Now()

	var timeLimit any
	if req.TimeLimit != nil {
		timeLimit = *req.TimeLimit
	}

	_, err := s.db.Exec(`
		INSERT INTO questions (id, title, description, answer_kind, time_limit, points, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, questionID, req.Title, req.Description, req.AnswerKind, timeLimit, req.Points, models.StatusDraft, now)
	if err != nil {
		return models.Question{}, fmt.Errorf("failed to insert question: %w", err)
	}

	return s.questionByID(questionID)
}

// ListQuestions returns all questions in creation order, optionally filtered
// by status.
func (s *Service) ListQuestions(status string) ([]models.Question, error) {
	if status != "" {
		if _, ok := statusRank[status]; !ok {
			return nil, newError(CodeInvalidRequest, "Invalid status filter")
		}
	}

	query := `
		SELECT ` + questionColumns + `
		FROM questions
		ORDER BY created_at, id
	`
	args := []any{}
	if status != "" {
		query = `
			SELECT ` + questionColumns + `
			FROM questions
			WHERE status = $1
			ORDER BY created_at, id
		`
		args = append(args, status)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query questions: %w", err)
	}
	defer rows.Close()

	questions := []models.Question{}
	for rows.Next() {
		q, err := scanQuestion(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan question: %w", err)
		}
		questions = append(questions, q)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return questions, nil
}

// Advance moves a question to the target status. Transitions are strictly
// forward; repeating the current status is a safe retry. Timestamps are
// stamped on the first entry into active/finished and never rewritten.
// Entering finished triggers score finalization, which is idempotent.
func (s *Service) Advance(questionID, target string) (models.Question, error) {
	targetRank, ok := statusRank[target]
	if !ok {
		return models.Question{}, newError(CodeInvalidStatus, "Invalid status")
	}

	q, err := s.questionByID(questionID)
	if err != nil {
		return models.Question{}, err
	}
	if statusRank[q.Status] > targetRank {
		return models.Question{}, newError(CodeInvalidStatus, "Question cannot move backward to "+target)
	}

	now := time.Now()

	// The WHERE clause re-checks the forward-only rule inside the UPDATE so a
	// concurrent advance cannot slip a question backward between our read and
	// our write. Retrying the current status matches zero-or-more rows and is
	// harmless either way.
	var res sql.Result
	switch target {
	case models.StatusDraft:
		res, err = s.db.Exec(`
			UPDATE questions SET status = $1
			WHERE id = $2 AND status = 'draft'
		`, target, questionID)
	case models.StatusActive:
		res, err = s.db.Exec(`
			UPDATE questions SET status = $1, started_at = COALESCE(started_at, $2)
			WHERE id = $3 AND status IN ('draft', 'active')
		`, target, now, questionID)
	case models.StatusVoting:
		res, err = s.db.Exec(`
			UPDATE questions SET status = $1
			WHERE id = $2 AND status IN ('draft', 'active', 'voting')
		`, target, questionID)
	case models.StatusFinished:
		res, err = s.db.Exec(`
			UPDATE questions SET status = $1, finished_at = COALESCE(finished_at, $2)
			WHERE id = $3 AND status IN ('draft', 'active', 'voting', 'finished')
		`, target, now, questionID)
	}
	if err != nil {
		return models.Question{}, fmt.Errorf("failed to advance question: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return models.Question{}, err
	}
	if affected == 0 {
		// A concurrent request moved the question past the target first.
		return models.Question{}, newError(CodeInvalidStatus, "Question cannot move backward to "+target)
	}

	if target == models.StatusFinished {
		if err := s.finalizeScores(questionID); err != nil {
			return models.Question{}, err
		}
	}

	q, err = s.questionByID(questionID)
	if err != nil {
		return models.Question{}, err
	}

	s.publish(QuestionEvent{
		Type:       EventQuestionStatus,
		QuestionID: q.ID,
		Status:     q.Status,
	})

	return q, nil
}

// Get returns a question with its derived counters, relative to the calling
// member/team. Read-only.
func (s *Service) Get(questionID, memberID, teamID string) (models.QuestionDetail, error) {
	q, err := s.questionByID(questionID)
	if err != nil {
		return models.QuestionDetail{}, err
	}

	detail := models.QuestionDetail{Question: q}

	err = s.db.QueryRow(`SELECT COUNT(*) FROM teams`).Scan(&detail.TotalTeams)
	if err != nil {
		return models.QuestionDetail{}, err
	}
	err = s.db.QueryRow(`SELECT COUNT(*) FROM members`).Scan(&detail.TotalMembers)
	if err != nil {
		return models.QuestionDetail{}, err
	}
	err = s.db.QueryRow(`
		SELECT COUNT(*) FROM options WHERE question_id = $1
	`, questionID).Scan(&detail.AnsweredTeams)
	if err != nil {
		return models.QuestionDetail{}, err
	}
	err = s.db.QueryRow(`
		SELECT COUNT(*) FROM votes WHERE question_id = $1
	`, questionID).Scan(&detail.TotalVotes)
	if err != nil {
		return models.QuestionDetail{}, err
	}

	if teamID != "" {
		err = s.db.QueryRow(`
			SELECT EXISTS(
				SELECT 1 FROM options WHERE question_id = $1 AND team_id = $2
			)
		`, questionID, teamID).Scan(&detail.MyTeamAnswered)
		if err != nil {
			return models.QuestionDetail{}, err
		}
	}
	if memberID != "" {
		err = s.db.QueryRow(`
			SELECT EXISTS(
				SELECT 1 FROM votes WHERE question_id = $1 AND member_id = $2
			)
		`, questionID, memberID).Scan(&detail.MyVoted)
		if err != nil {
			return models.QuestionDetail{}, err
		}
	}

	return detail, nil
}
