// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package game

import (
	"database/sql"

	"github.com/danielhkuo/quiz-night/models"
)

// QuestionEvent is published on every successful status advance. Delivery is
// best effort; clients that miss events fall back to polling.
type QuestionEvent struct {
	Type       string `json:"type"`
	QuestionID string `json:"question_id"`
	Status     string `json:"status"`
}

// EventQuestionStatus is the Type of events emitted by Advance.
const EventQuestionStatus = "question_status"

// Publisher receives question events. Implementations must not block.
type Publisher interface {
	PublishQuestionEvent(evt QuestionEvent)
}

// Service is the game core: the question lifecycle state machine, the answer
// and vote guards, and the scoring engine. All uniqueness invariants are
// enforced at the database so concurrent requests across processes cannot
// break them.
type Service struct {
	db     *sql.DB
	events Publisher
}

// NewService creates a Service. events may be nil.
func NewService(db *sql.DB, events Publisher) *Service {
	return &Service{db: db, events: events}
}

func (s *Service) publish(evt QuestionEvent) {
	if s.events != nil {
		s.events.PublishQuestionEvent(evt)
	}
}

// questionColumns is the column list scanQuestion expects.
const questionColumns = `id, title, description, answer_kind, time_limit, points, status,
       created_at, started_at, finished_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanQuestion(row rowScanner) (models.Question, error) {
	var (
		q          models.Question
		desc       sql.NullString
		timeLimit  sql.NullInt64
		startedAt  sql.NullTime
		finishedAt sql.NullTime
	)
	err := row.Scan(
		&q.ID, &q.Title, &desc, &q.AnswerKind, &timeLimit, &q.Points, &q.Status,
		&q.CreatedAt, &startedAt, &finishedAt,
	)
	if err != nil {
		return models.Question{}, err
	}

	q.Description = desc.String
	if timeLimit.Valid {
		v := int(timeLimit.Int64)
		q.TimeLimit = &v
	}
	if startedAt.Valid {
		t := startedAt.Time
		q.StartedAt = &t
	}
	if finishedAt.Valid {
		t := finishedAt.Time
		q.FinishedAt = &t
	}

	return q, nil
}

// questionByID loads a question or returns NOT_FOUND.
func (s *Service) questionByID(questionID string) (models.Question, error) {
	row := s.db.QueryRow(`
		SELECT `+questionColumns+`
		FROM questions
		WHERE id = $1
	`, questionID)

	q, err := scanQuestion(row)
	if err == sql.ErrNoRows {
		return models.Question{}, newError(CodeNotFound, "Question not found")
	}
	if err != nil {
		return models.Question{}, err
	}

	return q, nil
}
