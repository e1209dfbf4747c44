// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
	sqlite "modernc.org/sqlite"
)

// Open connects to the configured database. dbType is "sqlite" or "postgres".
// SQLite connections are capped at a single open connection so that writes
// serialize instead of surfacing SQLITE_BUSY to the handlers.
func Open(dbType, url string) (*sql.DB, error) {
	switch dbType {
	case "postgres":
		return sql.Open("postgres", url)
	case "sqlite":
		conn, err := sql.Open("sqlite", url)
		if err != nil {
			return nil, err
		}
		conn.SetMaxOpenConns(1)
		return conn, nil
	default:
		return nil, fmt.Errorf("unsupported database type %q", dbType)
	}
}

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// SQLite unique-constraint extended result codes.
const (
	sqlitePrimaryKeyViolation = 1555
	sqliteUniqueViolation     = 2067
)

// IsUniqueViolation reports whether err is a unique-constraint violation from
// either driver. The guards rely on this to turn a racing duplicate insert
// into a domain error instead of a storage failure.
func IsUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}

	var sqErr *sqlite.Error
	if errors.As(err, &sqErr) {
		code := sqErr.Code()
		return code == sqliteUniqueViolation || code == sqlitePrimaryKeyViolation
	}

	return false
}

// The schema is written to run unchanged on both PostgreSQL and SQLite:
// TEXT keys, explicit timestamps passed from Go, no dialect-specific types.
const schema = `
-- Teams
CREATE TABLE IF NOT EXISTS teams (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    color TEXT,
    score INTEGER NOT NULL DEFAULT 0,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

-- Members
CREATE TABLE IF NOT EXISTS members (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    team_id TEXT REFERENCES teams(id),
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_members_team_id ON members(team_id);

-- Questions
CREATE TABLE IF NOT EXISTS questions (
    id TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    description TEXT,
    answer_kind TEXT NOT NULL DEFAULT 'text' CHECK (answer_kind IN ('text', 'image', 'both')),
    time_limit INTEGER,
    points INTEGER NOT NULL DEFAULT 100,
    status TEXT NOT NULL DEFAULT 'draft' CHECK (status IN ('draft', 'active', 'voting', 'finished')),
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    started_at TIMESTAMP,
    finished_at TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_questions_status ON questions(status);

-- Options (one answer per team per question)
CREATE TABLE IF NOT EXISTS options (
    id TEXT PRIMARY KEY,
    question_id TEXT NOT NULL REFERENCES questions(id) ON DELETE CASCADE,
    team_id TEXT NOT NULL REFERENCES teams(id),
    content TEXT,
    image_url TEXT,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    UNIQUE (question_id, team_id)
);

CREATE INDEX IF NOT EXISTS idx_options_question_id ON options(question_id);

-- Votes (one vote per member per question)
CREATE TABLE IF NOT EXISTS votes (
    id TEXT PRIMARY KEY,
    question_id TEXT NOT NULL REFERENCES questions(id) ON DELETE CASCADE,
    member_id TEXT NOT NULL REFERENCES members(id),
    option_id TEXT NOT NULL REFERENCES options(id) ON DELETE CASCADE,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    UNIQUE (question_id, member_id)
);

CREATE INDEX IF NOT EXISTS idx_votes_question_id ON votes(question_id);
CREATE INDEX IF NOT EXISTS idx_votes_option_id ON votes(option_id);

-- Score awards (the scoring idempotency gate and the persisted result record)
CREATE TABLE IF NOT EXISTS score_awards (
    question_id TEXT NOT NULL REFERENCES questions(id) ON DELETE CASCADE,
    team_id TEXT NOT NULL REFERENCES teams(id),
    option_id TEXT NOT NULL REFERENCES options(id),
    rank INTEGER NOT NULL,
    vote_count INTEGER NOT NULL,
    points INTEGER NOT NULL,
    applied_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    PRIMARY KEY (question_id, team_id)
);

CREATE INDEX IF NOT EXISTS idx_score_awards_question_id ON score_awards(question_id);
`
