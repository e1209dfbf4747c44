// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/quiz-night/cliparse"
	"github.com/danielhkuo/quiz-night/db"
	"github.com/danielhkuo/quiz-night/models"
)

// SetupTestDB creates a fresh in-memory SQLite database with the full schema.
// Each test gets its own database, so there is nothing to clean up between
// tests; the database disappears when the connection closes.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	// A unique name keeps parallel tests from sharing one in-memory database.
	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	conn, err := db.Open("sqlite", dsn)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:             3319,
		DatabaseURL:      ":memory:",
		DatabaseType:     "sqlite",
		ModeratorKeySalt: "test-moderator-salt",
	}
}

// CreateTestTeam inserts a team and returns its ID.
func CreateTestTeam(t *testing.T, conn *sql.DB, name string) string {
	t.Helper()

	teamID := uuid.NewString()
	_, err := conn.Exec(`
		INSERT INTO teams (id, name, score, created_at)
		VALUES ($1, $2, 0, $3)
	`, teamID, name, time.Now())
	if err != nil {
		t.Fatalf("Failed to create test team: %v", err)
	}

	return teamID
}

// CreateTestMember inserts a member belonging to teamID and returns its ID.
func CreateTestMember(t *testing.T, conn *sql.DB, name, teamID string) string {
	t.Helper()

	memberID := uuid.NewString()
	_, err := conn.Exec(`
		INSERT INTO members (id, name, team_id, created_at)
		VALUES ($1, $2, $3, $4)
	`, memberID, name, teamID, time.Now())
	if err != nil {
		t.Fatalf("Failed to create test member: %v", err)
	}

	return memberID
}

// CreateTestQuestion inserts a question in the given status and returns its ID.
// status should be "draft", "active", "voting", or "finished".
func CreateTestQuestion(t *testing.T, conn *sql.DB, status string, points int) string {
	t.Helper()

	questionID := uuid.NewString()
	now := time.Now()

	var startedAt, finishedAt *time.Time
	if status == models.StatusActive || status == models.StatusVoting || status == models.StatusFinished {
		startedAt = &now
	}
	if status == models.StatusFinished {
		finishedAt = &now
	}

	_, err := conn.Exec(`
		INSERT INTO questions (id, title, description, answer_kind, points, status, created_at, started_at, finished_at)
		VALUES ($1, 'Test Question', 'A test question', 'text', $2, $3, $4, $5, $6)
	`, questionID, points, status, now, startedAt, finishedAt)
	if err != nil {
		t.Fatalf("Failed to create test question: %v", err)
	}

	return questionID
}

// AddTestOption inserts an answer for a team and returns the option ID.
func AddTestOption(t *testing.T, conn *sql.DB, questionID, teamID, content string) string {
	t.Helper()

	optionID := uuid.NewString()
	_, err := conn.Exec(`
		INSERT INTO options (id, question_id, team_id, content, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, optionID, questionID, teamID, content, time.Now())
	if err != nil {
		t.Fatalf("Failed to create test option: %v", err)
	}

	return optionID
}

// CastTestVote inserts a vote and returns its ID.
func CastTestVote(t *testing.T, conn *sql.DB, questionID, memberID, optionID string) string {
	t.Helper()

	voteID := uuid.NewString()
	_, err := conn.Exec(`
		INSERT INTO votes (id, question_id, member_id, option_id, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, voteID, questionID, memberID, optionID, time.Now())
	if err != nil {
		t.Fatalf("Failed to create test vote: %v", err)
	}

	return voteID
}

// TeamScore reads a team's current score.
func TeamScore(t *testing.T, conn *sql.DB, teamID string) int {
	t.Helper()

	var score int
	if err := conn.QueryRow(`SELECT score FROM teams WHERE id = $1`, teamID).Scan(&score); err != nil {
		t.Fatalf("Failed to read team score: %v", err)
	}

	return score
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
