// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := Open("sqlite", "file:"+uuid.NewString()+"?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := CreateSchema(conn); err != nil {
		t.Fatalf("CreateSchema failed: %v", err)
	}

	return conn
}

func TestOpen_UnknownType(t *testing.T) {
	if _, err := Open("mysql", "whatever"); err == nil {
		t.Error("Expected error for unsupported database type")
	}
}

func TestCreateSchema_Idempotent(t *testing.T) {
	conn := openTestDB(t)

	// IF NOT EXISTS makes a second run a no-op.
	if err := CreateSchema(conn); err != nil {
		t.Fatalf("Second CreateSchema failed: %v", err)
	}
}

func TestIsUniqueViolation(t *testing.T) {
	conn := openTestDB(t)

	now := time.Now()
	if _, err := conn.Exec(`INSERT INTO teams (id, name, score, created_at) VALUES ('t1', 'Alpha', 0, $1)`, now); err != nil {
		t.Fatalf("Failed to insert team: %v", err)
	}
	if _, err := conn.Exec(`
		INSERT INTO questions (id, title, answer_kind, points, status, created_at)
		VALUES ('q1', 'Q', 'text', 100, 'active', $1)
	`, now); err != nil {
		t.Fatalf("Failed to insert question: %v", err)
	}

	insertOption := func(id string) error {
		_, err := conn.Exec(`
			INSERT INTO options (id, question_id, team_id, content, created_at)
			VALUES ($1, 'q1', 't1', 'answer', $2)
		`, id, now)
		return err
	}

	if err := insertOption("o1"); err != nil {
		t.Fatalf("First insert failed: %v", err)
	}

	// Second answer for the same (question, team) violates the unique index.
	err := insertOption("o2")
	if err == nil {
		t.Fatal("Expected unique violation, got nil")
	}
	if !IsUniqueViolation(err) {
		t.Errorf("Expected IsUniqueViolation true, got false for: %v", err)
	}

	// Duplicate primary key maps the same way.
	err = insertOption("o1")
	if err == nil {
		t.Fatal("Expected primary key violation, got nil")
	}
	if !IsUniqueViolation(err) {
		t.Errorf("Expected IsUniqueViolation true for PK violation, got false for: %v", err)
	}
}

func TestIsUniqueViolation_OtherErrors(t *testing.T) {
	testCases := []struct {
		name string
		err  error
	}{
		{"nil", nil},
		{"plain error", errors.New("boom")},
		{"wrapped plain error", fmt.Errorf("context: %w", errors.New("boom"))},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if IsUniqueViolation(tc.err) {
				t.Error("Expected IsUniqueViolation false")
			}
		})
	}
}
