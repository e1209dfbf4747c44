// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database connection setup and schema creation.

# Opening a Connection

Open supports two drivers behind one schema:

	conn, err := db.Open("sqlite", "file:quiz.db")
	conn, err := db.Open("postgres", "postgres://...")

SQLite connections are capped at one open connection so writes serialize
instead of surfacing SQLITE_BUSY.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

The schema includes:

  - teams: Team identity, color, and running score
  - members: Players, each optionally on a team
  - questions: Question text, point value, and lifecycle state
  - options: One answer per team per question
  - votes: One vote per member per question
  - score_awards: Immutable per-question payout records

# Invariants in the Schema

The game's uniqueness rules live in the database, not in application checks:

  - options UNIQUE(question_id, team_id): one answer per team
  - votes UNIQUE(question_id, member_id): one vote per member
  - score_awards PRIMARY KEY(question_id, team_id): scores paid once

IsUniqueViolation recognizes the constraint errors of both drivers so the
guards can turn racing duplicates into domain errors.

# Portability

The schema and all queries run unchanged on PostgreSQL and SQLite: TEXT
primary keys, timestamps passed explicitly from Go, $N placeholders in
strictly increasing order.
*/
package db
