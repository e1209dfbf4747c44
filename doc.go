// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Quiz Night API server.

Quiz Night is a live party quiz service: teams answer open-ended questions,
then everyone votes for the best answer from another team, and the top-voted
teams earn points on a shared scoreboard.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	DATABASE_URL=file:quiz.db MODERATOR_KEY_SALT=... go run .

Or with flags:

	go run . -p 3319 -d "file:quiz.db" -moderator-salt "..."

# Configuration

Required settings:

  - DATABASE_URL (-d): SQLite file or PostgreSQL connection string
  - MODERATOR_KEY_SALT (-moderator-salt): Secret for the moderator key HMAC

Optional settings:

  - PORT (-p): Server port (default: 3319)
  - DATABASE_TYPE (-t): "sqlite" (default) or "postgres"

The moderator key is derived from the salt and logged once at startup; the
host uses it in the X-Moderator-Key header for question management.

# Architecture

The server uses a handler-based architecture with dependency injection:

  - game: Core rules (question lifecycle, answer/vote guards, scoring)
  - handlers: HTTP request handlers (questions, answers, votes, teams, members)
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Request/response types
  - auth: Moderator key derivation and validation
  - db: Connection setup and schema creation
  - ws: WebSocket hub for question status events
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
