// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package game implements the core quiz rules: the question lifecycle state
machine, the answer and vote guards, and the scoring engine.

# Lifecycle

Questions progress through four states, strictly forward:

	draft → active → voting → finished

	svc := game.NewService(db, hub)
	question, err := svc.Advance(questionID, "voting")

Repeating the current status is a safe retry. started_at and finished_at are
stamped on the first entry into active/finished and never rewritten. Backward
transitions fail with INVALID_STATUS. The forward-only rule is re-checked
inside the UPDATE statement, so concurrent advances cannot interleave into a
backward move.

# Answer Guard

Each team submits at most one answer per question, and only while the
question is active:

	option, err := svc.SubmitAnswer(questionID, teamID, req)

Uniqueness is enforced by a UNIQUE(question_id, team_id) constraint; a racing
duplicate surfaces as ALREADY_ANSWERED. While the question is active, other
teams' answers are masked in ListOptions.

# Vote Guard

Each member casts at most one vote per question, only during voting, and
never for their own team:

	vote, err := svc.CastVote(questionID, memberID, optionID)

Uniqueness is enforced by a UNIQUE(question_id, member_id) constraint; the
member's team is resolved server-side for the self-vote check.

# Scoring

Finishing a question finalizes scores: answers are ranked by vote count
(ties keep answer submission order) and the top three earn multiples of the
question's base point value:

	rank 1 → 3x points
	rank 2 → 1x points
	rank 3 → points / 2

Finalization is idempotent. Each (question, team) award row can be inserted
exactly once; only the request that wins the insert credits the team score,
so concurrent or repeated finishes never double-pay.

# Errors

All rule violations return *game.Error with a stable code (NOT_FOUND,
INVALID_STATUS, ALREADY_ANSWERED, ALREADY_VOTED, CANNOT_VOTE_OWN_TEAM, ...)
that the HTTP layer maps to a status code.
*/
package game
