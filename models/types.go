package models

import "time"

// Question status constants
const (
	StatusDraft    = "draft"
	StatusActive   = "active"
	StatusVoting   = "voting"
	StatusFinished = "finished"
)

// Answer kind constants
const (
	KindText  = "text"
	KindImage = "image"
	KindBoth  = "both"
)

// DefaultPoints is the base point value assigned to a question when the
// moderator does not pick one.
const DefaultPoints = 100

// Request types

type CreateTeamRequest struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

type JoinRequest struct {
	Name   string `json:"name"`
	TeamID string `json:"team_id"`
}

type ReassignTeamRequest struct {
	TeamID string `json:"team_id"`
}

type CreateQuestionRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	AnswerKind  string `json:"answer_kind"`
	TimeLimit   *int   `json:"time_limit,omitempty"`
	Points      int    `json:"points"`
}

type AdvanceStatusRequest struct {
	Status string `json:"status"`
}

type SubmitAnswerRequest struct {
	Content  string `json:"content"`
	ImageURL string `json:"image_url"`
}

type CastVoteRequest struct {
	OptionID string `json:"option_id"`
}

// Domain types

type Team struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Color     *string   `json:"color,omitempty"`
	Score     int       `json:"score"`
	CreatedAt time.Time `json:"created_at"`
}

type TeamSummary struct {
	Team
	MemberCount int `json:"member_count"`
}

type Member struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	TeamID    *string   `json:"team_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type MemberProfile struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Team *Team  `json:"team,omitempty"`
}

type Question struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	AnswerKind  string     `json:"answer_kind"`
	TimeLimit   *int       `json:"time_limit,omitempty"`
	Points      int        `json:"points"`
	Status      string     `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	StartedAt   *time.Time `json:"started_at,omitempty"`
	FinishedAt  *time.Time `json:"finished_at,omitempty"`
}

// QuestionDetail is a question plus the derived counters the lobby screens
// poll for, relative to the calling member/team.
type QuestionDetail struct {
	Question
	MyTeamAnswered bool `json:"my_team_answered"`
	TotalTeams     int  `json:"total_teams"`
	AnsweredTeams  int  `json:"answered_teams"`
	MyVoted        bool `json:"my_voted"`
	TotalMembers   int  `json:"total_members"`
	TotalVotes     int  `json:"total_votes"`
}

type Option struct {
	ID         string    `json:"id"`
	QuestionID string    `json:"question_id"`
	TeamID     string    `json:"team_id"`
	Content    *string   `json:"content,omitempty"`
	ImageURL   *string   `json:"image_url,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// OptionView is an option as presented to a caller: team metadata attached,
// other teams' content masked while answers are still being collected, and
// vote counts attached once voting has begun.
type OptionView struct {
	ID        string  `json:"id"`
	TeamID    string  `json:"team_id"`
	TeamName  string  `json:"team_name"`
	TeamColor *string `json:"team_color,omitempty"`
	Content   *string `json:"content,omitempty"`
	ImageURL  *string `json:"image_url,omitempty"`
	IsMyTeam  bool    `json:"is_my_team"`
	VoteCount int     `json:"vote_count"`
}

type Vote struct {
	ID         string    `json:"id"`
	QuestionID string    `json:"question_id"`
	MemberID   string    `json:"member_id"`
	OptionID   string    `json:"option_id"`
	CreatedAt  time.Time `json:"created_at"`
}

// OptionResult is one ranked row of a finished question's results.
type OptionResult struct {
	Rank         int     `json:"rank"`
	OptionID     string  `json:"option_id"`
	TeamID       string  `json:"team_id"`
	TeamName     string  `json:"team_name"`
	TeamColor    *string `json:"team_color,omitempty"`
	Content      *string `json:"content,omitempty"`
	ImageURL     *string `json:"image_url,omitempty"`
	VoteCount    int     `json:"vote_count"`
	PointsEarned int     `json:"points_earned"`
}

type QuestionResults struct {
	Question   Question       `json:"question"`
	Results    []OptionResult `json:"results"`
	TotalVotes int            `json:"total_votes"`
}

type ScoreboardRow struct {
	Rank        int     `json:"rank"`
	TeamID      string  `json:"team_id"`
	TeamName    string  `json:"team_name"`
	TeamColor   *string `json:"team_color,omitempty"`
	Score       int     `json:"score"`
	MemberCount int     `json:"member_count"`
}

type Scoreboard struct {
	Teams              []ScoreboardRow `json:"teams"`
	TotalQuestions     int             `json:"total_questions"`
	CompletedQuestions int             `json:"completed_questions"`
}

// Response types

type ListTeamsResponse struct {
	Teams []TeamSummary `json:"teams"`
}

type JoinResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	TeamID    string    `json:"team_id"`
	TeamName  string    `json:"team_name"`
	CreatedAt time.Time `json:"created_at"`
}

type ListQuestionsResponse struct {
	Questions []Question `json:"questions"`
}

type ListOptionsResponse struct {
	Options      []OptionView `json:"options"`
	TotalOptions int          `json:"total_options"`
	TotalTeams   int          `json:"total_teams"`
}

// Error response

type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
}
