package dto

import "time"

// GameAnswer is one question/answer pair collected by a mini-game.
type GameAnswer struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// GameAnswerSet is the per-mini-game bundle the client builds when a game's
// final question is answered. Absent games are treated as "no answers".
type GameAnswerSet struct {
	Completed   bool         `json:"completed"`
	Answers     []GameAnswer `json:"answers"`
	CompletedAt *time.Time   `json:"completedAt,omitempty"`
}

// FinalizeRequest ends the quiz flow: raw answers from up to three games plus
// the email to key the generated profile on. SubmissionID is an optional
// client-generated idempotency key; when present, a retry after a failed
// upstream call does not create a second submissions row.
type FinalizeRequest struct {
	Email        string         `json:"email"`
	SubmissionID string         `json:"submissionId,omitempty"`
	ClawGame     *GameAnswerSet `json:"clawGame,omitempty"`
	SnakeGame    *GameAnswerSet `json:"snakeGame,omitempty"`
	CastleGame   *GameAnswerSet `json:"castleGame,omitempty"`
}

// SaveProfileRequest persists a profile explicitly, separate from finalize's
// implicit best-effort path.
type SaveProfileRequest struct {
	Email              string                `json:"email" binding:"required"`
	PersonalitySummary string                `json:"personalitySummary" binding:"required"`
	Traits             []TraitScore          `json:"traits"`
	Hobbies            []HobbyRecommendation `json:"hobbies"`
}

// HobbyEntryRequest is a free-text "what's your hobby" submission.
type HobbyEntryRequest struct {
	Hobby string `json:"hobby"`
}

type SignupRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}
