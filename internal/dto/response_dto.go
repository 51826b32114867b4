package dto

import "time"

// TraitScore is a single personality trait on a 0-10 scale.
type TraitScore struct {
	Trait string  `json:"trait"`
	Score float64 `json:"score"`
}

// HobbyRecommendation is one suggested hobby from the generated profile.
type HobbyRecommendation struct {
	Name             string `json:"name"`
	Why              string `json:"why"`
	Category         string `json:"category"`
	Social           bool   `json:"social"`
	RegistrationLink string `json:"registrationLink,omitempty"`
}

// PersonalityProfile is the structured output parsed from the upstream model's
// response to the aggregated quiz answers.
type PersonalityProfile struct {
	PersonalitySummary string                `json:"personalitySummary"`
	Traits             []TraitScore          `json:"traits"`
	Hobbies            []HobbyRecommendation `json:"hobbies"`
}

// FinalizeResponse is the finalize endpoint's envelope. Success responses
// carry Analysis; failures carry Error.
type FinalizeResponse struct {
	Success  bool                `json:"success"`
	Analysis *PersonalityProfile `json:"analysis,omitempty"`
	Error    string              `json:"error,omitempty"`
}

// ErrorResponse is the failure envelope shared by all endpoints.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// SubmissionResponse is one row of GET /results/all: the raw submission joined
// with the owning user's name, when one exists for the email.
type SubmissionResponse struct {
	ID           uint      `json:"id"`
	SubmissionID string    `json:"submission_id"`
	Email        string    `json:"email"`
	Username     string    `json:"username,omitempty"`
	ClawData     string    `json:"claw_data"`
	SnakeData    string    `json:"snake_data"`
	CastleData   string    `json:"castle_data"`
	CreatedAt    time.Time `json:"created_at"`
}

// AIProfileResponse is the read-back shape of a stored profile.
type AIProfileResponse struct {
	Email              string                `json:"email"`
	PersonalitySummary string                `json:"personalitySummary"`
	Traits             []TraitScore          `json:"traits"`
	Hobbies            []HobbyRecommendation `json:"hobbies"`
	CreatedAt          time.Time             `json:"created_at"`
}

// HobbyEntryResponse is one row of the hobby tally.
type HobbyEntryResponse struct {
	Hobby string `json:"hobby"`
	Count int    `json:"count"`
}

type UserResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type AuthResponse struct {
	Success bool         `json:"success"`
	User    UserResponse `json:"user"`
}
