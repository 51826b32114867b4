package model

import (
	"time"
)

// Submission is one finalize call's raw answers. Rows are append-only; there is
// no update or delete path. The three *Data columns hold the serialized
// per-game answer sets, or the literal string "null" when a game was skipped.
type Submission struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	SubmissionID string    `json:"submission_id" gorm:"size:36;uniqueIndex;not null"`
	Email        string    `json:"email" gorm:"size:191;index;not null"`
	ClawData     string    `json:"claw_data" gorm:"type:text"`
	SnakeData    string    `json:"snake_data" gorm:"type:text"`
	CastleData   string    `json:"castle_data" gorm:"type:text"`
	CreatedAt    time.Time `json:"created_at"`
}
