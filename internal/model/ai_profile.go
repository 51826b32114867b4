package model

import (
	"time"
)

// AIProfile is a generated personality profile for an email. Multiple rows per
// email are allowed; readers take the most recent one. Traits and Hobbies hold
// the serialized JSON arrays exactly as generated.
type AIProfile struct {
	ID                 uint      `gorm:"primarykey" json:"id"`
	Email              string    `json:"email" gorm:"size:191;index;not null"`
	PersonalitySummary string    `json:"personality_summary" gorm:"type:text"`
	Traits             string    `json:"traits" gorm:"type:text"`
	Hobbies            string    `json:"hobbies" gorm:"type:text"`
	CreatedAt          time.Time `json:"created_at"`
}
