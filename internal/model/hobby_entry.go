package model

import (
	"time"
)

// HobbyEntry tallies free-text "what's your hobby" submissions. Normalized is
// the trim+lowercase key the upsert conflicts on; Label keeps the first-seen
// casing for display.
type HobbyEntry struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	Normalized string    `json:"normalized" gorm:"size:191;uniqueIndex;not null"`
	Label      string    `json:"label" gorm:"not null"`
	Count      int       `json:"count" gorm:"not null;default:1"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
