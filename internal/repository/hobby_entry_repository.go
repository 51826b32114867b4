package repository

import (
	"github.com/starthobby/backend/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type HobbyEntryRepository interface {
	// Upsert inserts a new tally row for the normalized key, or atomically
	// increments the existing one. Returns the row as stored after the write.
	Upsert(normalized, label string) (*model.HobbyEntry, error)
	FindTop(limit int) ([]model.HobbyEntry, error)
}

type hobbyEntryRepository struct {
	db *gorm.DB
}

func NewHobbyEntryRepository(db *gorm.DB) HobbyEntryRepository {
	return &hobbyEntryRepository{db: db}
}

func (r *hobbyEntryRepository) Upsert(normalized, label string) (*model.HobbyEntry, error) {
	entry := model.HobbyEntry{
		Normalized: normalized,
		Label:      label,
		Count:      1,
	}
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "normalized"}},
		DoUpdates: clause.Assignments(map[string]interface{}{"count": gorm.Expr("count + 1")}),
	}).Create(&entry).Error
	if err != nil {
		return nil, err
	}

	// Re-read for the post-increment count; the upsert does not report it.
	var stored model.HobbyEntry
	if err := r.db.Where("normalized = ?", normalized).First(&stored).Error; err != nil {
		return nil, err
	}
	return &stored, nil
}

func (r *hobbyEntryRepository) FindTop(limit int) ([]model.HobbyEntry, error) {
	var entries []model.HobbyEntry
	err := r.db.Order("count DESC, updated_at DESC").Limit(limit).Find(&entries).Error
	return entries, err
}
