package repository

import (
	"github.com/starthobby/backend/internal/model"
	"gorm.io/gorm"
)

type ProfileRepository interface {
	Create(profile *model.AIProfile) error
	FindLatestByEmail(email string) (*model.AIProfile, error)
}

type profileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) Create(profile *model.AIProfile) error {
	return r.db.Create(profile).Error
}

// FindLatestByEmail returns the most recent profile for an email. The caller
// maps gorm.ErrRecordNotFound to 404.
func (r *profileRepository) FindLatestByEmail(email string) (*model.AIProfile, error) {
	var profile model.AIProfile
	err := r.db.Where("email = ?", email).Order("created_at DESC").First(&profile).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}
