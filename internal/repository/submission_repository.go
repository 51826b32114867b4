package repository

import (
	"github.com/starthobby/backend/internal/model"
	"gorm.io/gorm"
)

// SubmissionWithUsername is a submission row joined with the username of the
// user owning the email, if any. The join is on the email string; there is no
// foreign key between submissions and users.
type SubmissionWithUsername struct {
	model.Submission
	Username string
}

type SubmissionRepository interface {
	Create(sub *model.Submission) error
	ExistsBySubmissionID(submissionID string) (bool, error)
	FindAllWithUsername() ([]SubmissionWithUsername, error)
}

type submissionRepository struct {
	db *gorm.DB
}

func NewSubmissionRepository(db *gorm.DB) SubmissionRepository {
	return &submissionRepository{db: db}
}

func (r *submissionRepository) Create(sub *model.Submission) error {
	return r.db.Create(sub).Error
}

func (r *submissionRepository) ExistsBySubmissionID(submissionID string) (bool, error) {
	var count int64
	err := r.db.Model(&model.Submission{}).Where("submission_id = ?", submissionID).Count(&count).Error
	return count > 0, err
}

func (r *submissionRepository) FindAllWithUsername() ([]SubmissionWithUsername, error) {
	var rows []SubmissionWithUsername
	err := r.db.Model(&model.Submission{}).
		Select("submissions.*, users.username AS username").
		Joins("LEFT JOIN users ON users.email = submissions.email AND users.deleted_at IS NULL").
		Order("submissions.created_at DESC").
		Scan(&rows).Error
	return rows, err
}
