package repository

import (
	"context"

	"gorm.io/gorm"

	"feedback-board-api/internal/domain"
)

// UpvoteRepository defines the interface for upvote data access
type UpvoteRepository interface {
	Create(ctx context.Context, upvote *domain.Upvote) error
	CountByFeedbackID(ctx context.Context, feedbackID uint) (int64, error)
}

type upvoteRepositoryImpl struct {
	db *gorm.DB
}

// NewUpvoteRepository creates a new instance of UpvoteRepository
func NewUpvoteRepository(db *gorm.DB) UpvoteRepository {
	return &upvoteRepositoryImpl{db: db}
}

// Create inserts an upvote. A second upvote by the same email fails with a
// unique violation from idx_upvotes_feedback_email.
func (r *upvoteRepositoryImpl) Create(ctx context.Context, upvote *domain.Upvote) error {
	return r.db.WithContext(ctx).Create(upvote).Error
}

func (r *upvoteRepositoryImpl) CountByFeedbackID(ctx context.Context, feedbackID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&domain.Upvote{}).
		Where("feedback_id = ?", feedbackID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
