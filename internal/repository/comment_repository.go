package repository

import (
	"context"

	"gorm.io/gorm"

	"feedback-board-api/internal/domain"
)

// CommentRepository defines the interface for comment data access
type CommentRepository interface {
	Create(ctx context.Context, comment *domain.Comment) error
	FindByFeedbackID(ctx context.Context, feedbackID uint) ([]*domain.Comment, error)
	FindAll(ctx context.Context) ([]*domain.Comment, error)
}

type commentRepositoryImpl struct {
	db *gorm.DB
}

// NewCommentRepository creates a new instance of CommentRepository
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepositoryImpl{db: db}
}

// Create inserts a comment
func (r *commentRepositoryImpl) Create(ctx context.Context, comment *domain.Comment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

// FindByFeedbackID returns the comments of one item, oldest first
func (r *commentRepositoryImpl) FindByFeedbackID(ctx context.Context, feedbackID uint) ([]*domain.Comment, error) {
	comments := make([]*domain.Comment, 0)
	if err := r.db.WithContext(ctx).
		Where("feedback_id = ?", feedbackID).
		Order("created_at ASC").
		Order("id ASC").
		Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

// FindAll returns every comment grouped by feedback item
func (r *commentRepositoryImpl) FindAll(ctx context.Context) ([]*domain.Comment, error) {
	comments := make([]*domain.Comment, 0)
	if err := r.db.WithContext(ctx).
		Order("feedback_id ASC").
		Order("created_at ASC").
		Order("id ASC").
		Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}
