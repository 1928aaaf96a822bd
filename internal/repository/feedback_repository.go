package repository

import (
	"context"

	"gorm.io/gorm"

	"feedback-board-api/internal/domain"
)

// SortOrder selects the ordering of the feedback listing
type SortOrder string

const (
	// SortByUpvotes orders by upvote count, most first, then newest
	SortByUpvotes SortOrder = "upvotes"
	// SortByNewest orders by creation time, newest first
	SortByNewest SortOrder = "newest"
)

// ParseSortOrder maps a query value to a SortOrder; anything unknown is SortByUpvotes
func ParseSortOrder(s string) SortOrder {
	if SortOrder(s) == SortByNewest {
		return SortByNewest
	}
	return SortByUpvotes
}

const feedbackWithCountsSelect = "feedback.*, " +
	"(SELECT COUNT(*) FROM upvotes WHERE upvotes.feedback_id = feedback.id) AS upvote_count, " +
	"(SELECT COUNT(*) FROM comments WHERE comments.feedback_id = feedback.id) AS comment_count"

// FeedbackRepository defines the interface for feedback data access
type FeedbackRepository interface {
	Create(ctx context.Context, feedback *domain.Feedback) error
	FindWithCounts(ctx context.Context, id uint) (*domain.FeedbackWithCounts, error)
	ListWithCounts(ctx context.Context, sort SortOrder) ([]*domain.FeedbackWithCounts, error)
	Update(ctx context.Context, id uint, fields map[string]interface{}) (int64, error)
	DeleteCascade(ctx context.Context, id uint) (int64, error)
}

// feedbackRepositoryImpl is the GORM implementation of FeedbackRepository
type feedbackRepositoryImpl struct {
	db *gorm.DB
}

// NewFeedbackRepository creates a new instance of FeedbackRepository
func NewFeedbackRepository(db *gorm.DB) FeedbackRepository {
	return &feedbackRepositoryImpl{db: db}
}

// Create inserts a new feedback item; the store assigns id and created_at
func (r *feedbackRepositoryImpl) Create(ctx context.Context, feedback *domain.Feedback) error {
	if feedback.Status == "" {
		feedback.Status = domain.StatusOpen
	}
	return r.db.WithContext(ctx).Create(feedback).Error
}

// FindWithCounts finds a feedback item with its derived counts
func (r *feedbackRepositoryImpl) FindWithCounts(ctx context.Context, id uint) (*domain.FeedbackWithCounts, error) {
	var feedback domain.FeedbackWithCounts
	if err := r.db.WithContext(ctx).
		Model(&domain.Feedback{}).
		Select(feedbackWithCountsSelect).
		Where("feedback.id = ?", id).
		Take(&feedback).Error; err != nil {
		return nil, err
	}
	return &feedback, nil
}

// ListWithCounts returns every feedback item with counts in the requested order
func (r *feedbackRepositoryImpl) ListWithCounts(ctx context.Context, sort SortOrder) ([]*domain.FeedbackWithCounts, error) {
	query := r.db.WithContext(ctx).
		Model(&domain.Feedback{}).
		Select(feedbackWithCountsSelect)

	switch sort {
	case SortByNewest:
		query = query.Order("feedback.created_at DESC").Order("feedback.id DESC")
	default:
		query = query.Order("upvote_count DESC").Order("feedback.created_at DESC").Order("feedback.id DESC")
	}

	feedback := make([]*domain.FeedbackWithCounts, 0)
	if err := query.Find(&feedback).Error; err != nil {
		return nil, err
	}
	return feedback, nil
}

// Update applies the given columns and returns the number of rows matched
func (r *feedbackRepositoryImpl) Update(ctx context.Context, id uint, fields map[string]interface{}) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&domain.Feedback{}).
		Where("id = ?", id).
		Updates(fields)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// DeleteCascade removes the upvotes, comments and the feedback row in one transaction.
// It returns the number of feedback rows deleted.
func (r *feedbackRepositoryImpl) DeleteCascade(ctx context.Context, id uint) (int64, error) {
	var deleted int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("feedback_id = ?", id).Delete(&domain.Upvote{}).Error; err != nil {
			return err
		}
		if err := tx.Where("feedback_id = ?", id).Delete(&domain.Comment{}).Error; err != nil {
			return err
		}
		result := tx.Where("id = ?", id).Delete(&domain.Feedback{})
		if result.Error != nil {
			return result.Error
		}
		deleted = result.RowsAffected
		return nil
	})
	if err != nil {
		return 0, err
	}
	return deleted, nil
}
