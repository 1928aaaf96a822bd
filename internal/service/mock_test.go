package service

import (
	"context"
	"sync"

	"feedback-board-api/internal/domain"
	"feedback-board-api/internal/event"
	"feedback-board-api/internal/repository"
)

// MockFeedbackRepository is a mock implementation of FeedbackRepository
type MockFeedbackRepository struct {
	CreateFunc         func(ctx context.Context, feedback *domain.Feedback) error
	FindWithCountsFunc func(ctx context.Context, id uint) (*domain.FeedbackWithCounts, error)
	ListWithCountsFunc func(ctx context.Context, sort repository.SortOrder) ([]*domain.FeedbackWithCounts, error)
	UpdateFunc         func(ctx context.Context, id uint, fields map[string]interface{}) (int64, error)
	DeleteCascadeFunc  func(ctx context.Context, id uint) (int64, error)
}

func (m *MockFeedbackRepository) Create(ctx context.Context, feedback *domain.Feedback) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, feedback)
	}
	return nil
}

func (m *MockFeedbackRepository) FindWithCounts(ctx context.Context, id uint) (*domain.FeedbackWithCounts, error) {
	if m.FindWithCountsFunc != nil {
		return m.FindWithCountsFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockFeedbackRepository) ListWithCounts(ctx context.Context, sort repository.SortOrder) ([]*domain.FeedbackWithCounts, error) {
	if m.ListWithCountsFunc != nil {
		return m.ListWithCountsFunc(ctx, sort)
	}
	return nil, nil
}

func (m *MockFeedbackRepository) Update(ctx context.Context, id uint, fields map[string]interface{}) (int64, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, fields)
	}
	return 0, nil
}

func (m *MockFeedbackRepository) DeleteCascade(ctx context.Context, id uint) (int64, error) {
	if m.DeleteCascadeFunc != nil {
		return m.DeleteCascadeFunc(ctx, id)
	}
	return 0, nil
}

// MockUpvoteRepository is a mock implementation of UpvoteRepository
type MockUpvoteRepository struct {
	CreateFunc            func(ctx context.Context, upvote *domain.Upvote) error
	CountByFeedbackIDFunc func(ctx context.Context, feedbackID uint) (int64, error)
}

func (m *MockUpvoteRepository) Create(ctx context.Context, upvote *domain.Upvote) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, upvote)
	}
	return nil
}

func (m *MockUpvoteRepository) CountByFeedbackID(ctx context.Context, feedbackID uint) (int64, error) {
	if m.CountByFeedbackIDFunc != nil {
		return m.CountByFeedbackIDFunc(ctx, feedbackID)
	}
	return 0, nil
}

// MockCommentRepository is a mock implementation of CommentRepository
type MockCommentRepository struct {
	CreateFunc           func(ctx context.Context, comment *domain.Comment) error
	FindByFeedbackIDFunc func(ctx context.Context, feedbackID uint) ([]*domain.Comment, error)
	FindAllFunc          func(ctx context.Context) ([]*domain.Comment, error)
}

func (m *MockCommentRepository) Create(ctx context.Context, comment *domain.Comment) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, comment)
	}
	return nil
}

func (m *MockCommentRepository) FindByFeedbackID(ctx context.Context, feedbackID uint) ([]*domain.Comment, error) {
	if m.FindByFeedbackIDFunc != nil {
		return m.FindByFeedbackIDFunc(ctx, feedbackID)
	}
	return nil, nil
}

func (m *MockCommentRepository) FindAll(ctx context.Context) ([]*domain.Comment, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, nil
}

// MockPublisher records published events and optionally fails
type MockPublisher struct {
	mu     sync.Mutex
	Events []event.Event
	Err    error
}

func (m *MockPublisher) Publish(_ context.Context, evt event.Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Events = append(m.Events, evt)
	return m.Err
}

func (m *MockPublisher) Types() []event.Type {
	m.mu.Lock()
	defer m.mu.Unlock()
	types := make([]event.Type, 0, len(m.Events))
	for _, evt := range m.Events {
		types = append(types, evt.Type)
	}
	return types
}
