package service

import (
	"context"

	"go.uber.org/zap"

	"feedback-board-api/internal/domain"
	"feedback-board-api/internal/dto"
	"feedback-board-api/internal/event"
	"feedback-board-api/internal/metrics"
	"feedback-board-api/internal/repository"
	"feedback-board-api/internal/response"
	"feedback-board-api/internal/validation"
)

// Validation messages returned to clients
const (
	MsgFeedbackFieldsRequired = "title, description and user_email are required"
	MsgInvalidEmail           = "Invalid email format"
	MsgNoFieldsToUpdate       = "No fields to update"
	MsgInvalidStatus          = "Invalid status"
	MsgFeedbackNotFound       = "Feedback not found"
)

// FeedbackService defines the interface for feedback business logic
type FeedbackService interface {
	ListFeedback(ctx context.Context, sortBy string) ([]*dto.FeedbackResponse, error)
	CreateFeedback(ctx context.Context, req *dto.CreateFeedbackRequest) (*dto.FeedbackResponse, error)
	UpdateFeedback(ctx context.Context, id uint, req *dto.UpdateFeedbackRequest) (*dto.FeedbackResponse, error)
	DeleteFeedback(ctx context.Context, id uint) error
}

// feedbackServiceImpl is the implementation of FeedbackService
type feedbackServiceImpl struct {
	feedbackRepo repository.FeedbackRepository
	events       eventEmitter
	metrics      *metrics.Metrics
	logger       *zap.Logger
}

// NewFeedbackService creates a new instance of FeedbackService
func NewFeedbackService(
	feedbackRepo repository.FeedbackRepository,
	publisher event.Publisher,
	m *metrics.Metrics,
	logger *zap.Logger,
) FeedbackService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &feedbackServiceImpl{
		feedbackRepo: feedbackRepo,
		events:       newEventEmitter(publisher, m, logger),
		metrics:      m,
		logger:       logger,
	}
}

// ListFeedback returns every feedback item with its counts in the requested order
func (s *feedbackServiceImpl) ListFeedback(ctx context.Context, sortBy string) ([]*dto.FeedbackResponse, error) {
	list, err := s.feedbackRepo.ListWithCounts(ctx, repository.ParseSortOrder(sortBy))
	if err != nil {
		s.logger.Error("Failed to list feedback", zap.String("sort_by", sortBy), zap.Error(err))
		return nil, response.NewInternalError("Failed to fetch feedback", err)
	}
	return dto.NewFeedbackResponses(list), nil
}

// CreateFeedback validates and stores a new feedback item with status Open
func (s *feedbackServiceImpl) CreateFeedback(ctx context.Context, req *dto.CreateFeedbackRequest) (*dto.FeedbackResponse, error) {
	if req == nil || req.Title == "" || req.Description == "" || req.UserEmail == "" {
		return nil, response.NewValidationError(MsgFeedbackFieldsRequired, "")
	}
	if !validation.IsEmail(req.UserEmail) {
		return nil, response.NewValidationError(MsgInvalidEmail, "")
	}

	feedback := &domain.Feedback{
		Title:       req.Title,
		Description: req.Description,
		UserEmail:   req.UserEmail,
		Status:      domain.StatusOpen,
	}
	if err := s.feedbackRepo.Create(ctx, feedback); err != nil {
		s.logger.Error("Failed to create feedback", zap.Error(err))
		return nil, response.NewInternalError("Failed to create feedback", err)
	}

	if s.metrics != nil {
		s.metrics.IncrementFeedbackCreated()
	}
	s.events.emit(ctx, event.New(event.FeedbackCreated, feedback.ID).WithStatus(string(feedback.Status)))

	return dto.NewFeedbackResponse(&domain.FeedbackWithCounts{Feedback: *feedback}), nil
}

// UpdateFeedback applies the supplied fields and returns the re-read row
func (s *feedbackServiceImpl) UpdateFeedback(ctx context.Context, id uint, req *dto.UpdateFeedbackRequest) (*dto.FeedbackResponse, error) {
	if req == nil || req.IsEmpty() {
		return nil, response.NewValidationError(MsgNoFieldsToUpdate, "")
	}

	fields := make(map[string]interface{}, 3)
	if req.Title != nil {
		if *req.Title == "" {
			return nil, response.NewValidationError("title must not be empty", "")
		}
		fields["title"] = *req.Title
	}
	if req.Description != nil {
		if *req.Description == "" {
			return nil, response.NewValidationError("description must not be empty", "")
		}
		fields["description"] = *req.Description
	}
	if req.Status != nil {
		status := domain.FeedbackStatus(*req.Status)
		if !status.IsValid() {
			return nil, response.NewValidationError(MsgInvalidStatus, "status must be one of: Open, Planned, In Progress, Completed")
		}
		fields["status"] = status
	}

	affected, err := s.feedbackRepo.Update(ctx, id, fields)
	if err != nil {
		s.logger.Error("Failed to update feedback", zap.Uint("feedback_id", id), zap.Error(err))
		return nil, response.NewInternalError("Failed to update feedback", err)
	}
	if affected == 0 {
		return nil, response.NewNotFoundError(MsgFeedbackNotFound, "")
	}

	updated, err := s.feedbackRepo.FindWithCounts(ctx, id)
	if err != nil {
		s.logger.Error("Failed to reload feedback after update", zap.Uint("feedback_id", id), zap.Error(err))
		return nil, response.NewInternalError("Failed to fetch updated feedback", err)
	}

	if s.metrics != nil {
		s.metrics.IncrementFeedbackUpdated()
	}
	s.events.emit(ctx, event.New(event.FeedbackUpdated, id).WithStatus(string(updated.Status)))

	return dto.NewFeedbackResponse(updated), nil
}

// DeleteFeedback removes a feedback item together with its upvotes and comments
func (s *feedbackServiceImpl) DeleteFeedback(ctx context.Context, id uint) error {
	deleted, err := s.feedbackRepo.DeleteCascade(ctx, id)
	if err != nil {
		s.logger.Error("Failed to delete feedback", zap.Uint("feedback_id", id), zap.Error(err))
		return response.NewInternalError("Failed to delete feedback", err)
	}
	if deleted == 0 {
		return response.NewNotFoundError(MsgFeedbackNotFound, "")
	}

	if s.metrics != nil {
		s.metrics.IncrementFeedbackDeleted()
	}
	s.events.emit(ctx, event.New(event.FeedbackDeleted, id))
	return nil
}
