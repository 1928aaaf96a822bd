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

// MsgCommentFieldsRequired is returned when a comment body is incomplete
const MsgCommentFieldsRequired = "user_email and comment_text are required"

// CommentService defines the interface for comment business logic
type CommentService interface {
	CreateComment(ctx context.Context, feedbackID uint, req *dto.CreateCommentRequest) (*dto.CommentResponse, error)
	ListComments(ctx context.Context, feedbackID uint) ([]*dto.CommentResponse, error)
}

type commentServiceImpl struct {
	commentRepo repository.CommentRepository
	events      eventEmitter
	metrics     *metrics.Metrics
	logger      *zap.Logger
}

// NewCommentService creates a new instance of CommentService
func NewCommentService(
	commentRepo repository.CommentRepository,
	publisher event.Publisher,
	m *metrics.Metrics,
	logger *zap.Logger,
) CommentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &commentServiceImpl{
		commentRepo: commentRepo,
		events:      newEventEmitter(publisher, m, logger),
		metrics:     m,
		logger:      logger,
	}
}

// CreateComment appends a comment to a feedback item
func (s *commentServiceImpl) CreateComment(ctx context.Context, feedbackID uint, req *dto.CreateCommentRequest) (*dto.CommentResponse, error) {
	if req == nil || req.UserEmail == "" || req.CommentText == "" {
		return nil, response.NewValidationError(MsgCommentFieldsRequired, "")
	}
	if !validation.IsEmail(req.UserEmail) {
		return nil, response.NewValidationError(MsgInvalidEmail, "")
	}

	comment := &domain.Comment{
		FeedbackID:  feedbackID,
		UserEmail:   req.UserEmail,
		CommentText: req.CommentText,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		if repository.IsForeignKeyViolation(err) {
			return nil, response.NewNotFoundError(MsgFeedbackNotFound, "")
		}
		s.logger.Error("Failed to create comment", zap.Uint("feedback_id", feedbackID), zap.Error(err))
		return nil, response.NewInternalError("Failed to create comment", err)
	}

	if s.metrics != nil {
		s.metrics.IncrementCommentCreated()
	}
	s.events.emit(ctx, event.New(event.CommentCreated, feedbackID))

	return dto.NewCommentResponse(comment), nil
}

// ListComments returns comments oldest first. An unknown feedback id yields an empty list.
func (s *commentServiceImpl) ListComments(ctx context.Context, feedbackID uint) ([]*dto.CommentResponse, error) {
	comments, err := s.commentRepo.FindByFeedbackID(ctx, feedbackID)
	if err != nil {
		s.logger.Error("Failed to fetch comments", zap.Uint("feedback_id", feedbackID), zap.Error(err))
		return nil, response.NewInternalError("Failed to fetch comments", err)
	}
	return dto.NewCommentResponses(comments), nil
}
