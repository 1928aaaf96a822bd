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

// Upvote messages
const (
	MsgUpvoted          = "Upvoted successfully"
	MsgAlreadyUpvoted   = "You have already upvoted this feedback"
	MsgUpvoteEmailEmpty = "user_email is required"
)

// UpvoteService defines the interface for upvote business logic
type UpvoteService interface {
	Upvote(ctx context.Context, feedbackID uint, req *dto.UpvoteRequest) (*dto.UpvoteResponse, error)
}

type upvoteServiceImpl struct {
	upvoteRepo repository.UpvoteRepository
	events     eventEmitter
	metrics    *metrics.Metrics
	logger     *zap.Logger
}

// NewUpvoteService creates a new instance of UpvoteService
func NewUpvoteService(
	upvoteRepo repository.UpvoteRepository,
	publisher event.Publisher,
	m *metrics.Metrics,
	logger *zap.Logger,
) UpvoteService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &upvoteServiceImpl{
		upvoteRepo: upvoteRepo,
		events:     newEventEmitter(publisher, m, logger),
		metrics:    m,
		logger:     logger,
	}
}

// Upvote records one upvote per email per feedback item.
// The unique index decides duplicates; there is no pre-check query.
func (s *upvoteServiceImpl) Upvote(ctx context.Context, feedbackID uint, req *dto.UpvoteRequest) (*dto.UpvoteResponse, error) {
	if req == nil || req.UserEmail == "" {
		return nil, response.NewValidationError(MsgUpvoteEmailEmpty, "")
	}
	if !validation.IsEmail(req.UserEmail) {
		return nil, response.NewValidationError(MsgInvalidEmail, "")
	}

	upvote := &domain.Upvote{
		FeedbackID: feedbackID,
		UserEmail:  req.UserEmail,
	}
	if err := s.upvoteRepo.Create(ctx, upvote); err != nil {
		switch {
		case repository.IsUniqueViolation(err):
			if s.metrics != nil {
				s.metrics.IncrementUpvoteConflict()
			}
			return nil, response.NewConflictError(MsgAlreadyUpvoted, "")
		case repository.IsForeignKeyViolation(err):
			return nil, response.NewNotFoundError(MsgFeedbackNotFound, "")
		default:
			s.logger.Error("Failed to create upvote", zap.Uint("feedback_id", feedbackID), zap.Error(err))
			return nil, response.NewInternalError("Failed to upvote feedback", err)
		}
	}

	count, err := s.upvoteRepo.CountByFeedbackID(ctx, feedbackID)
	if err != nil {
		s.logger.Error("Failed to count upvotes", zap.Uint("feedback_id", feedbackID), zap.Error(err))
		return nil, response.NewInternalError("Failed to count upvotes", err)
	}

	if s.metrics != nil {
		s.metrics.IncrementUpvoteCreated()
	}
	s.events.emit(ctx, event.New(event.FeedbackUpvoted, feedbackID).WithUpvoteCount(count))

	return &dto.UpvoteResponse{
		Message:     MsgUpvoted,
		UpvoteCount: count,
	}, nil
}
