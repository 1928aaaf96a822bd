package dto

import (
	"time"

	"feedback-board-api/internal/domain"
)

// CreateCommentRequest represents the request to create a new comment
type CreateCommentRequest struct {
	UserEmail   string `json:"user_email" binding:"required,feedback_email" example:"user@example.com"`
	CommentText string `json:"comment_text" binding:"required" example:"Would love this"`
}

// CommentResponse represents the comment response
type CommentResponse struct {
	ID          uint      `json:"id"`
	FeedbackID  uint      `json:"feedback_id"`
	UserEmail   string    `json:"user_email"`
	CommentText string    `json:"comment_text"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewCommentResponse(c *domain.Comment) *CommentResponse {
	return &CommentResponse{
		ID:          c.ID,
		FeedbackID:  c.FeedbackID,
		UserEmail:   c.UserEmail,
		CommentText: c.CommentText,
		CreatedAt:   c.CreatedAt,
	}
}

func NewCommentResponses(comments []*domain.Comment) []*CommentResponse {
	out := make([]*CommentResponse, 0, len(comments))
	for _, c := range comments {
		out = append(out, NewCommentResponse(c))
	}
	return out
}
