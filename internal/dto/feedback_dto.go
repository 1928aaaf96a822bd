package dto

import (
	"time"

	"feedback-board-api/internal/domain"
)

// CreateFeedbackRequest represents the request to submit a feedback item
// @Description Request body for submitting feedback. All fields are required.
type CreateFeedbackRequest struct {
	Title       string `json:"title" binding:"required" example:"Dark mode"`
	Description string `json:"description" binding:"required" example:"Please add a dark theme"`
	UserEmail   string `json:"user_email" binding:"required,feedback_email" example:"user@example.com"`
}

// UpdateFeedbackRequest represents an admin update of a feedback item
// @Description Any subset of title, description and status. Omitted fields are left unchanged.
type UpdateFeedbackRequest struct {
	Title       *string `json:"title,omitempty" example:"Dark mode"`
	Description *string `json:"description,omitempty" example:"Please add a dark theme"`
	Status      *string `json:"status,omitempty" example:"Planned" enums:"Open,Planned,In Progress,Completed"`
}

// IsEmpty reports whether no field was supplied
func (r *UpdateFeedbackRequest) IsEmpty() bool {
	return r.Title == nil && r.Description == nil && r.Status == nil
}

// FeedbackResponse represents a feedback item with its derived counts
type FeedbackResponse struct {
	ID           uint      `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	UserEmail    string    `json:"user_email"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpvoteCount  int64     `json:"upvote_count"`
	CommentCount int64     `json:"comment_count"`
}

// NewFeedbackResponse converts the read model to the response shape
func NewFeedbackResponse(f *domain.FeedbackWithCounts) *FeedbackResponse {
	return &FeedbackResponse{
		ID:           f.ID,
		Title:        f.Title,
		Description:  f.Description,
		UserEmail:    f.UserEmail,
		Status:       string(f.Status),
		CreatedAt:    f.CreatedAt,
		UpvoteCount:  f.UpvoteCount,
		CommentCount: f.CommentCount,
	}
}

// NewFeedbackResponses converts a listing, always returning a non-nil slice
func NewFeedbackResponses(list []*domain.FeedbackWithCounts) []*FeedbackResponse {
	out := make([]*FeedbackResponse, 0, len(list))
	for _, f := range list {
		out = append(out, NewFeedbackResponse(f))
	}
	return out
}
