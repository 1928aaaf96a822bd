package event

import (
	"context"
	"time"
)

// Type names a live update event
type Type string

const (
	FeedbackCreated Type = "feedback.created"
	FeedbackUpdated Type = "feedback.updated"
	FeedbackDeleted Type = "feedback.deleted"
	FeedbackUpvoted Type = "feedback.upvoted"
	CommentCreated  Type = "comment.created"
)

// Event is the payload pushed to live update subscribers
type Event struct {
	Type        Type      `json:"type"`
	FeedbackID  uint      `json:"feedback_id"`
	UpvoteCount *int64    `json:"upvote_count,omitempty"`
	Status      string    `json:"status,omitempty"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// New creates an event stamped with the current UTC time
func New(t Type, feedbackID uint) Event {
	return Event{
		Type:       t,
		FeedbackID: feedbackID,
		OccurredAt: time.Now().UTC(),
	}
}

// WithUpvoteCount sets the recounted upvote total
func (e Event) WithUpvoteCount(count int64) Event {
	e.UpvoteCount = &count
	return e
}

// WithStatus sets the feedback status after the change
func (e Event) WithStatus(status string) Event {
	e.Status = status
	return e
}

// Publisher delivers events to subscribers
type Publisher interface {
	Publish(ctx context.Context, e Event) error
}

// NoopPublisher discards every event
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, Event) error { return nil }
