package dto

import "time"

// BackupSnapshot is the document written by the scheduled backup job
type BackupSnapshot struct {
	GeneratedAt time.Time           `json:"generated_at"`
	Feedback    []*FeedbackResponse `json:"feedback"`
	Comments    []*CommentResponse  `json:"comments"`
}
