package domain

import "time"

// Upvote represents a single voter's one-time endorsement of a feedback item
type Upvote struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	FeedbackID uint      `gorm:"not null;index:idx_upvotes_feedback_id;uniqueIndex:idx_upvotes_feedback_email,priority:1" json:"feedback_id"`
	UserEmail  string    `gorm:"type:varchar(320);not null;uniqueIndex:idx_upvotes_feedback_email,priority:2" json:"user_email"`
	CreatedAt  time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}

// TableName specifies the table name for Upvote
func (Upvote) TableName() string {
	return "upvotes"
}
