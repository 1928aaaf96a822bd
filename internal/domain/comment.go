package domain

import "time"

// Comment represents a free-text remark attached to a feedback item
type Comment struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	FeedbackID  uint      `gorm:"not null;index:idx_comments_feedback_id" json:"feedback_id"`
	UserEmail   string    `gorm:"type:varchar(320);not null" json:"user_email"`
	CommentText string    `gorm:"type:text;not null" json:"comment_text"`
	CreatedAt   time.Time `gorm:"not null;autoCreateTime;index:idx_comments_created_at" json:"created_at"`
}

// TableName specifies the table name for Comment
func (Comment) TableName() string {
	return "comments"
}
