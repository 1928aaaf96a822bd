package domain

import "time"

// FeedbackStatus represents the lifecycle status of a feedback item
type FeedbackStatus string

// FeedbackStatus constants
const (
	StatusOpen       FeedbackStatus = "Open"
	StatusPlanned    FeedbackStatus = "Planned"
	StatusInProgress FeedbackStatus = "In Progress"
	StatusCompleted  FeedbackStatus = "Completed"
)

// FeedbackStatuses lists every allowed status in display order
var FeedbackStatuses = []FeedbackStatus{
	StatusOpen,
	StatusPlanned,
	StatusInProgress,
	StatusCompleted,
}

// IsValid reports whether s is one of the allowed statuses
func (s FeedbackStatus) IsValid() bool {
	for _, status := range FeedbackStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// Feedback represents a user-submitted idea or issue
type Feedback struct {
	ID          uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string         `gorm:"type:text;not null" json:"title"`
	Description string         `gorm:"type:text;not null" json:"description"`
	UserEmail   string         `gorm:"type:varchar(320);not null" json:"user_email"`
	Status      FeedbackStatus `gorm:"type:varchar(20);not null;default:'Open';index:idx_feedback_status" json:"status"`
	CreatedAt   time.Time      `gorm:"not null;autoCreateTime;index:idx_feedback_created_at" json:"created_at"`
	Upvotes     []Upvote       `gorm:"foreignKey:FeedbackID;constraint:OnDelete:CASCADE" json:"-"`
	Comments    []Comment      `gorm:"foreignKey:FeedbackID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName specifies the table name for Feedback
func (Feedback) TableName() string {
	return "feedback"
}

// FeedbackWithCounts is a read model joining a feedback row with its derived counts
type FeedbackWithCounts struct {
	Feedback
	UpvoteCount  int64 `gorm:"column:upvote_count" json:"upvote_count"`
	CommentCount int64 `gorm:"column:comment_count" json:"comment_count"`
}
