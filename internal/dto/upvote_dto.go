package dto

// UpvoteRequest represents the request to upvote a feedback item
type UpvoteRequest struct {
	UserEmail string `json:"user_email" binding:"required,feedback_email" example:"user@example.com"`
}

// UpvoteResponse carries the recounted total after a successful upvote
type UpvoteResponse struct {
	Message     string `json:"message" example:"Upvoted successfully"`
	UpvoteCount int64  `json:"upvote_count" example:"3"`
}
