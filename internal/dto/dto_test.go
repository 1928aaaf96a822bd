package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"feedback-board-api/internal/domain"
)

func TestUpdateFeedbackRequest_IsEmpty(t *testing.T) {
	var req UpdateFeedbackRequest
	require.NoError(t, json.Unmarshal([]byte(`{}`), &req))
	assert.True(t, req.IsEmpty())

	require.NoError(t, json.Unmarshal([]byte(`{"title":""}`), &req))
	assert.False(t, req.IsEmpty(), "an explicitly empty title is still a supplied field")
	require.NotNil(t, req.Title)
	assert.Equal(t, "", *req.Title)
}

func TestFeedbackResponse_WireFormat(t *testing.T) {
	created := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	resp := NewFeedbackResponse(&domain.FeedbackWithCounts{
		Feedback: domain.Feedback{
			ID:          7,
			Title:       "Dark mode",
			Description: "Please",
			UserEmail:   "a@b.co",
			Status:      domain.StatusInProgress,
			CreatedAt:   created,
		},
		UpvoteCount:  3,
		CommentCount: 1,
	})

	raw, err := json.Marshal(resp)
	require.NoError(t, err)

	var fields map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &fields))
	assert.ElementsMatch(t,
		[]string{"id", "title", "description", "user_email", "status", "created_at", "upvote_count", "comment_count"},
		keys(fields),
	)
	assert.Equal(t, "In Progress", fields["status"])
	assert.Equal(t, float64(3), fields["upvote_count"])
}

func TestNewResponses_NeverNil(t *testing.T) {
	assert.NotNil(t, NewFeedbackResponses(nil))
	assert.NotNil(t, NewCommentResponses(nil))

	raw, err := json.Marshal(NewCommentResponses(nil))
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(raw))
}

func keys(m map[string]interface{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
