package metrics

// IncrementFeedbackCreated increments feedback creation counter
func (m *Metrics) IncrementFeedbackCreated() {
	m.safeExecute("IncrementFeedbackCreated", func() {
		m.FeedbackCreatedTotal.Inc()
	})
}

// IncrementFeedbackUpdated increments feedback update counter
func (m *Metrics) IncrementFeedbackUpdated() {
	m.safeExecute("IncrementFeedbackUpdated", func() {
		m.FeedbackUpdatedTotal.Inc()
	})
}

// IncrementFeedbackDeleted increments feedback deletion counter
func (m *Metrics) IncrementFeedbackDeleted() {
	m.safeExecute("IncrementFeedbackDeleted", func() {
		m.FeedbackDeletedTotal.Inc()
	})
}

// IncrementUpvoteCreated increments accepted upvote counter
func (m *Metrics) IncrementUpvoteCreated() {
	m.safeExecute("IncrementUpvoteCreated", func() {
		m.UpvotesCreatedTotal.Inc()
	})
}

// IncrementUpvoteConflict increments duplicate upvote counter
func (m *Metrics) IncrementUpvoteConflict() {
	m.safeExecute("IncrementUpvoteConflict", func() {
		m.UpvoteConflictsTotal.Inc()
	})
}

// IncrementCommentCreated increments comment creation counter
func (m *Metrics) IncrementCommentCreated() {
	m.safeExecute("IncrementCommentCreated", func() {
		m.CommentsCreatedTotal.Inc()
	})
}

// SetFeedbackTotal sets total feedback gauge
func (m *Metrics) SetFeedbackTotal(count int64) {
	m.safeExecute("SetFeedbackTotal", func() {
		m.FeedbackTotal.Set(float64(count))
	})
}

// SetUpvotesTotal sets total upvotes gauge
func (m *Metrics) SetUpvotesTotal(count int64) {
	m.safeExecute("SetUpvotesTotal", func() {
		m.UpvotesTotal.Set(float64(count))
	})
}

// SetCommentsTotal sets total comments gauge
func (m *Metrics) SetCommentsTotal(count int64) {
	m.safeExecute("SetCommentsTotal", func() {
		m.CommentsTotal.Set(float64(count))
	})
}

// RecordEventPublished counts a live update event by type and outcome
func (m *Metrics) RecordEventPublished(eventType string, err error) {
	m.safeExecute("RecordEventPublished", func() {
		result := "success"
		if err != nil {
			result = "error"
		}
		m.EventsPublishedTotal.WithLabelValues(eventType, result).Inc()
	})
}

// SetStreamClients sets the connected live update client gauge
func (m *Metrics) SetStreamClients(count int) {
	m.safeExecute("SetStreamClients", func() {
		m.StreamClients.Set(float64(count))
	})
}
