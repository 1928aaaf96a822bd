package metrics

import (
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

// Metric recording must never take the request path down with it
func TestMetricOperationsDoNotPanic(t *testing.T) {
	tests := []struct {
		name      string
		operation func(*Metrics)
	}{
		{"RecordHTTPRequest", func(m *Metrics) { m.RecordHTTPRequest("GET", "/api/feedback", 200, time.Second) }},
		{"RecordDBQuery", func(m *Metrics) { m.RecordDBQuery("select", "feedback", time.Millisecond, nil) }},
		{"RecordExternalCall", func(m *Metrics) { m.RecordExternalCall("s3", "put_object", time.Second, nil) }},
		{"IncrementFeedbackCreated", func(m *Metrics) { m.IncrementFeedbackCreated() }},
		{"IncrementUpvoteConflict", func(m *Metrics) { m.IncrementUpvoteConflict() }},
		{"SetFeedbackTotal", func(m *Metrics) { m.SetFeedbackTotal(100) }},
		{"RecordEventPublished", func(m *Metrics) { m.RecordEventPublished("comment.created", errors.New("x")) }},
		{"UpdateDBStats", func(m *Metrics) {
			m.UpdateDBStats(sql.DBStats{OpenConnections: 1, InUse: 1})
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewWithRegistry(prometheus.NewRegistry(), zap.NewNop())
			assert.NotPanics(t, func() {
				tt.operation(m)
			})
		})
	}
}

func TestSafeExecuteWithPanic(t *testing.T) {
	m := NewWithRegistry(prometheus.NewRegistry(), zap.NewNop())

	assert.NotPanics(t, func() {
		m.safeExecute("test_panic", func() {
			panic("intentional panic for testing")
		})
	})
}

func TestMetricsWithNilLogger(t *testing.T) {
	m := NewWithRegistry(prometheus.NewRegistry(), nil)

	assert.NotPanics(t, func() {
		m.RecordHTTPRequest("GET", "/test", 200, time.Second)
		m.RecordDBQuery("select", "test", time.Millisecond, nil)
		m.IncrementFeedbackCreated()
		m.safeExecute("test_panic", func() { panic("boom") })
	})
}

func TestCollectorPanicRecovery(t *testing.T) {
	m := NewWithRegistry(prometheus.NewRegistry(), zap.NewNop())

	collector := NewBusinessMetricsCollector(nil, m, zap.NewNop())

	assert.NotPanics(t, func() {
		collector.Run()
	})
}
