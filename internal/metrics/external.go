package metrics

import (
	"context"
	"errors"
	"strings"
	"time"
)

// RecordExternalCall records a call to an external dependency such as
// object storage ("s3") or the event broker ("redis").
func (m *Metrics) RecordExternalCall(target, operation string, duration time.Duration, err error) {
	m.safeExecute("RecordExternalCall", func() {
		result := "success"
		if err != nil {
			result = "error"
		}

		m.ExternalRequestsTotal.WithLabelValues(target, operation, result).Inc()
		m.ExternalRequestDuration.WithLabelValues(target, operation).Observe(duration.Seconds())

		if err != nil {
			m.ExternalErrors.WithLabelValues(target, getErrorType(err)).Inc()
		}
	})
}

// getErrorType categorizes external call errors
func getErrorType(err error) string {
	if err == nil {
		return "unknown"
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return "timeout"
	}
	if errors.Is(err, context.Canceled) {
		return "canceled"
	}

	errMsg := err.Error()
	switch {
	case strings.Contains(errMsg, "connection refused"):
		return "connection_refused"
	case strings.Contains(errMsg, "no such host"):
		return "dns_error"
	case strings.Contains(errMsg, "timeout") || strings.Contains(errMsg, "deadline exceeded"):
		return "timeout"
	case strings.Contains(errMsg, "EOF") || strings.Contains(errMsg, "connection reset"):
		return "connection_reset"
	case strings.Contains(errMsg, "TLS") || strings.Contains(errMsg, "certificate"):
		return "tls_error"
	case strings.Contains(errMsg, "AccessDenied") || strings.Contains(errMsg, "Forbidden"):
		return "access_denied"
	case strings.Contains(errMsg, "NoSuchBucket"):
		return "no_such_bucket"
	}
	return "network_error"
}
