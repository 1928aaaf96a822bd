package metrics

import (
	"database/sql"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
)

const unknownTable = "unknown"

// UpdateDBStats mirrors the connection pool state into the db gauges
func (m *Metrics) UpdateDBStats(stats sql.DBStats) {
	m.safeExecute("UpdateDBStats", func() {
		m.DBConnectionsOpen.Set(float64(stats.OpenConnections))
		m.DBConnectionsInUse.Set(float64(stats.InUse))
		m.DBConnectionsIdle.Set(float64(stats.Idle))
		m.DBConnectionsMax.Set(float64(stats.MaxOpenConnections))
		// sql.DBStats wait values are already cumulative
		m.DBConnectionWaitTotal.Set(float64(stats.WaitCount))
		m.DBConnectionWaitDuration.Set(stats.WaitDuration.Seconds())
	})
}

// RecordDBQuery observes one gorm statement. Lookup misses and unique
// violations (a repeated upvote) are answered as 404/409 and are not counted
// as query errors.
func (m *Metrics) RecordDBQuery(operation, table string, duration time.Duration, err error) {
	m.safeExecute("RecordDBQuery", func() {
		operation = normalizeOperation(operation)
		if table == "" {
			table = unknownTable
		}
		m.DBQueryDuration.WithLabelValues(operation, table).Observe(duration.Seconds())

		if isQueryFailure(err) {
			m.DBQueryErrors.WithLabelValues(operation, table).Inc()
		}
	})
}

func isQueryFailure(err error) bool {
	if err == nil {
		return false
	}
	return !errors.Is(err, gorm.ErrRecordNotFound) && !errors.Is(err, gorm.ErrDuplicatedKey)
}

func normalizeOperation(op string) string {
	return strings.ToLower(strings.TrimSpace(op))
}
