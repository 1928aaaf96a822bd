package metrics

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// DefaultCollectSchedule is used when no schedule is configured
const DefaultCollectSchedule = "@every 1m"

// BusinessMetricsCollector refreshes table totals and pool stats on a cron schedule
type BusinessMetricsCollector struct {
	db      *gorm.DB
	metrics *Metrics
	logger  *zap.Logger
}

// NewBusinessMetricsCollector creates a new collector
func NewBusinessMetricsCollector(db *gorm.DB, metrics *Metrics, logger *zap.Logger) *BusinessMetricsCollector {
	return &BusinessMetricsCollector{
		db:      db,
		metrics: metrics,
		logger:  logger,
	}
}

// Register collects once immediately and then schedules Run on the scheduler
func (c *BusinessMetricsCollector) Register(scheduler *cron.Cron, schedule string) (cron.EntryID, error) {
	if schedule == "" {
		schedule = DefaultCollectSchedule
	}

	// 즉시 한 번 수집
	c.Run()

	return scheduler.AddJob(schedule, c)
}

// Run gathers business metrics; it satisfies cron.Job
func (c *BusinessMetricsCollector) Run() {
	defer func() {
		if r := recover(); r != nil {
			c.logger.Error("Panic in business metrics collection",
				zap.Any("panic", r),
			)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	tables := []struct {
		name string
		set  func(int64)
	}{
		{"feedback", c.metrics.SetFeedbackTotal},
		{"upvotes", c.metrics.SetUpvotesTotal},
		{"comments", c.metrics.SetCommentsTotal},
	}

	for _, table := range tables {
		var count int64
		if err := c.db.WithContext(ctx).Table(table.name).Count(&count).Error; err != nil {
			c.logger.Error("Failed to count rows",
				zap.String("table", table.name),
				zap.Error(err),
			)
			continue
		}
		table.set(count)
	}

	if sqlDB, err := c.db.DB(); err == nil {
		c.metrics.UpdateDBStats(sqlDB.Stats())
	}
}
