package database

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"feedback-board-api/internal/domain"
)

// Migration is a single numbered schema step. Steps run in version order,
// each inside its own transaction, and are recorded in schema_migrations.
type Migration struct {
	Version int
	Name    string
	Up      func(tx *gorm.DB) error
}

// Migrations returns the ordered schema steps for the service
func Migrations() []Migration {
	return []Migration{
		{
			Version: 1,
			Name:    "create_feedback_upvotes_comments",
			Up:      createTables,
		},
		{
			Version: 2,
			Name:    "feedback_status_column",
			Up:      ensureFeedbackStatus,
		},
		{
			Version: 3,
			Name:    "child_created_at_and_upvote_index",
			Up:      ensureChildColumns,
		},
	}
}

// createTables creates only the tables that are missing. Existing tables are
// never rebuilt since SQLite rebuilds fail once child rows reference feedback.
func createTables(tx *gorm.DB) error {
	migrator := tx.Migrator()
	// feedback first so the child tables pick up its cascade constraints
	for _, model := range []interface{}{&domain.Feedback{}, &domain.Upvote{}, &domain.Comment{}} {
		if migrator.HasTable(model) {
			continue
		}
		if err := migrator.CreateTable(model); err != nil {
			return fmt.Errorf("failed to create table for %T: %w", model, err)
		}
	}
	return nil
}

// ensureFeedbackStatus adds the status column to feedback tables created
// before it existed and backfills rows that have no status.
func ensureFeedbackStatus(tx *gorm.DB) error {
	migrator := tx.Migrator()
	if !migrator.HasColumn(&domain.Feedback{}, "Status") {
		if err := migrator.AddColumn(&domain.Feedback{}, "Status"); err != nil {
			return fmt.Errorf("failed to add status column: %w", err)
		}
	}

	return tx.Model(&domain.Feedback{}).
		Where("status IS NULL OR status = ?", "").
		Update("status", domain.StatusOpen).Error
}

// createdAtColumn is created_at without NOT NULL, addable to populated tables
type createdAtColumn struct {
	CreatedAt time.Time
}

// ensureChildColumns brings upvotes and comments tables from older schemas up
// to date: a backfilled created_at and the one-upvote-per-email index.
func ensureChildColumns(tx *gorm.DB) error {
	now := time.Now().UTC()
	for _, model := range []interface{ TableName() string }{&domain.Upvote{}, &domain.Comment{}} {
		if tx.Migrator().HasColumn(model, "CreatedAt") {
			continue
		}
		table := model.TableName()
		if err := tx.Table(table).Migrator().AddColumn(&createdAtColumn{}, "CreatedAt"); err != nil {
			return fmt.Errorf("failed to add created_at to %s: %w", table, err)
		}
		if err := tx.Table(table).Where("created_at IS NULL").Update("created_at", now).Error; err != nil {
			return fmt.Errorf("failed to backfill created_at on %s: %w", table, err)
		}
	}

	const upvoteIndex = "idx_upvotes_feedback_email"
	if !tx.Migrator().HasIndex(&domain.Upvote{}, upvoteIndex) {
		if err := tx.Migrator().CreateIndex(&domain.Upvote{}, upvoteIndex); err != nil {
			return fmt.Errorf("failed to create %s: %w", upvoteIndex, err)
		}
	}
	return nil
}

// Migrate applies every migration that has not been recorded yet
func Migrate(db *gorm.DB, logger *zap.Logger) error {
	return MigrateWith(db, logger, Migrations())
}

// MigrateWith applies the given migrations; exposed for tests
func MigrateWith(db *gorm.DB, logger *zap.Logger, migrations []Migration) error {
	if err := db.AutoMigrate(&domain.SchemaMigration{}); err != nil {
		return fmt.Errorf("failed to create schema_migrations table: %w", err)
	}

	var applied []domain.SchemaMigration
	if err := db.Order("version").Find(&applied).Error; err != nil {
		return fmt.Errorf("failed to read schema_migrations: %w", err)
	}
	done := make(map[int]bool, len(applied))
	for _, m := range applied {
		done[m.Version] = true
	}

	for _, m := range migrations {
		if done[m.Version] {
			continue
		}
		if m.Up == nil {
			return errors.New("migration has no Up step")
		}

		logger.Info("Applying migration",
			zap.Int("version", m.Version),
			zap.String("name", m.Name),
		)

		err := db.Transaction(func(tx *gorm.DB) error {
			if err := m.Up(tx); err != nil {
				return err
			}
			return tx.Create(&domain.SchemaMigration{Version: m.Version, Name: m.Name}).Error
		})
		if err != nil {
			logger.Error("Migration failed",
				zap.Int("version", m.Version),
				zap.String("name", m.Name),
				zap.Error(err),
			)
			return fmt.Errorf("migration %d (%s) failed: %w", m.Version, m.Name, err)
		}
	}

	logger.Info("Database migrations completed", zap.Int("total", len(migrations)))
	return nil
}
