package job

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"feedback-board-api/internal/client"
	"feedback-board-api/internal/dto"
	"feedback-board-api/internal/repository"
)

const backupTimeout = 2 * time.Minute

// BackupJob uploads a JSON snapshot of every feedback item and comment to object storage
type BackupJob struct {
	feedbackRepo repository.FeedbackRepository
	commentRepo  repository.CommentRepository
	s3Client     client.S3ClientInterface
	logger       *zap.Logger
	now          func() time.Time
}

// NewBackupJob creates a new BackupJob instance
func NewBackupJob(
	feedbackRepo repository.FeedbackRepository,
	commentRepo repository.CommentRepository,
	s3Client client.S3ClientInterface,
	logger *zap.Logger,
) *BackupJob {
	return &BackupJob{
		feedbackRepo: feedbackRepo,
		commentRepo:  commentRepo,
		s3Client:     s3Client,
		logger:       logger,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// Register schedules Run on the scheduler
func (j *BackupJob) Register(scheduler *cron.Cron, schedule string) (cron.EntryID, error) {
	return scheduler.AddJob(schedule, j)
}

// Run executes the backup job; it satisfies cron.Job
func (j *BackupJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), backupTimeout)
	defer cancel()

	if _, err := j.Backup(ctx); err != nil {
		j.logger.Error("Feedback backup failed", zap.Error(err))
	}
}

// Backup builds the snapshot, uploads it and returns the object key
func (j *BackupJob) Backup(ctx context.Context) (string, error) {
	j.logger.Info("Starting feedback backup")

	feedback, err := j.feedbackRepo.ListWithCounts(ctx, repository.SortByNewest)
	if err != nil {
		return "", fmt.Errorf("failed to list feedback: %w", err)
	}
	comments, err := j.commentRepo.FindAll(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to list comments: %w", err)
	}

	now := j.now()
	snapshot := dto.BackupSnapshot{
		GeneratedAt: now,
		Feedback:    dto.NewFeedbackResponses(feedback),
		Comments:    dto.NewCommentResponses(comments),
	}
	body, err := json.Marshal(snapshot)
	if err != nil {
		return "", fmt.Errorf("failed to encode snapshot: %w", err)
	}

	key := j.s3Client.GenerateBackupKey(now)
	url, err := j.s3Client.UploadFile(ctx, key, bytes.NewReader(body), "application/json")
	if err != nil {
		return "", err
	}

	j.logger.Info("Feedback backup completed",
		zap.String("key", key),
		zap.String("url", url),
		zap.Int("feedback", len(snapshot.Feedback)),
		zap.Int("comments", len(snapshot.Comments)),
		zap.Int("bytes", len(body)),
	)
	return key, nil
}
