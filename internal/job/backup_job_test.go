package job

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"feedback-board-api/internal/client"
	"feedback-board-api/internal/domain"
	"feedback-board-api/internal/dto"
	"feedback-board-api/internal/repository"
	"feedback-board-api/internal/testutil"
)

// MockFeedbackRepository is a mock implementation of FeedbackRepository
type MockFeedbackRepository struct {
	mock.Mock
}

func (m *MockFeedbackRepository) Create(ctx context.Context, feedback *domain.Feedback) error {
	args := m.Called(ctx, feedback)
	return args.Error(0)
}

func (m *MockFeedbackRepository) FindWithCounts(ctx context.Context, id uint) (*domain.FeedbackWithCounts, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FeedbackWithCounts), args.Error(1)
}

func (m *MockFeedbackRepository) ListWithCounts(ctx context.Context, sort repository.SortOrder) ([]*domain.FeedbackWithCounts, error) {
	args := m.Called(ctx, sort)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.FeedbackWithCounts), args.Error(1)
}

func (m *MockFeedbackRepository) Update(ctx context.Context, id uint, fields map[string]interface{}) (int64, error) {
	args := m.Called(ctx, id, fields)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockFeedbackRepository) DeleteCascade(ctx context.Context, id uint) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

// MockCommentRepository is a mock implementation of CommentRepository
type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) Create(ctx context.Context, comment *domain.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *MockCommentRepository) FindByFeedbackID(ctx context.Context, feedbackID uint) ([]*domain.Comment, error) {
	args := m.Called(ctx, feedbackID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Comment), args.Error(1)
}

func (m *MockCommentRepository) FindAll(ctx context.Context) ([]*domain.Comment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Comment), args.Error(1)
}

// MockS3Client is a mock implementation of S3ClientInterface
type MockS3Client struct {
	mock.Mock
}

func (m *MockS3Client) GenerateBackupKey(now time.Time) string {
	args := m.Called(now)
	return args.String(0)
}

func (m *MockS3Client) UploadFile(ctx context.Context, key string, file io.Reader, contentType string) (string, error) {
	args := m.Called(ctx, key, file, contentType)
	return args.String(0), args.Error(1)
}

func (m *MockS3Client) GetFileURL(key string) string {
	args := m.Called(key)
	return args.String(0)
}

func fixedNow() time.Time {
	return time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
}

func TestBackupJob_Backup_Success(t *testing.T) {
	// Setup
	feedbackRepo := new(MockFeedbackRepository)
	commentRepo := new(MockCommentRepository)
	s3Client := new(MockS3Client)

	feedback := []*domain.FeedbackWithCounts{
		{Feedback: domain.Feedback{ID: 2, Title: "B", Status: domain.StatusPlanned}, UpvoteCount: 1, CommentCount: 1},
		{Feedback: domain.Feedback{ID: 1, Title: "A", Status: domain.StatusOpen}},
	}
	comments := []*domain.Comment{
		{ID: 7, FeedbackID: 2, UserEmail: "c@d.io", CommentText: "+1"},
	}

	var uploaded dto.BackupSnapshot
	feedbackRepo.On("ListWithCounts", mock.Anything, repository.SortByNewest).Return(feedback, nil)
	commentRepo.On("FindAll", mock.Anything).Return(comments, nil)
	s3Client.On("GenerateBackupKey", fixedNow()).Return("backups/feedback/2024/06/x_1.json")
	s3Client.On("UploadFile", mock.Anything, "backups/feedback/2024/06/x_1.json", mock.Anything, "application/json").
		Run(func(args mock.Arguments) {
			body, err := io.ReadAll(args.Get(2).(io.Reader))
			require.NoError(t, err)
			require.NoError(t, json.Unmarshal(body, &uploaded))
		}).
		Return("https://bucket/backups/feedback/2024/06/x_1.json", nil)

	job := NewBackupJob(feedbackRepo, commentRepo, s3Client, zap.NewNop())
	job.now = fixedNow

	// Execute
	key, err := job.Backup(context.Background())

	// Verify
	require.NoError(t, err)
	assert.Equal(t, "backups/feedback/2024/06/x_1.json", key)
	assert.True(t, uploaded.GeneratedAt.Equal(fixedNow()))
	require.Len(t, uploaded.Feedback, 2)
	assert.Equal(t, uint(2), uploaded.Feedback[0].ID)
	assert.Equal(t, int64(1), uploaded.Feedback[0].CommentCount)
	require.Len(t, uploaded.Comments, 1)
	assert.Equal(t, "+1", uploaded.Comments[0].CommentText)

	feedbackRepo.AssertExpectations(t)
	commentRepo.AssertExpectations(t)
	s3Client.AssertExpectations(t)
}

func TestBackupJob_Backup_ListError(t *testing.T) {
	feedbackRepo := new(MockFeedbackRepository)
	commentRepo := new(MockCommentRepository)
	s3Client := new(MockS3Client)

	feedbackRepo.On("ListWithCounts", mock.Anything, repository.SortByNewest).Return(nil, errors.New("database error"))

	job := NewBackupJob(feedbackRepo, commentRepo, s3Client, zap.NewNop())
	_, err := job.Backup(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to list feedback")
	commentRepo.AssertNotCalled(t, "FindAll", mock.Anything)
	s3Client.AssertNotCalled(t, "UploadFile", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestBackupJob_Backup_CommentError(t *testing.T) {
	feedbackRepo := new(MockFeedbackRepository)
	commentRepo := new(MockCommentRepository)
	s3Client := new(MockS3Client)

	feedbackRepo.On("ListWithCounts", mock.Anything, repository.SortByNewest).Return([]*domain.FeedbackWithCounts{}, nil)
	commentRepo.On("FindAll", mock.Anything).Return(nil, errors.New("database error"))

	job := NewBackupJob(feedbackRepo, commentRepo, s3Client, zap.NewNop())
	_, err := job.Backup(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to list comments")
	s3Client.AssertNotCalled(t, "UploadFile", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestBackupJob_Run_UploadErrorIsLoggedNotPanicked(t *testing.T) {
	feedbackRepo := new(MockFeedbackRepository)
	commentRepo := new(MockCommentRepository)
	s3Client := new(MockS3Client)

	feedbackRepo.On("ListWithCounts", mock.Anything, repository.SortByNewest).Return([]*domain.FeedbackWithCounts{}, nil)
	commentRepo.On("FindAll", mock.Anything).Return([]*domain.Comment{}, nil)
	s3Client.On("GenerateBackupKey", mock.Anything).Return("k.json")
	s3Client.On("UploadFile", mock.Anything, "k.json", mock.Anything, "application/json").Return("", errors.New("access denied"))

	job := NewBackupJob(feedbackRepo, commentRepo, s3Client, zap.NewNop())

	assert.NotPanics(t, job.Run)
	s3Client.AssertExpectations(t)
}

func TestBackupJob_AgainstDatabase(t *testing.T) {
	db := testutil.SetupTestDB(t)
	feedbackRepo := repository.NewFeedbackRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	ctx := context.Background()

	fb := &domain.Feedback{Title: "Export", Description: "CSV please", UserEmail: "a@b.co"}
	require.NoError(t, feedbackRepo.Create(ctx, fb))
	require.NoError(t, commentRepo.Create(ctx, &domain.Comment{FeedbackID: fb.ID, UserEmail: "c@d.io", CommentText: "yes"}))

	store := client.NewMockS3Client()
	job := NewBackupJob(feedbackRepo, commentRepo, store, zap.NewNop())

	key, err := job.Backup(ctx)
	require.NoError(t, err)

	data, ok := store.Uploaded(key)
	require.True(t, ok)
	var snapshot dto.BackupSnapshot
	require.NoError(t, json.Unmarshal(data, &snapshot))
	require.Len(t, snapshot.Feedback, 1)
	assert.Equal(t, int64(1), snapshot.Feedback[0].CommentCount)
	require.Len(t, snapshot.Comments, 1)
	assert.Equal(t, fb.ID, snapshot.Comments[0].FeedbackID)
}

func TestBackupJob_Register(t *testing.T) {
	scheduler := cron.New()
	job := NewBackupJob(new(MockFeedbackRepository), new(MockCommentRepository), new(MockS3Client), zap.NewNop())

	id, err := job.Register(scheduler, "@every 1h")
	require.NoError(t, err)
	assert.NotZero(t, id)

	_, err = job.Register(scheduler, "not a schedule")
	assert.Error(t, err)
}
