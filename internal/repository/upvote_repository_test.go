package repository

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"feedback-board-api/internal/domain"
	"feedback-board-api/internal/testutil"
)

func TestUpvoteRepository_CreateAndCount(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := NewUpvoteRepository(db)
	ctx := context.Background()

	fb := createFeedback(t, db, "Upvote me", time.Now().UTC())

	require.NoError(t, repo.Create(ctx, &domain.Upvote{FeedbackID: fb.ID, UserEmail: "a@b.co"}))
	require.NoError(t, repo.Create(ctx, &domain.Upvote{FeedbackID: fb.ID, UserEmail: "c@d.co"}))

	count, err := repo.CountByFeedbackID(ctx, fb.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	count, err = repo.CountByFeedbackID(ctx, 9999)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestUpvoteRepository_DuplicateIsUniqueViolation(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := NewUpvoteRepository(db)
	ctx := context.Background()

	fb := createFeedback(t, db, "Once only", time.Now().UTC())

	require.NoError(t, repo.Create(ctx, &domain.Upvote{FeedbackID: fb.ID, UserEmail: "a@b.co"}))
	err := repo.Create(ctx, &domain.Upvote{FeedbackID: fb.ID, UserEmail: "a@b.co"})
	require.Error(t, err)
	assert.True(t, IsUniqueViolation(err))
	assert.False(t, IsForeignKeyViolation(err))

	count, err := repo.CountByFeedbackID(ctx, fb.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestUpvoteRepository_MissingFeedbackIsForeignKeyViolation(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := NewUpvoteRepository(db)

	err := repo.Create(context.Background(), &domain.Upvote{FeedbackID: 4242, UserEmail: "a@b.co"})
	require.Error(t, err)
	assert.True(t, IsForeignKeyViolation(err))
	assert.False(t, IsUniqueViolation(err))
}

func TestUpvoteRepository_ConcurrentDuplicates(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := NewUpvoteRepository(db)
	ctx := context.Background()

	fb := createFeedback(t, db, "Race", time.Now().UTC())

	const attempts = 10
	var wg sync.WaitGroup
	var successes, conflicts atomic.Int32

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := repo.Create(ctx, &domain.Upvote{FeedbackID: fb.ID, UserEmail: "same@x.co"})
			switch {
			case err == nil:
				successes.Add(1)
			case IsUniqueViolation(err):
				conflicts.Add(1)
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), successes.Load())
	assert.Equal(t, int32(attempts-1), conflicts.Load())
}
