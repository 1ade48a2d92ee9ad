package repository

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"taskbridge/internal/review/model"
	"taskbridge/internal/store"
	"taskbridge/internal/store/storetest"
	"taskbridge/pkg/logger"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
)

var testDB *bun.DB

func TestMain(m *testing.M) {
	db, cleanup, err := storetest.StartPostgres(context.Background())
	if err != nil {
		log.Printf("skipping repository tests: %v", err)
		os.Exit(0)
	}
	testDB = db

	code := m.Run()
	cleanup()
	os.Exit(code)
}

func Test_ReviewRepository(t *testing.T) {
	t.Cleanup(func() {
		require.NoError(t, store.Truncate(context.Background(), testDB))
	})
	ctx := context.Background()
	repo := NewReviewRepository(testDB, logger.Logger{})

	jobID, seekerID, taskerID := uuid.New(), uuid.New(), uuid.New()
	first := &model.Review{ID: uuid.New(), JobID: jobID, ReviewerID: seekerID, RevieweeID: taskerID, Rating: 4, Text: "solid work overall", CreatedAt: time.Now()}
	require.NoError(t, repo.CreateReview(ctx, first))

	t.Run("sad path - second review by the same reviewer", func(t *testing.T) {
		dup := *first
		dup.ID = uuid.New()
		assert.ErrorIs(t, repo.CreateReview(ctx, &dup), ErrReviewExists)
	})

	t.Run("happy path - lookup by job and reviewer", func(t *testing.T) {
		got, err := repo.GetReviewByJobAndReviewer(ctx, jobID, seekerID)
		require.NoError(t, err)
		assert.Equal(t, first.ID, got.ID)

		_, err = repo.GetReviewByJobAndReviewer(ctx, jobID, taskerID)
		assert.ErrorIs(t, err, ErrReviewNotFound)
	})

	t.Run("happy path - list in submission order", func(t *testing.T) {
		second := &model.Review{ID: uuid.New(), JobID: jobID, ReviewerID: taskerID, RevieweeID: seekerID, Rating: 5, Text: "clear instructions", CreatedAt: first.CreatedAt.Add(time.Second)}
		require.NoError(t, repo.CreateReview(ctx, second))

		got, err := repo.ListReviewsByJob(ctx, jobID)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, first.ID, got[0].ID)
		assert.Equal(t, second.ID, got[1].ID)
	})
}
