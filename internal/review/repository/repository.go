package repository

import (
	"context"
	"database/sql"

	"taskbridge/internal/review/model"
	"taskbridge/internal/store"
	"taskbridge/pkg/logger"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"
)

type ReviewRepository struct {
	db     *bun.DB
	logger *logger.Logger
}

var (
	ErrReviewNotFound = errors.New("review not found")
	ErrReviewExists   = errors.New("review already exists for job and reviewer")
)

func NewReviewRepository(db *bun.DB, logger logger.Logger) *ReviewRepository {
	return &ReviewRepository{
		db:     db,
		logger: &logger,
	}
}

func (r *ReviewRepository) CreateReview(ctx context.Context, rv *model.Review) error {
	_, err := store.Conn(ctx, r.db).NewInsert().Model(rv).Returning("*").Exec(ctx)
	if err != nil {
		if store.IsUniqueViolation(err) {
			return ErrReviewExists
		}
		return errors.Wrap(err, "reviewRepo.CreateReview.Insert: ")
	}
	return nil
}

func (r *ReviewRepository) GetReviewByJobAndReviewer(ctx context.Context, jobID, reviewerID uuid.UUID) (*model.Review, error) {
	rv := new(model.Review)
	err := store.Conn(ctx, r.db).NewSelect().
		Model(rv).
		Where("job_id = ?", jobID).
		Where("reviewer_id = ?", reviewerID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrReviewNotFound
		}
		return nil, errors.Wrap(err, "reviewRepo.GetReviewByJobAndReviewer.Scan: ")
	}
	return rv, nil
}

func (r *ReviewRepository) ListReviewsByJob(ctx context.Context, jobID uuid.UUID) ([]model.Review, error) {
	var reviews []model.Review
	err := store.Conn(ctx, r.db).NewSelect().
		Model(&reviews).
		Where("job_id = ?", jobID).
		Order("created_at ASC").
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "reviewRepo.ListReviewsByJob.Scan: ")
	}
	return reviews, nil
}
