package review

import (
	"context"

	"taskbridge/internal/review/model"

	"github.com/google/uuid"
)

type ReviewRepository interface {
	// At most one review per (job, reviewer)
	CreateReview(ctx context.Context, r *model.Review) error
	GetReviewByJobAndReviewer(ctx context.Context, jobID, reviewerID uuid.UUID) (*model.Review, error)
	ListReviewsByJob(ctx context.Context, jobID uuid.UUID) ([]model.Review, error)
}
