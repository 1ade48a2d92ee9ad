package review

import (
	"context"

	"taskbridge/internal/user"

	"github.com/google/uuid"
)

type ReviewUsecase interface {
	// Reviewee is always the other participant on the job
	SubmitReview(ctx context.Context, caller *user.Caller, cmd SubmitReviewCommand) (uuid.UUID, error)
	// Blind until both sides have reviewed: before that only the caller's own review is returned
	ListJobReviews(ctx context.Context, caller *user.Caller, jobID uuid.UUID) ([]ReviewDTO, error)
}
