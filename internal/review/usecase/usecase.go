package usecase

import (
	"context"
	"math"
	"strings"
	"time"

	"taskbridge/internal/event"
	"taskbridge/internal/job"
	jobmodel "taskbridge/internal/job/model"
	jobrepo "taskbridge/internal/job/repository"
	"taskbridge/internal/metrics"
	"taskbridge/internal/review"
	"taskbridge/internal/review/model"
	"taskbridge/internal/review/repository"
	"taskbridge/internal/store"
	"taskbridge/internal/user"
	"taskbridge/pkg/errors"
	"taskbridge/pkg/logger"
	"taskbridge/pkg/utils"

	"github.com/google/uuid"
	pkgerrors "github.com/pkg/errors"
)

const DefaultReviewWindow = 30 * 24 * time.Hour

type ReviewUsecase struct {
	reviews review.ReviewRepository
	jobs    job.JobRepository
	users   user.UserRepository
	events  event.Emitter
	tx      store.Transactor
	window  time.Duration
	logger  logger.Logger
	now     func() time.Time
}

func NewReviewUsecase(
	reviews review.ReviewRepository,
	jobs job.JobRepository,
	users user.UserRepository,
	events event.Emitter,
	tx store.Transactor,
	window time.Duration,
	logger logger.Logger,
) *ReviewUsecase {
	if window <= 0 {
		window = DefaultReviewWindow
	}
	return &ReviewUsecase{
		reviews: reviews,
		jobs:    jobs,
		users:   users,
		events:  events,
		tx:      tx,
		window:  window,
		logger:  logger,
		now:     time.Now,
	}
}

func (uc *ReviewUsecase) SubmitReview(ctx context.Context, caller *user.Caller, cmd review.SubmitReviewCommand) (uuid.UUID, error) {
	if !caller.Resolved() {
		return uuid.Nil, errors.ErrUnauthorized
	}
	if err := validateRating(cmd.Rating); err != nil {
		return uuid.Nil, err
	}
	text := strings.TrimSpace(cmd.Text)
	if utils.RuneLen(text) < model.MinTextLength {
		return uuid.Nil, errors.ErrTextTooShort
	}
	if utils.RuneLen(text) > model.MaxTextLength {
		return uuid.Nil, errors.ErrTextTooLong
	}
	rating := int(cmd.Rating)

	var rv *model.Review
	var revieweeRole string
	err := uc.tx.RunInTx(ctx, func(ctx context.Context) error {
		j, err := uc.jobs.GetJobForUpdate(ctx, cmd.JobID)
		if err != nil {
			return err
		}
		if j.Status != jobmodel.StatusCompleted {
			return errors.ErrJobNotCompleted
		}
		reviewerRole, ok := j.RoleOf(caller.ID)
		if !ok {
			return errors.ErrNotParticipant
		}

		_, err = uc.reviews.GetReviewByJobAndReviewer(ctx, j.ID, caller.ID)
		if err == nil {
			return errors.ErrAlreadyReviewed
		}
		if !pkgerrors.Is(err, repository.ErrReviewNotFound) {
			return err
		}

		now := uc.now()
		if j.CompletedAt != nil && now.Sub(*j.CompletedAt) > uc.window {
			return errors.ErrReviewWindowExpired
		}

		revieweeID, role, _ := j.Counterpart(caller.ID)
		revieweeRole = string(role)
		rv = &model.Review{
			ID:         uuid.New(),
			JobID:      j.ID,
			ReviewerID: caller.ID,
			RevieweeID: revieweeID,
			Rating:     rating,
			Text:       text,
			CreatedAt:  now,
		}
		if err := uc.reviews.CreateReview(ctx, rv); err != nil {
			return err
		}
		if err := uc.jobs.SetReviewLink(ctx, j.ID, reviewerRole, rv.ID); err != nil {
			return err
		}
		if _, err := uc.users.ApplyRating(ctx, revieweeID, role, rating); err != nil {
			return err
		}
		return uc.events.Emit(ctx, event.Event{
			Kind:           event.ReviewSubmitted,
			ConversationID: j.ConversationID,
			ActorID:        caller.ID,
			JobID:          &j.ID,
			OccurredAt:     now,
		})
	})
	if err != nil {
		return uuid.Nil, uc.translate(err, "submit review")
	}

	metrics.ReviewRatings.WithLabelValues(revieweeRole).Observe(float64(rating))
	uc.logger.Info("review submitted", "review_id", rv.ID, "job_id", rv.JobID, "reviewee_id", rv.RevieweeID, "rating", rating)
	return rv.ID, nil
}

func (uc *ReviewUsecase) ListJobReviews(ctx context.Context, caller *user.Caller, jobID uuid.UUID) ([]review.ReviewDTO, error) {
	if !caller.Resolved() {
		return nil, errors.ErrUnauthorized
	}
	j, err := uc.jobs.GetJobByID(ctx, jobID)
	if err != nil {
		return nil, uc.translate(err, "list reviews")
	}
	if _, ok := j.RoleOf(caller.ID); !ok {
		return nil, errors.ErrNotParticipant
	}

	reviews, err := uc.reviews.ListReviewsByJob(ctx, j.ID)
	if err != nil {
		return nil, uc.translate(err, "list reviews")
	}

	reveal := j.BothReviewed()
	out := make([]review.ReviewDTO, 0, len(reviews))
	for i := range reviews {
		if !reveal && reviews[i].ReviewerID != caller.ID {
			continue
		}
		out = append(out, review.ToReviewDTO(&reviews[i]))
	}
	return out, nil
}

func validateRating(r float64) error {
	if r < model.MinRating || r > model.MaxRating {
		return errors.ErrRatingOutOfRange
	}
	if r != math.Trunc(r) {
		return errors.ErrRatingNotInteger
	}
	return nil
}

func (uc *ReviewUsecase) translate(err error, op string) error {
	switch {
	case errors.CodeOf(err) != errors.CodeUnknown:
		return err
	case pkgerrors.Is(err, jobrepo.ErrJobNotFound):
		return errors.ErrJobNotFound
	case pkgerrors.Is(err, repository.ErrReviewExists),
		pkgerrors.Is(err, jobrepo.ErrReviewLinkTaken):
		return errors.ErrAlreadyReviewed
	}
	uc.logger.Error("review operation failed", "op", op, "err", err)
	return errors.Internal("failed to " + op)
}
