package usecase

import (
	"context"
	"time"

	"taskbridge/internal/event"
	"taskbridge/internal/job"
	"taskbridge/internal/job/model"
	"taskbridge/internal/job/repository"
	"taskbridge/internal/metrics"
	"taskbridge/internal/store"
	"taskbridge/internal/user"
	usermodel "taskbridge/internal/user/model"
	"taskbridge/pkg/errors"
	"taskbridge/pkg/logger"

	"github.com/google/uuid"
	pkgerrors "github.com/pkg/errors"
)

type JobUsecase struct {
	repo   job.JobRepository
	events event.Emitter
	tx     store.Transactor
	logger logger.Logger
	now    func() time.Time
}

func NewJobUsecase(repo job.JobRepository, events event.Emitter, tx store.Transactor, logger logger.Logger) *JobUsecase {
	return &JobUsecase{repo: repo, events: events, tx: tx, logger: logger, now: time.Now}
}

func (uc *JobUsecase) GetJob(ctx context.Context, caller *user.Caller, jobID uuid.UUID) (*job.JobDTO, error) {
	if !caller.Resolved() {
		return nil, errors.ErrUnauthorized
	}
	j, err := uc.repo.GetJobByID(ctx, jobID)
	if err != nil {
		return nil, uc.translate(err, "get job")
	}
	if _, ok := j.RoleOf(caller.ID); !ok {
		return nil, errors.ErrNotParticipant
	}
	dto := job.ToJobDTO(j)
	return &dto, nil
}

// StartJob is the tasker's move.
func (uc *JobUsecase) StartJob(ctx context.Context, caller *user.Caller, jobID uuid.UUID) error {
	return uc.advance(ctx, caller, jobID, model.StatusInProgress, event.JobStarted, usermodel.RoleTasker)
}

func (uc *JobUsecase) CompleteJob(ctx context.Context, caller *user.Caller, jobID uuid.UUID) error {
	return uc.advance(ctx, caller, jobID, model.StatusCompleted, event.JobCompleted, "")
}

func (uc *JobUsecase) CancelJob(ctx context.Context, caller *user.Caller, jobID uuid.UUID) error {
	return uc.advance(ctx, caller, jobID, model.StatusCancelled, event.JobCancelled, "")
}

// advance moves the job to status to under a row lock and narrates it. An
// empty role lets either participant make the move.
func (uc *JobUsecase) advance(ctx context.Context, caller *user.Caller, jobID uuid.UUID, to model.Status, kind event.Kind, role usermodel.Role) error {
	if !caller.Resolved() {
		return errors.ErrUnauthorized
	}

	err := uc.tx.RunInTx(ctx, func(ctx context.Context) error {
		j, err := uc.repo.GetJobForUpdate(ctx, jobID)
		if err != nil {
			return err
		}
		callerRole, ok := j.RoleOf(caller.ID)
		if !ok {
			return errors.ErrNotParticipant
		}
		if role != "" && callerRole != role {
			return errors.ErrForbidden
		}
		if !model.CanTransition(j.Status, to) {
			return errors.ErrInvalidState
		}

		now := uc.now()
		var completedAt *time.Time
		if to == model.StatusCompleted {
			completedAt = &now
		}
		if err := uc.repo.UpdateStatus(ctx, j.ID, j.Status, to, completedAt, now); err != nil {
			return err
		}
		return uc.events.Emit(ctx, event.Event{
			Kind:           kind,
			ConversationID: j.ConversationID,
			ActorID:        caller.ID,
			JobID:          &j.ID,
			ProposalID:     &j.ProposalID,
			OccurredAt:     now,
		})
	})
	if err != nil {
		return uc.translate(err, "move job to "+string(to))
	}

	metrics.JobTransitions.WithLabelValues(string(to)).Inc()
	uc.logger.Info("job status changed", "job_id", jobID, "status", to, "actor_id", caller.ID)
	return nil
}

func (uc *JobUsecase) translate(err error, op string) error {
	switch {
	case errors.CodeOf(err) != errors.CodeUnknown:
		return err
	case pkgerrors.Is(err, repository.ErrJobNotFound):
		return errors.ErrJobNotFound
	case pkgerrors.Is(err, repository.ErrStatusConflict):
		return errors.ErrInvalidState
	}
	uc.logger.Error("job operation failed", "op", op, "err", err)
	return errors.Internal("failed to " + op)
}
