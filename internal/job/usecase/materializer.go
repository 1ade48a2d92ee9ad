package usecase

import (
	"context"
	"time"

	"taskbridge/internal/conversation"
	"taskbridge/internal/job"
	"taskbridge/internal/job/model"
	"taskbridge/internal/job/repository"
	proposal "taskbridge/internal/proposal/model"
	"taskbridge/internal/store"
	apperrors "taskbridge/pkg/errors"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var ErrProposalNotAccepted = errors.New("job materializer: proposal is not accepted")

// Materializer creates the job for an accepted proposal and binds it to the
// proposal's conversation. It joins the caller's transaction.
type Materializer struct {
	jobs          job.JobRepository
	conversations conversation.ConversationRepository
	categories    job.CategoryResolver
	tx            store.Transactor
	now           func() time.Time
}

func NewMaterializer(
	jobs job.JobRepository,
	conversations conversation.ConversationRepository,
	categories job.CategoryResolver,
	tx store.Transactor,
) *Materializer {
	return &Materializer{
		jobs:          jobs,
		conversations: conversations,
		categories:    categories,
		tx:            tx,
		now:           time.Now,
	}
}

func (m *Materializer) CreateJob(ctx context.Context, p *proposal.Proposal) (uuid.UUID, error) {
	if p.Status != proposal.StatusAccepted {
		return uuid.Nil, errors.Wrapf(ErrProposalNotAccepted, "proposal %s is %s", p.ID, p.Status)
	}

	var j *model.Job
	err := m.tx.RunInTx(ctx, func(ctx context.Context) error {
		conv, err := m.conversations.GetConversationByID(ctx, p.ConversationID)
		if err != nil {
			return err
		}
		category, err := m.categories.ResolveCategory(ctx, conv)
		if err != nil {
			return errors.Wrap(err, "materializer.ResolveCategory")
		}

		now := m.now()
		j = &model.Job{
			ID:             uuid.New(),
			SeekerID:       conv.SeekerID,
			TaskerID:       conv.ProviderID,
			ProposalID:     p.ID,
			ConversationID: conv.ID,
			CategoryID:     category,
			Description:    p.Notes,
			Rate:           p.Rate,
			RateType:       p.RateType,
			StartTime:      p.StartTime,
			Status:         model.StatusPending,
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		if err := m.jobs.CreateJob(ctx, j); err != nil {
			if errors.Is(err, repository.ErrJobExists) {
				return apperrors.ErrInvalidState
			}
			return err
		}
		return m.conversations.SetJob(ctx, conv.ID, j.ID)
	})
	if err != nil {
		return uuid.Nil, err
	}
	return j.ID, nil
}
