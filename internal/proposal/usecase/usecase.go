package usecase

import (
	"context"
	"time"

	"taskbridge/internal/conversation"
	convmodel "taskbridge/internal/conversation/model"
	convrepo "taskbridge/internal/conversation/repository"
	"taskbridge/internal/event"
	"taskbridge/internal/metrics"
	"taskbridge/internal/proposal"
	"taskbridge/internal/proposal/model"
	"taskbridge/internal/proposal/repository"
	"taskbridge/internal/store"
	"taskbridge/internal/user"
	"taskbridge/pkg/errors"
	"taskbridge/pkg/logger"
	"taskbridge/pkg/utils"

	"github.com/google/uuid"
	pkgerrors "github.com/pkg/errors"
)

type ProposalUsecase struct {
	proposals     proposal.ProposalRepository
	conversations conversation.ConversationRepository
	ledger        conversation.Ledger
	jobs          proposal.JobMaterializer
	events        event.Emitter
	tx            store.Transactor
	logger        logger.Logger
	now           func() time.Time
}

func NewProposalUsecase(
	proposals proposal.ProposalRepository,
	conversations conversation.ConversationRepository,
	ledger conversation.Ledger,
	jobs proposal.JobMaterializer,
	events event.Emitter,
	tx store.Transactor,
	logger logger.Logger,
) *ProposalUsecase {
	return &ProposalUsecase{
		proposals:     proposals,
		conversations: conversations,
		ledger:        ledger,
		jobs:          jobs,
		events:        events,
		tx:            tx,
		logger:        logger,
		now:           time.Now,
	}
}

func (uc *ProposalUsecase) SendProposal(ctx context.Context, caller *user.Caller, cmd proposal.SendProposalCommand) (uuid.UUID, error) {
	if !caller.Resolved() {
		return uuid.Nil, errors.ErrUnauthorized
	}
	conv, err := uc.conversations.GetConversationByID(ctx, cmd.ConversationID)
	if err != nil {
		return uuid.Nil, uc.translate(err, "send proposal")
	}
	if err := validateTerms(cmd.Terms); err != nil {
		return uuid.Nil, err
	}
	receiver, ok := conv.Counterpart(caller.ID)
	if !ok {
		return uuid.Nil, errors.ErrNotParticipant
	}

	now := uc.now()
	p := newProposal(conv.ID, caller.ID, receiver, cmd.Terms, now)

	err = uc.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := uc.proposals.CreateProposal(ctx, p); err != nil {
			return err
		}
		return uc.ledger.Append(ctx, proposalMessage(p, false))
	})
	if err != nil {
		return uuid.Nil, uc.translate(err, "send proposal")
	}

	metrics.MessagesAppended.WithLabelValues(string(convmodel.KindProposal)).Inc()
	uc.logger.Info("proposal sent", "proposal_id", p.ID, "conversation_id", conv.ID, "sender_id", caller.ID)
	return p.ID, nil
}

func (uc *ProposalUsecase) AcceptProposal(ctx context.Context, caller *user.Caller, proposalID uuid.UUID) (uuid.UUID, error) {
	if !caller.Resolved() {
		return uuid.Nil, errors.ErrUnauthorized
	}

	var jobID uuid.UUID
	err := uc.tx.RunInTx(ctx, func(ctx context.Context) error {
		p, err := uc.lockForReceiver(ctx, caller, proposalID)
		if err != nil {
			return err
		}
		if err := uc.transition(ctx, p, model.StatusAccepted); err != nil {
			return err
		}
		jobID, err = uc.jobs.CreateJob(ctx, p)
		if err != nil {
			return err
		}
		return uc.events.Emit(ctx, event.Event{
			Kind:           event.ProposalAccepted,
			ConversationID: p.ConversationID,
			ActorID:        caller.ID,
			ProposalID:     &p.ID,
			JobID:          &jobID,
			OccurredAt:     p.UpdatedAt,
		})
	})
	if err != nil {
		return uuid.Nil, uc.translate(err, "accept proposal")
	}

	metrics.ProposalTransitions.WithLabelValues(string(model.StatusAccepted)).Inc()
	metrics.JobsCreated.Inc()
	metrics.MessagesAppended.WithLabelValues(string(convmodel.KindSystem)).Inc()
	uc.logger.Info("proposal accepted", "proposal_id", proposalID, "job_id", jobID, "actor_id", caller.ID)
	return jobID, nil
}

func (uc *ProposalUsecase) DeclineProposal(ctx context.Context, caller *user.Caller, proposalID uuid.UUID) error {
	if !caller.Resolved() {
		return errors.ErrUnauthorized
	}

	err := uc.tx.RunInTx(ctx, func(ctx context.Context) error {
		p, err := uc.lockForReceiver(ctx, caller, proposalID)
		if err != nil {
			return err
		}
		if err := uc.transition(ctx, p, model.StatusDeclined); err != nil {
			return err
		}
		return uc.events.Emit(ctx, event.Event{
			Kind:           event.ProposalDeclined,
			ConversationID: p.ConversationID,
			ActorID:        caller.ID,
			ProposalID:     &p.ID,
			OccurredAt:     p.UpdatedAt,
		})
	})
	if err != nil {
		return uc.translate(err, "decline proposal")
	}

	metrics.ProposalTransitions.WithLabelValues(string(model.StatusDeclined)).Inc()
	metrics.MessagesAppended.WithLabelValues(string(convmodel.KindSystem)).Inc()
	return nil
}

func (uc *ProposalUsecase) CounterProposal(ctx context.Context, caller *user.Caller, cmd proposal.CounterProposalCommand) (uuid.UUID, error) {
	if !caller.Resolved() {
		return uuid.Nil, errors.ErrUnauthorized
	}
	if err := validateTerms(cmd.Terms); err != nil {
		return uuid.Nil, err
	}

	var counter *model.Proposal
	err := uc.tx.RunInTx(ctx, func(ctx context.Context) error {
		orig, err := uc.lockForReceiver(ctx, caller, cmd.ProposalID)
		if err != nil {
			return err
		}

		now := uc.now()
		// roles swap: the counter goes back to whoever sent the original
		counter = newProposal(orig.ConversationID, caller.ID, orig.SenderID, cmd.Terms, now)
		counter.PreviousProposalID = &orig.ID

		if err := orig.Transition(model.StatusCountered, now); err != nil {
			return errors.ErrInvalidState
		}
		orig.CounterProposalID = &counter.ID

		if err := uc.proposals.CreateProposal(ctx, counter); err != nil {
			return err
		}
		if err := uc.proposals.MarkCountered(ctx, orig.ID, counter.ID, now); err != nil {
			return err
		}
		if err := uc.ledger.Append(ctx, proposalMessage(counter, true)); err != nil {
			return err
		}
		return uc.events.Emit(ctx, event.Event{
			Kind:           event.ProposalCountered,
			ConversationID: orig.ConversationID,
			ActorID:        caller.ID,
			ProposalID:     &counter.ID,
			OccurredAt:     now,
		})
	})
	if err != nil {
		return uuid.Nil, uc.translate(err, "counter proposal")
	}

	metrics.ProposalTransitions.WithLabelValues(string(model.StatusCountered)).Inc()
	metrics.MessagesAppended.WithLabelValues(string(convmodel.KindProposal)).Inc()
	metrics.MessagesAppended.WithLabelValues(string(convmodel.KindSystem)).Inc()
	uc.logger.Info("proposal countered", "proposal_id", cmd.ProposalID, "counter_id", counter.ID, "actor_id", caller.ID)
	return counter.ID, nil
}

func (uc *ProposalUsecase) ExpireProposal(ctx context.Context, proposalID uuid.UUID) error {
	err := uc.tx.RunInTx(ctx, func(ctx context.Context) error {
		p, err := uc.proposals.GetProposalForUpdate(ctx, proposalID)
		if err != nil {
			return err
		}
		if err := uc.transition(ctx, p, model.StatusExpired); err != nil {
			return err
		}
		return uc.events.Emit(ctx, event.Event{
			Kind:           event.ProposalExpired,
			ConversationID: p.ConversationID,
			ProposalID:     &p.ID,
			OccurredAt:     p.UpdatedAt,
		})
	})
	if err != nil {
		return uc.translate(err, "expire proposal")
	}

	metrics.ProposalTransitions.WithLabelValues(string(model.StatusExpired)).Inc()
	metrics.MessagesAppended.WithLabelValues(string(convmodel.KindSystem)).Inc()
	return nil
}

func (uc *ProposalUsecase) GetProposal(ctx context.Context, caller *user.Caller, proposalID uuid.UUID) (*proposal.ProposalDTO, error) {
	if !caller.Resolved() {
		return nil, errors.ErrUnauthorized
	}
	p, err := uc.proposals.GetProposalByID(ctx, proposalID)
	if err != nil {
		return nil, uc.translate(err, "get proposal")
	}
	if caller.ID != p.SenderID && caller.ID != p.ReceiverID {
		return nil, errors.ErrNotParticipant
	}
	dto := proposal.ToProposalDTO(p)
	return &dto, nil
}

func (uc *ProposalUsecase) ListProposals(ctx context.Context, caller *user.Caller, conversationID uuid.UUID) ([]proposal.ProposalDTO, error) {
	if !caller.Resolved() {
		return nil, errors.ErrUnauthorized
	}
	conv, err := uc.conversations.GetConversationByID(ctx, conversationID)
	if err != nil {
		return nil, uc.translate(err, "list proposals")
	}
	if !conv.IsParticipant(caller.ID) {
		return nil, errors.ErrNotParticipant
	}
	ps, err := uc.proposals.ListProposalsByConversation(ctx, conv.ID)
	if err != nil {
		return nil, uc.translate(err, "list proposals")
	}
	out := make([]proposal.ProposalDTO, 0, len(ps))
	for i := range ps {
		out = append(out, proposal.ToProposalDTO(&ps[i]))
	}
	return out, nil
}

// lockForReceiver loads the proposal under a row lock and checks that the
// caller may respond to it while it is still pending.
func (uc *ProposalUsecase) lockForReceiver(ctx context.Context, caller *user.Caller, id uuid.UUID) (*model.Proposal, error) {
	p, err := uc.proposals.GetProposalForUpdate(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.ReceiverID != caller.ID {
		return nil, errors.ErrForbidden
	}
	if p.Status != model.StatusPending {
		return nil, errors.ErrInvalidState
	}
	return p, nil
}

func (uc *ProposalUsecase) transition(ctx context.Context, p *model.Proposal, to model.Status) error {
	from := p.Status
	if err := p.Transition(to, uc.now()); err != nil {
		return errors.ErrInvalidState
	}
	return uc.proposals.UpdateStatus(ctx, p.ID, from, to, p.UpdatedAt)
}

func (uc *ProposalUsecase) translate(err error, op string) error {
	switch {
	case errors.CodeOf(err) != errors.CodeUnknown:
		return err
	case pkgerrors.Is(err, repository.ErrProposalNotFound):
		return errors.ErrProposalNotFound
	case pkgerrors.Is(err, repository.ErrStatusConflict),
		pkgerrors.Is(err, model.ErrInvalidTransition):
		return errors.ErrInvalidState
	case pkgerrors.Is(err, convrepo.ErrConversationNotFound):
		return errors.ErrConversationNotFound
	case pkgerrors.Is(err, conversation.ErrSenderNotParticipant):
		return errors.ErrNotParticipant
	}
	uc.logger.Error("proposal operation failed", "op", op, "err", err)
	return errors.Internal("failed to " + op)
}

func validateTerms(t model.Terms) error {
	switch {
	case t.Rate <= 0:
		return errors.ErrInvalidRate
	case !t.RateType.Valid():
		return errors.ErrInvalidRateType
	case t.StartTime.IsZero():
		return errors.ErrInvalidStartTime
	case utils.RuneLen(t.Notes) > proposal.MaxNotesLength:
		return errors.ErrNotesTooLong
	}
	return nil
}

func newProposal(conversationID, sender, receiver uuid.UUID, t model.Terms, now time.Time) *model.Proposal {
	return &model.Proposal{
		ID:             uuid.New(),
		ConversationID: conversationID,
		SenderID:       sender,
		ReceiverID:     receiver,
		Rate:           t.Rate,
		RateType:       t.RateType,
		StartTime:      t.StartTime,
		Notes:          t.Notes,
		Status:         model.StatusPending,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func proposalMessage(p *model.Proposal, counter bool) *convmodel.Message {
	return &convmodel.Message{
		ConversationID: p.ConversationID,
		SenderID:       p.SenderID,
		Kind:           convmodel.KindProposal,
		Content:        Describe(p, counter),
		ProposalID:     &p.ID,
	}
}
