package usecase

import (
	"context"
	"testing"
	"time"

	convmocks "taskbridge/internal/conversation/mocks"
	convmodel "taskbridge/internal/conversation/model"
	"taskbridge/internal/event"
	eventmocks "taskbridge/internal/event/mocks"
	"taskbridge/internal/proposal"
	"taskbridge/internal/proposal/mocks"
	"taskbridge/internal/proposal/model"
	"taskbridge/internal/proposal/repository"
	storemocks "taskbridge/internal/store/mocks"
	"taskbridge/internal/user"
	appErrors "taskbridge/pkg/errors"
	"taskbridge/pkg/logger"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 2, 10, 9, 0, 0, 0, time.UTC)

var hourly50 = model.Terms{
	Rate:      5000,
	RateType:  model.RateHourly,
	StartTime: time.Date(2026, 2, 15, 10, 0, 0, 0, time.UTC),
}

type fixture struct {
	proposals     *mocks.MockProposalRepository
	jobs          *mocks.MockJobMaterializer
	conversations *convmocks.MockConversationRepository
	ledger        *convmocks.MockLedger
	events        *eventmocks.MockEmitter
	uc            *ProposalUsecase
}

func newFixture(t *testing.T) fixture {
	ctrl := gomock.NewController(t)
	f := fixture{
		proposals:     mocks.NewMockProposalRepository(ctrl),
		jobs:          mocks.NewMockJobMaterializer(ctrl),
		conversations: convmocks.NewMockConversationRepository(ctrl),
		ledger:        convmocks.NewMockLedger(ctrl),
		events:        eventmocks.NewMockEmitter(ctrl),
	}
	tx := storemocks.NewMockTransactor(ctrl)
	tx.EXPECT().RunInTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error { return fn(ctx) },
	).AnyTimes()

	f.uc = NewProposalUsecase(f.proposals, f.conversations, f.ledger, f.jobs, f.events, tx, logger.Logger{})
	f.uc.now = func() time.Time { return fixedNow }
	return f
}

func pendingProposal(sender, receiver uuid.UUID) *model.Proposal {
	return &model.Proposal{
		ID:             uuid.New(),
		ConversationID: uuid.New(),
		SenderID:       sender,
		ReceiverID:     receiver,
		Rate:           hourly50.Rate,
		RateType:       hourly50.RateType,
		StartTime:      hourly50.StartTime,
		Status:         model.StatusPending,
	}
}

func TestProposalUsecase_SendProposal(t *testing.T) {
	seekerID, providerID := uuid.New(), uuid.New()
	conv := &convmodel.Conversation{ID: uuid.New(), SeekerID: seekerID, ProviderID: providerID}
	provider := &user.Caller{ID: providerID}

	t.Run("happy path - receiver is the counterpart", func(t *testing.T) {
		f := newFixture(t)
		f.conversations.EXPECT().GetConversationByID(gomock.Any(), conv.ID).Return(conv, nil)

		var created *model.Proposal
		f.proposals.EXPECT().CreateProposal(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p *model.Proposal) error { created = p; return nil },
		)
		f.ledger.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, m *convmodel.Message) error {
				assert.Equal(t, convmodel.KindProposal, m.Kind)
				assert.Equal(t, providerID, m.SenderID)
				require.NotNil(t, m.ProposalID)
				assert.Equal(t, created.ID, *m.ProposalID)
				assert.Equal(t, "Proposal: $50.00/hr starting Feb 15, 2026", m.Content)
				return nil
			},
		)

		id, err := f.uc.SendProposal(context.Background(), provider, proposal.SendProposalCommand{ConversationID: conv.ID, Terms: hourly50})
		require.NoError(t, err)
		assert.Equal(t, created.ID, id)
		assert.Equal(t, seekerID, created.ReceiverID)
		assert.Equal(t, model.StatusPending, created.Status)
	})

	t.Run("sad path - unresolved caller", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.uc.SendProposal(context.Background(), &user.Caller{}, proposal.SendProposalCommand{ConversationID: conv.ID, Terms: hourly50})
		assert.ErrorIs(t, err, appErrors.ErrUnauthorized)
	})

	t.Run("sad path - outsider", func(t *testing.T) {
		f := newFixture(t)
		f.conversations.EXPECT().GetConversationByID(gomock.Any(), conv.ID).Return(conv, nil)
		_, err := f.uc.SendProposal(context.Background(), &user.Caller{ID: uuid.New()}, proposal.SendProposalCommand{ConversationID: conv.ID, Terms: hourly50})
		assert.ErrorIs(t, err, appErrors.ErrNotParticipant)
	})

	t.Run("sad path - invalid terms", func(t *testing.T) {
		cases := []struct {
			name  string
			terms model.Terms
			want  error
		}{
			{"zero rate", model.Terms{RateType: model.RateFlat, StartTime: hourly50.StartTime}, appErrors.ErrInvalidRate},
			{"unknown rate type", model.Terms{Rate: 1, RateType: "daily", StartTime: hourly50.StartTime}, appErrors.ErrInvalidRateType},
			{"missing start", model.Terms{Rate: 1, RateType: model.RateFlat}, appErrors.ErrInvalidStartTime},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				f := newFixture(t)
				f.conversations.EXPECT().GetConversationByID(gomock.Any(), conv.ID).Return(conv, nil)
				_, err := f.uc.SendProposal(context.Background(), provider, proposal.SendProposalCommand{ConversationID: conv.ID, Terms: tc.terms})
				assert.ErrorIs(t, err, tc.want)
			})
		}
	})
}

func TestProposalUsecase_AcceptProposal(t *testing.T) {
	seekerID, providerID := uuid.New(), uuid.New()
	seeker := &user.Caller{ID: seekerID}

	t.Run("happy path - flips status, creates job, narrates", func(t *testing.T) {
		f := newFixture(t)
		p := pendingProposal(providerID, seekerID)
		jobID := uuid.New()

		gomock.InOrder(
			f.proposals.EXPECT().GetProposalForUpdate(gomock.Any(), p.ID).Return(p, nil),
			f.proposals.EXPECT().UpdateStatus(gomock.Any(), p.ID, model.StatusPending, model.StatusAccepted, fixedNow).Return(nil),
			f.jobs.EXPECT().CreateJob(gomock.Any(), p).DoAndReturn(
				func(_ context.Context, got *model.Proposal) (uuid.UUID, error) {
					assert.Equal(t, model.StatusAccepted, got.Status)
					return jobID, nil
				},
			),
			f.events.EXPECT().Emit(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, e event.Event) error {
					assert.Equal(t, event.ProposalAccepted, e.Kind)
					assert.Equal(t, p.ConversationID, e.ConversationID)
					require.NotNil(t, e.JobID)
					assert.Equal(t, jobID, *e.JobID)
					return nil
				},
			),
		)

		got, err := f.uc.AcceptProposal(context.Background(), seeker, p.ID)
		require.NoError(t, err)
		assert.Equal(t, jobID, got)
	})

	t.Run("sad path - sender cannot accept own proposal", func(t *testing.T) {
		f := newFixture(t)
		p := pendingProposal(providerID, seekerID)
		f.proposals.EXPECT().GetProposalForUpdate(gomock.Any(), p.ID).Return(p, nil)

		_, err := f.uc.AcceptProposal(context.Background(), &user.Caller{ID: providerID}, p.ID)
		assert.ErrorIs(t, err, appErrors.ErrForbidden)
	})

	t.Run("sad path - second accept sees a terminal status", func(t *testing.T) {
		f := newFixture(t)
		p := pendingProposal(providerID, seekerID)
		p.Status = model.StatusAccepted
		f.proposals.EXPECT().GetProposalForUpdate(gomock.Any(), p.ID).Return(p, nil)

		_, err := f.uc.AcceptProposal(context.Background(), seeker, p.ID)
		assert.ErrorIs(t, err, appErrors.ErrInvalidState)
	})

	t.Run("sad path - lost compare-and-set is an invalid state", func(t *testing.T) {
		f := newFixture(t)
		p := pendingProposal(providerID, seekerID)
		f.proposals.EXPECT().GetProposalForUpdate(gomock.Any(), p.ID).Return(p, nil)
		f.proposals.EXPECT().UpdateStatus(gomock.Any(), p.ID, model.StatusPending, model.StatusAccepted, fixedNow).
			Return(repository.ErrStatusConflict)

		_, err := f.uc.AcceptProposal(context.Background(), seeker, p.ID)
		assert.ErrorIs(t, err, appErrors.ErrInvalidState)
	})

	t.Run("sad path - unknown proposal", func(t *testing.T) {
		f := newFixture(t)
		id := uuid.New()
		f.proposals.EXPECT().GetProposalForUpdate(gomock.Any(), id).Return(nil, repository.ErrProposalNotFound)

		_, err := f.uc.AcceptProposal(context.Background(), seeker, id)
		assert.ErrorIs(t, err, appErrors.ErrProposalNotFound)
	})
}

func TestProposalUsecase_DeclineProposal(t *testing.T) {
	seekerID, providerID := uuid.New(), uuid.New()

	t.Run("happy path - declined and narrated, no job", func(t *testing.T) {
		f := newFixture(t)
		p := pendingProposal(providerID, seekerID)
		f.proposals.EXPECT().GetProposalForUpdate(gomock.Any(), p.ID).Return(p, nil)
		f.proposals.EXPECT().UpdateStatus(gomock.Any(), p.ID, model.StatusPending, model.StatusDeclined, fixedNow).Return(nil)
		f.events.EXPECT().Emit(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e event.Event) error {
				assert.Equal(t, event.ProposalDeclined, e.Kind)
				assert.Nil(t, e.JobID)
				return nil
			},
		)

		require.NoError(t, f.uc.DeclineProposal(context.Background(), &user.Caller{ID: seekerID}, p.ID))
	})

	t.Run("sad path - outsider is forbidden", func(t *testing.T) {
		f := newFixture(t)
		p := pendingProposal(providerID, seekerID)
		f.proposals.EXPECT().GetProposalForUpdate(gomock.Any(), p.ID).Return(p, nil)

		err := f.uc.DeclineProposal(context.Background(), &user.Caller{ID: uuid.New()}, p.ID)
		assert.ErrorIs(t, err, appErrors.ErrForbidden)
	})
}

func TestProposalUsecase_CounterProposal(t *testing.T) {
	seekerID, providerID := uuid.New(), uuid.New()
	seeker := &user.Caller{ID: seekerID}
	hourly40 := hourly50
	hourly40.Rate = 4000

	t.Run("happy path - links both directions and swaps roles", func(t *testing.T) {
		f := newFixture(t)
		orig := pendingProposal(providerID, seekerID)

		var counter *model.Proposal
		f.proposals.EXPECT().GetProposalForUpdate(gomock.Any(), orig.ID).Return(orig, nil)
		f.proposals.EXPECT().CreateProposal(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p *model.Proposal) error { counter = p; return nil },
		)
		f.proposals.EXPECT().MarkCountered(gomock.Any(), orig.ID, gomock.Any(), fixedNow).DoAndReturn(
			func(_ context.Context, _, counterID uuid.UUID, _ time.Time) error {
				assert.Equal(t, counter.ID, counterID)
				return nil
			},
		)
		f.ledger.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, m *convmodel.Message) error {
				assert.Equal(t, "Counter-offer: $40.00/hr starting Feb 15, 2026", m.Content)
				assert.Equal(t, seekerID, m.SenderID)
				return nil
			},
		)
		f.events.EXPECT().Emit(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e event.Event) error {
				assert.Equal(t, event.ProposalCountered, e.Kind)
				return nil
			},
		)

		id, err := f.uc.CounterProposal(context.Background(), seeker, proposal.CounterProposalCommand{ProposalID: orig.ID, Terms: hourly40})
		require.NoError(t, err)

		assert.Equal(t, counter.ID, id)
		assert.Equal(t, seekerID, counter.SenderID)
		assert.Equal(t, providerID, counter.ReceiverID)
		assert.Equal(t, model.StatusPending, counter.Status)
		require.NotNil(t, counter.PreviousProposalID)
		assert.Equal(t, orig.ID, *counter.PreviousProposalID)

		assert.Equal(t, model.StatusCountered, orig.Status)
		require.NotNil(t, orig.CounterProposalID)
		assert.Equal(t, counter.ID, *orig.CounterProposalID)
	})

	t.Run("sad path - countered proposal cannot be countered again", func(t *testing.T) {
		f := newFixture(t)
		orig := pendingProposal(providerID, seekerID)
		orig.Status = model.StatusCountered
		f.proposals.EXPECT().GetProposalForUpdate(gomock.Any(), orig.ID).Return(orig, nil)

		_, err := f.uc.CounterProposal(context.Background(), seeker, proposal.CounterProposalCommand{ProposalID: orig.ID, Terms: hourly40})
		assert.ErrorIs(t, err, appErrors.ErrInvalidState)
	})

	t.Run("sad path - terms are validated before any lookup", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.uc.CounterProposal(context.Background(), seeker, proposal.CounterProposalCommand{ProposalID: uuid.New()})
		assert.ErrorIs(t, err, appErrors.ErrInvalidRate)
	})
}

func TestProposalUsecase_ExpireProposal(t *testing.T) {
	t.Run("happy path - pending proposal expires with narration", func(t *testing.T) {
		f := newFixture(t)
		p := pendingProposal(uuid.New(), uuid.New())
		f.proposals.EXPECT().GetProposalForUpdate(gomock.Any(), p.ID).Return(p, nil)
		f.proposals.EXPECT().UpdateStatus(gomock.Any(), p.ID, model.StatusPending, model.StatusExpired, fixedNow).Return(nil)
		f.events.EXPECT().Emit(gomock.Any(), gomock.Any()).Return(nil)

		require.NoError(t, f.uc.ExpireProposal(context.Background(), p.ID))
	})

	t.Run("sad path - accepted proposal does not expire", func(t *testing.T) {
		f := newFixture(t)
		p := pendingProposal(uuid.New(), uuid.New())
		p.Status = model.StatusAccepted
		f.proposals.EXPECT().GetProposalForUpdate(gomock.Any(), p.ID).Return(p, nil)

		assert.ErrorIs(t, f.uc.ExpireProposal(context.Background(), p.ID), appErrors.ErrInvalidState)
	})
}

func TestProposalUsecase_GetProposal(t *testing.T) {
	f := newFixture(t)
	p := pendingProposal(uuid.New(), uuid.New())
	f.proposals.EXPECT().GetProposalByID(gomock.Any(), p.ID).Return(p, nil).Times(2)

	dto, err := f.uc.GetProposal(context.Background(), &user.Caller{ID: p.ReceiverID}, p.ID)
	require.NoError(t, err)
	assert.Equal(t, p.ID, dto.ID)

	_, err = f.uc.GetProposal(context.Background(), &user.Caller{ID: uuid.New()}, p.ID)
	assert.ErrorIs(t, err, appErrors.ErrNotParticipant)
}

func TestDescribe(t *testing.T) {
	p := &model.Proposal{Rate: 125050, RateType: model.RateFlat, StartTime: hourly50.StartTime}
	assert.Equal(t, "Proposal: $1,250.50 flat starting Feb 15, 2026", Describe(p, false))
}
