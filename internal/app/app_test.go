package app

import (
	"context"
	"log"
	"os"
	"sync"
	"testing"
	"time"

	"taskbridge/config"
	"taskbridge/internal/conversation"
	convmodel "taskbridge/internal/conversation/model"
	jobmodel "taskbridge/internal/job/model"
	"taskbridge/internal/proposal"
	proposalmodel "taskbridge/internal/proposal/model"
	"taskbridge/internal/review"
	"taskbridge/internal/store"
	"taskbridge/internal/store/storetest"
	"taskbridge/internal/user"
	appErrors "taskbridge/pkg/errors"
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
		log.Printf("skipping app tests: %v", err)
		os.Exit(0)
	}
	testDB = db

	code := m.Run()
	cleanup()
	os.Exit(code)
}

func newApp(t *testing.T) *App {
	t.Cleanup(func() {
		require.NoError(t, store.Truncate(context.Background(), testDB))
	})
	cfg := &config.Config{
		Marketplace: config.Marketplace{DefaultCategory: "general", ReviewWindowDays: 30, PreviewLength: 100},
	}
	return New(cfg, testDB, logger.Logger{})
}

func register(t *testing.T, a *App, username string) *user.Caller {
	dto, err := a.Users.Register(context.Background(), user.RegisterCommand{Username: username, DisplayName: username})
	require.NoError(t, err)
	caller, err := a.Users.ResolveCaller(context.Background(), dto.ID)
	require.NoError(t, err)
	return caller
}

func open(t *testing.T, a *App, seeker, provider *user.Caller) uuid.UUID {
	id, err := a.Conversations.OpenConversation(context.Background(), seeker, conversation.OpenConversationCommand{ProviderID: provider.ID})
	require.NoError(t, err)
	return id
}

var hourly = proposalmodel.Terms{
	Rate:      5000,
	RateType:  proposalmodel.RateHourly,
	StartTime: time.Date(2026, 2, 15, 10, 0, 0, 0, time.UTC),
}

func messagesOfKind(t *testing.T, a *App, caller *user.Caller, convID uuid.UUID, kind convmodel.MessageKind) []conversation.MessageDTO {
	msgs, err := a.Conversations.ListMessages(context.Background(), caller, conversation.ListMessagesQuery{ConversationID: convID, Limit: 100})
	require.NoError(t, err)
	var out []conversation.MessageDTO
	for _, m := range msgs {
		if m.Kind == kind {
			out = append(out, m)
		}
	}
	return out
}

func countJobs(t *testing.T) int {
	n, err := testDB.NewSelect().Model((*jobmodel.Job)(nil)).Count(context.Background())
	require.NoError(t, err)
	return n
}

func TestNegotiation_CounterThenDecline(t *testing.T) {
	a := newApp(t)
	ctx := context.Background()
	s := register(t, a, "seeker_s")
	p := register(t, a, "provider_p")
	convID := open(t, a, s, p)

	origID, err := a.Proposals.SendProposal(ctx, p, proposal.SendProposalCommand{ConversationID: convID, Terms: hourly})
	require.NoError(t, err)

	counterTerms := hourly
	counterTerms.Rate = 4000
	counterID, err := a.Proposals.CounterProposal(ctx, s, proposal.CounterProposalCommand{ProposalID: origID, Terms: counterTerms})
	require.NoError(t, err)

	orig, err := a.Proposals.GetProposal(ctx, s, origID)
	require.NoError(t, err)
	counter, err := a.Proposals.GetProposal(ctx, s, counterID)
	require.NoError(t, err)

	assert.Equal(t, proposalmodel.StatusCountered, orig.Status)
	require.NotNil(t, orig.CounterProposalID)
	assert.Equal(t, counterID, *orig.CounterProposalID)
	assert.Equal(t, proposalmodel.StatusPending, counter.Status)
	assert.Equal(t, s.ID, counter.SenderID)
	assert.Equal(t, p.ID, counter.ReceiverID)
	require.NotNil(t, counter.PreviousProposalID)
	assert.Equal(t, origID, *counter.PreviousProposalID)

	// the original is no longer actionable
	_, err = a.Proposals.AcceptProposal(ctx, s, origID)
	assert.ErrorIs(t, err, appErrors.ErrInvalidState)

	require.NoError(t, a.Proposals.DeclineProposal(ctx, p, counterID))
	counter, err = a.Proposals.GetProposal(ctx, p, counterID)
	require.NoError(t, err)
	assert.Equal(t, proposalmodel.StatusDeclined, counter.Status)

	assert.Zero(t, countJobs(t))
	system := messagesOfKind(t, a, s, convID, convmodel.KindSystem)
	require.Len(t, system, 2)
	assert.Len(t, messagesOfKind(t, a, s, convID, convmodel.KindProposal), 2)
}

func TestConversation_UnreadConservation(t *testing.T) {
	a := newApp(t)
	ctx := context.Background()
	s := register(t, a, "seeker_u")
	p := register(t, a, "provider_u")
	convID := open(t, a, s, p)

	const n, m = 4, 3
	send := func(caller *user.Caller, count int) {
		for i := 0; i < count; i++ {
			_, err := a.Conversations.SendMessage(ctx, caller, conversation.SendMessageCommand{ConversationID: convID, Content: "hello"})
			require.NoError(t, err)
		}
	}
	send(s, n)
	send(p, m)

	unread := func(caller *user.Caller) int64 {
		dto, err := a.Conversations.GetConversation(ctx, caller, convID)
		require.NoError(t, err)
		return dto.Unread
	}
	assert.EqualValues(t, n, unread(p))
	assert.EqualValues(t, m, unread(s))

	require.NoError(t, a.Conversations.MarkRead(ctx, p, convID))
	assert.Zero(t, unread(p))
	assert.EqualValues(t, m, unread(s))

	t.Run("system narration does not count as unread", func(t *testing.T) {
		id, err := a.Proposals.SendProposal(ctx, p, proposal.SendProposalCommand{ConversationID: convID, Terms: hourly})
		require.NoError(t, err)
		assert.EqualValues(t, m+1, unread(s))

		require.NoError(t, a.Proposals.DeclineProposal(ctx, s, id))
		assert.EqualValues(t, m+1, unread(s))
		assert.Zero(t, unread(p))

		dto, err := a.Conversations.GetConversation(ctx, p, convID)
		require.NoError(t, err)
		assert.Equal(t, "Proposal declined.", dto.LastMessagePreview)
	})
}

func TestConversation_Duplicate(t *testing.T) {
	a := newApp(t)
	ctx := context.Background()
	s := register(t, a, "seeker_d")
	p := register(t, a, "provider_d")
	open(t, a, s, p)

	_, err := a.Conversations.OpenConversation(ctx, s, conversation.OpenConversationCommand{ProviderID: p.ID})
	assert.ErrorIs(t, err, appErrors.ErrDuplicateConversation)
	_, err = a.Conversations.OpenConversation(ctx, p, conversation.OpenConversationCommand{ProviderID: s.ID})
	assert.ErrorIs(t, err, appErrors.ErrDuplicateConversation)

	_, err = a.Conversations.OpenConversation(ctx, s, conversation.OpenConversationCommand{ProviderID: s.ID})
	assert.ErrorIs(t, err, appErrors.ErrSelfConversation)

	convs, err := a.Conversations.ListConversations(ctx, s)
	require.NoError(t, err)
	assert.Len(t, convs, 1)
}

func TestProposal_ConcurrentAcceptsMaterializeOnce(t *testing.T) {
	a := newApp(t)
	ctx := context.Background()
	s := register(t, a, "seeker_c")
	p := register(t, a, "provider_c")
	convID := open(t, a, s, p)

	id, err := a.Proposals.SendProposal(ctx, p, proposal.SendProposalCommand{ConversationID: convID, Terms: hourly})
	require.NoError(t, err)

	const attempts = 6
	var (
		wg     sync.WaitGroup
		mu     sync.Mutex
		jobIDs []uuid.UUID
	)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			jobID, err := a.Proposals.AcceptProposal(ctx, s, id)
			if err != nil {
				assert.ErrorIs(t, err, appErrors.ErrInvalidState)
				return
			}
			mu.Lock()
			jobIDs = append(jobIDs, jobID)
			mu.Unlock()
		}()
	}
	wg.Wait()

	require.Len(t, jobIDs, 1)
	assert.Equal(t, 1, countJobs(t))

	j, err := a.Jobs.GetJob(ctx, s, jobIDs[0])
	require.NoError(t, err)
	assert.Equal(t, hourly.Rate, j.Rate)
	assert.Equal(t, s.ID, j.SeekerID)
	assert.Equal(t, p.ID, j.TaskerID)

	conv, err := a.Conversations.GetConversation(ctx, s, convID)
	require.NoError(t, err)
	require.NotNil(t, conv.JobID)
	assert.Equal(t, jobIDs[0], *conv.JobID)
}

func TestReview_RatingAggregation(t *testing.T) {
	a := newApp(t)
	ctx := context.Background()
	s := register(t, a, "seeker_r")
	p := register(t, a, "provider_r")
	convID := open(t, a, s, p)

	for _, rating := range []float64{4, 5, 3} {
		proposalID, err := a.Proposals.SendProposal(ctx, p, proposal.SendProposalCommand{ConversationID: convID, Terms: hourly})
		require.NoError(t, err)
		jobID, err := a.Proposals.AcceptProposal(ctx, s, proposalID)
		require.NoError(t, err)

		_, err = a.Reviews.SubmitReview(ctx, s, review.SubmitReviewCommand{JobID: jobID, Rating: rating, Text: "too early to tell"})
		assert.ErrorIs(t, err, appErrors.ErrJobNotCompleted)

		require.NoError(t, a.Jobs.StartJob(ctx, p, jobID))
		require.NoError(t, a.Jobs.CompleteJob(ctx, s, jobID))

		_, err = a.Reviews.SubmitReview(ctx, s, review.SubmitReviewCommand{JobID: jobID, Rating: rating, Text: "reliable and friendly"})
		require.NoError(t, err)

		_, err = a.Reviews.SubmitReview(ctx, s, review.SubmitReviewCommand{JobID: jobID, Rating: rating, Text: "reliable and friendly"})
		assert.ErrorIs(t, err, appErrors.ErrAlreadyReviewed)

		// blind until the tasker reviews back
		visible, err := a.Reviews.ListJobReviews(ctx, p, jobID)
		require.NoError(t, err)
		assert.Empty(t, visible)
	}

	profile, err := a.Users.GetUserProfile(ctx, p.ID)
	require.NoError(t, err)
	assert.InDelta(t, 4.0, profile.AsTasker.Rating, 1e-9)
	assert.EqualValues(t, 3, profile.AsTasker.Count)
	assert.Zero(t, profile.AsSeeker.Count)
}
