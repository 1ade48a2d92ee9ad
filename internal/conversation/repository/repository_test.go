package repository

import (
	"context"
	"log"
	"os"
	"sync"
	"testing"
	"time"

	"taskbridge/internal/conversation/model"
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

func truncate(t *testing.T) {
	t.Cleanup(func() {
		require.NoError(t, store.Truncate(context.Background(), testDB))
	})
}

func newConversation(t *testing.T, repo *ConversationRepository) *model.Conversation {
	c := &model.Conversation{ID: uuid.New(), SeekerID: uuid.New(), ProviderID: uuid.New()}
	require.NoError(t, repo.CreateConversation(context.Background(), c))
	return c
}

func Test_CreateConversation_UniquePerUnorderedPair(t *testing.T) {
	truncate(t)
	repo := NewConversationRepository(testDB, logger.Logger{})
	c := newConversation(t, repo)

	reversed := &model.Conversation{ID: uuid.New(), SeekerID: c.ProviderID, ProviderID: c.SeekerID}
	err := repo.CreateConversation(context.Background(), reversed)
	assert.ErrorIs(t, err, ErrConversationExists)

	got, err := repo.GetConversationByPair(context.Background(), c.ProviderID, c.SeekerID)
	require.NoError(t, err)
	assert.Equal(t, c.ID, got.ID)

	_, err = repo.GetConversationByPair(context.Background(), c.SeekerID, uuid.New())
	assert.ErrorIs(t, err, ErrConversationNotFound)
}

func Test_GetConversationByID_NotFound(t *testing.T) {
	repo := NewConversationRepository(testDB, logger.Logger{})
	_, err := repo.GetConversationByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrConversationNotFound)
}

func Test_RecordDelivery_And_MarkRead(t *testing.T) {
	truncate(t)
	ctx := context.Background()
	repo := NewConversationRepository(testDB, logger.Logger{})
	c := newConversation(t, repo)

	provider := model.SideProvider
	at := time.Now().UTC().Truncate(time.Millisecond)
	for seq := int64(1); seq <= 3; seq++ {
		require.NoError(t, repo.RecordDelivery(ctx, model.Delivery{
			ConversationID: c.ID, Seq: seq, SenderID: c.SeekerID, Preview: "hi", At: at, UnreadSide: &provider,
		}))
	}
	// narration: recency only
	require.NoError(t, repo.RecordDelivery(ctx, model.Delivery{
		ConversationID: c.ID, Seq: 4, SenderID: c.SeekerID, Preview: "Proposal declined.", At: at,
	}))

	got, err := repo.GetConversationByID(ctx, c.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 3, got.ProviderUnread)
	assert.EqualValues(t, 0, got.SeekerUnread)
	assert.EqualValues(t, 4, got.MessageCount)
	assert.Equal(t, "Proposal declined.", got.LastMessagePreview)
	require.NotNil(t, got.LastMessageSenderID)
	assert.Equal(t, c.SeekerID, *got.LastMessageSenderID)

	require.NoError(t, repo.MarkRead(ctx, c.ID, model.SideProvider, at))
	got, err = repo.GetConversationByID(ctx, c.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 0, got.ProviderUnread)
	assert.False(t, got.ProviderLastReadAt.IsZero())
	assert.True(t, got.SeekerLastReadAt.IsZero())

	err = repo.MarkRead(ctx, uuid.New(), model.SideSeeker, at)
	assert.ErrorIs(t, err, ErrConversationNotFound)
}

func Test_RecordDelivery_ConcurrentIncrementsAreNotLost(t *testing.T) {
	truncate(t)
	ctx := context.Background()
	repo := NewConversationRepository(testDB, logger.Logger{})
	c := newConversation(t, repo)

	const n = 25
	seeker, provider := model.SideSeeker, model.SideProvider
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(2)
		go func(seq int64) {
			defer wg.Done()
			assert.NoError(t, repo.RecordDelivery(ctx, model.Delivery{ConversationID: c.ID, Seq: seq, SenderID: c.SeekerID, At: time.Now(), UnreadSide: &provider}))
		}(int64(i))
		go func(seq int64) {
			defer wg.Done()
			assert.NoError(t, repo.RecordDelivery(ctx, model.Delivery{ConversationID: c.ID, Seq: seq, SenderID: c.ProviderID, At: time.Now(), UnreadSide: &seeker}))
		}(int64(i))
	}
	wg.Wait()

	got, err := repo.GetConversationByID(ctx, c.ID)
	require.NoError(t, err)
	assert.EqualValues(t, n, got.ProviderUnread)
	assert.EqualValues(t, n, got.SeekerUnread)
}

func Test_ListMessages_ReturnsConversationOrder(t *testing.T) {
	truncate(t)
	ctx := context.Background()
	repo := NewConversationRepository(testDB, logger.Logger{})
	c := newConversation(t, repo)

	for seq := int64(1); seq <= 5; seq++ {
		require.NoError(t, repo.InsertMessage(ctx, &model.Message{
			ID: uuid.New(), ConversationID: c.ID, Seq: seq, SenderID: c.SeekerID, Kind: model.KindText, Content: "m",
			Attachments: []string{"photos/a"},
		}))
	}

	page, err := repo.ListMessages(ctx, c.ID, 0, 2)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.EqualValues(t, 4, page[0].Seq)
	assert.EqualValues(t, 5, page[1].Seq)
	assert.Equal(t, []string{"photos/a"}, page[0].Attachments)

	older, err := repo.ListMessages(ctx, c.ID, page[0].Seq, 10)
	require.NoError(t, err)
	require.Len(t, older, 3)
	assert.EqualValues(t, 1, older[0].Seq)

	dup := &model.Message{ID: uuid.New(), ConversationID: c.ID, Seq: 5, SenderID: c.SeekerID, Kind: model.KindText, Content: "dup"}
	assert.Error(t, repo.InsertMessage(ctx, dup))
}

func Test_SetJob(t *testing.T) {
	truncate(t)
	ctx := context.Background()
	repo := NewConversationRepository(testDB, logger.Logger{})
	c := newConversation(t, repo)

	jobID := uuid.New()
	require.NoError(t, repo.SetJob(ctx, c.ID, jobID))

	got, err := repo.GetConversationByID(ctx, c.ID)
	require.NoError(t, err)
	require.NotNil(t, got.JobID)
	assert.Equal(t, jobID, *got.JobID)
}

func Test_GetConversationForUpdate_InsideTx(t *testing.T) {
	truncate(t)
	ctx := context.Background()
	repo := NewConversationRepository(testDB, logger.Logger{})
	c := newConversation(t, repo)

	err := store.NewTransactor(testDB).RunInTx(ctx, func(ctx context.Context) error {
		got, err := repo.GetConversationForUpdate(ctx, c.ID)
		if err != nil {
			return err
		}
		assert.Equal(t, c.ID, got.ID)
		return nil
	})
	require.NoError(t, err)
}
