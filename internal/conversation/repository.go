package conversation

import (
	"context"
	"time"

	"taskbridge/internal/conversation/model"

	"github.com/google/uuid"
)

type ConversationRepository interface {
	CreateConversation(ctx context.Context, c *model.Conversation) error
	GetConversationByID(ctx context.Context, id uuid.UUID) (*model.Conversation, error)
	// Locks the row until the surrounding transaction ends
	GetConversationForUpdate(ctx context.Context, id uuid.UUID) (*model.Conversation, error)
	// Matches the pair in either order
	GetConversationByPair(ctx context.Context, a, b uuid.UUID) (*model.Conversation, error)
	ListConversationsByUser(ctx context.Context, userID uuid.UUID, limit int) ([]model.Conversation, error)

	InsertMessage(ctx context.Context, m *model.Message) error
	ListMessages(ctx context.Context, conversationID uuid.UUID, beforeSeq int64, limit int) ([]model.Message, error)

	RecordDelivery(ctx context.Context, d model.Delivery) error
	MarkRead(ctx context.Context, conversationID uuid.UUID, side model.Side, at time.Time) error
	SetJob(ctx context.Context, conversationID, jobID uuid.UUID) error
}
