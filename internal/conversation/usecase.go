package conversation

import (
	"context"

	"taskbridge/internal/conversation/model"
	"taskbridge/internal/event"
	"taskbridge/internal/user"

	"github.com/google/uuid"
)

type ConversationUsecase interface {
	// Caller becomes the seeker; fails on self or duplicate pairs
	OpenConversation(ctx context.Context, caller *user.Caller, cmd OpenConversationCommand) (uuid.UUID, error)
	// Zeroes the caller's unread counter only
	MarkRead(ctx context.Context, caller *user.Caller, conversationID uuid.UUID) error
	SendMessage(ctx context.Context, caller *user.Caller, cmd SendMessageCommand) (uuid.UUID, error)

	GetConversation(ctx context.Context, caller *user.Caller, conversationID uuid.UUID) (*ConversationDTO, error)
	ListConversations(ctx context.Context, caller *user.Caller) ([]ConversationDTO, error)
	ListMessages(ctx context.Context, caller *user.Caller, q ListMessagesQuery) ([]MessageDTO, error)
}

// Ledger is the append-only message log. Every append updates the owning
// conversation's last-message fields and unread counters atomically.
type Ledger interface {
	Append(ctx context.Context, m *model.Message) error
	// Internal only; never reachable from a caller request
	AppendSystemMessage(ctx context.Context, conversationID uuid.UUID, kind event.Kind) (*model.Message, error)
}
