package usecase

import (
	"context"

	"taskbridge/internal/conversation"
	"taskbridge/internal/event"
	"taskbridge/pkg/logger"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Narrator turns domain events into system messages in the conversation
// they happened in.
type Narrator struct {
	ledger conversation.Ledger
	logger logger.Logger
}

func NewNarrator(ledger conversation.Ledger, logger logger.Logger) *Narrator {
	return &Narrator{ledger: ledger, logger: logger}
}

func (n *Narrator) Emit(ctx context.Context, e event.Event) error {
	if e.ConversationID == uuid.Nil {
		return nil
	}
	msg, err := n.ledger.AppendSystemMessage(ctx, e.ConversationID, e.Kind)
	if err != nil {
		return errors.Wrapf(err, "narrate %s", e.Kind)
	}
	n.logger.Debug("narrated event",
		"kind", e.Kind,
		"conversation_id", e.ConversationID,
		"actor_id", e.ActorID,
		"seq", msg.Seq,
	)
	return nil
}
