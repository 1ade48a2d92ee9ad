package usecase

import (
	"context"
	"time"

	"taskbridge/internal/conversation"
	"taskbridge/internal/conversation/model"
	"taskbridge/internal/event"
	"taskbridge/internal/store"
	"taskbridge/pkg/utils"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const DefaultPreviewLength = 100

var systemText = map[event.Kind]string{
	event.ProposalAccepted:  "Proposal accepted. A job has been created.",
	event.ProposalDeclined:  "Proposal declined.",
	event.ProposalCountered: "Counter-offer sent.",
	event.ProposalExpired:   "Proposal expired.",
	event.JobStarted:        "Job started.",
	event.JobCompleted:      "Job marked as completed.",
	event.JobCancelled:      "Job cancelled.",
	event.ReviewSubmitted:   "A review was submitted.",
}

// MessageLedger appends messages under the conversation row lock, so the
// sequence number and the conversation's last-message fields always agree
// with commit order.
type MessageLedger struct {
	repo          conversation.ConversationRepository
	tx            store.Transactor
	previewLength int
	now           func() time.Time
}

func NewMessageLedger(repo conversation.ConversationRepository, tx store.Transactor, previewLength int) *MessageLedger {
	if previewLength <= 0 {
		previewLength = DefaultPreviewLength
	}
	return &MessageLedger{repo: repo, tx: tx, previewLength: previewLength, now: time.Now}
}

func (l *MessageLedger) Append(ctx context.Context, m *model.Message) error {
	if m.Kind == model.KindSystem {
		return errors.New("ledger.Append: system messages go through AppendSystemMessage")
	}
	return l.tx.RunInTx(ctx, func(ctx context.Context) error {
		conv, err := l.repo.GetConversationForUpdate(ctx, m.ConversationID)
		if err != nil {
			return err
		}
		side, ok := conv.SideOf(m.SenderID)
		if !ok {
			return conversation.ErrSenderNotParticipant
		}
		receiver := side.Other()
		return l.append(ctx, conv, m, &receiver)
	})
}

func (l *MessageLedger) AppendSystemMessage(ctx context.Context, conversationID uuid.UUID, kind event.Kind) (*model.Message, error) {
	text, ok := systemText[kind]
	if !ok {
		return nil, errors.Wrapf(conversation.ErrUnknownSystemEvent, "kind %q", kind)
	}

	var msg *model.Message
	err := l.tx.RunInTx(ctx, func(ctx context.Context) error {
		conv, err := l.repo.GetConversationForUpdate(ctx, conversationID)
		if err != nil {
			return err
		}
		// narration is attributed to the seeker side and bumps no counter
		msg = &model.Message{
			ConversationID: conv.ID,
			SenderID:       conv.SeekerID,
			Kind:           model.KindSystem,
			Content:        text,
			EventKind:      string(kind),
		}
		return l.append(ctx, conv, msg, nil)
	})
	if err != nil {
		return nil, err
	}
	return msg, nil
}

func (l *MessageLedger) append(ctx context.Context, conv *model.Conversation, m *model.Message, unread *model.Side) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	m.Seq = conv.MessageCount + 1
	m.CreatedAt = l.now()

	if err := l.repo.InsertMessage(ctx, m); err != nil {
		return err
	}

	err := l.repo.RecordDelivery(ctx, model.Delivery{
		ConversationID: conv.ID,
		Seq:            m.Seq,
		SenderID:       m.SenderID,
		Preview:        utils.Truncate(m.Content, l.previewLength),
		At:             m.CreatedAt,
		UnreadSide:     unread,
	})
	if err != nil {
		return err
	}
	conv.MessageCount = m.Seq
	return nil
}
