package model

import (
	"time"

	"github.com/google/uuid"
)

// Side identifies which participant of a conversation a user is.
type Side string

const (
	SideSeeker   Side = "seeker"
	SideProvider Side = "provider"
)

type Conversation struct {
	ID         uuid.UUID `bun:",pk,type:uuid,default:gen_random_uuid()"`
	SeekerID   uuid.UUID `bun:",notnull,type:uuid"`
	ProviderID uuid.UUID `bun:",notnull,type:uuid"`

	// Set once a proposal in this thread has been accepted.
	JobID *uuid.UUID `bun:",type:uuid,nullzero"`

	LastMessageAt       time.Time  `bun:",nullzero"`
	LastMessagePreview  string     `bun:",nullzero"`
	LastMessageSenderID *uuid.UUID `bun:",type:uuid,nullzero"`
	MessageCount        int64      `bun:",notnull,default:0"`

	SeekerUnread       int64     `bun:",notnull,default:0"`
	ProviderUnread     int64     `bun:",notnull,default:0"`
	SeekerLastReadAt   time.Time `bun:",nullzero"`
	ProviderLastReadAt time.Time `bun:",nullzero"`

	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
	UpdatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`

	// Unique index in migration:
	// CREATE UNIQUE INDEX idx_conversations_pair ON conversations(least(seeker_id,provider_id), greatest(seeker_id,provider_id));
}

func (c *Conversation) SideOf(userID uuid.UUID) (Side, bool) {
	switch userID {
	case c.SeekerID:
		return SideSeeker, true
	case c.ProviderID:
		return SideProvider, true
	}
	return "", false
}

func (c *Conversation) IsParticipant(userID uuid.UUID) bool {
	_, ok := c.SideOf(userID)
	return ok
}

// Counterpart returns the participant who is not userID.
func (c *Conversation) Counterpart(userID uuid.UUID) (uuid.UUID, bool) {
	switch userID {
	case c.SeekerID:
		return c.ProviderID, true
	case c.ProviderID:
		return c.SeekerID, true
	}
	return uuid.Nil, false
}

func (c *Conversation) UnreadFor(side Side) int64 {
	if side == SideSeeker {
		return c.SeekerUnread
	}
	return c.ProviderUnread
}

func (s Side) Other() Side {
	if s == SideSeeker {
		return SideProvider
	}
	return SideSeeker
}

// Delivery is the conversation-level bookkeeping for one appended message.
type Delivery struct {
	ConversationID uuid.UUID
	Seq            int64
	SenderID       uuid.UUID
	Preview        string
	At             time.Time

	// Side whose unread counter is bumped; nil for narration.
	UnreadSide *Side
}
