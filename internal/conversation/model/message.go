package model

import (
	"time"

	"github.com/google/uuid"
)

type MessageKind string

const (
	KindText     MessageKind = "text"
	KindProposal MessageKind = "proposal"
	KindSystem   MessageKind = "system"
)

type Message struct {
	ID             uuid.UUID `bun:",pk,type:uuid,default:gen_random_uuid()"`
	ConversationID uuid.UUID `bun:",notnull,type:uuid"`

	// Position inside the conversation, starting at 1.
	Seq int64 `bun:",notnull"`

	SenderID uuid.UUID   `bun:",notnull,type:uuid"`
	Kind     MessageKind `bun:",notnull,default:'text'"`
	Content  string      `bun:",type:text,notnull"`

	ProposalID  *uuid.UUID `bun:",type:uuid,nullzero"`
	EventKind   string     `bun:",nullzero"` // system messages only
	Attachments []string   `bun:",array"`

	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}
