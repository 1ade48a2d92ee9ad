package model

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusAccepted  Status = "accepted"
	StatusDeclined  Status = "declined"
	StatusCountered Status = "countered"
	StatusExpired   Status = "expired"
)

type RateType string

const (
	RateHourly RateType = "hourly"
	RateFlat   RateType = "flat"
)

func (r RateType) Valid() bool {
	return r == RateHourly || r == RateFlat
}

var ErrInvalidTransition = errors.New("invalid proposal status transition")

// Only pending proposals move; every other status is final for that proposal.
var transitions = map[Status][]Status{
	StatusPending: {StatusAccepted, StatusDeclined, StatusCountered, StatusExpired},
}

func CanTransition(from, to Status) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

func (s Status) IsTerminal() bool {
	return len(transitions[s]) == 0
}

type Proposal struct {
	ID             uuid.UUID `bun:",pk,type:uuid,default:gen_random_uuid()"`
	ConversationID uuid.UUID `bun:",notnull,type:uuid"`
	SenderID       uuid.UUID `bun:",notnull,type:uuid"`
	ReceiverID     uuid.UUID `bun:",notnull,type:uuid"`

	Rate      int64     `bun:",notnull"` // minor currency units
	RateType  RateType  `bun:",notnull"`
	StartTime time.Time `bun:",notnull"`
	Notes     string    `bun:",nullzero"`

	Status Status `bun:",notnull,default:'pending'"`

	// Counter-chain links: this proposal counters PreviousProposalID and
	// is countered by CounterProposalID.
	PreviousProposalID *uuid.UUID `bun:",type:uuid,nullzero"`
	CounterProposalID  *uuid.UUID `bun:",type:uuid,nullzero"`

	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
	UpdatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}

// Transition moves p to status to, or fails with ErrInvalidTransition.
func (p *Proposal) Transition(to Status, at time.Time) error {
	if !CanTransition(p.Status, to) {
		return ErrInvalidTransition
	}
	p.Status = to
	p.UpdatedAt = at
	return nil
}

// Terms are the negotiable parts of a proposal.
type Terms struct {
	Rate      int64
	RateType  RateType
	StartTime time.Time
	Notes     string
}
