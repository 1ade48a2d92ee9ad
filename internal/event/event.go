// Package event defines the domain events emitted by state transitions.
package event

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Kind string

const (
	ProposalAccepted  Kind = "proposal_accepted"
	ProposalDeclined  Kind = "proposal_declined"
	ProposalCountered Kind = "proposal_countered"
	ProposalExpired   Kind = "proposal_expired"
	JobStarted        Kind = "job_started"
	JobCompleted      Kind = "job_completed"
	JobCancelled      Kind = "job_cancelled"
	ReviewSubmitted   Kind = "review_submitted"
)

var kinds = []Kind{
	ProposalAccepted, ProposalDeclined, ProposalCountered, ProposalExpired,
	JobStarted, JobCompleted, JobCancelled, ReviewSubmitted,
}

// Kinds lists every event kind.
func Kinds() []Kind {
	return append([]Kind(nil), kinds...)
}

type Event struct {
	Kind           Kind
	ConversationID uuid.UUID
	ActorID        uuid.UUID
	ProposalID     *uuid.UUID
	JobID          *uuid.UUID
	OccurredAt     time.Time
}

// Emitter receives events. Emit runs inside the caller's transaction, so a
// returned error aborts the transition that produced the event.
type Emitter interface {
	Emit(ctx context.Context, e Event) error
}
