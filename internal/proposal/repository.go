package proposal

import (
	"context"
	"time"

	"taskbridge/internal/proposal/model"

	"github.com/google/uuid"
)

type ProposalRepository interface {
	CreateProposal(ctx context.Context, p *model.Proposal) error
	GetProposalByID(ctx context.Context, id uuid.UUID) (*model.Proposal, error)
	// Locks the row until the surrounding transaction ends
	GetProposalForUpdate(ctx context.Context, id uuid.UUID) (*model.Proposal, error)
	ListProposalsByConversation(ctx context.Context, conversationID uuid.UUID) ([]model.Proposal, error)

	// Compare-and-set on status; fails if the row is no longer in from
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to model.Status, at time.Time) error
	// pending -> countered plus the forward link, as one statement
	MarkCountered(ctx context.Context, id, counterID uuid.UUID, at time.Time) error
}
