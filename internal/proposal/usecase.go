package proposal

import (
	"context"

	"taskbridge/internal/proposal/model"
	"taskbridge/internal/user"

	"github.com/google/uuid"
)

type ProposalUsecase interface {
	// Receiver is always the other participant of the conversation
	SendProposal(ctx context.Context, caller *user.Caller, cmd SendProposalCommand) (uuid.UUID, error)
	// Flips to accepted, materializes the job and narrates, atomically
	AcceptProposal(ctx context.Context, caller *user.Caller, proposalID uuid.UUID) (uuid.UUID, error)
	DeclineProposal(ctx context.Context, caller *user.Caller, proposalID uuid.UUID) error
	CounterProposal(ctx context.Context, caller *user.Caller, cmd CounterProposalCommand) (uuid.UUID, error)
	// Scheduler hook; carries no timing logic of its own
	ExpireProposal(ctx context.Context, proposalID uuid.UUID) error

	GetProposal(ctx context.Context, caller *user.Caller, proposalID uuid.UUID) (*ProposalDTO, error)
	ListProposals(ctx context.Context, caller *user.Caller, conversationID uuid.UUID) ([]ProposalDTO, error)
}

// JobMaterializer turns an accepted proposal into its job.
type JobMaterializer interface {
	CreateJob(ctx context.Context, p *model.Proposal) (uuid.UUID, error)
}
