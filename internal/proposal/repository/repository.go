package repository

import (
	"context"
	"database/sql"
	"time"

	"taskbridge/internal/proposal/model"
	"taskbridge/internal/store"
	"taskbridge/pkg/logger"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"
)

type ProposalRepository struct {
	db     *bun.DB
	logger *logger.Logger
}

var (
	ErrProposalNotFound = errors.New("proposal not found")
	// The row left the expected status between read and write, or a second
	// counter was attempted on the same proposal.
	ErrStatusConflict = errors.New("proposal status changed concurrently")
)

func NewProposalRepository(db *bun.DB, logger logger.Logger) *ProposalRepository {
	return &ProposalRepository{
		db:     db,
		logger: &logger,
	}
}

func (r *ProposalRepository) CreateProposal(ctx context.Context, p *model.Proposal) error {
	_, err := store.Conn(ctx, r.db).NewInsert().Model(p).Returning("*").Exec(ctx)
	if err != nil {
		if store.IsUniqueViolation(err) {
			return ErrStatusConflict
		}
		return errors.Wrap(err, "proposalRepo.CreateProposal.Insert: ")
	}
	return nil
}

func (r *ProposalRepository) GetProposalByID(ctx context.Context, id uuid.UUID) (*model.Proposal, error) {
	p := new(model.Proposal)
	err := store.Conn(ctx, r.db).NewSelect().Model(p).Where("id = ?", id).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrProposalNotFound
		}
		return nil, errors.Wrap(err, "proposalRepo.GetProposalByID.Scan: ")
	}
	return p, nil
}

func (r *ProposalRepository) GetProposalForUpdate(ctx context.Context, id uuid.UUID) (*model.Proposal, error) {
	p := new(model.Proposal)
	err := store.Conn(ctx, r.db).NewSelect().
		Model(p).
		Where("id = ?", id).
		For("UPDATE").
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrProposalNotFound
		}
		return nil, errors.Wrap(err, "proposalRepo.GetProposalForUpdate.Scan: ")
	}
	return p, nil
}

func (r *ProposalRepository) ListProposalsByConversation(ctx context.Context, conversationID uuid.UUID) ([]model.Proposal, error) {
	var proposals []model.Proposal
	err := store.Conn(ctx, r.db).NewSelect().
		Model(&proposals).
		Where("conversation_id = ?", conversationID).
		Order("created_at ASC").
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "proposalRepo.ListProposalsByConversation.Scan: ")
	}
	return proposals, nil
}

func (r *ProposalRepository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to model.Status, at time.Time) error {
	res, err := store.Conn(ctx, r.db).NewUpdate().
		Model((*model.Proposal)(nil)).
		Set("status = ?", to).
		Set("updated_at = ?", at).
		Where("id = ?", id).
		Where("status = ?", from).
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "proposalRepo.UpdateStatus.Update: ")
	}
	return expectOneRow(res)
}

func (r *ProposalRepository) MarkCountered(ctx context.Context, id, counterID uuid.UUID, at time.Time) error {
	res, err := store.Conn(ctx, r.db).NewUpdate().
		Model((*model.Proposal)(nil)).
		Set("status = ?", model.StatusCountered).
		Set("counter_proposal_id = ?", counterID).
		Set("updated_at = ?", at).
		Where("id = ?", id).
		Where("status = ?", model.StatusPending).
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "proposalRepo.MarkCountered.Update: ")
	}
	return expectOneRow(res)
}

func expectOneRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "proposalRepo.RowsAffected: ")
	}
	if n == 0 {
		return ErrStatusConflict
	}
	return nil
}
