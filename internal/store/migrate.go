package store

import (
	"context"

	conversation "taskbridge/internal/conversation/model"
	job "taskbridge/internal/job/model"
	proposal "taskbridge/internal/proposal/model"
	review "taskbridge/internal/review/model"
	user "taskbridge/internal/user/model"

	"github.com/pkg/errors"
	"github.com/uptrace/bun"
)

var tables = []any{
	(*user.User)(nil),
	(*user.ReputationProfile)(nil),
	(*conversation.Conversation)(nil),
	(*conversation.Message)(nil),
	(*proposal.Proposal)(nil),
	(*job.Job)(nil),
	(*review.Review)(nil),
}

var indexes = []string{
	// one conversation per unordered pair
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_conversations_pair
		ON conversations (LEAST(seeker_id, provider_id), GREATEST(seeker_id, provider_id))`,
	`CREATE INDEX IF NOT EXISTS idx_conversations_provider ON conversations (provider_id)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_messages_seq ON messages (conversation_id, seq)`,
	`CREATE INDEX IF NOT EXISTS idx_proposals_conversation ON proposals (conversation_id)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_proposals_previous
		ON proposals (previous_proposal_id) WHERE previous_proposal_id IS NOT NULL`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_jobs_proposal ON jobs (proposal_id)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_reviews_job_reviewer ON reviews (job_id, reviewer_id)`,
}

// Migrate creates every table and index the service needs. It is idempotent.
func Migrate(ctx context.Context, db *bun.DB) error {
	return db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		for _, t := range tables {
			if _, err := tx.NewCreateTable().Model(t).IfNotExists().Exec(ctx); err != nil {
				return errors.Wrapf(err, "store.Migrate.CreateTable(%T)", t)
			}
		}
		for _, stmt := range indexes {
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				return errors.Wrap(err, "store.Migrate.CreateIndex")
			}
		}
		return nil
	})
}

// Truncate empties every table. Used by integration tests.
func Truncate(ctx context.Context, db *bun.DB) error {
	_, err := db.ExecContext(ctx, `TRUNCATE TABLE reviews, jobs, proposals, messages, conversations,
		reputation_profiles, users RESTART IDENTITY CASCADE`)
	return errors.Wrap(err, "store.Truncate")
}
