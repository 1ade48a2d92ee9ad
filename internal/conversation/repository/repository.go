package repository

import (
	"context"
	"database/sql"
	"time"

	"taskbridge/internal/conversation/model"
	"taskbridge/internal/store"
	"taskbridge/pkg/logger"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"
)

type ConversationRepository struct {
	db     *bun.DB
	logger *logger.Logger
}

var (
	ErrConversationNotFound = errors.New("conversation not found")
	ErrConversationExists   = errors.New("conversation already exists for this pair")
)

func NewConversationRepository(db *bun.DB, logger logger.Logger) *ConversationRepository {
	return &ConversationRepository{
		db:     db,
		logger: &logger,
	}
}

func (r *ConversationRepository) CreateConversation(ctx context.Context, c *model.Conversation) error {
	_, err := store.Conn(ctx, r.db).NewInsert().Model(c).Returning("*").Exec(ctx)
	if err != nil {
		if store.IsUniqueViolation(err) {
			return ErrConversationExists
		}
		return errors.Wrap(err, "conversationRepo.CreateConversation.Insert: ")
	}
	return nil
}

func (r *ConversationRepository) GetConversationByID(ctx context.Context, id uuid.UUID) (*model.Conversation, error) {
	c := new(model.Conversation)
	err := store.Conn(ctx, r.db).NewSelect().Model(c).Where("id = ?", id).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrConversationNotFound
		}
		return nil, errors.Wrap(err, "conversationRepo.GetConversationByID.Scan: ")
	}
	return c, nil
}

func (r *ConversationRepository) GetConversationForUpdate(ctx context.Context, id uuid.UUID) (*model.Conversation, error) {
	c := new(model.Conversation)
	err := store.Conn(ctx, r.db).NewSelect().
		Model(c).
		Where("id = ?", id).
		For("UPDATE").
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrConversationNotFound
		}
		return nil, errors.Wrap(err, "conversationRepo.GetConversationForUpdate.Scan: ")
	}
	return c, nil
}

func (r *ConversationRepository) GetConversationByPair(ctx context.Context, a, b uuid.UUID) (*model.Conversation, error) {
	c := new(model.Conversation)
	err := store.Conn(ctx, r.db).NewSelect().
		Model(c).
		WhereGroup(" AND ", func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.
				WhereOr("seeker_id = ? AND provider_id = ?", a, b).
				WhereOr("seeker_id = ? AND provider_id = ?", b, a)
		}).
		Limit(1).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrConversationNotFound
		}
		return nil, errors.Wrap(err, "conversationRepo.GetConversationByPair.Scan: ")
	}
	return c, nil
}

func (r *ConversationRepository) ListConversationsByUser(ctx context.Context, userID uuid.UUID, limit int) ([]model.Conversation, error) {
	var convs []model.Conversation
	err := store.Conn(ctx, r.db).NewSelect().
		Model(&convs).
		Where("seeker_id = ? OR provider_id = ?", userID, userID).
		OrderExpr("COALESCE(last_message_at, created_at) DESC").
		Limit(limit).
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "conversationRepo.ListConversationsByUser.Scan: ")
	}
	return convs, nil
}

func (r *ConversationRepository) InsertMessage(ctx context.Context, m *model.Message) error {
	_, err := store.Conn(ctx, r.db).NewInsert().Model(m).Returning("*").Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "conversationRepo.InsertMessage.Insert: ")
	}
	return nil
}

func (r *ConversationRepository) ListMessages(ctx context.Context, conversationID uuid.UUID, beforeSeq int64, limit int) ([]model.Message, error) {
	var msgs []model.Message
	q := store.Conn(ctx, r.db).NewSelect().
		Model(&msgs).
		Where("conversation_id = ?", conversationID).
		Order("seq DESC").
		Limit(limit)
	if beforeSeq > 0 {
		q = q.Where("seq < ?", beforeSeq)
	}
	if err := q.Scan(ctx); err != nil {
		return nil, errors.Wrap(err, "conversationRepo.ListMessages.Scan: ")
	}

	// query is newest-first; return in conversation order
	for i, j := 0, len(msgs)-1; i < j; i, j = i+1, j-1 {
		msgs[i], msgs[j] = msgs[j], msgs[i]
	}
	return msgs, nil
}

// RecordDelivery updates last-message metadata and bumps the receiving
// side's unread counter in a single statement so concurrent senders never
// lose an increment.
func (r *ConversationRepository) RecordDelivery(ctx context.Context, d model.Delivery) error {
	q := store.Conn(ctx, r.db).NewUpdate().
		Model((*model.Conversation)(nil)).
		Set("last_message_at = ?", d.At).
		Set("last_message_preview = ?", d.Preview).
		Set("last_message_sender_id = ?", d.SenderID).
		Set("message_count = GREATEST(message_count, ?)", d.Seq).
		Set("updated_at = ?", d.At).
		Where("id = ?", d.ConversationID)

	if d.UnreadSide != nil {
		switch *d.UnreadSide {
		case model.SideSeeker:
			q = q.Set("seeker_unread = seeker_unread + 1")
		case model.SideProvider:
			q = q.Set("provider_unread = provider_unread + 1")
		}
	}

	res, err := q.Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "conversationRepo.RecordDelivery.Update: ")
	}
	return expectOneRow(res)
}

func (r *ConversationRepository) MarkRead(ctx context.Context, conversationID uuid.UUID, side model.Side, at time.Time) error {
	q := store.Conn(ctx, r.db).NewUpdate().
		Model((*model.Conversation)(nil)).
		Where("id = ?", conversationID)

	switch side {
	case model.SideSeeker:
		q = q.Set("seeker_unread = 0").Set("seeker_last_read_at = ?", at)
	case model.SideProvider:
		q = q.Set("provider_unread = 0").Set("provider_last_read_at = ?", at)
	default:
		return errors.Errorf("conversationRepo.MarkRead: unknown side %q", side)
	}

	res, err := q.Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "conversationRepo.MarkRead.Update: ")
	}
	return expectOneRow(res)
}

func (r *ConversationRepository) SetJob(ctx context.Context, conversationID, jobID uuid.UUID) error {
	res, err := store.Conn(ctx, r.db).NewUpdate().
		Model((*model.Conversation)(nil)).
		Set("job_id = ?", jobID).
		Set("updated_at = ?", time.Now()).
		Where("id = ?", conversationID).
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "conversationRepo.SetJob.Update: ")
	}
	return expectOneRow(res)
}

func expectOneRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "conversationRepo.RowsAffected: ")
	}
	if n == 0 {
		return ErrConversationNotFound
	}
	return nil
}
