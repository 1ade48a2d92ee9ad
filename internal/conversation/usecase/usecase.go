package usecase

import (
	"context"
	"strings"
	"time"

	"taskbridge/internal/conversation"
	"taskbridge/internal/conversation/model"
	"taskbridge/internal/conversation/repository"
	"taskbridge/internal/metrics"
	"taskbridge/internal/store"
	"taskbridge/internal/user"
	"taskbridge/pkg/errors"
	"taskbridge/pkg/logger"
	"taskbridge/pkg/utils"

	"github.com/google/uuid"
	pkgerrors "github.com/pkg/errors"
)

type ConversationUsecase struct {
	repo   conversation.ConversationRepository
	ledger conversation.Ledger
	tx     store.Transactor
	logger logger.Logger
	now    func() time.Time
}

func NewConversationUsecase(
	repo conversation.ConversationRepository,
	ledger conversation.Ledger,
	tx store.Transactor,
	logger logger.Logger,
) *ConversationUsecase {
	return &ConversationUsecase{repo: repo, ledger: ledger, tx: tx, logger: logger, now: time.Now}
}

func (uc *ConversationUsecase) OpenConversation(ctx context.Context, caller *user.Caller, cmd conversation.OpenConversationCommand) (uuid.UUID, error) {
	if !caller.Resolved() {
		return uuid.Nil, errors.ErrUnauthorized
	}
	if cmd.ProviderID == uuid.Nil {
		return uuid.Nil, errors.ErrUserNotFound
	}
	if cmd.ProviderID == caller.ID {
		return uuid.Nil, errors.ErrSelfConversation
	}

	var initial string
	if cmd.InitialMessage != nil {
		initial = strings.TrimSpace(*cmd.InitialMessage)
		if utils.RuneLen(initial) > conversation.MaxContentLength {
			return uuid.Nil, errors.ErrTooLong
		}
	}

	now := uc.now()
	conv := &model.Conversation{
		ID:         uuid.New(),
		SeekerID:   caller.ID,
		ProviderID: cmd.ProviderID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	err := uc.tx.RunInTx(ctx, func(ctx context.Context) error {
		_, err := uc.repo.GetConversationByPair(ctx, caller.ID, cmd.ProviderID)
		if err == nil {
			return errors.ErrDuplicateConversation
		}
		if !pkgerrors.Is(err, repository.ErrConversationNotFound) {
			return err
		}

		if err := uc.repo.CreateConversation(ctx, conv); err != nil {
			return err
		}
		if initial == "" {
			return nil
		}
		return uc.ledger.Append(ctx, &model.Message{
			ConversationID: conv.ID,
			SenderID:       caller.ID,
			Kind:           model.KindText,
			Content:        initial,
		})
	})
	if err != nil {
		return uuid.Nil, uc.translate(err, "open conversation")
	}

	metrics.ConversationsOpened.Inc()
	if initial != "" {
		metrics.MessagesAppended.WithLabelValues(string(model.KindText)).Inc()
	}
	uc.logger.Info("conversation opened", "conversation_id", conv.ID, "seeker_id", caller.ID, "provider_id", cmd.ProviderID)
	return conv.ID, nil
}

func (uc *ConversationUsecase) MarkRead(ctx context.Context, caller *user.Caller, conversationID uuid.UUID) error {
	if !caller.Resolved() {
		return errors.ErrUnauthorized
	}
	conv, err := uc.repo.GetConversationByID(ctx, conversationID)
	if err != nil {
		return uc.translate(err, "mark read")
	}
	side, ok := conv.SideOf(caller.ID)
	if !ok {
		return errors.ErrNotParticipant
	}
	if err := uc.repo.MarkRead(ctx, conversationID, side, uc.now()); err != nil {
		return uc.translate(err, "mark read")
	}
	return nil
}

func (uc *ConversationUsecase) SendMessage(ctx context.Context, caller *user.Caller, cmd conversation.SendMessageCommand) (uuid.UUID, error) {
	if !caller.Resolved() {
		return uuid.Nil, errors.ErrUnauthorized
	}
	conv, err := uc.repo.GetConversationByID(ctx, cmd.ConversationID)
	if err != nil {
		return uuid.Nil, uc.translate(err, "send message")
	}

	content := strings.TrimSpace(cmd.Content)
	if content == "" {
		return uuid.Nil, errors.ErrEmptyMessage
	}
	if utils.RuneLen(content) > conversation.MaxContentLength {
		return uuid.Nil, errors.ErrTooLong
	}
	if len(cmd.Attachments) > conversation.MaxAttachments {
		return uuid.Nil, errors.ErrTooManyAttachments
	}
	if !conv.IsParticipant(caller.ID) {
		return uuid.Nil, errors.ErrNotParticipant
	}

	msg := &model.Message{
		ConversationID: conv.ID,
		SenderID:       caller.ID,
		Kind:           model.KindText,
		Content:        content,
		Attachments:    cmd.Attachments,
	}
	if err := uc.ledger.Append(ctx, msg); err != nil {
		return uuid.Nil, uc.translate(err, "send message")
	}

	metrics.MessagesAppended.WithLabelValues(string(model.KindText)).Inc()
	return msg.ID, nil
}

func (uc *ConversationUsecase) GetConversation(ctx context.Context, caller *user.Caller, conversationID uuid.UUID) (*conversation.ConversationDTO, error) {
	if !caller.Resolved() {
		return nil, errors.ErrUnauthorized
	}
	conv, err := uc.repo.GetConversationByID(ctx, conversationID)
	if err != nil {
		return nil, uc.translate(err, "get conversation")
	}
	if !conv.IsParticipant(caller.ID) {
		return nil, errors.ErrNotParticipant
	}
	dto := conversation.ToConversationDTO(conv, caller.ID)
	return &dto, nil
}

func (uc *ConversationUsecase) ListConversations(ctx context.Context, caller *user.Caller) ([]conversation.ConversationDTO, error) {
	if !caller.Resolved() {
		return nil, errors.ErrUnauthorized
	}
	convs, err := uc.repo.ListConversationsByUser(ctx, caller.ID, conversation.ConversationsLimit)
	if err != nil {
		return nil, uc.translate(err, "list conversations")
	}
	out := make([]conversation.ConversationDTO, 0, len(convs))
	for i := range convs {
		out = append(out, conversation.ToConversationDTO(&convs[i], caller.ID))
	}
	return out, nil
}

func (uc *ConversationUsecase) ListMessages(ctx context.Context, caller *user.Caller, q conversation.ListMessagesQuery) ([]conversation.MessageDTO, error) {
	if !caller.Resolved() {
		return nil, errors.ErrUnauthorized
	}
	conv, err := uc.repo.GetConversationByID(ctx, q.ConversationID)
	if err != nil {
		return nil, uc.translate(err, "list messages")
	}
	if !conv.IsParticipant(caller.ID) {
		return nil, errors.ErrNotParticipant
	}

	limit := q.Limit
	if limit <= 0 {
		limit = conversation.DefaultPageSize
	}
	if limit > conversation.MaxPageSize {
		limit = conversation.MaxPageSize
	}

	msgs, err := uc.repo.ListMessages(ctx, conv.ID, q.BeforeSeq, limit)
	if err != nil {
		return nil, uc.translate(err, "list messages")
	}
	out := make([]conversation.MessageDTO, 0, len(msgs))
	for i := range msgs {
		out = append(out, conversation.ToMessageDTO(&msgs[i]))
	}
	return out, nil
}

// translate maps repository errors to AppErrors; unknown failures are logged
// and hidden behind an internal error.
func (uc *ConversationUsecase) translate(err error, op string) error {
	switch {
	case errors.CodeOf(err) != errors.CodeUnknown:
		return err
	case pkgerrors.Is(err, repository.ErrConversationNotFound):
		return errors.ErrConversationNotFound
	case pkgerrors.Is(err, repository.ErrConversationExists):
		return errors.ErrDuplicateConversation
	case pkgerrors.Is(err, conversation.ErrSenderNotParticipant):
		return errors.ErrNotParticipant
	}
	uc.logger.Error("conversation operation failed", "op", op, "err", err)
	return errors.Internal("failed to " + op)
}
