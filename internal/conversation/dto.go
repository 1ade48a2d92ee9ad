package conversation

import (
	"time"

	"taskbridge/internal/conversation/model"

	"github.com/google/uuid"
)

const (
	MaxContentLength   = 5000
	MaxAttachments     = 3
	DefaultPageSize    = 30
	MaxPageSize        = 100
	ConversationsLimit = 200
)

// Input commands
type OpenConversationCommand struct {
	ProviderID     uuid.UUID
	InitialMessage *string
}

type SendMessageCommand struct {
	ConversationID uuid.UUID
	Content        string
	Attachments    []string // opaque storage references
}

type ListMessagesQuery struct {
	ConversationID uuid.UUID
	BeforeSeq      int64 // 0 = newest page
	Limit          int
}

// Output DTOs
type ConversationDTO struct {
	ID                  uuid.UUID  `json:"id"`
	SeekerID            uuid.UUID  `json:"seeker_id"`
	ProviderID          uuid.UUID  `json:"provider_id"`
	JobID               *uuid.UUID `json:"job_id,omitempty"`
	LastMessageAt       *time.Time `json:"last_message_at,omitempty"`
	LastMessagePreview  string     `json:"last_message_preview,omitempty"`
	LastMessageSenderID *uuid.UUID `json:"last_message_sender_id,omitempty"`
	Unread              int64      `json:"unread"`
	CreatedAt           time.Time  `json:"created_at"`
}

type MessageDTO struct {
	ID          uuid.UUID         `json:"id"`
	Seq         int64             `json:"seq"`
	SenderID    uuid.UUID         `json:"sender_id"`
	Kind        model.MessageKind `json:"kind"`
	Content     string            `json:"content"`
	ProposalID  *uuid.UUID        `json:"proposal_id,omitempty"`
	Attachments []string          `json:"attachments,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
}

// ToConversationDTO renders c from the point of view of viewer.
func ToConversationDTO(c *model.Conversation, viewer uuid.UUID) ConversationDTO {
	dto := ConversationDTO{
		ID:                  c.ID,
		SeekerID:            c.SeekerID,
		ProviderID:          c.ProviderID,
		JobID:               c.JobID,
		LastMessagePreview:  c.LastMessagePreview,
		LastMessageSenderID: c.LastMessageSenderID,
		CreatedAt:           c.CreatedAt,
	}
	if !c.LastMessageAt.IsZero() {
		at := c.LastMessageAt
		dto.LastMessageAt = &at
	}
	if side, ok := c.SideOf(viewer); ok {
		dto.Unread = c.UnreadFor(side)
	}
	return dto
}

func ToMessageDTO(m *model.Message) MessageDTO {
	return MessageDTO{
		ID:          m.ID,
		Seq:         m.Seq,
		SenderID:    m.SenderID,
		Kind:        m.Kind,
		Content:     m.Content,
		ProposalID:  m.ProposalID,
		Attachments: m.Attachments,
		CreatedAt:   m.CreatedAt,
	}
}
