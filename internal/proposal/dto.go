package proposal

import (
	"time"

	"taskbridge/internal/proposal/model"

	"github.com/google/uuid"
)

const MaxNotesLength = 5000

// Input commands
type SendProposalCommand struct {
	ConversationID uuid.UUID
	Terms          model.Terms
}

type CounterProposalCommand struct {
	ProposalID uuid.UUID
	Terms      model.Terms
}

// Output DTOs
type ProposalDTO struct {
	ID                 uuid.UUID      `json:"id"`
	ConversationID     uuid.UUID      `json:"conversation_id"`
	SenderID           uuid.UUID      `json:"sender_id"`
	ReceiverID         uuid.UUID      `json:"receiver_id"`
	Rate               int64          `json:"rate"`
	RateType           model.RateType `json:"rate_type"`
	StartTime          time.Time      `json:"start_time"`
	Notes              string         `json:"notes,omitempty"`
	Status             model.Status   `json:"status"`
	PreviousProposalID *uuid.UUID     `json:"previous_proposal_id,omitempty"`
	CounterProposalID  *uuid.UUID     `json:"counter_proposal_id,omitempty"`
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
}

func ToProposalDTO(p *model.Proposal) ProposalDTO {
	return ProposalDTO{
		ID:                 p.ID,
		ConversationID:     p.ConversationID,
		SenderID:           p.SenderID,
		ReceiverID:         p.ReceiverID,
		Rate:               p.Rate,
		RateType:           p.RateType,
		StartTime:          p.StartTime,
		Notes:              p.Notes,
		Status:             p.Status,
		PreviousProposalID: p.PreviousProposalID,
		CounterProposalID:  p.CounterProposalID,
		CreatedAt:          p.CreatedAt,
		UpdatedAt:          p.UpdatedAt,
	}
}
