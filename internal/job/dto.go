package job

import (
	"time"

	"taskbridge/internal/job/model"
	proposal "taskbridge/internal/proposal/model"

	"github.com/google/uuid"
)

type JobDTO struct {
	ID             uuid.UUID         `json:"id"`
	SeekerID       uuid.UUID         `json:"seeker_id"`
	TaskerID       uuid.UUID         `json:"tasker_id"`
	ProposalID     uuid.UUID         `json:"proposal_id"`
	ConversationID uuid.UUID         `json:"conversation_id"`
	CategoryID     string            `json:"category_id"`
	Description    string            `json:"description,omitempty"`
	Rate           int64             `json:"rate"`
	RateType       proposal.RateType `json:"rate_type"`
	StartTime      time.Time         `json:"start_time"`
	CompletedAt    *time.Time        `json:"completed_at,omitempty"`
	Status         model.Status      `json:"status"`
	SeekerReviewID *uuid.UUID        `json:"seeker_review_id,omitempty"`
	TaskerReviewID *uuid.UUID        `json:"tasker_review_id,omitempty"`
	CreatedAt      time.Time         `json:"created_at"`
}

func ToJobDTO(j *model.Job) JobDTO {
	return JobDTO{
		ID:             j.ID,
		SeekerID:       j.SeekerID,
		TaskerID:       j.TaskerID,
		ProposalID:     j.ProposalID,
		ConversationID: j.ConversationID,
		CategoryID:     j.CategoryID,
		Description:    j.Description,
		Rate:           j.Rate,
		RateType:       j.RateType,
		StartTime:      j.StartTime,
		CompletedAt:    j.CompletedAt,
		Status:         j.Status,
		SeekerReviewID: j.SeekerReviewID,
		TaskerReviewID: j.TaskerReviewID,
		CreatedAt:      j.CreatedAt,
	}
}
