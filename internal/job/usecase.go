package job

import (
	"context"

	convmodel "taskbridge/internal/conversation/model"
	"taskbridge/internal/user"

	"github.com/google/uuid"
)

type JobUsecase interface {
	GetJob(ctx context.Context, caller *user.Caller, jobID uuid.UUID) (*JobDTO, error)

	// Lifecycle moves owned by the job's participants
	StartJob(ctx context.Context, caller *user.Caller, jobID uuid.UUID) error
	CompleteJob(ctx context.Context, caller *user.Caller, jobID uuid.UUID) error
	CancelJob(ctx context.Context, caller *user.Caller, jobID uuid.UUID) error
}

// CategoryResolver picks the category a new job is filed under.
type CategoryResolver interface {
	ResolveCategory(ctx context.Context, conv *convmodel.Conversation) (string, error)
}

// StaticCategory files every job under one category.
type StaticCategory string

func (c StaticCategory) ResolveCategory(context.Context, *convmodel.Conversation) (string, error) {
	return string(c), nil
}
