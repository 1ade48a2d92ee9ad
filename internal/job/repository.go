package job

import (
	"context"
	"time"

	"taskbridge/internal/job/model"
	user "taskbridge/internal/user/model"

	"github.com/google/uuid"
)

type JobRepository interface {
	// One job per proposal; a second insert for the same proposal fails
	CreateJob(ctx context.Context, j *model.Job) error
	GetJobByID(ctx context.Context, id uuid.UUID) (*model.Job, error)
	// Locks the row until the surrounding transaction ends
	GetJobForUpdate(ctx context.Context, id uuid.UUID) (*model.Job, error)

	// Compare-and-set on status. completedAt is written only when non-nil
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to model.Status, completedAt *time.Time, at time.Time) error
	// Sets the review reference on the reviewer's side; fails if already set
	SetReviewLink(ctx context.Context, jobID uuid.UUID, role user.Role, reviewID uuid.UUID) error
}
