package repository

import (
	"context"
	"database/sql"
	"time"

	"taskbridge/internal/job/model"
	"taskbridge/internal/store"
	user "taskbridge/internal/user/model"
	"taskbridge/pkg/logger"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"
)

type JobRepository struct {
	db     *bun.DB
	logger *logger.Logger
}

var (
	ErrJobNotFound       = errors.New("job not found")
	ErrJobExists         = errors.New("job already exists for proposal")
	ErrStatusConflict    = errors.New("job status changed concurrently")
	ErrReviewLinkTaken   = errors.New("job already links a review for this side")
	errUnknownReviewRole = errors.New("unknown review role")
)

func NewJobRepository(db *bun.DB, logger logger.Logger) *JobRepository {
	return &JobRepository{
		db:     db,
		logger: &logger,
	}
}

func (r *JobRepository) CreateJob(ctx context.Context, j *model.Job) error {
	_, err := store.Conn(ctx, r.db).NewInsert().Model(j).Returning("*").Exec(ctx)
	if err != nil {
		if store.IsUniqueViolation(err) {
			return ErrJobExists
		}
		return errors.Wrap(err, "jobRepo.CreateJob.Insert: ")
	}
	return nil
}

func (r *JobRepository) GetJobByID(ctx context.Context, id uuid.UUID) (*model.Job, error) {
	j := new(model.Job)
	err := store.Conn(ctx, r.db).NewSelect().Model(j).Where("id = ?", id).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrJobNotFound
		}
		return nil, errors.Wrap(err, "jobRepo.GetJobByID.Scan: ")
	}
	return j, nil
}

func (r *JobRepository) GetJobForUpdate(ctx context.Context, id uuid.UUID) (*model.Job, error) {
	j := new(model.Job)
	err := store.Conn(ctx, r.db).NewSelect().
		Model(j).
		Where("id = ?", id).
		For("UPDATE").
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrJobNotFound
		}
		return nil, errors.Wrap(err, "jobRepo.GetJobForUpdate.Scan: ")
	}
	return j, nil
}

func (r *JobRepository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to model.Status, completedAt *time.Time, at time.Time) error {
	q := store.Conn(ctx, r.db).NewUpdate().
		Model((*model.Job)(nil)).
		Set("status = ?", to).
		Set("updated_at = ?", at).
		Where("id = ?", id).
		Where("status = ?", from)
	if completedAt != nil {
		q = q.Set("completed_at = ?", *completedAt)
	}

	res, err := q.Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "jobRepo.UpdateStatus.Update: ")
	}
	n, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "jobRepo.UpdateStatus.RowsAffected: ")
	}
	if n == 0 {
		return ErrStatusConflict
	}
	return nil
}

func (r *JobRepository) SetReviewLink(ctx context.Context, jobID uuid.UUID, role user.Role, reviewID uuid.UUID) error {
	var column string
	switch role {
	case user.RoleSeeker:
		column = "seeker_review_id"
	case user.RoleTasker:
		column = "tasker_review_id"
	default:
		return errors.Wrapf(errUnknownReviewRole, "jobRepo.SetReviewLink: %q", role)
	}

	res, err := store.Conn(ctx, r.db).NewUpdate().
		Model((*model.Job)(nil)).
		Set("? = ?", bun.Ident(column), reviewID).
		Set("updated_at = current_timestamp").
		Where("id = ?", jobID).
		Where("? IS NULL", bun.Ident(column)).
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "jobRepo.SetReviewLink.Update: ")
	}
	n, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "jobRepo.SetReviewLink.RowsAffected: ")
	}
	if n == 0 {
		return ErrReviewLinkTaken
	}
	return nil
}
