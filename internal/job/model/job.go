package model

import (
	"time"

	proposal "taskbridge/internal/proposal/model"
	user "taskbridge/internal/user/model"

	"github.com/google/uuid"
)

type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
	StatusDisputed   Status = "disputed"
)

type Job struct {
	ID             uuid.UUID `bun:",pk,type:uuid,default:gen_random_uuid()"`
	SeekerID       uuid.UUID `bun:",notnull,type:uuid"`
	TaskerID       uuid.UUID `bun:",notnull,type:uuid"`
	ProposalID     uuid.UUID `bun:",notnull,type:uuid"`
	ConversationID uuid.UUID `bun:",notnull,type:uuid"`

	CategoryID  string `bun:",notnull"`
	Description string `bun:",nullzero"`

	// Copied from the accepted proposal; never updated.
	Rate     int64             `bun:",notnull"`
	RateType proposal.RateType `bun:",notnull"`

	StartTime   time.Time  `bun:",notnull"`
	CompletedAt *time.Time `bun:",nullzero"`
	Status      Status     `bun:",notnull,default:'pending'"`

	SeekerReviewID *uuid.UUID `bun:",type:uuid,nullzero"`
	TaskerReviewID *uuid.UUID `bun:",type:uuid,nullzero"`

	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
	UpdatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}

// RoleOf reports the role userID plays on the job.
func (j *Job) RoleOf(userID uuid.UUID) (user.Role, bool) {
	switch userID {
	case j.SeekerID:
		return user.RoleSeeker, true
	case j.TaskerID:
		return user.RoleTasker, true
	}
	return "", false
}

// Counterpart returns the other participant on the job and their role.
func (j *Job) Counterpart(userID uuid.UUID) (uuid.UUID, user.Role, bool) {
	switch userID {
	case j.SeekerID:
		return j.TaskerID, user.RoleTasker, true
	case j.TaskerID:
		return j.SeekerID, user.RoleSeeker, true
	}
	return uuid.Nil, "", false
}

// ReviewIDFor returns the review submitted by the given side, if any.
func (j *Job) ReviewIDFor(role user.Role) *uuid.UUID {
	if role == user.RoleSeeker {
		return j.SeekerReviewID
	}
	return j.TaskerReviewID
}

// BothReviewed reports whether both participants have reviewed the job.
func (j *Job) BothReviewed() bool {
	return j.SeekerReviewID != nil && j.TaskerReviewID != nil
}

var lifecycle = map[Status][]Status{
	StatusPending:    {StatusInProgress, StatusCompleted, StatusCancelled},
	StatusInProgress: {StatusCompleted, StatusCancelled, StatusDisputed},
	StatusCompleted:  {StatusDisputed},
}

func CanTransition(from, to Status) bool {
	for _, s := range lifecycle[from] {
		if s == to {
			return true
		}
	}
	return false
}
