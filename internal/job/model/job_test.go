package model

import (
	"testing"

	user "taskbridge/internal/user/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestJob_Participants(t *testing.T) {
	seeker, tasker := uuid.New(), uuid.New()
	j := Job{SeekerID: seeker, TaskerID: tasker}

	role, ok := j.RoleOf(tasker)
	assert.True(t, ok)
	assert.Equal(t, user.RoleTasker, role)

	other, otherRole, ok := j.Counterpart(tasker)
	assert.True(t, ok)
	assert.Equal(t, seeker, other)
	assert.Equal(t, user.RoleSeeker, otherRole)

	_, _, ok = j.Counterpart(uuid.New())
	assert.False(t, ok)
}

func TestJob_BothReviewed(t *testing.T) {
	j := Job{}
	assert.False(t, j.BothReviewed())

	id := uuid.New()
	j.SeekerReviewID = &id
	assert.False(t, j.BothReviewed())
	assert.Equal(t, &id, j.ReviewIDFor(user.RoleSeeker))
	assert.Nil(t, j.ReviewIDFor(user.RoleTasker))

	j.TaskerReviewID = &id
	assert.True(t, j.BothReviewed())
}

func TestJob_CanTransition(t *testing.T) {
	assert.True(t, CanTransition(StatusPending, StatusInProgress))
	assert.True(t, CanTransition(StatusInProgress, StatusCompleted))
	assert.False(t, CanTransition(StatusCompleted, StatusPending))
	assert.False(t, CanTransition(StatusCancelled, StatusCompleted))
}
