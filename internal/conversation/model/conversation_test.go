package model

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestConversation_Sides(t *testing.T) {
	seeker, provider, stranger := uuid.New(), uuid.New(), uuid.New()
	c := Conversation{SeekerID: seeker, ProviderID: provider, SeekerUnread: 2, ProviderUnread: 5}

	side, ok := c.SideOf(provider)
	assert.True(t, ok)
	assert.Equal(t, SideProvider, side)
	assert.Equal(t, SideSeeker, side.Other())

	other, ok := c.Counterpart(seeker)
	assert.True(t, ok)
	assert.Equal(t, provider, other)

	_, ok = c.Counterpart(stranger)
	assert.False(t, ok)
	assert.False(t, c.IsParticipant(stranger))

	assert.EqualValues(t, 2, c.UnreadFor(SideSeeker))
	assert.EqualValues(t, 5, c.UnreadFor(SideProvider))
}
