package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	cases := []struct {
		err  error
		want Kind
	}{
		{ErrUnauthorized, KindAuthorization},
		{ErrForbidden, KindAuthorization},
		{ErrNotParticipant, KindAuthorization},
		{ErrConversationNotFound, KindNotFound},
		{ErrProposalNotFound, KindNotFound},
		{ErrJobNotFound, KindNotFound},
		{ErrInvalidState, KindState},
		{ErrAlreadyReviewed, KindState},
		{ErrDuplicateConversation, KindState},
		{ErrSelfConversation, KindState},
		{ErrEmptyMessage, KindValidation},
		{ErrRatingNotInteger, KindValidation},
		{ErrReviewWindowExpired, KindValidation},
		{Internal("boom"), KindInternal},
		{fmt.Errorf("plain"), KindInternal},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, KindOf(c.err), c.err.Error())
	}
}

func TestCodeOf_Wrapped(t *testing.T) {
	err := fmt.Errorf("accept: %w", ErrInvalidState)
	assert.Equal(t, CodeFailedPrecondition, CodeOf(err))
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestAppError_ErrorIncludesCause(t *testing.T) {
	err := Wrap(CodeInternal, "registration failed", fmt.Errorf("db down"))
	assert.Equal(t, "registration failed: db down", err.Error())
}
