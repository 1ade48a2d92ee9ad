package conversation

import "github.com/pkg/errors"

var (
	ErrUnknownSystemEvent   = errors.New("no narration for system event")
	ErrSenderNotParticipant = errors.New("sender is not a participant of the conversation")
)
