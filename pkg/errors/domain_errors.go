package errors

var (
	// Authorization
	ErrUnauthorized   = Unauthorized("caller identity is not resolved")
	ErrForbidden      = Forbidden("caller is not allowed to act on this proposal")
	ErrNotParticipant = Forbidden("caller is not a participant")

	// Not found
	ErrUserNotFound         = NotFound("user not found")
	ErrConversationNotFound = NotFound("conversation not found")
	ErrProposalNotFound     = NotFound("proposal not found")
	ErrJobNotFound          = NotFound("job not found")

	// State
	ErrInvalidState          = FailedPrecondition("operation is not valid in the current state")
	ErrAlreadyReviewed       = AlreadyExists("job already reviewed by caller")
	ErrDuplicateConversation = AlreadyExists("conversation already exists for this pair")
	ErrSelfConversation      = FailedPrecondition("cannot open a conversation with yourself")
	ErrJobNotCompleted       = FailedPrecondition("job is not completed")
	ErrUsernameTaken         = AlreadyExists("username is already taken")

	// Validation
	ErrEmptyMessage        = InvalidArg("message is empty")
	ErrTooLong             = InvalidArg("message exceeds 5000 characters")
	ErrTooManyAttachments  = InvalidArg("message carries more than 3 attachments")
	ErrRatingOutOfRange    = InvalidArg("rating must be between 1 and 5")
	ErrRatingNotInteger    = InvalidArg("rating must be a whole number")
	ErrTextTooShort        = InvalidArg("review text must be at least 10 characters")
	ErrTextTooLong         = InvalidArg("review text exceeds 5000 characters")
	ErrReviewWindowExpired = InvalidArg("review window has closed")
	ErrInvalidRate         = InvalidArg("rate must be a positive amount")
	ErrInvalidRateType     = InvalidArg("rate type must be hourly or flat")
	ErrInvalidStartTime    = InvalidArg("start time is required")
	ErrNotesTooLong        = InvalidArg("notes exceed 5000 characters")
	ErrInvalidUsername     = InvalidArg("username must be 3-32 chars, lowercase letters, numbers and underscores only")
	ErrInvalidDisplayName  = InvalidArg("display name cannot be empty")
)

func ErrRegistrationFailed(cause error) error {
	return Wrap(CodeInternal, "registration failed", cause)
}
