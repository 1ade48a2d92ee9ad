package user

import (
	"context"

	"github.com/google/uuid"
)

type UserUsecase interface {
	// Register new user with username + display name
	Register(ctx context.Context, cmd RegisterCommand) (*UserDTO, error)

	// Update display name only (username is immutable)
	UpdateDisplayName(ctx context.Context, caller *Caller, newName string) error

	// Loads the caller record for an authenticated user id
	ResolveCaller(ctx context.Context, userID uuid.UUID) (*Caller, error)

	GetUserProfile(ctx context.Context, userID uuid.UUID) (*UserProfileDTO, error)
}
