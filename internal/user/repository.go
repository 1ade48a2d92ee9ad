package user

import (
	"context"

	models "taskbridge/internal/user/model"

	"github.com/google/uuid"
)

type UserRepository interface {
	// Creates the user together with an empty seeker and tasker profile
	CreateUserWithProfiles(ctx context.Context, user *models.User) error
	GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	UpdateUserDisplayName(ctx context.Context, userID uuid.UUID, newName string) error

	GetProfiles(ctx context.Context, userID uuid.UUID) ([]models.ReputationProfile, error)
	// Atomically folds rating into the (userID, role) profile under a row lock
	ApplyRating(ctx context.Context, userID uuid.UUID, role models.Role, rating int) (*models.ReputationProfile, error)
}
