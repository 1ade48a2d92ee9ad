package usecase

import (
	"context"
	"regexp"
	"strings"

	"taskbridge/internal/user"
	models "taskbridge/internal/user/model"
	"taskbridge/internal/user/repository"
	"taskbridge/pkg/errors"
	"taskbridge/pkg/logger"

	"github.com/google/uuid"
	pkgerrors "github.com/pkg/errors"
)

type UserUsecase struct {
	repo   user.UserRepository
	logger logger.Logger
}

func NewUserUsecase(repo user.UserRepository, logger logger.Logger) *UserUsecase {
	return &UserUsecase{repo: repo, logger: logger}
}

func (uc *UserUsecase) Register(ctx context.Context, cmd user.RegisterCommand) (*user.UserDTO, error) {
	if err := validateUsername(cmd.Username); err != nil {
		return nil, err
	}
	displayName := strings.TrimSpace(cmd.DisplayName)
	if displayName == "" {
		return nil, errors.ErrInvalidDisplayName
	}

	u := &models.User{
		ID:       uuid.New(),
		Username: cmd.Username,
		Name:     displayName,
	}
	err := uc.repo.CreateUserWithProfiles(ctx, u)
	if err != nil {
		if pkgerrors.Is(err, repository.ErrUsernameTaken) {
			return nil, errors.ErrUsernameTaken
		}
		uc.logger.Errorf("error while saving user in db: %v", err)
		return nil, errors.ErrRegistrationFailed(errors.Internal("database error"))
	}

	return user.ToUserDTO(u), nil
}

var usernameRegex = regexp.MustCompile(`^[a-z0-9_]{3,32}$`)

func validateUsername(username string) error {
	if !usernameRegex.MatchString(username) {
		return errors.ErrInvalidUsername
	}
	return nil
}

func (uc *UserUsecase) UpdateDisplayName(ctx context.Context, caller *user.Caller, newName string) error {
	if !caller.Resolved() {
		return errors.ErrUnauthorized
	}
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return errors.ErrInvalidDisplayName
	}

	err := uc.repo.UpdateUserDisplayName(ctx, caller.ID, newName)
	if err != nil {
		if pkgerrors.Is(err, repository.ErrUserNotFound) {
			return errors.ErrUserNotFound
		}
		uc.logger.Errorf("error while updating display name in db: %v", err)
		return errors.Internal("error while updating display name in db")
	}
	return nil
}

func (uc *UserUsecase) ResolveCaller(ctx context.Context, userID uuid.UUID) (*user.Caller, error) {
	if userID == uuid.Nil {
		return nil, errors.ErrUnauthorized
	}
	u, err := uc.repo.GetUserByID(ctx, userID)
	if err != nil {
		if pkgerrors.Is(err, repository.ErrUserNotFound) {
			uc.logger.Warn("token issued for unknown user", "user_id", userID)
			return nil, errors.ErrUnauthorized
		}
		uc.logger.Error("failed to resolve caller", "user_id", userID, "err", err)
		return nil, errors.Internal("failed to resolve caller")
	}
	return &user.Caller{ID: u.ID, Username: u.Username, Name: u.Name}, nil
}

func (uc *UserUsecase) GetUserProfile(ctx context.Context, userID uuid.UUID) (*user.UserProfileDTO, error) {
	u, err := uc.repo.GetUserByID(ctx, userID)
	if err != nil {
		if pkgerrors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.ErrUserNotFound
		}
		uc.logger.Error("failed to load user", "user_id", userID, "err", err)
		return nil, errors.Internal("failed to load user")
	}

	profiles, err := uc.repo.GetProfiles(ctx, userID)
	if err != nil {
		uc.logger.Error("failed to load reputation", "user_id", userID, "err", err)
		return nil, errors.Internal("failed to load reputation")
	}
	return user.ToProfileDTO(u, profiles), nil
}
