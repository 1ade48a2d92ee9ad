package repository

import (
	"context"
	"database/sql"
	"time"

	models "taskbridge/internal/user/model"
	"taskbridge/internal/store"
	"taskbridge/pkg/logger"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"
)

type UserRepository struct {
	db     *bun.DB
	logger *logger.Logger
}

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrUsernameTaken = errors.New("username is already taken")
)

func NewUserRepository(db *bun.DB, logger logger.Logger) *UserRepository {
	return &UserRepository{
		db:     db,
		logger: &logger,
	}
}

func (r *UserRepository) CreateUserWithProfiles(ctx context.Context, user *models.User) error {
	return store.RunInTx(ctx, r.db, func(ctx context.Context, tx bun.IDB) error {
		_, err := tx.NewInsert().Model(user).Returning("*").Exec(ctx)
		if err != nil {
			if store.IsUniqueViolation(err) {
				return ErrUsernameTaken
			}
			return errors.Wrap(err, "register.insertUser")
		}

		profiles := []models.ReputationProfile{
			{UserID: user.ID, Role: models.RoleSeeker},
			{UserID: user.ID, Role: models.RoleTasker},
		}
		if _, err := tx.NewInsert().Model(&profiles).Exec(ctx); err != nil {
			return errors.Wrap(err, "register.insertProfiles")
		}
		return nil
	})
}

func (r *UserRepository) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user := new(models.User)
	err := store.Conn(ctx, r.db).NewSelect().Model(user).Where("id = ?", id).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, errors.Wrap(err, "userRepo.GetUserByID.Scan: ")
	}
	return user, nil
}

func (r *UserRepository) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	user := new(models.User)
	err := store.Conn(ctx, r.db).NewSelect().Model(user).Where("username = ?", username).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, errors.Wrap(err, "userRepo.GetUserByUsername.Scan: ")
	}
	return user, nil
}

func (r *UserRepository) UpdateUserDisplayName(ctx context.Context, userID uuid.UUID, newName string) error {
	res, err := store.Conn(ctx, r.db).NewUpdate().
		Model((*models.User)(nil)).
		Set("name = ?", newName).
		Set("updated_at = ?", time.Now()).
		Where("id = ?", userID).
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "userRepo.UpdateUserDisplayName.Update: ")
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) GetProfiles(ctx context.Context, userID uuid.UUID) ([]models.ReputationProfile, error) {
	var profiles []models.ReputationProfile
	err := store.Conn(ctx, r.db).NewSelect().
		Model(&profiles).
		Where("user_id = ?", userID).
		Order("role ASC").
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "userRepo.GetProfiles.Scan: ")
	}
	return profiles, nil
}

func (r *UserRepository) ApplyRating(ctx context.Context, userID uuid.UUID, role models.Role, rating int) (*models.ReputationProfile, error) {
	profile := &models.ReputationProfile{UserID: userID, Role: role}

	err := store.RunInTx(ctx, r.db, func(ctx context.Context, tx bun.IDB) error {
		// profiles normally exist from registration; tolerate users created elsewhere
		_, err := tx.NewInsert().
			Model(profile).
			On("CONFLICT (user_id, role) DO NOTHING").
			Exec(ctx)
		if err != nil {
			return errors.Wrap(err, "userRepo.ApplyRating.Ensure")
		}

		// "FOR UPDATE" serializes concurrent reviews of the same reviewee
		err = tx.NewSelect().
			Model(profile).
			WherePK().
			For("UPDATE").
			Scan(ctx)
		if err != nil {
			return errors.Wrap(err, "userRepo.ApplyRating.Lock")
		}

		profile.Fold(rating)
		profile.UpdatedAt = time.Now()

		_, err = tx.NewUpdate().
			Model(profile).
			Column("rating", "rating_count", "updated_at").
			WherePK().
			Exec(ctx)
		if err != nil {
			return errors.Wrap(err, "userRepo.ApplyRating.Update")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return profile, nil
}
