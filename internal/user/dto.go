package user

import (
	models "taskbridge/internal/user/model"

	"github.com/google/uuid"
)

// NOTE: commands travel from handler to usecase
// Note: DTO travels from usecase to handler

// Caller is the resolved identity every operation runs on behalf of.
// It is looked up once per request and passed down explicitly.
type Caller struct {
	ID       uuid.UUID
	Username string
	Name     string
}

// Resolved reports whether c identifies a real user.
func (c *Caller) Resolved() bool {
	return c != nil && c.ID != uuid.Nil
}

// Input commands
type RegisterCommand struct {
	Username    string
	DisplayName string
}

// Output DTOs
type UserDTO struct {
	ID          uuid.UUID `json:"id"`
	Username    string    `json:"username"`
	DisplayName string    `json:"display_name"`
}

type ReputationDTO struct {
	Rating float64 `json:"rating"`
	Count  int64   `json:"count"`
}

type UserProfileDTO struct {
	UserDTO
	AsSeeker ReputationDTO `json:"as_seeker"`
	AsTasker ReputationDTO `json:"as_tasker"`
}

func toUserDTO(u *models.User) UserDTO {
	return UserDTO{ID: u.ID, Username: u.Username, DisplayName: u.Name}
}

// ToProfileDTO folds u and its reputation rows into one view.
func ToProfileDTO(u *models.User, profiles []models.ReputationProfile) *UserProfileDTO {
	dto := &UserProfileDTO{UserDTO: toUserDTO(u)}
	for _, p := range profiles {
		rep := ReputationDTO{Rating: p.Rating, Count: p.RatingCount}
		switch p.Role {
		case models.RoleSeeker:
			dto.AsSeeker = rep
		case models.RoleTasker:
			dto.AsTasker = rep
		}
	}
	return dto
}

func ToUserDTO(u *models.User) *UserDTO {
	dto := toUserDTO(u)
	return &dto
}
