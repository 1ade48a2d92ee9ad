package models

import (
	"time"

	"github.com/google/uuid"
)

// Role is the side a user plays on a job. Each role has its own reputation.
type Role string

const (
	RoleSeeker Role = "seeker"
	RoleTasker Role = "tasker"
)

func (r Role) Valid() bool {
	return r == RoleSeeker || r == RoleTasker
}

const (
	MinRating = 0.0
	MaxRating = 5.0
)

type ReputationProfile struct {
	UserID uuid.UUID `bun:",pk,type:uuid"`
	Role   Role      `bun:",pk"`

	Rating      float64 `bun:",notnull,default:0"`
	RatingCount int64   `bun:",notnull,default:0"`

	UpdatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}

// Fold adds one rating to the running count-weighted mean.
func (p *ReputationProfile) Fold(rating int) {
	n := float64(p.RatingCount)
	next := (p.Rating*n + float64(rating)) / (n + 1)
	p.Rating = clamp(next, MinRating, MaxRating)
	p.RatingCount++
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
