package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	MinRating     = 1
	MaxRating     = 5
	MinTextLength = 10
	MaxTextLength = 5000
)

type Review struct {
	ID         uuid.UUID `bun:",pk,type:uuid,default:gen_random_uuid()"`
	JobID      uuid.UUID `bun:",notnull,type:uuid"`
	ReviewerID uuid.UUID `bun:",notnull,type:uuid"`
	RevieweeID uuid.UUID `bun:",notnull,type:uuid"`

	Rating int    `bun:",notnull"`
	Text   string `bun:",type:text,notnull"`

	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}
