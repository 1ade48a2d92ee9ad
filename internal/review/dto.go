package review

import (
	"time"

	"taskbridge/internal/review/model"

	"github.com/google/uuid"
)

// Input commands
type SubmitReviewCommand struct {
	JobID uuid.UUID
	// Kept as a float so fractional input can be rejected rather than truncated
	Rating float64
	Text   string
}

// Output DTOs
type ReviewDTO struct {
	ID         uuid.UUID `json:"id"`
	JobID      uuid.UUID `json:"job_id"`
	ReviewerID uuid.UUID `json:"reviewer_id"`
	RevieweeID uuid.UUID `json:"reviewee_id"`
	Rating     int       `json:"rating"`
	Text       string    `json:"text"`
	CreatedAt  time.Time `json:"created_at"`
}

func ToReviewDTO(r *model.Review) ReviewDTO {
	return ReviewDTO{
		ID:         r.ID,
		JobID:      r.JobID,
		ReviewerID: r.ReviewerID,
		RevieweeID: r.RevieweeID,
		Rating:     r.Rating,
		Text:       r.Text,
		CreatedAt:  r.CreatedAt,
	}
}
