package srs

import (
	"time"

	"github.com/google/uuid"
)

// ReviewLog records a single rating of a card.
type ReviewLog struct {
	CardID         uuid.UUID `json:"card_id"`
	Rating         Rating    `json:"rating"`
	Status         Status    `json:"status"` // status before the rating.
	ReviewedAt     time.Time `json:"reviewed_at"`
	ReviewDuration *int      `json:"review_duration,omitempty"` // milliseconds, optional.
}
