package domain

import (
	"time"

	"github.com/google/uuid"
)

// RecommendationSession is the persisted "recommendation delivered" state of
// the feedback cycle. At most one open session exists per user; submitting
// feedback consumes it, returning the cycle to its idle state.
type RecommendationSession struct {
	ID          uuid.UUID         `json:"id"`
	UserID      uuid.UUID         `json:"user_id"`
	Context     FeedbackContext   `json:"context"`
	Outfit      []GarmentSnapshot `json:"outfit"`
	Score       int               `json:"score"`
	DeliveredAt time.Time         `json:"delivered_at"`
	ConsumedAt  *time.Time        `json:"consumed_at,omitempty"`
}
