package domain

import (
	"time"

	"github.com/google/uuid"
)

type TempComfort string

const (
	TempTooCold   TempComfort = "too_cold"
	TempJustRight TempComfort = "just_right"
	TempTooHot    TempComfort = "too_hot"
)

func ValidTempComfort(t string) bool {
	switch TempComfort(t) {
	case TempTooCold, TempJustRight, TempTooHot:
		return true
	}
	return false
}

// BiasDelta is the temperature-bias correction a comfort signal applies.
func (t TempComfort) BiasDelta() float64 {
	switch t {
	case TempTooCold:
		return 1.0
	case TempTooHot:
		return -1.0
	default:
		return 0.0
	}
}

type Approval string

const (
	ApprovalGood    Approval = "good"
	ApprovalNeutral Approval = "neutral"
	ApprovalBad     Approval = "bad"
)

func ValidApproval(a string) bool {
	switch Approval(a) {
	case ApprovalGood, ApprovalNeutral, ApprovalBad:
		return true
	}
	return false
}

const (
	RatingMin = 1
	RatingMax = 5
)

func ValidRating(r int) bool {
	return r >= RatingMin && r <= RatingMax
}

// GarmentSnapshot freezes a delivered garment's attributes at delivery time,
// so reports stay correct if the garment is later edited or deleted.
type GarmentSnapshot struct {
	GarmentID uuid.UUID `json:"garment_id"`
	Slot      Category  `json:"slot"`
	Name      string    `json:"name"`
	Color     Color     `json:"color"`
	Pattern   Pattern   `json:"pattern"`
	Warmth    Warmth    `json:"warmth"`
	Vibe      Vibe      `json:"vibe"`
}

// FeedbackContext snapshots the situational inputs the recommendation was
// built from.
type FeedbackContext struct {
	Situation       Situation `json:"situation"`
	StyleFilter     Style     `json:"style_filter,omitempty"`
	Temperature     *float64  `json:"temperature,omitempty"`
	EffectiveTemp   *float64  `json:"effective_temp,omitempty"`
	RerankUsed      bool      `json:"rerank_used"`
	RerankRationale string    `json:"rerank_rationale,omitempty"`
}

// FeedbackRecord is one submitted rating. Append-only; never mutated.
type FeedbackRecord struct {
	ID              uuid.UUID         `json:"id"`
	UserID          uuid.UUID         `json:"user_id"`
	Rating          int               `json:"rating"`
	TempComfort     TempComfort       `json:"temp_comfort"`
	ColorApproval   Approval          `json:"color_approval"`
	PatternApproval Approval          `json:"pattern_approval"`
	VibeApproval    Approval          `json:"vibe_approval"`
	Note            string            `json:"note,omitempty"`
	Context         FeedbackContext   `json:"context"`
	Outfit          []GarmentSnapshot `json:"outfit"`
	CreatedAt       time.Time         `json:"created_at"`
}
