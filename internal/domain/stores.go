package domain

import (
	"context"

	"github.com/google/uuid"
)

type UserStore interface {
	Create(ctx context.Context, u *User) error
	GetByAPIKeyHash(ctx context.Context, apiKeyHash string) (*User, error)
}

type GarmentStore interface {
	Create(ctx context.Context, g *Garment) error
	GetByID(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*Garment, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]Garment, error)
	// ListActiveByUser excludes garments pending deletion; this is the closet
	// snapshot recommendations are built from.
	ListActiveByUser(ctx context.Context, userID uuid.UUID) ([]Garment, error)
	Update(ctx context.Context, g *Garment) error
	UpdateStatus(ctx context.Context, id uuid.UUID, userID uuid.UUID, status GarmentStatus) error
	Delete(ctx context.Context, id uuid.UUID, userID uuid.UUID) error
	CountByUser(ctx context.Context, userID uuid.UUID) (int, error)
}

type ProfileStore interface {
	// Get returns a zero-value default profile when none is stored yet;
	// missing state is never an error.
	Get(ctx context.Context, userID uuid.UUID) (*TasteProfile, error)
	Save(ctx context.Context, p *TasteProfile) error
}

type FeedbackStore interface {
	Create(ctx context.Context, f *FeedbackRecord) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]FeedbackRecord, error)
	CountByUser(ctx context.Context, userID uuid.UUID) (int, error)
}

type SessionStore interface {
	// Create opens a session, replacing any open one for the same user.
	Create(ctx context.Context, s *RecommendationSession) error
	// GetOpen returns the user's open (delivered, unconsumed) session, or
	// ErrNotFound from the store layer if none exists.
	GetOpen(ctx context.Context, userID uuid.UUID) (*RecommendationSession, error)
	Consume(ctx context.Context, id uuid.UUID) error
}

// VisionClient classifies a garment photo into attribute labels. Output is
// untrusted; callers normalize it before storing.
type VisionClient interface {
	ClassifyGarment(ctx context.Context, image []byte, nameHint string) (Classification, error)
}

// RerankClient lets an external model pick a winner from the shortlist.
// Any error or out-of-range index is ignored by the caller.
type RerankClient interface {
	Rerank(ctx context.Context, req RerankRequest) (RerankChoice, error)
}

// WeatherClient reports the current ambient temperature. A nil temperature
// (lookup failed or unavailable) disables temperature-based scoring.
type WeatherClient interface {
	CurrentTemperature(ctx context.Context, lat, lon float64) (*float64, error)
}
