package store

import (
	"context"
	"errors"

	"github.com/deokisok/ootd/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ProfileStore struct {
	db *pgxpool.Pool
}

func NewProfileStore(db *pgxpool.Pool) *ProfileStore {
	return &ProfileStore{db: db}
}

// Get loads the user's taste profile. A user with no stored profile gets the
// all-zero default rather than an error.
func (s *ProfileStore) Get(ctx context.Context, userID uuid.UUID) (*domain.TasteProfile, error) {
	p := &domain.TasteProfile{UserID: userID}
	err := s.db.QueryRow(ctx,
		`SELECT temp_bias, color_pref, color_avoid, pattern_pref, pattern_avoid,
		        vibe_pref, vibe_avoid, avg_rating, rating_count, updated_at
		 FROM taste_profiles WHERE user_id = $1`,
		userID,
	).Scan(&p.TempBias, &p.ColorPref, &p.ColorAvoid, &p.PatternPref, &p.PatternAvoid,
		&p.VibePref, &p.VibeAvoid, &p.AvgRating, &p.RatingCount, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.NewTasteProfile(userID), nil
		}
		return nil, err
	}
	p.EnsureCounters()
	return p, nil
}

func (s *ProfileStore) Save(ctx context.Context, p *domain.TasteProfile) error {
	return s.db.QueryRow(ctx,
		`INSERT INTO taste_profiles (user_id, temp_bias, color_pref, color_avoid,
			pattern_pref, pattern_avoid, vibe_pref, vibe_avoid, avg_rating, rating_count)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 ON CONFLICT (user_id) DO UPDATE SET
			temp_bias = EXCLUDED.temp_bias,
			color_pref = EXCLUDED.color_pref,
			color_avoid = EXCLUDED.color_avoid,
			pattern_pref = EXCLUDED.pattern_pref,
			pattern_avoid = EXCLUDED.pattern_avoid,
			vibe_pref = EXCLUDED.vibe_pref,
			vibe_avoid = EXCLUDED.vibe_avoid,
			avg_rating = EXCLUDED.avg_rating,
			rating_count = EXCLUDED.rating_count,
			updated_at = NOW()
		 RETURNING updated_at`,
		p.UserID, p.TempBias, p.ColorPref, p.ColorAvoid, p.PatternPref,
		p.PatternAvoid, p.VibePref, p.VibeAvoid, p.AvgRating, p.RatingCount,
	).Scan(&p.UpdatedAt)
}
