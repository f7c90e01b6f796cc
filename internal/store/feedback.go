package store

import (
	"context"

	"github.com/deokisok/ootd/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// FeedbackStore appends and reads the immutable feedback log. There is no
// update or delete; records are snapshots and stay as written.
type FeedbackStore struct {
	db *pgxpool.Pool
}

func NewFeedbackStore(db *pgxpool.Pool) *FeedbackStore {
	return &FeedbackStore{db: db}
}

func (s *FeedbackStore) Create(ctx context.Context, f *domain.FeedbackRecord) error {
	return s.db.QueryRow(ctx,
		`INSERT INTO feedback_log (user_id, rating, temp_comfort, color_approval,
			pattern_approval, vibe_approval, note, context, outfit)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING id, created_at`,
		f.UserID, f.Rating, f.TempComfort, f.ColorApproval, f.PatternApproval,
		f.VibeApproval, f.Note, f.Context, f.Outfit,
	).Scan(&f.ID, &f.CreatedAt)
}

func (s *FeedbackStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.FeedbackRecord, error) {
	rows, err := s.db.Query(ctx,
		`SELECT id, user_id, rating, temp_comfort, color_approval, pattern_approval,
		        vibe_approval, note, context, outfit, created_at
		 FROM feedback_log WHERE user_id = $1
		 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []domain.FeedbackRecord
	for rows.Next() {
		var f domain.FeedbackRecord
		if err := rows.Scan(&f.ID, &f.UserID, &f.Rating, &f.TempComfort,
			&f.ColorApproval, &f.PatternApproval, &f.VibeApproval, &f.Note,
			&f.Context, &f.Outfit, &f.CreatedAt); err != nil {
			return nil, err
		}
		records = append(records, f)
	}
	return records, rows.Err()
}

func (s *FeedbackStore) CountByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	var count int
	err := s.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM feedback_log WHERE user_id = $1`,
		userID,
	).Scan(&count)
	return count, err
}
