package store

import (
	"context"
	"errors"

	"github.com/deokisok/ootd/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SessionStore persists the delivered-recommendation state between the
// recommendation call and the feedback call. One open session per user.
type SessionStore struct {
	db *pgxpool.Pool
}

func NewSessionStore(db *pgxpool.Pool) *SessionStore {
	return &SessionStore{db: db}
}

// Create opens a new session. Any previously open session for the user is
// consumed first, so a fresh recommendation always supersedes a stale one.
func (s *SessionStore) Create(ctx context.Context, sess *domain.RecommendationSession) error {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	_, err = tx.Exec(ctx,
		`UPDATE recommendation_sessions SET consumed_at = NOW()
		 WHERE user_id = $1 AND consumed_at IS NULL`,
		sess.UserID,
	)
	if err != nil {
		return err
	}

	err = tx.QueryRow(ctx,
		`INSERT INTO recommendation_sessions (user_id, context, outfit, score)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, delivered_at`,
		sess.UserID, sess.Context, sess.Outfit, sess.Score,
	).Scan(&sess.ID, &sess.DeliveredAt)
	if err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (s *SessionStore) GetOpen(ctx context.Context, userID uuid.UUID) (*domain.RecommendationSession, error) {
	sess := &domain.RecommendationSession{}
	err := s.db.QueryRow(ctx,
		`SELECT id, user_id, context, outfit, score, delivered_at, consumed_at
		 FROM recommendation_sessions
		 WHERE user_id = $1 AND consumed_at IS NULL
		 ORDER BY delivered_at DESC LIMIT 1`,
		userID,
	).Scan(&sess.ID, &sess.UserID, &sess.Context, &sess.Outfit, &sess.Score,
		&sess.DeliveredAt, &sess.ConsumedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return sess, nil
}

func (s *SessionStore) Consume(ctx context.Context, id uuid.UUID) error {
	tag, err := s.db.Exec(ctx,
		`UPDATE recommendation_sessions SET consumed_at = NOW()
		 WHERE id = $1 AND consumed_at IS NULL`,
		id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
