package store

import (
	"context"
	"errors"

	"github.com/deokisok/ootd/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type GarmentStore struct {
	db *pgxpool.Pool
}

func NewGarmentStore(db *pgxpool.Pool) *GarmentStore {
	return &GarmentStore{db: db}
}

const garmentColumns = `id, user_id, category, name, color, pattern, warmth, vibe,
	primary_style, secondary_style, image_ref, description, status, created_at, updated_at`

func scanGarment(row pgx.Row) (*domain.Garment, error) {
	g := &domain.Garment{}
	err := row.Scan(&g.ID, &g.UserID, &g.Category, &g.Name, &g.Color, &g.Pattern,
		&g.Warmth, &g.Vibe, &g.PrimaryStyle, &g.SecondaryStyle, &g.ImageRef,
		&g.Description, &g.Status, &g.CreatedAt, &g.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return g, nil
}

func (s *GarmentStore) Create(ctx context.Context, g *domain.Garment) error {
	if g.Status == "" {
		g.Status = domain.GarmentActive
	}
	return s.db.QueryRow(ctx,
		`INSERT INTO garments (user_id, category, name, color, pattern, warmth, vibe,
			primary_style, secondary_style, image_ref, description, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		 RETURNING id, created_at, updated_at`,
		g.UserID, g.Category, g.Name, g.Color, g.Pattern, g.Warmth, g.Vibe,
		g.PrimaryStyle, g.SecondaryStyle, g.ImageRef, g.Description, g.Status,
	).Scan(&g.ID, &g.CreatedAt, &g.UpdatedAt)
}

func (s *GarmentStore) GetByID(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*domain.Garment, error) {
	return scanGarment(s.db.QueryRow(ctx,
		`SELECT `+garmentColumns+` FROM garments WHERE id = $1 AND user_id = $2`,
		id, userID,
	))
}

func (s *GarmentStore) list(ctx context.Context, query string, args ...any) ([]domain.Garment, error) {
	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var garments []domain.Garment
	for rows.Next() {
		var g domain.Garment
		if err := rows.Scan(&g.ID, &g.UserID, &g.Category, &g.Name, &g.Color,
			&g.Pattern, &g.Warmth, &g.Vibe, &g.PrimaryStyle, &g.SecondaryStyle,
			&g.ImageRef, &g.Description, &g.Status, &g.CreatedAt, &g.UpdatedAt); err != nil {
			return nil, err
		}
		garments = append(garments, g)
	}
	return garments, rows.Err()
}

func (s *GarmentStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Garment, error) {
	return s.list(ctx,
		`SELECT `+garmentColumns+` FROM garments WHERE user_id = $1 ORDER BY created_at`,
		userID,
	)
}

func (s *GarmentStore) ListActiveByUser(ctx context.Context, userID uuid.UUID) ([]domain.Garment, error) {
	return s.list(ctx,
		`SELECT `+garmentColumns+` FROM garments
		 WHERE user_id = $1 AND status = $2 ORDER BY created_at`,
		userID, domain.GarmentActive,
	)
}

func (s *GarmentStore) Update(ctx context.Context, g *domain.Garment) error {
	tag, err := s.db.Exec(ctx,
		`UPDATE garments
		 SET name = $3, color = $4, pattern = $5, warmth = $6, vibe = $7,
		     primary_style = $8, secondary_style = $9, image_ref = $10,
		     description = $11, updated_at = NOW()
		 WHERE id = $1 AND user_id = $2`,
		g.ID, g.UserID, g.Name, g.Color, g.Pattern, g.Warmth, g.Vibe,
		g.PrimaryStyle, g.SecondaryStyle, g.ImageRef, g.Description,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GarmentStore) UpdateStatus(ctx context.Context, id uuid.UUID, userID uuid.UUID, status domain.GarmentStatus) error {
	tag, err := s.db.Exec(ctx,
		`UPDATE garments SET status = $3, updated_at = NOW()
		 WHERE id = $1 AND user_id = $2`,
		id, userID, status,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GarmentStore) Delete(ctx context.Context, id uuid.UUID, userID uuid.UUID) error {
	tag, err := s.db.Exec(ctx,
		`DELETE FROM garments WHERE id = $1 AND user_id = $2`,
		id, userID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GarmentStore) CountByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	var count int
	err := s.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM garments WHERE user_id = $1`,
		userID,
	).Scan(&count)
	return count, err
}
