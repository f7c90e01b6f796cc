package service

import (
	"context"
	"errors"
	"time"

	"github.com/deokisok/ootd/internal/domain"
	"github.com/deokisok/ootd/internal/store"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrGarmentNotFound       = errors.New("garment not found")
	ErrInvalidCategory       = errors.New("invalid category")
	ErrInvalidStyleTag       = errors.New("invalid style tag")
	ErrGarmentNotPending     = errors.New("garment is not pending deletion")
	ErrGarmentAlreadyPending = errors.New("garment is already pending deletion")
)

const visionTimeout = 20 * time.Second

// CreateGarmentRequest is one garment submission, manual or bulk. Attribute
// fields are raw strings from the outside world; anything out of vocabulary
// is normalized to unknown. A photo, when present, is sent to the
// classification collaborator.
type CreateGarmentRequest struct {
	Category       string
	Name           string
	Color          string
	Pattern        string
	Warmth         string
	Vibe           string
	PrimaryStyle   string
	SecondaryStyle string
	ImageRef       string
	Image          []byte
}

// UpdateGarmentRequest carries optional field updates; nil means unchanged.
type UpdateGarmentRequest struct {
	Name           *string
	Color          *string
	Pattern        *string
	Warmth         *string
	Vibe           *string
	PrimaryStyle   *string
	SecondaryStyle *string
	ImageRef       *string
}

type ClosetService struct {
	garments domain.GarmentStore
	vision   domain.VisionClient
	logger   *zap.Logger
}

func NewClosetService(garments domain.GarmentStore, vision domain.VisionClient, logger *zap.Logger) *ClosetService {
	return &ClosetService{
		garments: garments,
		vision:   vision,
		logger:   logger,
	}
}

// Create validates and stores one garment. Vision classification is
// best-effort: when it fails, the garment is stored with all-unknown
// attributes rather than failing the creation.
func (s *ClosetService) Create(ctx context.Context, userID uuid.UUID, req CreateGarmentRequest) (*domain.Garment, error) {
	if !domain.ValidCategory(req.Category) {
		return nil, ErrInvalidCategory
	}
	if req.PrimaryStyle != "" && !domain.ValidStyle(req.PrimaryStyle) {
		return nil, ErrInvalidStyleTag
	}
	if req.SecondaryStyle != "" && !domain.ValidStyle(req.SecondaryStyle) {
		return nil, ErrInvalidStyleTag
	}

	name := req.Name
	if name == "" {
		name = req.Category
	}

	g := &domain.Garment{
		UserID:         userID,
		Category:       domain.Category(req.Category),
		Name:           name,
		Color:          domain.NormalizeColor(req.Color),
		Pattern:        domain.NormalizePattern(req.Pattern),
		Warmth:         domain.NormalizeWarmth(req.Warmth),
		Vibe:           domain.NormalizeVibe(req.Vibe),
		PrimaryStyle:   domain.Style(req.PrimaryStyle),
		SecondaryStyle: domain.Style(req.SecondaryStyle),
		ImageRef:       req.ImageRef,
		Status:         domain.GarmentActive,
	}
	g.NormalizeStyles()

	if len(req.Image) > 0 && s.vision != nil {
		g.ApplyClassification(s.classify(ctx, req.Image, name))
	}

	if err := s.garments.Create(ctx, g); err != nil {
		return nil, err
	}
	return g, nil
}

// BulkCreate imports several garments in one call. Each entry is validated
// independently; the first invalid entry aborts the import.
func (s *ClosetService) BulkCreate(ctx context.Context, userID uuid.UUID, reqs []CreateGarmentRequest) ([]domain.Garment, error) {
	created := make([]domain.Garment, 0, len(reqs))
	for _, req := range reqs {
		g, err := s.Create(ctx, userID, req)
		if err != nil {
			return created, err
		}
		created = append(created, *g)
	}
	return created, nil
}

func (s *ClosetService) Get(ctx context.Context, userID uuid.UUID, id uuid.UUID) (*domain.Garment, error) {
	g, err := s.garments.GetByID(ctx, id, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrGarmentNotFound
		}
		return nil, err
	}
	return g, nil
}

func (s *ClosetService) List(ctx context.Context, userID uuid.UUID) ([]domain.Garment, error) {
	return s.garments.ListByUser(ctx, userID)
}

func (s *ClosetService) Update(ctx context.Context, userID uuid.UUID, id uuid.UUID, req UpdateGarmentRequest) (*domain.Garment, error) {
	g, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil && *req.Name != "" {
		g.Name = *req.Name
	}
	if req.Color != nil {
		g.Color = domain.NormalizeColor(*req.Color)
	}
	if req.Pattern != nil {
		g.Pattern = domain.NormalizePattern(*req.Pattern)
	}
	if req.Warmth != nil {
		g.Warmth = domain.NormalizeWarmth(*req.Warmth)
	}
	if req.Vibe != nil {
		g.Vibe = domain.NormalizeVibe(*req.Vibe)
	}
	if req.PrimaryStyle != nil {
		if *req.PrimaryStyle != "" && !domain.ValidStyle(*req.PrimaryStyle) {
			return nil, ErrInvalidStyleTag
		}
		g.PrimaryStyle = domain.Style(*req.PrimaryStyle)
	}
	if req.SecondaryStyle != nil {
		if *req.SecondaryStyle != "" && !domain.ValidStyle(*req.SecondaryStyle) {
			return nil, ErrInvalidStyleTag
		}
		g.SecondaryStyle = domain.Style(*req.SecondaryStyle)
	}
	if req.ImageRef != nil {
		g.ImageRef = *req.ImageRef
	}
	g.NormalizeStyles()

	if err := s.garments.Update(ctx, g); err != nil {
		return nil, err
	}
	return g, nil
}

// MarkDelete starts the two-step deletion: the garment moves to
// pending_delete and drops out of recommendation snapshots, but stays
// recoverable until confirmed.
func (s *ClosetService) MarkDelete(ctx context.Context, userID uuid.UUID, id uuid.UUID) error {
	g, err := s.Get(ctx, userID, id)
	if err != nil {
		return err
	}
	if g.Status == domain.GarmentPendingDelete {
		return ErrGarmentAlreadyPending
	}
	return s.garments.UpdateStatus(ctx, id, userID, domain.GarmentPendingDelete)
}

// ConfirmDelete finishes the two-step deletion. Only pending garments can
// be hard-deleted.
func (s *ClosetService) ConfirmDelete(ctx context.Context, userID uuid.UUID, id uuid.UUID) error {
	g, err := s.Get(ctx, userID, id)
	if err != nil {
		return err
	}
	if g.Status != domain.GarmentPendingDelete {
		return ErrGarmentNotPending
	}
	return s.garments.Delete(ctx, id, userID)
}

// Restore cancels a pending deletion.
func (s *ClosetService) Restore(ctx context.Context, userID uuid.UUID, id uuid.UUID) error {
	g, err := s.Get(ctx, userID, id)
	if err != nil {
		return err
	}
	if g.Status != domain.GarmentPendingDelete {
		return ErrGarmentNotPending
	}
	return s.garments.UpdateStatus(ctx, id, userID, domain.GarmentActive)
}

// Analyze re-runs vision classification for an existing garment. On
// collaborator failure the stored attributes are left untouched; the
// result is only diminished, never an error.
func (s *ClosetService) Analyze(ctx context.Context, userID uuid.UUID, id uuid.UUID, image []byte) (*domain.Garment, error) {
	g, err := s.Get(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if s.vision == nil || len(image) == 0 {
		return g, nil
	}

	vctx, cancel := context.WithTimeout(ctx, visionTimeout)
	defer cancel()

	c, err := s.vision.ClassifyGarment(vctx, image, g.Name)
	if err != nil {
		s.logger.Warn("vision classification failed, keeping stored attributes",
			zap.String("garment_id", id.String()), zap.Error(err))
		return g, nil
	}

	g.ApplyClassification(c)
	if err := s.garments.Update(ctx, g); err != nil {
		return nil, err
	}
	return g, nil
}

// classify wraps the collaborator call for creation: failures degrade to
// the all-unknown record.
func (s *ClosetService) classify(ctx context.Context, image []byte, nameHint string) domain.Classification {
	vctx, cancel := context.WithTimeout(ctx, visionTimeout)
	defer cancel()

	c, err := s.vision.ClassifyGarment(vctx, image, nameHint)
	if err != nil {
		s.logger.Warn("vision classification failed, defaulting to unknown attributes",
			zap.String("name", nameHint), zap.Error(err))
		return domain.UnknownClassification()
	}
	return c
}
