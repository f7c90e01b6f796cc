package service

import (
	"context"
	"errors"

	"github.com/deokisok/ootd/internal/domain"
	"github.com/deokisok/ootd/internal/store"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrNoOpenRecommendation = errors.New("no delivered recommendation to rate")
	ErrInvalidRating        = errors.New("rating must be between 1 and 5")
	ErrInvalidTempComfort   = errors.New("invalid temp_comfort")
	ErrInvalidApproval      = errors.New("invalid approval value")
)

// SubmitFeedbackRequest is one user rating of the delivered outfit.
type SubmitFeedbackRequest struct {
	Rating          int
	TempComfort     domain.TempComfort
	ColorApproval   domain.Approval
	PatternApproval domain.Approval
	VibeApproval    domain.Approval
	Note            string
}

type FeedbackService struct {
	sessions domain.SessionStore
	feedback domain.FeedbackStore
	profiles domain.ProfileStore
	logger   *zap.Logger

	locks *userLocks
}

func NewFeedbackService(sessions domain.SessionStore, feedback domain.FeedbackStore, profiles domain.ProfileStore, logger *zap.Logger) *FeedbackService {
	return &FeedbackService{
		sessions: sessions,
		feedback: feedback,
		profiles: profiles,
		logger:   logger,
		locks:    newUserLocks(),
	}
}

// Submit closes one recommendation cycle. Guard condition first: without an
// open delivered session nothing is mutated. On success the record is
// appended, the profile is updated (running mean, temperature bias, then
// the per-dimension counters), and the session is consumed.
func (s *FeedbackService) Submit(ctx context.Context, userID uuid.UUID, req SubmitFeedbackRequest) (*domain.FeedbackRecord, error) {
	if !domain.ValidRating(req.Rating) {
		return nil, ErrInvalidRating
	}
	if !domain.ValidTempComfort(string(req.TempComfort)) {
		return nil, ErrInvalidTempComfort
	}
	for _, a := range []domain.Approval{req.ColorApproval, req.PatternApproval, req.VibeApproval} {
		if !domain.ValidApproval(string(a)) {
			return nil, ErrInvalidApproval
		}
	}

	unlock := s.locks.Lock(userID)
	defer unlock()

	sess, err := s.sessions.GetOpen(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrNoOpenRecommendation
		}
		return nil, err
	}

	profile, err := s.profiles.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	record := &domain.FeedbackRecord{
		UserID:          userID,
		Rating:          req.Rating,
		TempComfort:     req.TempComfort,
		ColorApproval:   req.ColorApproval,
		PatternApproval: req.PatternApproval,
		VibeApproval:    req.VibeApproval,
		Note:            req.Note,
		Context:         sess.Context,
		Outfit:          sess.Outfit,
	}
	if err := s.feedback.Create(ctx, record); err != nil {
		return nil, err
	}

	profile.AddRating(req.Rating)
	profile.AdjustTempBias(req.TempComfort.BiasDelta())
	applyApprovals(profile, req, sess.Outfit)

	if err := s.profiles.Save(ctx, profile); err != nil {
		return nil, err
	}

	if err := s.sessions.Consume(ctx, sess.ID); err != nil {
		// The record and profile are already committed; an unconsumed
		// session only means the next submission reuses this context.
		s.logger.Warn("failed to consume recommendation session",
			zap.String("session_id", sess.ID.String()), zap.Error(err))
	}

	return record, nil
}

// applyApprovals updates the taste counters: "good" increments the
// preference counter for every non-unknown value in the delivered outfit,
// once per garment occurrence; "bad" does the same on the avoidance side;
// "neutral" leaves the counters alone.
func applyApprovals(profile *domain.TasteProfile, req SubmitFeedbackRequest, outfit []domain.GarmentSnapshot) {
	for _, g := range outfit {
		switch req.ColorApproval {
		case domain.ApprovalGood:
			if g.Color != domain.ColorUnknown {
				profile.ColorPref.Increment(string(g.Color))
			}
		case domain.ApprovalBad:
			if g.Color != domain.ColorUnknown {
				profile.ColorAvoid.Increment(string(g.Color))
			}
		}

		switch req.PatternApproval {
		case domain.ApprovalGood:
			if g.Pattern != domain.PatternUnknown {
				profile.PatternPref.Increment(string(g.Pattern))
			}
		case domain.ApprovalBad:
			if g.Pattern != domain.PatternUnknown {
				profile.PatternAvoid.Increment(string(g.Pattern))
			}
		}

		switch req.VibeApproval {
		case domain.ApprovalGood:
			if g.Vibe != domain.VibeUnknown {
				profile.VibePref.Increment(string(g.Vibe))
			}
		case domain.ApprovalBad:
			if g.Vibe != domain.VibeUnknown {
				profile.VibeAvoid.Increment(string(g.Vibe))
			}
		}
	}
}
