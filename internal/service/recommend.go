package service

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/deokisok/ootd/internal/domain"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrInvalidSituation = errors.New("invalid situation")
	ErrInvalidStyle     = errors.New("invalid style filter")
)

const (
	// shortlistSize bounds what the re-ranking collaborator ever sees.
	shortlistSize = 6
	// tasteSummaryTop values per dimension go into the rerank taste summary.
	tasteSummaryTop = 3

	rerankTimeout  = 15 * time.Second
	weatherTimeout = 10 * time.Second
)

// RecommendationRequest carries one recommendation call's inputs. Exactly
// one of Temperature or Lat/Lon is expected; both absent means temperature
// scoring is skipped.
type RecommendationRequest struct {
	Situation   domain.Situation
	StyleFilter domain.Style
	Temperature *float64
	Lat, Lon    *float64
}

type RecommendationService struct {
	garments domain.GarmentStore
	profiles domain.ProfileStore
	sessions domain.SessionStore
	rerank   domain.RerankClient
	weather  domain.WeatherClient
	logger   *zap.Logger

	topK  int
	locks *userLocks
}

func NewRecommendationService(
	garments domain.GarmentStore,
	profiles domain.ProfileStore,
	sessions domain.SessionStore,
	rerank domain.RerankClient,
	weather domain.WeatherClient,
	logger *zap.Logger,
	topK int,
) *RecommendationService {
	return &RecommendationService{
		garments: garments,
		profiles: profiles,
		sessions: sessions,
		rerank:   rerank,
		weather:  weather,
		logger:   logger,
		topK:     topK,
		locks:    newUserLocks(),
	}
}

// Recommend runs the full pipeline: closet snapshot, effective temperature,
// candidate generation, compatibility scoring, ranking, optional re-rank,
// and session delivery. The delivered session is what a later feedback
// submission consumes.
func (s *RecommendationService) Recommend(ctx context.Context, userID uuid.UUID, req RecommendationRequest) (*domain.Recommendation, error) {
	if !domain.ValidSituation(string(req.Situation)) {
		return nil, ErrInvalidSituation
	}
	if req.StyleFilter != "" && !domain.ValidStyle(string(req.StyleFilter)) {
		return nil, ErrInvalidStyle
	}

	unlock := s.locks.Lock(userID)
	defer unlock()

	closet, err := s.garments.ListActiveByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	profile, err := s.profiles.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	ambient := s.lookupTemperature(ctx, req)
	effTemp := profile.EffectiveTemperature(ambient)

	candidates, err := GenerateCandidates(closet, effTemp, req.Situation, req.StyleFilter, s.topK)
	if err != nil {
		return nil, err
	}

	for i := range candidates {
		ScoreOutfit(&candidates[i], req.Situation, profile)
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Score > candidates[j].Score
	})
	if len(candidates) > shortlistSize {
		candidates = candidates[:shortlistSize]
	}

	// Default winner is the top scorer; re-ranking may substitute it but
	// can never do worse than keeping the default.
	chosen := 0
	rationale := ""
	rerankUsed := false
	if s.rerank != nil {
		if idx, why, ok := s.consultRerank(ctx, candidates, req.Situation, effTemp, profile); ok {
			chosen = idx
			rationale = why
			rerankUsed = true
		}
	}

	outfit := candidates[chosen]
	sess := &domain.RecommendationSession{
		UserID: userID,
		Context: domain.FeedbackContext{
			Situation:       req.Situation,
			StyleFilter:     req.StyleFilter,
			Temperature:     ambient,
			EffectiveTemp:   effTemp,
			RerankUsed:      rerankUsed,
			RerankRationale: rationale,
		},
		Outfit: outfit.Snapshot(),
		Score:  outfit.Score,
	}
	if err := s.sessions.Create(ctx, sess); err != nil {
		return nil, err
	}

	return &domain.Recommendation{
		SessionID:       sess.ID,
		Outfit:          outfit,
		Shortlist:       candidates,
		Situation:       req.Situation,
		Temperature:     ambient,
		EffectiveTemp:   effTemp,
		RerankUsed:      rerankUsed,
		RerankRationale: rationale,
	}, nil
}

// lookupTemperature resolves the ambient temperature: an explicit reading
// wins, else the weather collaborator is consulted. Any failure degrades to
// nil, which disables temperature scoring.
func (s *RecommendationService) lookupTemperature(ctx context.Context, req RecommendationRequest) *float64 {
	if req.Temperature != nil {
		return req.Temperature
	}
	if s.weather == nil || req.Lat == nil || req.Lon == nil {
		return nil
	}

	wctx, cancel := context.WithTimeout(ctx, weatherTimeout)
	defer cancel()

	temp, err := s.weather.CurrentTemperature(wctx, *req.Lat, *req.Lon)
	if err != nil {
		s.logger.Warn("weather lookup failed, skipping temperature rules", zap.Error(err))
		return nil
	}
	return temp
}

// consultRerank asks the external collaborator to pick a shortlist winner.
// Returns ok=false on any failure or out-of-range answer; the caller keeps
// the default ranking in that case.
func (s *RecommendationService) consultRerank(ctx context.Context, shortlist []domain.Candidate, situation domain.Situation, effTemp *float64, profile *domain.TasteProfile) (int, string, bool) {
	req := domain.RerankRequest{
		Situation:   situation,
		Temperature: effTemp,
		Taste:       profile.Summary(tasteSummaryTop),
	}
	for i := range shortlist {
		req.Candidates = append(req.Candidates, domain.RerankCandidate{
			Index:    i,
			Score:    shortlist[i].Score,
			Garments: shortlist[i].Snapshot(),
		})
	}

	rctx, cancel := context.WithTimeout(ctx, rerankTimeout)
	defer cancel()

	choice, err := s.rerank.Rerank(rctx, req)
	if err != nil {
		s.logger.Warn("rerank failed, keeping default ranking", zap.Error(err))
		return 0, "", false
	}
	if choice.Index < 0 || choice.Index >= len(shortlist) {
		s.logger.Warn("rerank returned out-of-range candidate, keeping default ranking",
			zap.Int("index", choice.Index), zap.Int("shortlist", len(shortlist)))
		return 0, "", false
	}
	return choice.Index, choice.Rationale, true
}
