package service

import (
	"context"
	"errors"
	"testing"

	"github.com/deokisok/ootd/internal/domain"
	"github.com/deokisok/ootd/internal/rerank"
	"github.com/deokisok/ootd/internal/store"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type mockGarmentStore struct {
	garments map[uuid.UUID]*domain.Garment
}

func newMockGarmentStore() *mockGarmentStore {
	return &mockGarmentStore{garments: make(map[uuid.UUID]*domain.Garment)}
}

func (m *mockGarmentStore) Create(_ context.Context, g *domain.Garment) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	if g.Status == "" {
		g.Status = domain.GarmentActive
	}
	cp := *g
	m.garments[g.ID] = &cp
	return nil
}

func (m *mockGarmentStore) GetByID(_ context.Context, id, userID uuid.UUID) (*domain.Garment, error) {
	g, ok := m.garments[id]
	if !ok || g.UserID != userID {
		return nil, store.ErrNotFound
	}
	cp := *g
	return &cp, nil
}

func (m *mockGarmentStore) ListByUser(_ context.Context, userID uuid.UUID) ([]domain.Garment, error) {
	var out []domain.Garment
	for _, g := range m.garments {
		if g.UserID == userID {
			out = append(out, *g)
		}
	}
	return out, nil
}

func (m *mockGarmentStore) ListActiveByUser(_ context.Context, userID uuid.UUID) ([]domain.Garment, error) {
	var out []domain.Garment
	for _, g := range m.garments {
		if g.UserID == userID && g.Status == domain.GarmentActive {
			out = append(out, *g)
		}
	}
	return out, nil
}

func (m *mockGarmentStore) Update(_ context.Context, g *domain.Garment) error {
	if _, ok := m.garments[g.ID]; !ok {
		return store.ErrNotFound
	}
	cp := *g
	m.garments[g.ID] = &cp
	return nil
}

func (m *mockGarmentStore) UpdateStatus(_ context.Context, id, userID uuid.UUID, status domain.GarmentStatus) error {
	g, ok := m.garments[id]
	if !ok || g.UserID != userID {
		return store.ErrNotFound
	}
	g.Status = status
	return nil
}

func (m *mockGarmentStore) Delete(_ context.Context, id, userID uuid.UUID) error {
	g, ok := m.garments[id]
	if !ok || g.UserID != userID {
		return store.ErrNotFound
	}
	delete(m.garments, id)
	return nil
}

func (m *mockGarmentStore) CountByUser(_ context.Context, userID uuid.UUID) (int, error) {
	count := 0
	for _, g := range m.garments {
		if g.UserID == userID {
			count++
		}
	}
	return count, nil
}

func seedCloset(t *testing.T, garments *mockGarmentStore, userID uuid.UUID) {
	t.Helper()
	closet := []domain.Garment{
		{Category: domain.CategoryTop, Name: "white shirt", Color: domain.ColorWhite, Pattern: domain.PatternSolid, Warmth: domain.WarmthMid, Vibe: domain.VibeFormal},
		{Category: domain.CategoryTop, Name: "gray hoodie", Color: domain.ColorGray, Pattern: domain.PatternSolid, Warmth: domain.WarmthThick, Vibe: domain.VibeCasual},
		{Category: domain.CategoryBottom, Name: "black slacks", Color: domain.ColorBlack, Pattern: domain.PatternSolid, Warmth: domain.WarmthMid, Vibe: domain.VibeFormal},
		{Category: domain.CategoryBottom, Name: "blue jeans", Color: domain.ColorBlue, Pattern: domain.PatternSolid, Warmth: domain.WarmthMid, Vibe: domain.VibeCasual},
		{Category: domain.CategoryShoes, Name: "black loafers", Color: domain.ColorBlack, Pattern: domain.PatternSolid, Warmth: domain.WarmthThin, Vibe: domain.VibeFormal},
		{Category: domain.CategoryOuter, Name: "navy coat", Color: domain.ColorNavy, Pattern: domain.PatternSolid, Warmth: domain.WarmthThick, Vibe: domain.VibeMinimal},
	}
	for i := range closet {
		closet[i].UserID = userID
		if err := garments.Create(context.Background(), &closet[i]); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
}

func setupRecommendTest(rr domain.RerankClient) (*RecommendationService, *mockGarmentStore, *mockSessionStore, uuid.UUID) {
	garments := newMockGarmentStore()
	profiles := newMockProfileStore()
	sessions := newMockSessionStore()
	svc := NewRecommendationService(garments, profiles, sessions, rr, nil, zap.NewNop(), 3)
	return svc, garments, sessions, uuid.New()
}

func TestRecommend_InvalidInput(t *testing.T) {
	svc, _, _, userID := setupRecommendTest(nil)

	_, err := svc.Recommend(context.Background(), userID, RecommendationRequest{Situation: "gala"})
	if !errors.Is(err, ErrInvalidSituation) {
		t.Errorf("err = %v, want ErrInvalidSituation", err)
	}

	_, err = svc.Recommend(context.Background(), userID, RecommendationRequest{
		Situation:   domain.SituationWork,
		StyleFilter: "grunge",
	})
	if !errors.Is(err, ErrInvalidStyle) {
		t.Errorf("err = %v, want ErrInvalidStyle", err)
	}
}

func TestRecommend_EmptyCloset(t *testing.T) {
	svc, _, _, userID := setupRecommendTest(nil)

	_, err := svc.Recommend(context.Background(), userID, RecommendationRequest{Situation: domain.SituationDaily})
	if !errors.Is(err, ErrInsufficientWardrobe) {
		t.Errorf("err = %v, want ErrInsufficientWardrobe", err)
	}
}

func TestRecommend_DeliversSession(t *testing.T) {
	svc, garments, sessions, userID := setupRecommendTest(nil)
	seedCloset(t, garments, userID)

	rec, err := svc.Recommend(context.Background(), userID, RecommendationRequest{
		Situation:   domain.SituationWork,
		Temperature: temp(8),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if rec.SessionID == uuid.Nil {
		t.Error("session ID should be set")
	}
	if rec.RerankUsed {
		t.Error("no rerank client was configured")
	}
	if len(rec.Shortlist) == 0 || len(rec.Shortlist) > shortlistSize {
		t.Errorf("shortlist size = %d, want 1..%d", len(rec.Shortlist), shortlistSize)
	}
	if rec.Outfit.Score != rec.Shortlist[0].Score {
		t.Error("default winner should be the top of the shortlist")
	}
	if rec.EffectiveTemp == nil || *rec.EffectiveTemp != 8.0 {
		t.Errorf("effective temp = %v, want 8 with zero bias", rec.EffectiveTemp)
	}

	sess, err := sessions.GetOpen(context.Background(), userID)
	if err != nil {
		t.Fatalf("no open session after delivery: %v", err)
	}
	if len(sess.Outfit) < 3 {
		t.Errorf("session snapshot has %d garments, want at least 3", len(sess.Outfit))
	}
}

func TestRecommend_AppliesTempBias(t *testing.T) {
	garments := newMockGarmentStore()
	profiles := newMockProfileStore()
	sessions := newMockSessionStore()
	svc := NewRecommendationService(garments, profiles, sessions, nil, nil, zap.NewNop(), 3)

	userID := uuid.New()
	seedCloset(t, garments, userID)

	p := domain.NewTasteProfile(userID)
	p.TempBias = -2.0
	_ = profiles.Save(context.Background(), p)

	rec, err := svc.Recommend(context.Background(), userID, RecommendationRequest{
		Situation:   domain.SituationDaily,
		Temperature: temp(12),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.EffectiveTemp == nil || *rec.EffectiveTemp != 10.0 {
		t.Errorf("effective temp = %v, want 10 after -2 bias", rec.EffectiveTemp)
	}
	if rec.Temperature == nil || *rec.Temperature != 12.0 {
		t.Errorf("ambient temp = %v, want the raw 12", rec.Temperature)
	}
}

func TestRecommend_NoTemperature(t *testing.T) {
	svc, garments, _, userID := setupRecommendTest(nil)
	seedCloset(t, garments, userID)

	rec, err := svc.Recommend(context.Background(), userID, RecommendationRequest{Situation: domain.SituationDaily})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Temperature != nil || rec.EffectiveTemp != nil {
		t.Error("no reading and no weather client should leave temperatures nil")
	}
}

func TestRecommend_RerankPicksWinner(t *testing.T) {
	mock := rerank.NewMockClient()
	mock.RerankResponse = domain.RerankChoice{Index: 1, Rationale: "better color balance"}

	svc, garments, _, userID := setupRecommendTest(mock)
	seedCloset(t, garments, userID)

	rec, err := svc.Recommend(context.Background(), userID, RecommendationRequest{Situation: domain.SituationWork})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !rec.RerankUsed {
		t.Fatal("rerank should be marked as used")
	}
	if rec.RerankRationale != "better color balance" {
		t.Errorf("rationale = %q", rec.RerankRationale)
	}
	if rec.Outfit.Score != rec.Shortlist[1].Score {
		t.Error("winner should be the reranked candidate")
	}
	if len(mock.RerankCalls) != 1 {
		t.Fatalf("rerank calls = %d, want 1", len(mock.RerankCalls))
	}
	if len(mock.RerankCalls[0].Candidates) > shortlistSize {
		t.Errorf("rerank saw %d candidates, cap is %d", len(mock.RerankCalls[0].Candidates), shortlistSize)
	}
}

func TestRecommend_RerankFailureKeepsDefault(t *testing.T) {
	tests := []struct {
		name string
		mock *rerank.MockClient
	}{
		{"client error", &rerank.MockClient{RerankError: errors.New("upstream timeout")}},
		{"out of range index", &rerank.MockClient{RerankResponse: domain.RerankChoice{Index: 99}}},
		{"negative index", &rerank.MockClient{RerankResponse: domain.RerankChoice{Index: -1}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, garments, _, userID := setupRecommendTest(tt.mock)
			seedCloset(t, garments, userID)

			rec, err := svc.Recommend(context.Background(), userID, RecommendationRequest{Situation: domain.SituationWork})
			if err != nil {
				t.Fatalf("rerank failure must not fail the request: %v", err)
			}
			if rec.RerankUsed {
				t.Error("failed rerank should not be marked as used")
			}
			if rec.Outfit.Score != rec.Shortlist[0].Score {
				t.Error("default winner should be kept on rerank failure")
			}
		})
	}
}

func TestRecommend_NewDeliveryReplacesOpenSession(t *testing.T) {
	svc, garments, sessions, userID := setupRecommendTest(nil)
	seedCloset(t, garments, userID)

	first, err := svc.Recommend(context.Background(), userID, RecommendationRequest{Situation: domain.SituationWork})
	if err != nil {
		t.Fatalf("first: %v", err)
	}
	second, err := svc.Recommend(context.Background(), userID, RecommendationRequest{Situation: domain.SituationDate})
	if err != nil {
		t.Fatalf("second: %v", err)
	}

	open, err := sessions.GetOpen(context.Background(), userID)
	if err != nil {
		t.Fatalf("no open session: %v", err)
	}
	if open.ID != second.SessionID {
		t.Errorf("open session = %s, want the latest delivery %s (first was %s)",
			open.ID, second.SessionID, first.SessionID)
	}
}
