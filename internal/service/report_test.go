package service

import (
	"context"
	"testing"

	"github.com/deokisok/ootd/internal/domain"
	"github.com/google/uuid"
)

func TestReportService_EmptyHistory(t *testing.T) {
	svc := NewReportService(newMockGarmentStore(), newMockProfileStore(), newMockFeedbackStore())

	r, err := svc.Build(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("empty history must be a valid report, got %v", err)
	}
	if r.RatingCount != 0 || r.AvgRating != 0 || r.ClosetSize != 0 {
		t.Errorf("zero report expected, got %+v", r)
	}
	if len(r.Recent) != 0 {
		t.Errorf("recent = %d rows, want 0", len(r.Recent))
	}
}

func TestReportService_Aggregates(t *testing.T) {
	garments := newMockGarmentStore()
	profiles := newMockProfileStore()
	feedback := newMockFeedbackStore()
	svc := NewReportService(garments, profiles, feedback)

	ctx := context.Background()
	userID := uuid.New()

	for i := 0; i < 4; i++ {
		_ = garments.Create(ctx, &domain.Garment{UserID: userID, Category: domain.CategoryTop})
	}

	p := domain.NewTasteProfile(userID)
	p.TempBias = 1.0
	p.ColorPref["black"] = 5
	p.ColorPref["navy"] = 2
	p.ColorAvoid["pink"] = 3
	p.AddRating(5)
	p.AddRating(3)
	_ = profiles.Save(ctx, p)

	records := []domain.FeedbackRecord{
		{UserID: userID, Rating: 5, TempComfort: domain.TempTooCold, ColorApproval: domain.ApprovalGood, PatternApproval: domain.ApprovalNeutral, VibeApproval: domain.ApprovalNeutral},
		{UserID: userID, Rating: 3, TempComfort: domain.TempJustRight, ColorApproval: domain.ApprovalBad, PatternApproval: domain.ApprovalGood, VibeApproval: domain.ApprovalNeutral},
	}
	for i := range records {
		_ = feedback.Create(ctx, &records[i])
	}

	r, err := svc.Build(ctx, userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if r.ClosetSize != 4 {
		t.Errorf("closet size = %d, want 4", r.ClosetSize)
	}
	if r.RatingCount != 2 || r.AvgRating != 4.0 {
		t.Errorf("ratings = %d @ %v, want 2 @ 4.0", r.RatingCount, r.AvgRating)
	}
	if r.TempBias != 1.0 {
		t.Errorf("temp bias = %v, want 1.0", r.TempBias)
	}
	if r.RatingDistribution[4] != 1 || r.RatingDistribution[2] != 1 {
		t.Errorf("rating distribution = %v", r.RatingDistribution)
	}
	if r.TempComfort[domain.TempTooCold] != 1 || r.TempComfort[domain.TempJustRight] != 1 {
		t.Errorf("temp comfort counts = %v", r.TempComfort)
	}
	if r.ColorApproval[domain.ApprovalGood] != 1 || r.ColorApproval[domain.ApprovalBad] != 1 {
		t.Errorf("color approval counts = %v", r.ColorApproval)
	}
	if len(r.PreferredColors) != 2 || r.PreferredColors[0] != "black" {
		t.Errorf("preferred colors = %v, want black first", r.PreferredColors)
	}
	if len(r.AvoidedColors) != 1 || r.AvoidedColors[0] != "pink" {
		t.Errorf("avoided colors = %v", r.AvoidedColors)
	}
	if len(r.Recent) != 2 {
		t.Errorf("recent = %d rows, want 2", len(r.Recent))
	}
}

func TestReportService_RecentCapped(t *testing.T) {
	feedback := newMockFeedbackStore()
	svc := NewReportService(newMockGarmentStore(), newMockProfileStore(), feedback)

	ctx := context.Background()
	userID := uuid.New()
	for i := 0; i < reportRecentLimit+10; i++ {
		_ = feedback.Create(ctx, &domain.FeedbackRecord{
			UserID: userID, Rating: 4,
			TempComfort:   domain.TempJustRight,
			ColorApproval: domain.ApprovalNeutral, PatternApproval: domain.ApprovalNeutral, VibeApproval: domain.ApprovalNeutral,
		})
	}

	r, err := svc.Build(ctx, userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(r.Recent) != reportRecentLimit {
		t.Errorf("recent = %d rows, want the cap %d", len(r.Recent), reportRecentLimit)
	}
	// The full history still feeds the distribution.
	if r.RatingDistribution[3] != reportRecentLimit+10 {
		t.Errorf("distribution counted %d, want %d", r.RatingDistribution[3], reportRecentLimit+10)
	}
}
