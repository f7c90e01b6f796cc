package service

import (
	"context"

	"github.com/deokisok/ootd/internal/domain"
	"github.com/google/uuid"
)

const (
	reportTopN        = 6
	reportRecentLimit = 20
)

// Report is the user-facing taste summary: learned profile state, approval
// tallies, and the most recent feedback history.
type Report struct {
	ClosetSize  int     `json:"closet_size"`
	RatingCount int     `json:"rating_count"`
	AvgRating   float64 `json:"avg_rating"`
	TempBias    float64 `json:"temp_bias"`

	// RatingDistribution[i] counts submissions rated i+1.
	RatingDistribution [domain.RatingMax]int `json:"rating_distribution"`

	TempComfort     map[domain.TempComfort]int `json:"temp_comfort"`
	ColorApproval   map[domain.Approval]int    `json:"color_approval"`
	PatternApproval map[domain.Approval]int    `json:"pattern_approval"`
	VibeApproval    map[domain.Approval]int    `json:"vibe_approval"`

	PreferredColors  []string `json:"preferred_colors"`
	AvoidedColors    []string `json:"avoided_colors"`
	PreferredPattern []string `json:"preferred_patterns"`
	AvoidedPatterns  []string `json:"avoided_patterns"`
	PreferredVibes   []string `json:"preferred_vibes"`
	AvoidedVibes     []string `json:"avoided_vibes"`

	Recent []domain.FeedbackRecord `json:"recent"`
}

type ReportService struct {
	garments domain.GarmentStore
	profiles domain.ProfileStore
	feedback domain.FeedbackStore
}

func NewReportService(garments domain.GarmentStore, profiles domain.ProfileStore, feedback domain.FeedbackStore) *ReportService {
	return &ReportService{
		garments: garments,
		profiles: profiles,
		feedback: feedback,
	}
}

// Build assembles the report from the profile and the feedback log. An empty
// history produces a valid all-zero report, not an error.
func (s *ReportService) Build(ctx context.Context, userID uuid.UUID) (*Report, error) {
	profile, err := s.profiles.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	closetSize, err := s.garments.CountByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	history, err := s.feedback.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	r := &Report{
		ClosetSize:  closetSize,
		RatingCount: profile.RatingCount,
		AvgRating:   profile.AvgRating,
		TempBias:    profile.TempBias,

		TempComfort:     make(map[domain.TempComfort]int),
		ColorApproval:   make(map[domain.Approval]int),
		PatternApproval: make(map[domain.Approval]int),
		VibeApproval:    make(map[domain.Approval]int),

		PreferredColors:  profile.ColorPref.Top(reportTopN),
		AvoidedColors:    profile.ColorAvoid.Top(reportTopN),
		PreferredPattern: profile.PatternPref.Top(reportTopN),
		AvoidedPatterns:  profile.PatternAvoid.Top(reportTopN),
		PreferredVibes:   profile.VibePref.Top(reportTopN),
		AvoidedVibes:     profile.VibeAvoid.Top(reportTopN),
	}

	for _, f := range history {
		if f.Rating >= domain.RatingMin && f.Rating <= domain.RatingMax {
			r.RatingDistribution[f.Rating-1]++
		}
		r.TempComfort[f.TempComfort]++
		r.ColorApproval[f.ColorApproval]++
		r.PatternApproval[f.PatternApproval]++
		r.VibeApproval[f.VibeApproval]++
	}

	// ListByUser returns newest first.
	if len(history) > reportRecentLimit {
		history = history[:reportRecentLimit]
	}
	r.Recent = history

	return r, nil
}
