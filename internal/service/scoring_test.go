package service

import (
	"reflect"
	"testing"

	"github.com/deokisok/ootd/internal/domain"
)

func garment(category domain.Category, name string, warmth domain.Warmth, vibe domain.Vibe) domain.Garment {
	return domain.Garment{
		Category: category,
		Name:     name,
		Color:    domain.ColorBlack,
		Pattern:  domain.PatternSolid,
		Warmth:   warmth,
		Vibe:     vibe,
	}
}

func temp(t float64) *float64 { return &t }

func TestScoreItemTemperature(t *testing.T) {
	outer := garment(domain.CategoryOuter, "wool overjacket", domain.WarmthThick, domain.VibeMinimal)

	t.Run("cold rewards outers and thick fabric", func(t *testing.T) {
		got := ScoreItem(outer, temp(5), domain.SituationDaily, "")
		want := coldOuterBonus + coldThickBonus
		if got.Score != want {
			t.Errorf("score at 5° = %d, want %d", got.Score, want)
		}
	})

	t.Run("heat punishes the same garment", func(t *testing.T) {
		got := ScoreItem(outer, temp(28), domain.SituationDaily, "")
		want := warmOuterPenalty + warmThickPenalty
		if got.Score != want {
			t.Errorf("score at 28° = %d, want %d", got.Score, want)
		}
	})

	t.Run("mild band fires no temperature rules", func(t *testing.T) {
		// 15° is between the thresholds; only non-temperature rules can fire.
		got := ScoreItem(outer, temp(15), domain.SituationWork, "")
		if got.Score != vibeMatchBonus {
			t.Errorf("score at 15° = %d, want only the vibe bonus %d", got.Score, vibeMatchBonus)
		}
	})

	t.Run("nil temperature skips temperature scoring entirely", func(t *testing.T) {
		thin := garment(domain.CategoryTop, "linen tee", domain.WarmthThin, domain.VibeUnknown)
		got := ScoreItem(thin, nil, domain.SituationDate, "")
		if got.Score != 0 {
			t.Errorf("score with nil temp = %d, want 0", got.Score)
		}
	})
}

func TestScoreItemSituationKeywords(t *testing.T) {
	tests := []struct {
		name      string
		g         domain.Garment
		situation domain.Situation
		want      int
	}{
		{
			"shirt scores formal for work",
			garment(domain.CategoryTop, "white oxford shirt", domain.WarmthMid, domain.VibeUnknown),
			domain.SituationWork,
			formalKeywordBonus,
		},
		{
			"hoodie punished in an interview",
			garment(domain.CategoryTop, "gray hoodie", domain.WarmthThick, domain.VibeUnknown),
			domain.SituationInterview,
			formalKeywordPenalty,
		},
		{
			"running shoes double for a workout",
			garment(domain.CategoryShoes, "running sneakers", domain.WarmthThin, domain.VibeUnknown),
			domain.SituationWorkout,
			sportyShoesBonus,
		},
		{
			"knit works for a date",
			garment(domain.CategoryTop, "cream knit", domain.WarmthMid, domain.VibeUnknown),
			domain.SituationDate,
			dateKeywordBonus,
		},
		{
			"joggers are comfortable for daily wear",
			garment(domain.CategoryBottom, "fleece joggers", domain.WarmthMid, domain.VibeUnknown),
			domain.SituationDaily,
			comfortKeywordBonus,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ScoreItem(tt.g, nil, tt.situation, "")
			if got.Score != tt.want {
				t.Errorf("score = %d, want %d (reasons %v)", got.Score, tt.want, got.Reasons)
			}
		})
	}
}

func TestScoreItemStyleFilter(t *testing.T) {
	g := garment(domain.CategoryTop, "plain top", domain.WarmthMid, domain.VibeUnknown)
	g.PrimaryStyle = domain.StyleMinimal

	with := ScoreItem(g, nil, domain.SituationDaily, domain.StyleMinimal)
	without := ScoreItem(g, nil, domain.SituationDaily, domain.StyleStreet)

	if with.Score-without.Score != styleMatchBonus {
		t.Errorf("style match delta = %d, want %d", with.Score-without.Score, styleMatchBonus)
	}

	g.SecondaryStyle = domain.StyleStreet
	second := ScoreItem(g, nil, domain.SituationDaily, domain.StyleStreet)
	if second.Score != with.Score {
		t.Errorf("secondary style should match the filter too: %d vs %d", second.Score, with.Score)
	}
}

func TestScoreItemDeterministic(t *testing.T) {
	g := garment(domain.CategoryShoes, "black loafers", domain.WarmthThin, domain.VibeFormal)

	first := ScoreItem(g, temp(8), domain.SituationInterview, domain.StyleFormal)
	for i := 0; i < 10; i++ {
		again := ScoreItem(g, temp(8), domain.SituationInterview, domain.StyleFormal)
		if again.Score != first.Score || !reflect.DeepEqual(again.Reasons, first.Reasons) {
			t.Fatalf("run %d differed: %+v vs %+v", i, again, first)
		}
	}
}

func TestScoreItemBaseReason(t *testing.T) {
	g := garment(domain.CategoryBottom, "pants", domain.WarmthUnknown, domain.VibeUnknown)
	got := ScoreItem(g, nil, domain.SituationDate, "")

	if got.Score != 0 {
		t.Errorf("no rules should fire, got score %d", got.Score)
	}
	if len(got.Reasons) != 1 || got.Reasons[0] != "base score" {
		t.Errorf("reasons = %v, want the single base reason", got.Reasons)
	}
}
