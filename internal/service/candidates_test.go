package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/deokisok/ootd/internal/domain"
	"github.com/google/uuid"
)

func closetWith(counts map[domain.Category]int) []domain.Garment {
	var closet []domain.Garment
	for cat, n := range counts {
		for i := 0; i < n; i++ {
			closet = append(closet, domain.Garment{
				ID:       uuid.New(),
				Category: cat,
				Name:     fmt.Sprintf("%s %d", cat, i),
				Color:    domain.ColorBlack,
				Pattern:  domain.PatternSolid,
				Warmth:   domain.WarmthMid,
			})
		}
	}
	return closet
}

func TestGenerateCandidatesMissingSlot(t *testing.T) {
	tests := []struct {
		name   string
		counts map[domain.Category]int
	}{
		{"empty closet", map[domain.Category]int{}},
		{"no shoes", map[domain.Category]int{domain.CategoryTop: 2, domain.CategoryBottom: 2}},
		{"only outers", map[domain.Category]int{domain.CategoryOuter: 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateCandidates(closetWith(tt.counts), nil, domain.SituationDaily, "", 3)
			if !errors.Is(err, ErrInsufficientWardrobe) {
				t.Errorf("err = %v, want ErrInsufficientWardrobe", err)
			}
		})
	}
}

func TestGenerateCandidatesOuterOptional(t *testing.T) {
	closet := closetWith(map[domain.Category]int{
		domain.CategoryTop:    1,
		domain.CategoryBottom: 1,
		domain.CategoryShoes:  1,
	})

	candidates, err := GenerateCandidates(closet, nil, domain.SituationDaily, "", 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(candidates) != 1 {
		t.Fatalf("1x1x1 closet with no outers should yield 1 candidate, got %d", len(candidates))
	}
	if candidates[0].Outer != nil {
		t.Error("candidate should have no outer")
	}
}

func TestGenerateCandidatesBound(t *testing.T) {
	// A big closet must still produce at most topK^3 * (outerOptions+1).
	closet := closetWith(map[domain.Category]int{
		domain.CategoryTop:    10,
		domain.CategoryBottom: 10,
		domain.CategoryShoes:  10,
		domain.CategoryOuter:  10,
	})

	candidates, err := GenerateCandidates(closet, nil, domain.SituationDaily, "", 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := 3 * 3 * 3 * (outerOptions + 1)
	if len(candidates) != want {
		t.Errorf("candidate count = %d, want %d", len(candidates), want)
	}

	withOuter := 0
	for _, c := range candidates {
		if c.Outer != nil {
			withOuter++
		}
	}
	if withOuter != 3*3*3*outerOptions {
		t.Errorf("candidates with outer = %d, want %d", withOuter, 3*3*3*outerOptions)
	}
}

func TestGenerateCandidatesPrefersHigherScoringItems(t *testing.T) {
	cold := temp(5.0)
	closet := []domain.Garment{
		{ID: uuid.New(), Category: domain.CategoryTop, Name: "thick knit", Warmth: domain.WarmthThick},
		{ID: uuid.New(), Category: domain.CategoryTop, Name: "thin tee", Warmth: domain.WarmthThin},
		{ID: uuid.New(), Category: domain.CategoryBottom, Name: "jeans", Warmth: domain.WarmthMid},
		{ID: uuid.New(), Category: domain.CategoryShoes, Name: "boots", Warmth: domain.WarmthMid},
	}

	candidates, err := GenerateCandidates(closet, cold, domain.SituationDaily, "", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(candidates) != 1 {
		t.Fatalf("topK=1 should yield 1 candidate, got %d", len(candidates))
	}
	if candidates[0].Top.Name != "thick knit" {
		t.Errorf("pre-filter kept %q, want the thick knit at 5°", candidates[0].Top.Name)
	}
}

func TestGenerateCandidatesDeterministicOrder(t *testing.T) {
	closet := closetWith(map[domain.Category]int{
		domain.CategoryTop:    4,
		domain.CategoryBottom: 4,
		domain.CategoryShoes:  4,
		domain.CategoryOuter:  4,
	})

	first, err := GenerateCandidates(closet, nil, domain.SituationDaily, "", 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i < 5; i++ {
		again, err := GenerateCandidates(closet, nil, domain.SituationDaily, "", 2)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(again) != len(first) {
			t.Fatalf("run %d: %d candidates vs %d", i, len(again), len(first))
		}
		for j := range first {
			if first[j].Top.ID != again[j].Top.ID ||
				first[j].Bottom.ID != again[j].Bottom.ID ||
				first[j].Shoes.ID != again[j].Shoes.ID {
				t.Fatalf("run %d: candidate order differs at %d", i, j)
			}
		}
	}
}
