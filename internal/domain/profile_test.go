package domain

import (
	"math"
	"testing"

	"github.com/google/uuid"
)

func TestAddRatingIncrementalMean(t *testing.T) {
	p := NewTasteProfile(uuid.New())
	ratings := []int{5, 3, 4, 1, 4, 2, 5, 5, 3, 4}

	sum := 0
	for i, r := range ratings {
		p.AddRating(r)
		sum += r

		want := float64(sum) / float64(i+1)
		if math.Abs(p.AvgRating-want) > 1e-9 {
			t.Fatalf("after %d ratings: avg = %v, want %v", i+1, p.AvgRating, want)
		}
		if p.RatingCount != i+1 {
			t.Fatalf("rating count = %d, want %d", p.RatingCount, i+1)
		}
	}
}

func TestAdjustTempBiasClamps(t *testing.T) {
	p := NewTasteProfile(uuid.New())

	// Three too-hot signals in a row.
	for i := 0; i < 3; i++ {
		p.AdjustTempBias(TempTooHot.BiasDelta())
	}
	if p.TempBias != -3.0 {
		t.Fatalf("bias after three too_hot = %v, want -3.0", p.TempBias)
	}

	// Keep pushing; the bias must stop at the floor.
	for i := 0; i < 10; i++ {
		p.AdjustTempBias(TempTooHot.BiasDelta())
	}
	if p.TempBias != TempBiasMin {
		t.Fatalf("bias = %v, want clamp at %v", p.TempBias, TempBiasMin)
	}

	// And back up to the ceiling.
	for i := 0; i < 30; i++ {
		p.AdjustTempBias(TempTooCold.BiasDelta())
	}
	if p.TempBias != TempBiasMax {
		t.Fatalf("bias = %v, want clamp at %v", p.TempBias, TempBiasMax)
	}

	// just_right never moves it.
	p.AdjustTempBias(TempJustRight.BiasDelta())
	if p.TempBias != TempBiasMax {
		t.Fatalf("just_right moved the bias to %v", p.TempBias)
	}
}

func TestEffectiveTemperature(t *testing.T) {
	p := NewTasteProfile(uuid.New())
	p.TempBias = 2.0

	if got := p.EffectiveTemperature(nil); got != nil {
		t.Errorf("nil ambient should stay nil, got %v", *got)
	}

	ambient := 10.0
	got := p.EffectiveTemperature(&ambient)
	if got == nil || *got != 12.0 {
		t.Errorf("EffectiveTemperature(10) with bias +2 = %v, want 12", got)
	}
	if ambient != 10.0 {
		t.Errorf("input reading mutated to %v", ambient)
	}
}

func TestTasteBonus(t *testing.T) {
	tests := []struct {
		count int
		want  int
	}{
		{0, 0},
		{-1, 0},
		{1, 1},
		{2, 1},
		{3, 2},
		{5, 2},
		{6, 2},
		{100, 2},
	}

	for _, tt := range tests {
		if got := TasteBonus(tt.count); got != tt.want {
			t.Errorf("TasteBonus(%d) = %d, want %d", tt.count, got, tt.want)
		}
	}

	// Monotonic in count.
	prev := 0
	for c := 0; c <= 20; c++ {
		b := TasteBonus(c)
		if b < prev {
			t.Errorf("TasteBonus decreased at count %d: %d -> %d", c, prev, b)
		}
		prev = b
	}
}

func TestPreferenceBonus(t *testing.T) {
	pref := Counter{"black": 4}
	avoid := Counter{"black": 1, "pink": 7}

	if got := PreferenceBonus(pref, avoid, "black"); got != 1 {
		t.Errorf("black: pref 4 vs avoid 1 = %d, want 1", got)
	}
	if got := PreferenceBonus(pref, avoid, "pink"); got != -2 {
		t.Errorf("pink: avoided = %d, want -2", got)
	}
	if got := PreferenceBonus(pref, avoid, Unknown); got != 0 {
		t.Errorf("unknown value must never score, got %d", got)
	}
	if got := PreferenceBonus(pref, avoid, ""); got != 0 {
		t.Errorf("empty value must never score, got %d", got)
	}
}

func TestCounterTop(t *testing.T) {
	c := Counter{"black": 5, "white": 5, "navy": 2, "pink": 0}

	got := c.Top(3)
	want := []string{"black", "white", "navy"}
	if len(got) != len(want) {
		t.Fatalf("Top(3) = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Top(3) = %v, want %v", got, want)
		}
	}

	if got := c.Top(10); len(got) != 3 {
		t.Errorf("zero-count values should be excluded, got %v", got)
	}
	if got := (Counter{}).Top(3); len(got) != 0 {
		t.Errorf("empty counter should return nothing, got %v", got)
	}
}
