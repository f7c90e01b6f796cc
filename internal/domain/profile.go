package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	// TempBiasMin and TempBiasMax bound the learned temperature correction.
	TempBiasMin = -5.0
	TempBiasMax = 5.0

	// tasteBonusCap and tasteCountsPerStep shape the diminishing taste bonus:
	// min(cap, count/step + 1). Early feedback moves the score more; the
	// per-garment swing can never exceed the cap.
	tasteBonusCap      = 2
	tasteCountsPerStep = 3
)

// Counter maps a vocabulary value to a non-negative occurrence count.
type Counter map[string]int

func (c Counter) Increment(value string) {
	c[value]++
}

// TasteProfile accumulates a user's learned preferences. Mutated only by the
// feedback processor, read by the compatibility scorer.
type TasteProfile struct {
	UserID       uuid.UUID `json:"user_id"`
	TempBias     float64   `json:"temp_bias"`
	ColorPref    Counter   `json:"color_pref"`
	ColorAvoid   Counter   `json:"color_avoid"`
	PatternPref  Counter   `json:"pattern_pref"`
	PatternAvoid Counter   `json:"pattern_avoid"`
	VibePref     Counter   `json:"vibe_pref"`
	VibeAvoid    Counter   `json:"vibe_avoid"`
	AvgRating    float64   `json:"avg_rating"`
	RatingCount  int       `json:"rating_count"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NewTasteProfile returns the all-zero profile a user starts from.
func NewTasteProfile(userID uuid.UUID) *TasteProfile {
	return &TasteProfile{
		UserID:       userID,
		ColorPref:    Counter{},
		ColorAvoid:   Counter{},
		PatternPref:  Counter{},
		PatternAvoid: Counter{},
		VibePref:     Counter{},
		VibeAvoid:    Counter{},
	}
}

// EnsureCounters backfills nil maps on profiles loaded from storage.
func (p *TasteProfile) EnsureCounters() {
	if p.ColorPref == nil {
		p.ColorPref = Counter{}
	}
	if p.ColorAvoid == nil {
		p.ColorAvoid = Counter{}
	}
	if p.PatternPref == nil {
		p.PatternPref = Counter{}
	}
	if p.PatternAvoid == nil {
		p.PatternAvoid = Counter{}
	}
	if p.VibePref == nil {
		p.VibePref = Counter{}
	}
	if p.VibeAvoid == nil {
		p.VibeAvoid = Counter{}
	}
}

// AddRating folds one rating into the running mean. The mean is maintained
// incrementally, never recomputed from history:
// new = (old*n + r) / (n+1).
func (p *TasteProfile) AddRating(rating int) {
	p.AvgRating = (p.AvgRating*float64(p.RatingCount) + float64(rating)) / float64(p.RatingCount+1)
	p.RatingCount++
}

// AdjustTempBias shifts the bias and clamps it into [TempBiasMin, TempBiasMax].
func (p *TasteProfile) AdjustTempBias(delta float64) {
	p.TempBias += delta
	if p.TempBias > TempBiasMax {
		p.TempBias = TempBiasMax
	}
	if p.TempBias < TempBiasMin {
		p.TempBias = TempBiasMin
	}
}

// EffectiveTemperature applies the learned bias to an observed reading.
// A nil reading stays nil: absent weather skips temperature scoring.
func (p *TasteProfile) EffectiveTemperature(ambient *float64) *float64 {
	if ambient == nil {
		return nil
	}
	t := *ambient + p.TempBias
	return &t
}

// TasteBonus converts an occurrence count into the capped, diminishing
// score contribution.
func TasteBonus(count int) int {
	if count <= 0 {
		return 0
	}
	b := count/tasteCountsPerStep + 1
	if b > tasteBonusCap {
		return tasteBonusCap
	}
	return b
}

// PreferenceBonus is the signed taste contribution for one value in one
// dimension: preference counts push up, avoidance counts push down, each
// capped independently.
func PreferenceBonus(pref, avoid Counter, value string) int {
	if value == "" || value == Unknown {
		return 0
	}
	return TasteBonus(pref[value]) - TasteBonus(avoid[value])
}

// TasteSummary is the compact view handed to the re-ranking collaborator.
type TasteSummary struct {
	TopColors       []string `json:"top_colors,omitempty"`
	AvoidedColors   []string `json:"avoided_colors,omitempty"`
	TopPatterns     []string `json:"top_patterns,omitempty"`
	AvoidedPatterns []string `json:"avoided_patterns,omitempty"`
	TopVibes        []string `json:"top_vibes,omitempty"`
	AvoidedVibes    []string `json:"avoided_vibes,omitempty"`
	TempBias        float64  `json:"temp_bias"`
	AvgRating       float64  `json:"avg_rating"`
	RatingCount     int      `json:"rating_count"`
}

// Summary extracts the top-n values per counter.
func (p *TasteProfile) Summary(n int) TasteSummary {
	return TasteSummary{
		TopColors:       p.ColorPref.Top(n),
		AvoidedColors:   p.ColorAvoid.Top(n),
		TopPatterns:     p.PatternPref.Top(n),
		AvoidedPatterns: p.PatternAvoid.Top(n),
		TopVibes:        p.VibePref.Top(n),
		AvoidedVibes:    p.VibeAvoid.Top(n),
		TempBias:        p.TempBias,
		AvgRating:       p.AvgRating,
		RatingCount:     p.RatingCount,
	}
}

// Top returns the n most-counted values, highest first. Ties break by value
// so the order is stable.
func (c Counter) Top(n int) []string {
	type kv struct {
		k string
		v int
	}
	items := make([]kv, 0, len(c))
	for k, v := range c {
		if v > 0 {
			items = append(items, kv{k, v})
		}
	}
	for i := 1; i < len(items); i++ {
		for j := i; j > 0; j-- {
			a, b := items[j-1], items[j]
			if b.v > a.v || (b.v == a.v && b.k < a.k) {
				items[j-1], items[j] = b, a
			} else {
				break
			}
		}
	}
	if len(items) > n {
		items = items[:n]
	}
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.k
	}
	return out
}
