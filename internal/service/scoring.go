package service

import (
	"fmt"
	"strings"

	"github.com/deokisok/ootd/internal/domain"
)

// Temperature thresholds and point amounts for per-item scoring. Fixed
// design constants, not learned.
const (
	coldThreshold = 10.0
	warmThreshold = 22.0

	coldOuterBonus   = 4
	coldThickBonus   = 2
	coldThinPenalty  = -1
	warmOuterPenalty = -3
	warmThinBonus    = 1
	warmThickPenalty = -1

	formalKeywordBonus   = 3
	formalKeywordPenalty = -2
	dateKeywordBonus     = 2
	comfortKeywordBonus  = 2
	sportyShoesBonus     = 2
	sportyKeywordBonus   = 3

	styleMatchBonus = 1
	vibeMatchBonus  = 1
)

// Garment-name keywords per intent. Matching is by lowercase substring
// against the garment name.
var (
	formalPositiveKeywords = []string{"shirt", "slacks", "blazer", "coat", "loafer", "dress"}
	formalNegativeKeywords = []string{"hood", "sweat", "sneaker", "cap", "shorts"}
	dateKeywords           = []string{"knit", "cardigan", "dress", "loafer"}
	comfortKeywords        = []string{"tee", "hood", "sweat", "jogger", "sneaker"}
	sportyShoesKeywords    = []string{"running", "trainer", "sneaker"}
	sportyKeywords         = []string{"track", "jersey", "jogger", "windbreaker"}
)

func nameContainsAny(name string, keywords []string) (string, bool) {
	lower := strings.ToLower(name)
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return kw, true
		}
	}
	return "", false
}

// ItemScore is one garment's situational desirability, with the reasons
// that produced it.
type ItemScore struct {
	Garment domain.Garment
	Score   int
	Reasons []string
}

// ScoreItem rates a single garment against the effective temperature, the
// situation, and an optional style filter. Deterministic: identical inputs
// always produce the identical score and reason list. A garment no rule
// fires for still gets the base reason and score zero.
func ScoreItem(g domain.Garment, effTemp *float64, situation domain.Situation, styleFilter domain.Style) ItemScore {
	score := 0
	var reasons []string

	// Temperature rules are skipped entirely when no reading is available.
	if effTemp != nil {
		t := *effTemp
		if t < coldThreshold {
			if g.Category == domain.CategoryOuter {
				score += coldOuterBonus
				reasons = append(reasons, fmt.Sprintf("outer layer for %.1f°C (+%d)", t, coldOuterBonus))
			}
			switch g.Warmth {
			case domain.WarmthThick:
				score += coldThickBonus
				reasons = append(reasons, fmt.Sprintf("thick fabric for the cold (+%d)", coldThickBonus))
			case domain.WarmthThin:
				score += coldThinPenalty
				reasons = append(reasons, fmt.Sprintf("thin fabric in the cold (%d)", coldThinPenalty))
			}
		} else if t >= warmThreshold {
			if g.Category == domain.CategoryOuter {
				score += warmOuterPenalty
				reasons = append(reasons, fmt.Sprintf("outer layer at %.1f°C (%d)", t, warmOuterPenalty))
			}
			switch g.Warmth {
			case domain.WarmthThin:
				score += warmThinBonus
				reasons = append(reasons, fmt.Sprintf("thin fabric for the heat (+%d)", warmThinBonus))
			case domain.WarmthThick:
				score += warmThickPenalty
				reasons = append(reasons, fmt.Sprintf("thick fabric in the heat (%d)", warmThickPenalty))
			}
		}
	}

	// Situation keyword rules, one block per intent flag.
	for _, intent := range situation.Intents() {
		switch intent {
		case domain.IntentFormal:
			if kw, ok := nameContainsAny(g.Name, formalPositiveKeywords); ok {
				score += formalKeywordBonus
				reasons = append(reasons, fmt.Sprintf("%q fits a formal setting (+%d)", kw, formalKeywordBonus))
			}
			if kw, ok := nameContainsAny(g.Name, formalNegativeKeywords); ok {
				score += formalKeywordPenalty
				reasons = append(reasons, fmt.Sprintf("%q is too casual for a formal setting (%d)", kw, formalKeywordPenalty))
			}
		case domain.IntentDate:
			if kw, ok := nameContainsAny(g.Name, dateKeywords); ok {
				score += dateKeywordBonus
				reasons = append(reasons, fmt.Sprintf("%q works for a date (+%d)", kw, dateKeywordBonus))
			}
		case domain.IntentComfortable:
			if kw, ok := nameContainsAny(g.Name, comfortKeywords); ok {
				score += comfortKeywordBonus
				reasons = append(reasons, fmt.Sprintf("%q is comfortable (+%d)", kw, comfortKeywordBonus))
			}
		case domain.IntentSporty:
			if g.Category == domain.CategoryShoes {
				if kw, ok := nameContainsAny(g.Name, sportyShoesKeywords); ok {
					score += sportyShoesBonus
					reasons = append(reasons, fmt.Sprintf("%q shoes for activity (+%d)", kw, sportyShoesBonus))
				}
			}
			if kw, ok := nameContainsAny(g.Name, sportyKeywords); ok {
				score += sportyKeywordBonus
				reasons = append(reasons, fmt.Sprintf("%q is built for activity (+%d)", kw, sportyKeywordBonus))
			}
		}
	}

	// Optional user-chosen style filter.
	if styleFilter != "" && (g.PrimaryStyle == styleFilter || g.SecondaryStyle == styleFilter) {
		score += styleMatchBonus
		reasons = append(reasons, fmt.Sprintf("matches your %s style pick (+%d)", styleFilter, styleMatchBonus))
	}

	// Vibe alignment with the situation.
	if g.Vibe != domain.VibeUnknown && situation.DesiredVibes()[g.Vibe] {
		score += vibeMatchBonus
		reasons = append(reasons, fmt.Sprintf("%s vibe suits the occasion (+%d)", g.Vibe, vibeMatchBonus))
	}

	if len(reasons) == 0 {
		reasons = append(reasons, "base score")
	}

	return ItemScore{Garment: g, Score: score, Reasons: reasons}
}
