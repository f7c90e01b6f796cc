package service

import (
	"fmt"

	"github.com/deokisok/ootd/internal/domain"
)

// Reason list caps per component.
const (
	maxCandidateReasons = 22
	maxTasteReasons     = 10
)

// Point amounts for outfit-level compatibility. Fixed design constants.
const (
	manyNeutralsBonus   = 2
	someNeutralsBonus   = 1
	multiClashPenalty   = -1
	allSolidBonus       = 1
	oneAccentBonus      = 2
	patternClashPenalty = -1
	strongVibeBonus     = 2
	weakVibeBonus       = 1
	noVibePenalty       = -1
)

type subScore struct {
	score   int
	reasons []string
}

// scoreColorHarmony rewards neutral-anchored outfits and flags a busy multi
// color garment that has no neutral base to sit on.
func scoreColorHarmony(garments []domain.Garment) subScore {
	neutrals := 0
	known := 0
	hasMulti := false
	for _, g := range garments {
		if g.Color == domain.ColorUnknown {
			continue
		}
		known++
		if domain.NeutralColors[g.Color] {
			neutrals++
		}
		if g.Color == domain.ColorMulti {
			hasMulti = true
		}
	}

	if known == 0 {
		return subScore{reasons: []string{"insufficient color data"}}
	}

	var s subScore
	switch {
	case neutrals >= 3:
		s.score += manyNeutralsBonus
		s.reasons = append(s.reasons, fmt.Sprintf("neutral-anchored palette (+%d)", manyNeutralsBonus))
	case neutrals >= 2:
		s.score += someNeutralsBonus
		s.reasons = append(s.reasons, fmt.Sprintf("neutral base colors (+%d)", someNeutralsBonus))
	}
	if hasMulti && neutrals < 3 {
		s.score += multiClashPenalty
		s.reasons = append(s.reasons, fmt.Sprintf("multi-color piece without a neutral base (%d)", multiClashPenalty))
	}
	return s
}

// scorePatternHarmony allows at most one pattern accent. Repeats of the
// same pattern read as intentional and stay neutral.
func scorePatternHarmony(garments []domain.Garment) subScore {
	known := 0
	nonSolid := 0
	distinct := make(map[domain.Pattern]bool)
	for _, g := range garments {
		if g.Pattern == domain.PatternUnknown {
			continue
		}
		known++
		if g.Pattern != domain.PatternSolid {
			nonSolid++
			distinct[g.Pattern] = true
		}
	}

	if known == 0 {
		return subScore{}
	}

	switch {
	case nonSolid == 0:
		return subScore{score: allSolidBonus, reasons: []string{fmt.Sprintf("all solid, clean look (+%d)", allSolidBonus)}}
	case nonSolid == 1:
		return subScore{score: oneAccentBonus, reasons: []string{fmt.Sprintf("one pattern accent (+%d)", oneAccentBonus)}}
	case len(distinct) >= 2:
		return subScore{score: patternClashPenalty, reasons: []string{fmt.Sprintf("too many clashing patterns (%d)", patternClashPenalty)}}
	default:
		// Two or more of the same pattern: neutral.
		return subScore{}
	}
}

// scoreVibeFit counts garments whose vibe lands in the situation's
// outfit-level desired set.
func scoreVibeFit(garments []domain.Garment, situation domain.Situation) subScore {
	desired := situation.OutfitDesiredVibes()
	hits := 0
	known := 0
	for _, g := range garments {
		if g.Vibe == domain.VibeUnknown {
			continue
		}
		known++
		if desired[g.Vibe] {
			hits++
		}
	}

	switch {
	case hits >= 2:
		return subScore{score: strongVibeBonus, reasons: []string{fmt.Sprintf("outfit vibe suits the %s occasion (+%d)", situation, strongVibeBonus)}}
	case hits == 1:
		return subScore{score: weakVibeBonus, reasons: []string{fmt.Sprintf("a piece matches the %s mood (+%d)", situation, weakVibeBonus)}}
	case known > 0 && len(desired) > 0:
		return subScore{score: noVibePenalty, reasons: []string{fmt.Sprintf("nothing matches the %s mood (%d)", situation, noVibePenalty)}}
	default:
		return subScore{}
	}
}

// scoreTaste applies the learned preference/avoidance counters to every
// garment, per attribute dimension, with the capped diminishing bonus.
func scoreTaste(garments []domain.Garment, profile *domain.TasteProfile) subScore {
	var s subScore
	addReason := func(format string, args ...any) {
		if len(s.reasons) < maxTasteReasons {
			s.reasons = append(s.reasons, fmt.Sprintf(format, args...))
		}
	}

	for _, g := range garments {
		if b := domain.PreferenceBonus(profile.ColorPref, profile.ColorAvoid, string(g.Color)); b != 0 {
			s.score += b
			if b > 0 {
				addReason("you tend to like %s (+%d)", g.Color, b)
			} else {
				addReason("you tend to avoid %s (%d)", g.Color, b)
			}
		}
		if b := domain.PreferenceBonus(profile.PatternPref, profile.PatternAvoid, string(g.Pattern)); b != 0 {
			s.score += b
			if b > 0 {
				addReason("you tend to like %s patterns (+%d)", g.Pattern, b)
			} else {
				addReason("you tend to avoid %s patterns (%d)", g.Pattern, b)
			}
		}
		if b := domain.PreferenceBonus(profile.VibePref, profile.VibeAvoid, string(g.Vibe)); b != 0 {
			s.score += b
			if b > 0 {
				addReason("you tend to like a %s vibe (+%d)", g.Vibe, b)
			} else {
				addReason("you tend to avoid a %s vibe (%d)", g.Vibe, b)
			}
		}
	}
	return s
}

// ScoreOutfit folds the three compatibility sub-scores and the taste signal
// into the candidate's total.
func ScoreOutfit(c *domain.Candidate, situation domain.Situation, profile *domain.TasteProfile) {
	garments := c.Garments()

	for _, s := range []subScore{
		scoreColorHarmony(garments),
		scorePatternHarmony(garments),
		scoreVibeFit(garments, situation),
		scoreTaste(garments, profile),
	} {
		c.Score += s.score
		c.AddReasons(maxCandidateReasons, s.reasons...)
	}
}
