package service

import (
	"errors"
	"fmt"
	"sort"

	"github.com/deokisok/ootd/internal/domain"
)

// ErrInsufficientWardrobe means a required slot has no garments; no
// recommendation can be built. Recoverable, not a crash.
var ErrInsufficientWardrobe = errors.New("closet is missing a required slot")

const (
	// defaultTopK garments per required slot survive the pre-filter.
	defaultTopK = 3
	// outerOptions bounds the outer shortlist; "no outer" is always added
	// on top of it.
	outerOptions = 3
)

// GenerateCandidates builds the bounded candidate set: the cross product of
// the top-K garments per required slot, crossed with the top outer garments
// plus the no-outer option. A deliberate greedy pre-filter — a garment that
// scores poorly alone is assumed not to rescue a combination.
func GenerateCandidates(closet []domain.Garment, effTemp *float64, situation domain.Situation, styleFilter domain.Style, topK int) ([]domain.Candidate, error) {
	if topK <= 0 {
		topK = defaultTopK
	}

	bySlot := make(map[domain.Category][]ItemScore)
	for _, g := range closet {
		bySlot[g.Category] = append(bySlot[g.Category], ScoreItem(g, effTemp, situation, styleFilter))
	}

	var missing []domain.Category
	for _, slot := range domain.RequiredSlots {
		if len(bySlot[slot]) == 0 {
			missing = append(missing, slot)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %v", ErrInsufficientWardrobe, missing)
	}

	for slot := range bySlot {
		scores := bySlot[slot]
		// Ties break by name then id so generation stays deterministic.
		sort.SliceStable(scores, func(i, j int) bool {
			if scores[i].Score != scores[j].Score {
				return scores[i].Score > scores[j].Score
			}
			if scores[i].Garment.Name != scores[j].Garment.Name {
				return scores[i].Garment.Name < scores[j].Garment.Name
			}
			return scores[i].Garment.ID.String() < scores[j].Garment.ID.String()
		})
	}

	take := func(slot domain.Category, n int) []ItemScore {
		scores := bySlot[slot]
		if len(scores) > n {
			scores = scores[:n]
		}
		return scores
	}

	tops := take(domain.CategoryTop, topK)
	bottoms := take(domain.CategoryBottom, topK)
	shoes := take(domain.CategoryShoes, topK)

	// Outer is optional: top outers plus the bare no-outer option.
	outers := make([]*ItemScore, 0, outerOptions+1)
	for _, o := range take(domain.CategoryOuter, outerOptions) {
		o := o
		outers = append(outers, &o)
	}
	outers = append(outers, nil)

	var candidates []domain.Candidate
	for _, top := range tops {
		for _, bottom := range bottoms {
			for _, shoe := range shoes {
				for _, outer := range outers {
					c := domain.Candidate{
						Top:    top.Garment,
						Bottom: bottom.Garment,
						Shoes:  shoe.Garment,
						Score:  top.Score + bottom.Score + shoe.Score,
					}
					c.AddReasons(maxCandidateReasons, top.Reasons...)
					c.AddReasons(maxCandidateReasons, bottom.Reasons...)
					c.AddReasons(maxCandidateReasons, shoe.Reasons...)
					if outer != nil {
						g := outer.Garment
						c.Outer = &g
						c.Score += outer.Score
						c.AddReasons(maxCandidateReasons, outer.Reasons...)
					}
					candidates = append(candidates, c)
				}
			}
		}
	}

	return candidates, nil
}
