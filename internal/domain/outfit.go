package domain

import "github.com/google/uuid"

// Candidate is one ephemeral outfit combination under evaluation. Candidates
// are rebuilt on every recommendation request and never persisted; only the
// chosen outfit's snapshot survives into the session and feedback log.
type Candidate struct {
	Top     Garment  `json:"top"`
	Bottom  Garment  `json:"bottom"`
	Shoes   Garment  `json:"shoes"`
	Outer   *Garment `json:"outer,omitempty"`
	Score   int      `json:"score"`
	Reasons []string `json:"reasons"`
}

// Garments returns the filled slots in a fixed order.
func (c *Candidate) Garments() []Garment {
	out := []Garment{c.Top, c.Bottom, c.Shoes}
	if c.Outer != nil {
		out = append(out, *c.Outer)
	}
	return out
}

// Snapshot freezes the candidate's garments for persistence.
func (c *Candidate) Snapshot() []GarmentSnapshot {
	slots := []Category{CategoryTop, CategoryBottom, CategoryShoes, CategoryOuter}
	garments := []*Garment{&c.Top, &c.Bottom, &c.Shoes, c.Outer}
	var out []GarmentSnapshot
	for i, g := range garments {
		if g == nil {
			continue
		}
		out = append(out, GarmentSnapshot{
			GarmentID: g.ID,
			Slot:      slots[i],
			Name:      g.Name,
			Color:     g.Color,
			Pattern:   g.Pattern,
			Warmth:    g.Warmth,
			Vibe:      g.Vibe,
		})
	}
	return out
}

// AddReasons appends reasons, dropping duplicates and respecting the cap.
func (c *Candidate) AddReasons(limit int, reasons ...string) {
	for _, r := range reasons {
		if len(c.Reasons) >= limit {
			return
		}
		dup := false
		for _, have := range c.Reasons {
			if have == r {
				dup = true
				break
			}
		}
		if !dup {
			c.Reasons = append(c.Reasons, r)
		}
	}
}

// RerankCandidate is the compact per-candidate view the re-ranking
// collaborator sees.
type RerankCandidate struct {
	Index    int               `json:"index"`
	Score    int               `json:"score"`
	Garments []GarmentSnapshot `json:"garments"`
}

// RerankRequest bundles everything the re-ranking collaborator may consider.
type RerankRequest struct {
	Candidates  []RerankCandidate `json:"candidates"`
	Situation   Situation         `json:"situation"`
	Temperature *float64          `json:"temperature,omitempty"`
	Taste       TasteSummary      `json:"taste"`
}

// RerankChoice is the collaborator's answer: the index of the winning
// shortlist candidate plus a short rationale.
type RerankChoice struct {
	Index     int    `json:"index"`
	Rationale string `json:"rationale"`
}

// Recommendation is the delivered result of one request.
type Recommendation struct {
	SessionID       uuid.UUID   `json:"session_id"`
	Outfit          Candidate   `json:"outfit"`
	Shortlist       []Candidate `json:"shortlist"`
	Situation       Situation   `json:"situation"`
	Temperature     *float64    `json:"temperature,omitempty"`
	EffectiveTemp   *float64    `json:"effective_temp,omitempty"`
	RerankUsed      bool        `json:"rerank_used"`
	RerankRationale string      `json:"rerank_rationale,omitempty"`
}
