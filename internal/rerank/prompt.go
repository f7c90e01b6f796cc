package rerank

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/deokisok/ootd/internal/domain"
)

const rerankPrompt = `You are a personal stylist. Below is a shortlist of
outfit candidates for one person, already ranked by a heuristic scorer, plus
their learned taste and today's context. Pick the single best candidate.

Context:
%s

Candidates (JSON):
%s

Answer with a single JSON object, no markdown:
{"index": <index of the winning candidate>, "rationale": "<one short sentence>"}`

// buildPrompt renders the shortlist and context into the model prompt.
// Shared by every rerank provider.
func buildPrompt(req domain.RerankRequest) (string, error) {
	candidates, err := json.Marshal(req.Candidates)
	if err != nil {
		return "", fmt.Errorf("marshal shortlist: %w", err)
	}

	var ctx strings.Builder
	fmt.Fprintf(&ctx, "situation: %s\n", req.Situation.Label())
	if req.Temperature != nil {
		fmt.Fprintf(&ctx, "temperature: %.1f°C\n", *req.Temperature)
	}
	taste, err := json.Marshal(req.Taste)
	if err != nil {
		return "", fmt.Errorf("marshal taste summary: %w", err)
	}
	fmt.Fprintf(&ctx, "taste: %s", taste)

	return fmt.Sprintf(rerankPrompt, ctx.String(), candidates), nil
}

// parseChoice parses the model's JSON answer, tolerating markdown fences.
func parseChoice(raw string) (domain.RerankChoice, error) {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(raw, "```json")
	raw = strings.TrimPrefix(raw, "```")
	raw = strings.TrimSuffix(raw, "```")
	raw = strings.TrimSpace(raw)

	var choice domain.RerankChoice
	if err := json.Unmarshal([]byte(raw), &choice); err != nil {
		return domain.RerankChoice{}, fmt.Errorf("parse rerank choice: %w (raw: %s)", err, raw)
	}
	return choice, nil
}
