package domain

import "strings"

// Situation is a named occasion a recommendation is built for.
type Situation string

const (
	SituationDaily     Situation = "daily"
	SituationWork      Situation = "work"
	SituationInterview Situation = "interview"
	SituationDate      Situation = "date"
	SituationWorkout   Situation = "workout"
	SituationTravel    Situation = "travel"
)

func ValidSituation(s string) bool {
	switch Situation(s) {
	case SituationDaily, SituationWork, SituationInterview, SituationDate,
		SituationWorkout, SituationTravel:
		return true
	}
	return false
}

// Label returns the display label a situation is shown (and matched) under.
func (s Situation) Label() string {
	switch s {
	case SituationDaily:
		return "daily comfortable"
	case SituationWork:
		return "work formal office"
	case SituationInterview:
		return "interview formal"
	case SituationDate:
		return "date night"
	case SituationWorkout:
		return "workout sporty"
	case SituationTravel:
		return "travel comfortable"
	default:
		return string(s)
	}
}

// Intent flags derived from a situation's label. Matching is by substring,
// so a label can carry several intents at once.
type Intent string

const (
	IntentFormal      Intent = "formal"
	IntentSporty      Intent = "sporty"
	IntentDate        Intent = "date"
	IntentComfortable Intent = "comfortable"
)

var allIntents = []Intent{IntentFormal, IntentSporty, IntentDate, IntentComfortable}

// Intents returns the intent flags whose name appears in the situation label.
func (s Situation) Intents() []Intent {
	label := s.Label()
	var out []Intent
	for _, in := range allIntents {
		if strings.Contains(label, string(in)) {
			out = append(out, in)
		}
	}
	return out
}

// desiredVibes maps each intent to the garment vibes that suit it.
var desiredVibes = map[Intent][]Vibe{
	IntentFormal: {VibeFormal, VibeMinimal, VibeDandy},
	IntentSporty: {VibeSporty},
	IntentDate:   {VibeDandy, VibeMinimal, VibeCute},
}

// Outfit-level vibe fit also credits comfortable situations and travel.
var comfortableVibes = []Vibe{VibeCasual, VibeMinimal}
var travelVibes = []Vibe{VibeCasual, VibeStreet, VibeMinimal}

// DesiredVibes returns the vibes a single garment is credited for.
func (s Situation) DesiredVibes() map[Vibe]bool {
	out := make(map[Vibe]bool)
	for _, in := range s.Intents() {
		for _, v := range desiredVibes[in] {
			out[v] = true
		}
	}
	return out
}

// OutfitDesiredVibes returns the vibe set used when scoring a whole outfit.
// Same mapping as DesiredVibes, extended for comfortable and travel.
func (s Situation) OutfitDesiredVibes() map[Vibe]bool {
	out := s.DesiredVibes()
	for _, in := range s.Intents() {
		if in == IntentComfortable {
			for _, v := range comfortableVibes {
				out[v] = true
			}
		}
	}
	if s == SituationTravel {
		for _, v := range travelVibes {
			out[v] = true
		}
	}
	return out
}
