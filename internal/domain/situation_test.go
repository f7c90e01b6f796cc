package domain

import "testing"

func TestSituationIntents(t *testing.T) {
	tests := []struct {
		situation Situation
		want      []Intent
	}{
		{SituationDaily, []Intent{IntentComfortable}},
		{SituationWork, []Intent{IntentFormal}},
		{SituationInterview, []Intent{IntentFormal}},
		{SituationDate, []Intent{IntentDate}},
		{SituationWorkout, []Intent{IntentSporty}},
		{SituationTravel, []Intent{IntentComfortable}},
	}

	for _, tt := range tests {
		t.Run(string(tt.situation), func(t *testing.T) {
			got := tt.situation.Intents()
			if len(got) != len(tt.want) {
				t.Fatalf("Intents() = %v, want %v", got, tt.want)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Fatalf("Intents() = %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestOutfitDesiredVibes(t *testing.T) {
	t.Run("interview wants formal set", func(t *testing.T) {
		got := SituationInterview.OutfitDesiredVibes()
		for _, v := range []Vibe{VibeFormal, VibeMinimal, VibeDandy} {
			if !got[v] {
				t.Errorf("interview should desire %s", v)
			}
		}
		if got[VibeSporty] {
			t.Error("interview should not desire sporty")
		}
	})

	t.Run("travel extends the comfortable set", func(t *testing.T) {
		got := SituationTravel.OutfitDesiredVibes()
		for _, v := range []Vibe{VibeCasual, VibeStreet, VibeMinimal} {
			if !got[v] {
				t.Errorf("travel should desire %s", v)
			}
		}
	})

	t.Run("workout desires only sporty", func(t *testing.T) {
		got := SituationWorkout.OutfitDesiredVibes()
		if !got[VibeSporty] || len(got) != 1 {
			t.Errorf("workout vibes = %v, want only sporty", got)
		}
	})
}
