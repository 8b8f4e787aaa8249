package urgency

import (
	"testing"

	"github.com/DevCompass/compass-cli/pkg/schema"
)

func TestScore(t *testing.T) {
	a := &Analyzer{}

	tests := []struct {
		name string
		text string
		want float64
	}{
		{"no pressure", "refactor the parser", 0.0},
		{"single cue takes its weight", "urgent fix needed", 0.3},
		{"strongest cue dominates", "urgent emergency fix", 0.45},
		{"time phrase sets a floor", "need this done today", 0.4},
		{"time phrase does not lower a stronger cue", "emergency, ship today", 0.45},
		// urgent + asap + quickly = 3 cues: max 0.35 + 0.1 stacking bonus
		{"stacked cues get a bonus", "urgent asap and quickly please", 0.45},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := a.Score(schema.ClassificationInput{TaskText: tt.text})
			if diff := got - tt.want; diff > 1e-9 || diff < -1e-9 {
				t.Errorf("Score(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}
