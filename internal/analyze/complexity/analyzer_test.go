package complexity

import (
	"testing"

	"github.com/DevCompass/compass-cli/pkg/schema"
)

func score(t *testing.T, text string) float64 {
	t.Helper()
	a := &Analyzer{}
	return a.Score(schema.ClassificationInput{TaskText: text})
}

func TestScore_Ranges(t *testing.T) {
	tests := []struct {
		name string
		text string
		min  float64
		max  float64
	}{
		{"trivial edit", "fix typo in readme", 0.0, 0.2},
		{"heavy engineering", "refactor distributed system architecture", 0.8, 1.0},
		{"middling feature work", "implement api design", 0.5, 0.9},
		{"empty", "   ", 0.0, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := score(t, tt.text)
			if got < tt.min || got > tt.max {
				t.Errorf("Score(%q) = %.3f, want in [%.2f, %.2f]", tt.text, got, tt.min, tt.max)
			}
		})
	}
}

func TestScore_MonotoneAgainstEvidence(t *testing.T) {
	low := score(t, "simple small fix")
	high := score(t, "complex architecture migration across a distributed system")
	if low >= high {
		t.Errorf("expected low-complexity text (%.3f) below high-complexity text (%.3f)", low, high)
	}
}

func TestScore_Deterministic(t *testing.T) {
	text := "refactor the auth database integration"
	first := score(t, text)
	for i := 0; i < 10; i++ {
		if got := score(t, text); got != first {
			t.Fatalf("score changed between calls: %v vs %v", got, first)
		}
	}
}
