package risk

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
		{"no risk vocabulary", "write docs for the greeter", 0.0},
		{"single critical keyword", "delete old fixtures", 0.3},
		// delete 0.3 + production 0.3 + database 0.15
		{"stacked critical and high", "delete production database records", 0.75},
		{"clamped at one", "breaking critical delete remove drop production live migrate", 1.0},
		{"medium band only", "modify the comment", 0.05},
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
