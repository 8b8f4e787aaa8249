package load

import (
	"testing"

	"github.com/DevCompass/compass-cli/pkg/schema"
)

func TestScore(t *testing.T) {
	a := &Analyzer{}

	tests := []struct {
		name  string
		input schema.ClassificationInput
		want  float64
	}{
		{
			name:  "empty context",
			input: schema.ClassificationInput{TaskText: "fix typo"},
			want:  0.0,
		},
		{
			name:  "token load capped at half",
			input: schema.ClassificationInput{TaskText: "fix typo", ContextTokenCount: 50000},
			want:  0.5,
		},
		{
			name:  "file load capped at a third",
			input: schema.ClassificationInput{TaskText: "fix typo", LoadedFileCount: 10},
			want:  0.3, // 10/20 = 0.5, capped
		},
		{
			// implement + create + build = 3 * 0.08
			name:  "growth vocabulary",
			input: schema.ClassificationInput{TaskText: "implement create build"},
			want:  0.24,
		},
		{
			name: "all components stack",
			input: schema.ClassificationInput{
				TaskText:          "implement the system integration", // 3 growth matches
				ContextTokenCount: 25000,                              // 0.5 capped
				LoadedFileCount:   20,                                 // 0.3 capped
			},
			want: 1.0, // 0.5 + 0.3 + 0.24 clamped
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := a.Score(tt.input)
			if diff := got - tt.want; diff > 1e-9 || diff < -1e-9 {
				t.Errorf("Score(%+v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
