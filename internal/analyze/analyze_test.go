package analyze

import (
	"testing"

	"github.com/DevCompass/compass-cli/pkg/schema"
)

func TestDecisionFactors(t *testing.T) {
	f := schema.FactorScores{
		TechnicalComplexity: 0.7,
		RiskFactor:          0.6,
		ScopeImpact:         0.1,
		ContextLoad:         0.1,
		TimePressure:        0.0,
	}

	got := DecisionFactors(f, schema.CompleteSystem)
	want := []string{
		"high technical complexity (0.70)",
		"significant risk factors (0.60)",
		"requires comprehensive validation",
	}
	if len(got) != len(want) {
		t.Fatalf("DecisionFactors = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("factor[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestDecisionFactors_QuietTask(t *testing.T) {
	got := DecisionFactors(schema.FactorScores{}, schema.Orchestrated)
	if len(got) != 1 || got[0] != "suits streamlined execution" {
		t.Errorf("quiet task should only carry the workflow line, got %v", got)
	}
}

func TestSuitability(t *testing.T) {
	f := schema.FactorScores{
		TechnicalComplexity: 1,
		ScopeImpact:         1,
		RiskFactor:          1,
		ContextLoad:         1,
		TimePressure:        1,
	}
	// Weights for every workflow sum to 1.
	for _, w := range []schema.WorkflowLabel{
		schema.Orchestrated, schema.CompleteSystem, schema.PhaseBased, schema.FeatureDevelopment,
	} {
		if got := Suitability(f, w); got < 0.999 || got > 1.0 {
			t.Errorf("Suitability(all ones, %s) = %v, want 1.0", w, got)
		}
	}

	if got := Suitability(f, schema.StandardsSetup); got != 0 {
		t.Errorf("workflow without weights should score 0, got %v", got)
	}
}

func TestAlternatives(t *testing.T) {
	f := schema.FactorScores{
		TechnicalComplexity: 0.8,
		ScopeImpact:         0.7,
		RiskFactor:          0.6,
		ContextLoad:         0.5,
		TimePressure:        0.2,
	}

	alts := Alternatives(f, schema.CompleteSystem)
	if len(alts) == 0 || len(alts) > 3 {
		t.Fatalf("expected 1..3 alternatives, got %v", alts)
	}
	for _, alt := range alts {
		if alt.Workflow == schema.CompleteSystem {
			t.Error("chosen workflow must not appear in alternatives")
		}
		if alt.Suitability <= 0.2 {
			t.Errorf("alternative %s below viability threshold: %v", alt.Workflow, alt.Suitability)
		}
	}
	for i := 1; i < len(alts); i++ {
		if alts[i].Suitability > alts[i-1].Suitability {
			t.Errorf("alternatives not sorted by suitability: %v", alts)
		}
	}
}

func TestAlternatives_Deterministic(t *testing.T) {
	f := schema.FactorScores{TechnicalComplexity: 0.5, ScopeImpact: 0.5, RiskFactor: 0.5, ContextLoad: 0.5, TimePressure: 0.5}
	first := Alternatives(f, schema.Orchestrated)
	for i := 0; i < 10; i++ {
		again := Alternatives(f, schema.Orchestrated)
		if len(again) != len(first) {
			t.Fatalf("alternative count changed: %v vs %v", again, first)
		}
		for j := range first {
			if again[j] != first[j] {
				t.Fatalf("alternatives changed between calls: %v vs %v", again, first)
			}
		}
	}
}

func TestScoreLevel(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{0.9, "Very High"},
		{0.8, "Very High"},
		{0.7, "High"},
		{0.5, "Medium"},
		{0.3, "Low"},
		{0.1, "Very Low"},
		{0.0, "Very Low"},
	}
	for _, tt := range tests {
		if got := ScoreLevel(tt.score); got != tt.want {
			t.Errorf("ScoreLevel(%v) = %q, want %q", tt.score, got, tt.want)
		}
	}
}
