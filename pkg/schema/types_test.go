package schema

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestWorkflowLabel_Valid(t *testing.T) {
	for _, w := range AllWorkflows() {
		if !w.Valid() {
			t.Errorf("AllWorkflows entry %q should be valid", w)
		}
	}

	invalid := []WorkflowLabel{"", "orchestrated", "Unknown", "complete_system"}
	for _, w := range invalid {
		if w.Valid() {
			t.Errorf("label %q should not be valid", w)
		}
	}
}

func TestClassificationInput_Empty(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"", true},
		{"   ", true},
		{"\t\n", true},
		{"fix typo", false},
		{"  x  ", false},
	}

	for _, tt := range tests {
		in := ClassificationInput{TaskText: tt.text}
		if got := in.Empty(); got != tt.want {
			t.Errorf("Empty(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

func TestFeatureScores_Wellformed(t *testing.T) {
	ok := FeatureScores{SimpleComplexity: 1, ContextTokenCount: 5000}
	if !ok.Wellformed() {
		t.Error("non-negative scores should be wellformed")
	}

	bad := FeatureScores{HighRisk: -1}
	if bad.Wellformed() {
		t.Error("negative count should not be wellformed")
	}
}

func TestClassificationResult_JSONFieldNames(t *testing.T) {
	r := ClassificationResult{
		Workflow:                Orchestrated,
		Confidence:              0.85,
		Reasoning:               "simple-task keyword(s), no complexity indicators",
		SecurityScanRecommended: false,
	}

	data, err := json.Marshal(&r)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	// External consumers depend on snake_case keys.
	for _, key := range []string{`"workflow"`, `"confidence"`, `"reasoning"`, `"security_scan_recommended"`} {
		if !strings.Contains(string(data), key) {
			t.Errorf("serialized result missing key %s: %s", key, data)
		}
	}

	// Advisory fields are omitted when unset.
	for _, key := range []string{`"factors"`, `"decision_factors"`, `"alternatives"`} {
		if strings.Contains(string(data), key) {
			t.Errorf("serialized result should omit unset key %s: %s", key, data)
		}
	}
}
