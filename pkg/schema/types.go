// Package schema defines the shared value objects of the workflow
// classifier: the workflow label enum, the classification input, the
// extracted feature scores, and the classification result. All types are
// JSON-serializable for external consumers and are treated as immutable
// once constructed.
package schema

import "strings"

// WorkflowLabel names the workflow an assistant should follow for a task.
type WorkflowLabel string

// The closed set of workflow labels.
const (
	// Orchestrated is the short, streamlined process for small tasks.
	Orchestrated WorkflowLabel = "Orchestrated"

	// CompleteSystem is the comprehensive process with full validation.
	CompleteSystem WorkflowLabel = "CompleteSystem"

	// PhaseBased splits work into phases to keep context size manageable.
	PhaseBased WorkflowLabel = "PhaseBased"

	// FeatureDevelopment is the PRD-driven feature building process.
	FeatureDevelopment WorkflowLabel = "FeatureDevelopment"

	// StandardsSetup bootstraps project conventions and tooling.
	StandardsSetup WorkflowLabel = "StandardsSetup"
)

// AllWorkflows lists every valid workflow label.
func AllWorkflows() []WorkflowLabel {
	return []WorkflowLabel{
		Orchestrated,
		CompleteSystem,
		PhaseBased,
		FeatureDevelopment,
		StandardsSetup,
	}
}

// Valid reports whether the label is one of the fixed workflow names.
func (w WorkflowLabel) Valid() bool {
	switch w {
	case Orchestrated, CompleteSystem, PhaseBased, FeatureDevelopment, StandardsSetup:
		return true
	}
	return false
}

// String returns the label name.
func (w WorkflowLabel) String() string {
	return string(w)
}

// ClassificationInput holds everything needed to classify one task.
// Created once per classification call and never mutated.
type ClassificationInput struct {
	// TaskText is the free-form task description (required, non-empty).
	TaskText string `json:"task_text"`

	// ContextTokenCount is the current conversation size in tokens.
	ContextTokenCount int `json:"context_token_count"`

	// LoadedFileCount is the number of files already loaded.
	LoadedFileCount int `json:"loaded_file_count"`
}

// Empty reports whether the task text is empty after trimming whitespace.
func (in ClassificationInput) Empty() bool {
	return strings.TrimSpace(in.TaskText) == ""
}

// FeatureScores holds the unique-keyword match counts per dictionary
// category plus the numeric context signals copied from the input.
// Produced by the extractor, consumed by the rule evaluator.
type FeatureScores struct {
	SimpleComplexity  int `json:"simple_complexity"`
	ComplexComplexity int `json:"complex_complexity"`
	HighRisk          int `json:"high_risk"`
	LowRisk           int `json:"low_risk"`
	SecurityTrigger   int `json:"security_trigger"`
	SystemScope       int `json:"system_scope"`

	ContextTokenCount int `json:"context_token_count"`
	LoadedFileCount   int `json:"loaded_file_count"`
}

// Wellformed reports whether all counts and signals are non-negative.
// A false return indicates a programming defect in the extractor.
func (f FeatureScores) Wellformed() bool {
	return f.SimpleComplexity >= 0 &&
		f.ComplexComplexity >= 0 &&
		f.HighRisk >= 0 &&
		f.LowRisk >= 0 &&
		f.SecurityTrigger >= 0 &&
		f.SystemScope >= 0 &&
		f.ContextTokenCount >= 0 &&
		f.LoadedFileCount >= 0
}

// FactorScores holds the five-dimension advisory analysis of a task.
// Each score is in [0,1]. These never change the classified workflow;
// they give callers a richer picture of why a task is easy or hard.
type FactorScores struct {
	TechnicalComplexity float64 `json:"technical_complexity"`
	ScopeImpact         float64 `json:"scope_impact"`
	RiskFactor          float64 `json:"risk_factor"`
	ContextLoad         float64 `json:"context_load"`
	TimePressure        float64 `json:"time_pressure"`
}

// Alternative is a workflow that was considered but not chosen, with its
// suitability score for the analyzed task.
type Alternative struct {
	Workflow    WorkflowLabel `json:"workflow"`
	Suitability float64       `json:"suitability"`
}

// ClassificationResult is the output of one classification call.
// Constructed once by the rule evaluator and never mutated after.
type ClassificationResult struct {
	Workflow   WorkflowLabel `json:"workflow"`
	Confidence float64       `json:"confidence"`
	Reasoning  string        `json:"reasoning"`

	// SecurityScanRecommended is true whenever the task text contains a
	// security-trigger keyword, independent of the chosen workflow.
	SecurityScanRecommended bool `json:"security_scan_recommended"`

	// Advisory analysis attached by the facade. Optional.
	Factors         *FactorScores `json:"factors,omitempty"`
	DecisionFactors []string      `json:"decision_factors,omitempty"`
	Alternatives    []Alternative `json:"alternatives,omitempty"`
}
