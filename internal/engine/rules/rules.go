// Package rules converts feature scores into a classification result
// using a strict, ordered priority list. Exactly one rule fires per
// evaluation: rules are checked top to bottom and the first whose
// condition holds wins.
package rules

import (
	"github.com/DevCompass/compass-cli/internal/engine/core"
	"github.com/DevCompass/compass-cli/pkg/schema"
)

// contextTokenLimit is the context size above which work is always split
// into phases, regardless of keyword content.
const contextTokenLimit = 30000

// loadedFileLimit is the file count treated as system-wide scope.
const loadedFileLimit = 10

// Rule is one entry in the priority list.
type Rule struct {
	Name       string
	Condition  func(f schema.FeatureScores) bool
	Workflow   schema.WorkflowLabel
	Confidence float64
	Reasoning  string
}

// Ordered returns the priority list, highest priority first.
func Ordered() []Rule {
	return []Rule{
		{
			Name:       "context-size override",
			Condition:  func(f schema.FeatureScores) bool { return f.ContextTokenCount > contextTokenLimit },
			Workflow:   schema.PhaseBased,
			Confidence: 0.9,
			Reasoning:  "context size exceeds 30000 tokens",
		},
		{
			Name: "system-scope override",
			Condition: func(f schema.FeatureScores) bool {
				return f.SystemScope >= 1 || f.LoadedFileCount > loadedFileLimit
			},
			Workflow:   schema.PhaseBased,
			Confidence: 0.9,
			Reasoning:  "system-wide scope detected",
		},
		{
			Name:       "high-risk override",
			Condition:  func(f schema.FeatureScores) bool { return f.HighRisk >= 1 },
			Workflow:   schema.CompleteSystem,
			Confidence: 0.85,
			Reasoning:  "high-risk keyword(s) detected",
		},
		{
			Name:       "complex task",
			Condition:  func(f schema.FeatureScores) bool { return f.ComplexComplexity >= 2 },
			Workflow:   schema.CompleteSystem,
			Confidence: 0.8,
			Reasoning:  "multiple complexity indicators",
		},
		{
			Name: "simple task",
			Condition: func(f schema.FeatureScores) bool {
				return f.SimpleComplexity >= 1 && f.ComplexComplexity == 0
			},
			Workflow:   schema.Orchestrated,
			Confidence: 0.85,
			Reasoning:  "simple-task keyword(s), no complexity indicators",
		},
		{
			Name:       "default",
			Condition:  func(f schema.FeatureScores) bool { return true },
			Workflow:   schema.CompleteSystem,
			Confidence: 0.7,
			Reasoning:  "no distinguishing signals; defaulting to comprehensive workflow",
		},
	}
}

// Evaluate applies the priority list to the feature scores and returns a
// result. The security scan recommendation is layered on top of whichever
// rule fired: it is true whenever any security-trigger keyword matched.
// Fails with ErrInvalidFeatureScores on negative counts; this never
// happens for extractor-produced scores.
func Evaluate(f schema.FeatureScores) (*schema.ClassificationResult, error) {
	if !f.Wellformed() {
		return nil, core.ErrInvalidFeatureScores
	}

	for _, rule := range Ordered() {
		if !rule.Condition(f) {
			continue
		}
		return &schema.ClassificationResult{
			Workflow:                rule.Workflow,
			Confidence:              rule.Confidence,
			Reasoning:               rule.Reasoning,
			SecurityScanRecommended: f.SecurityTrigger >= 1,
		}, nil
	}

	// The default rule always matches.
	panic("rules: priority list had no matching rule")
}
