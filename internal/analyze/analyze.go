// Package analyze assembles the advisory five-dimension analysis of a
// task: factor scores from the registered analyzers, human-readable
// decision factors, and ranked workflow alternatives. Nothing here
// affects the classified workflow.
package analyze

import (
	"fmt"
	"sort"

	"github.com/DevCompass/compass-cli/internal/engine/registry"
	"github.com/DevCompass/compass-cli/pkg/schema"
)

// Analyzer names, fixed: each maps to one field of schema.FactorScores.
const (
	NameComplexity = "complexity"
	NameRisk       = "risk"
	NameScope      = "scope"
	NameLoad       = "load"
	NameUrgency    = "urgency"
)

// factorWeights holds the per-workflow importance of each dimension,
// used to rank alternatives.
type factorWeights struct {
	complexity float64
	scope      float64
	risk       float64
	load       float64
	urgency    float64
}

var workflowWeights = map[schema.WorkflowLabel]factorWeights{
	schema.Orchestrated:       {complexity: 0.4, scope: 0.2, risk: 0.2, load: 0.1, urgency: 0.1},
	schema.CompleteSystem:     {complexity: 0.25, scope: 0.2, risk: 0.35, load: 0.15, urgency: 0.05},
	schema.PhaseBased:         {complexity: 0.15, scope: 0.35, risk: 0.15, load: 0.3, urgency: 0.05},
	schema.FeatureDevelopment: {complexity: 0.3, scope: 0.25, risk: 0.2, load: 0.15, urgency: 0.1},
}

const (
	maxAlternatives     = 3
	minimumSuitability  = 0.2
	highFactorThreshold = 0.6
	riskFactorThreshold = 0.5
)

// Run computes the factor scores for an input using the analyzers in the
// global registry. Fails only when a required analyzer is missing, which
// indicates a wiring defect.
func Run(in schema.ClassificationInput) (*schema.FactorScores, error) {
	scores := &schema.FactorScores{}

	targets := []struct {
		name string
		dest *float64
	}{
		{NameComplexity, &scores.TechnicalComplexity},
		{NameRisk, &scores.RiskFactor},
		{NameScope, &scores.ScopeImpact},
		{NameLoad, &scores.ContextLoad},
		{NameUrgency, &scores.TimePressure},
	}

	for _, t := range targets {
		a, err := registry.Global().Get(t.name)
		if err != nil {
			return nil, err
		}
		*t.dest = a.Score(in)
	}
	return scores, nil
}

// DecisionFactors renders the dominant factor scores as short,
// human-readable strings, plus one line describing what the chosen
// workflow is good at.
func DecisionFactors(f schema.FactorScores, chosen schema.WorkflowLabel) []string {
	var factors []string

	if f.TechnicalComplexity > highFactorThreshold {
		factors = append(factors, fmt.Sprintf("high technical complexity (%.2f)", f.TechnicalComplexity))
	}
	if f.ScopeImpact > highFactorThreshold {
		factors = append(factors, fmt.Sprintf("large scope impact (%.2f)", f.ScopeImpact))
	}
	if f.RiskFactor > riskFactorThreshold {
		factors = append(factors, fmt.Sprintf("significant risk factors (%.2f)", f.RiskFactor))
	}
	if f.ContextLoad > highFactorThreshold {
		factors = append(factors, fmt.Sprintf("high context load (%.2f)", f.ContextLoad))
	}
	if f.TimePressure > riskFactorThreshold {
		factors = append(factors, fmt.Sprintf("time pressure detected (%.2f)", f.TimePressure))
	}

	switch chosen {
	case schema.Orchestrated:
		factors = append(factors, "suits streamlined execution")
	case schema.CompleteSystem:
		factors = append(factors, "requires comprehensive validation")
	case schema.PhaseBased:
		factors = append(factors, "benefits from a phase-based approach")
	case schema.FeatureDevelopment:
		factors = append(factors, "feature development with a PRD approach")
	}

	return factors
}

// Suitability scores how well a workflow fits the analyzed task, as the
// weighted sum of its factor scores.
func Suitability(f schema.FactorScores, w schema.WorkflowLabel) float64 {
	weights, ok := workflowWeights[w]
	if !ok {
		return 0
	}
	s := f.TechnicalComplexity*weights.complexity +
		f.ScopeImpact*weights.scope +
		f.RiskFactor*weights.risk +
		f.ContextLoad*weights.load +
		f.TimePressure*weights.urgency
	if s < 0 {
		return 0
	}
	if s > 1 {
		return 1
	}
	return s
}

// Alternatives ranks the workflows that were not chosen by suitability,
// keeping only viable ones. Ties break on the label name so the output
// is deterministic.
func Alternatives(f schema.FactorScores, chosen schema.WorkflowLabel) []schema.Alternative {
	var alts []schema.Alternative
	for w := range workflowWeights {
		if w == chosen {
			continue
		}
		if s := Suitability(f, w); s > minimumSuitability {
			alts = append(alts, schema.Alternative{Workflow: w, Suitability: s})
		}
	}

	sort.Slice(alts, func(i, j int) bool {
		if alts[i].Suitability != alts[j].Suitability {
			return alts[i].Suitability > alts[j].Suitability
		}
		return alts[i].Workflow < alts[j].Workflow
	})

	if len(alts) > maxAlternatives {
		alts = alts[:maxAlternatives]
	}
	return alts
}

// ScoreLevel converts a [0,1] score to a human-readable level.
func ScoreLevel(score float64) string {
	switch {
	case score >= 0.8:
		return "Very High"
	case score >= 0.6:
		return "High"
	case score >= 0.4:
		return "Medium"
	case score >= 0.2:
		return "Low"
	default:
		return "Very Low"
	}
}
