// Package core holds the shared contracts of the classification engine:
// pipeline errors and the Analyzer interface implemented by the factor
// analyzers under internal/analyze.
package core

import "github.com/DevCompass/compass-cli/pkg/schema"

// Analyzer scores one advisory dimension of a task in [0,1].
//
// Analyzers are pure: the same input always yields the same score, no
// state is kept between calls, and Score never fails. They run after the
// rule evaluator and never influence the chosen workflow.
type Analyzer interface {
	// Name is the analyzer identifier (e.g. "complexity", "risk").
	Name() string

	// Score computes the dimension score for the input. Implementations
	// must clamp the result to [0,1].
	Score(in schema.ClassificationInput) float64
}

// Clamp01 bounds a score to the valid [0,1] range.
func Clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
