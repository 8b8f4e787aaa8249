// Package complexity scores the technical complexity of a task from
// weighted keyword evidence. Heavy engineering terms push the score up,
// quick-fix vocabulary pulls it down, and the raw sum is squashed through
// a sigmoid so the result stays in [0,1].
package complexity

import (
	"math"
	"strings"

	"github.com/DevCompass/compass-cli/internal/engine/core"
	"github.com/DevCompass/compass-cli/internal/engine/registry"
	"github.com/DevCompass/compass-cli/pkg/schema"
)

const (
	sigmoidCenter = 0.3
	sigmoidScale  = 0.2
)

// weight pairs a keyword with its complexity contribution. Negative
// weights mark vocabulary typical of small, contained edits.
type weight struct {
	keyword string
	value   float64
}

// Ordered slice rather than a map: summation is order-independent, but a
// fixed order keeps any future change to the fold deterministic.
var weights = []weight{
	{"architecture", 0.3},
	{"distributed", 0.3},
	{"refactor", 0.25},
	{"migrate", 0.25},
	{"algorithm", 0.25},
	{"system", 0.2},
	{"complex", 0.2},
	{"optimization", 0.2},
	{"integration", 0.2},
	{"scalable", 0.2},
	{"security", 0.2},
	{"implement", 0.15},
	{"design", 0.15},
	{"api", 0.15},
	{"database", 0.15},
	{"auth", 0.15},
	{"create", 0.1},
	{"build", 0.1},
	{"update", -0.05},
	{"change", -0.05},
	{"fix", -0.1},
	{"small", -0.1},
	{"quick", -0.1},
	{"simple", -0.15},
	{"typo", -0.2},
}

func init() {
	registry.MustRegister("complexity", func() (core.Analyzer, error) {
		return &Analyzer{}, nil
	})
}

// Analyzer scores technical complexity.
type Analyzer struct{}

// Name returns the analyzer identifier.
func (a *Analyzer) Name() string { return "complexity" }

// Score sums the matched keyword weights and normalizes with a sigmoid.
func (a *Analyzer) Score(in schema.ClassificationInput) float64 {
	text := strings.ToLower(in.TaskText)
	if strings.TrimSpace(text) == "" {
		return 0
	}

	sum := 0.0
	for _, w := range weights {
		if strings.Contains(text, w.keyword) {
			sum += w.value
		}
	}

	normalized := 1 / (1 + math.Exp(-(sum-sigmoidCenter)/sigmoidScale))
	return core.Clamp01(normalized)
}
