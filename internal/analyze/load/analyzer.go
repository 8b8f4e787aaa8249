// Package load scores the current context pressure of a conversation and
// predicts how much the task at hand will grow it.
package load

import (
	"strings"

	"github.com/DevCompass/compass-cli/internal/engine/core"
	"github.com/DevCompass/compass-cli/internal/engine/registry"
	"github.com/DevCompass/compass-cli/pkg/schema"
)

var growthIndicators = []string{
	"implement", "create", "build", "design", "refactor",
	"architecture", "system", "complex", "integration",
}

const (
	// tokensForHalfLoad is the context size that alone counts as half of
	// the maximum load.
	tokensForHalfLoad = 25000.0
	filesForThirdLoad = 20.0
	growthWeight      = 0.08
	growthCap         = 0.4
)

func init() {
	registry.MustRegister("load", func() (core.Analyzer, error) {
		return &Analyzer{}, nil
	})
}

// Analyzer scores context load.
type Analyzer struct{}

// Name returns the analyzer identifier.
func (a *Analyzer) Name() string { return "load" }

// Score combines current token count, loaded files, and predicted growth
// from build-heavy vocabulary.
func (a *Analyzer) Score(in schema.ClassificationInput) float64 {
	base := float64(in.ContextTokenCount) / tokensForHalfLoad
	if base > 0.5 {
		base = 0.5
	}

	files := float64(in.LoadedFileCount) / filesForThirdLoad
	if files > 0.3 {
		files = 0.3
	}

	text := strings.ToLower(in.TaskText)
	growth := 0.0
	for _, ind := range growthIndicators {
		if strings.Contains(text, ind) {
			growth += growthWeight
		}
	}
	if growth > growthCap {
		growth = growthCap
	}

	return core.Clamp01(base + files + growth)
}
