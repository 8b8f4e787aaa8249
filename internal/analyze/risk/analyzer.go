// Package risk scores how dangerous a task is to perform, from additive
// keyword evidence in three severity bands.
package risk

import (
	"strings"

	"github.com/DevCompass/compass-cli/internal/engine/core"
	"github.com/DevCompass/compass-cli/internal/engine/registry"
	"github.com/DevCompass/compass-cli/pkg/schema"
)

type weight struct {
	keyword string
	value   float64
}

var criticalRisks = []weight{
	{"breaking", 0.4},
	{"critical", 0.4},
	{"delete", 0.3},
	{"remove", 0.3},
	{"drop", 0.3},
	{"production", 0.3},
	{"live", 0.3},
	{"migrate", 0.25},
}

var highRisks = []weight{
	{"security", 0.25},
	{"password", 0.25},
	{"auth", 0.2},
	{"permission", 0.2},
	{"admin", 0.2},
	{"schema", 0.2},
	{"database", 0.15},
	{"api", 0.1},
}

var mediumRisks = []weight{
	{"refactor", 0.1},
	{"change", 0.05},
	{"modify", 0.05},
	{"update", 0.05},
}

func init() {
	registry.MustRegister("risk", func() (core.Analyzer, error) {
		return &Analyzer{}, nil
	})
}

// Analyzer scores the risk factor of a task.
type Analyzer struct{}

// Name returns the analyzer identifier.
func (a *Analyzer) Name() string { return "risk" }

// Score sums the matched risk weights across all bands, clamped to [0,1].
func (a *Analyzer) Score(in schema.ClassificationInput) float64 {
	text := strings.ToLower(in.TaskText)

	sum := 0.0
	for _, band := range [][]weight{criticalRisks, highRisks, mediumRisks} {
		for _, w := range band {
			if strings.Contains(text, w.keyword) {
				sum += w.value
			}
		}
	}
	return core.Clamp01(sum)
}
