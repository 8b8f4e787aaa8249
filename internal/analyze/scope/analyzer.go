// Package scope scores how much of the project a task touches, from
// breadth vocabulary, the number of files already loaded, and the sheer
// length of the task description.
package scope

import (
	"strings"

	"github.com/DevCompass/compass-cli/internal/engine/core"
	"github.com/DevCompass/compass-cli/internal/engine/registry"
	"github.com/DevCompass/compass-cli/pkg/schema"
)

var globalIndicators = []string{"all", "entire", "every", "across", "throughout", "system-wide"}

var multiIndicators = []string{"multiple", "several", "various", "different", "many"}

const (
	globalMatchWeight = 0.15
	globalMatchCap    = 0.4
	multiMatchWeight  = 0.1
	multiMatchCap     = 0.3
)

func init() {
	registry.MustRegister("scope", func() (core.Analyzer, error) {
		return &Analyzer{}, nil
	})
}

// Analyzer scores the scope impact of a task.
type Analyzer struct{}

// Name returns the analyzer identifier.
func (a *Analyzer) Name() string { return "scope" }

// Score combines breadth keywords, loaded-file pressure, and description
// length into a [0,1] scope score.
func (a *Analyzer) Score(in schema.ClassificationInput) float64 {
	text := strings.ToLower(in.TaskText)
	sum := 0.0

	globalMatches := countContained(text, globalIndicators)
	sum += capped(float64(globalMatches)*globalMatchWeight, globalMatchCap)

	multiMatches := countContained(text, multiIndicators)
	sum += capped(float64(multiMatches)*multiMatchWeight, multiMatchCap)

	switch {
	case in.LoadedFileCount > 10:
		sum += 0.2
	case in.LoadedFileCount > 5:
		sum += 0.1
	}

	words := len(strings.Fields(in.TaskText))
	switch {
	case words > 100:
		sum += 0.2
	case words > 50:
		sum += 0.1
	}

	return core.Clamp01(sum)
}

func countContained(text string, indicators []string) int {
	n := 0
	for _, ind := range indicators {
		if strings.Contains(text, ind) {
			n++
		}
	}
	return n
}

func capped(v, cap float64) float64 {
	if v > cap {
		return cap
	}
	return v
}
