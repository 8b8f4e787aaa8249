// Package urgency scores the time pressure expressed in a task
// description. The strongest single urgency cue dominates; piling on
// extra cues nudges the score up slightly.
package urgency

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

var urgencyIndicators = []weight{
	{"emergency", 0.45},
	{"critical", 0.4},
	{"asap", 0.35},
	{"immediately", 0.35},
	{"urgent", 0.3},
	{"rush", 0.3},
	{"quickly", 0.25},
	{"deadline", 0.25},
	{"fast", 0.2},
	{"priority", 0.2},
	{"soon", 0.15},
}

var timeSpecificPhrases = []string{
	"today", "tonight", "tomorrow", "this morning", "right now",
}

const (
	timeSpecificFloor = 0.4
	stackingBonus     = 0.1
	stackingThreshold = 2
)

func init() {
	registry.MustRegister("urgency", func() (core.Analyzer, error) {
		return &Analyzer{}, nil
	})
}

// Analyzer scores time pressure.
type Analyzer struct{}

// Name returns the analyzer identifier.
func (a *Analyzer) Name() string { return "urgency" }

// Score takes the maximum matched urgency weight, raises it to a floor
// when a concrete time phrase appears, and adds a bonus when more than
// two urgency cues stack.
func (a *Analyzer) Score(in schema.ClassificationInput) float64 {
	text := strings.ToLower(in.TaskText)

	score := 0.0
	matched := 0
	for _, w := range urgencyIndicators {
		if strings.Contains(text, w.keyword) {
			matched++
			if w.value > score {
				score = w.value
			}
		}
	}

	for _, phrase := range timeSpecificPhrases {
		if strings.Contains(text, phrase) {
			if score < timeSpecificFloor {
				score = timeSpecificFloor
			}
			break
		}
	}

	if matched > stackingThreshold {
		score += stackingBonus
	}

	return core.Clamp01(score)
}
