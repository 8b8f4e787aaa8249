// Package extract computes feature scores from a classification input by
// matching the task text against the keyword dictionary.
package extract

import (
	"strings"

	"github.com/DevCompass/compass-cli/internal/engine/core"
	"github.com/DevCompass/compass-cli/internal/engine/dict"
	"github.com/DevCompass/compass-cli/pkg/schema"
)

// Extractor scans task text for dictionary keyword matches.
type Extractor struct {
	dict *dict.Dictionary
}

// New creates an extractor backed by the given dictionary.
func New(d *dict.Dictionary) *Extractor {
	return &Extractor{dict: d}
}

// Extract computes the per-category unique-keyword match counts for the
// input and copies the numeric context signals through unchanged.
// Fails with ErrEmptyTask when the task text is empty after trimming.
func (e *Extractor) Extract(in schema.ClassificationInput) (schema.FeatureScores, error) {
	if in.Empty() {
		return schema.FeatureScores{}, core.ErrEmptyTask
	}

	text := strings.ToLower(in.TaskText)

	scores := schema.FeatureScores{
		ContextTokenCount: in.ContextTokenCount,
		LoadedFileCount:   in.LoadedFileCount,
	}
	scores.SimpleComplexity = e.countMatches(text, dict.SimpleComplexity)
	scores.ComplexComplexity = e.countMatches(text, dict.ComplexComplexity)
	scores.HighRisk = e.countMatches(text, dict.HighRisk)
	scores.LowRisk = e.countMatches(text, dict.LowRisk)
	scores.SecurityTrigger = e.countMatches(text, dict.SecurityTrigger)
	scores.SystemScope = e.countMatches(text, dict.SystemScope)

	return scores, nil
}

// countMatches counts how many distinct keywords from the category occur
// as substrings of the lowercased text. Repeated occurrences of the same
// keyword count once.
func (e *Extractor) countMatches(text, category string) int {
	keywords, err := e.dict.CategoryKeywords(category)
	if err != nil {
		// The fixed categories above always exist; reaching this means a
		// defect in this package.
		panic(err)
	}

	n := 0
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			n++
		}
	}
	return n
}
