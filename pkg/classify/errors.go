package classify

import "github.com/DevCompass/compass-cli/internal/engine/core"

// Re-exported pipeline errors, checkable with errors.Is.
var (
	// ErrEmptyTask: the task text was empty or whitespace-only.
	ErrEmptyTask = core.ErrEmptyTask

	// ErrUnknownCategory: a keyword category name outside the fixed set
	// was referenced, e.g. by a bad overlay file.
	ErrUnknownCategory = core.ErrUnknownCategory

	// ErrInvalidFeatureScores: never observed through Classify; scores
	// built by the extractor are wellformed by construction.
	ErrInvalidFeatureScores = core.ErrInvalidFeatureScores
)
