package core

import "errors"

// Sentinel errors for the classification pipeline.
var (
	// ErrEmptyTask is returned when the task text is empty or
	// whitespace-only after trimming. This is the only error a caller
	// sees in normal use.
	ErrEmptyTask = errors.New("task text is empty")

	// ErrUnknownCategory is returned when a category name is not part of
	// the fixed dictionary. Indicates a programming defect or a bad
	// keyword overlay file, not a runtime condition.
	ErrUnknownCategory = errors.New("unknown keyword category")

	// ErrInvalidFeatureScores is returned when feature scores carry
	// negative counts. Unreachable for extractor-produced scores.
	ErrInvalidFeatureScores = errors.New("invalid feature scores")
)
