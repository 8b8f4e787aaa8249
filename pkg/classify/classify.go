// Package classify is the public entry point of the workflow classifier.
// It maps a free-text task description plus two numeric context signals
// to a workflow label, a confidence score, and a human-readable
// justification.
//
// Classification is a pure function of its inputs: the same input always
// yields the same result, no state is kept between calls, and calls may
// run concurrently without coordination.
package classify

import (
	"github.com/DevCompass/compass-cli/internal/analyze"
	"github.com/DevCompass/compass-cli/internal/engine/dict"
	"github.com/DevCompass/compass-cli/internal/engine/extract"
	"github.com/DevCompass/compass-cli/internal/engine/rules"
	"github.com/DevCompass/compass-cli/pkg/schema"
)

// Classifier runs the classification pipeline: feature extraction against
// a keyword dictionary, then ordered rule evaluation, then advisory
// factor analysis.
type Classifier struct {
	extractor *extract.Extractor
}

// Option configures a Classifier.
type Option func(*options)

type options struct {
	dictionary *dict.Dictionary
}

// WithDictionary replaces the builtin keyword dictionary, typically with
// one carrying a user overlay.
func WithDictionary(d *dict.Dictionary) Option {
	return func(o *options) { o.dictionary = d }
}

// New creates a classifier.
func New(opts ...Option) *Classifier {
	o := options{dictionary: dict.Default()}
	for _, opt := range opts {
		opt(&o)
	}
	return &Classifier{extractor: extract.New(o.dictionary)}
}

// Classify classifies a single task.
// The only error a caller sees in normal use is ErrEmptyTask.
func (c *Classifier) Classify(taskText string, contextTokens, loadedFiles int) (*schema.ClassificationResult, error) {
	return c.ClassifyInput(schema.ClassificationInput{
		TaskText:          taskText,
		ContextTokenCount: contextTokens,
		LoadedFileCount:   loadedFiles,
	})
}

// ClassifyInput classifies a prepared input.
func (c *Classifier) ClassifyInput(in schema.ClassificationInput) (*schema.ClassificationResult, error) {
	if in.ContextTokenCount < 0 {
		in.ContextTokenCount = 0
	}
	if in.LoadedFileCount < 0 {
		in.LoadedFileCount = 0
	}

	scores, err := c.extractor.Extract(in)
	if err != nil {
		return nil, err
	}

	result, err := rules.Evaluate(scores)
	if err != nil {
		return nil, err
	}

	// Advisory enrichment. The canonical workflow, confidence, and
	// reasoning above are already final.
	if factors, err := analyze.Run(in); err == nil {
		result.Factors = factors
		result.DecisionFactors = analyze.DecisionFactors(*factors, result.Workflow)
		result.Alternatives = analyze.Alternatives(*factors, result.Workflow)
	}

	return result, nil
}

var defaultClassifier = New()

// Classify classifies a task with the builtin dictionary.
func Classify(taskText string, contextTokens, loadedFiles int) (*schema.ClassificationResult, error) {
	return defaultClassifier.Classify(taskText, contextTokens, loadedFiles)
}

// ClassifyInput classifies a prepared input with the builtin dictionary.
func ClassifyInput(in schema.ClassificationInput) (*schema.ClassificationResult, error) {
	return defaultClassifier.ClassifyInput(in)
}
