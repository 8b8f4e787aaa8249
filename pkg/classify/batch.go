package classify

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/DevCompass/compass-cli/pkg/schema"
)

// ClassifyBatch classifies many independent tasks concurrently.
// Results are returned in input order. If any input fails (empty task
// text), the whole batch fails with that error.
func (c *Classifier) ClassifyBatch(ctx context.Context, inputs []schema.ClassificationInput) ([]*schema.ClassificationResult, error) {
	results := make([]*schema.ClassificationResult, len(inputs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for i, in := range inputs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			r, err := c.ClassifyInput(in)
			if err != nil {
				return err
			}
			results[i] = r
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// ClassifyBatch classifies many tasks with the builtin dictionary.
func ClassifyBatch(ctx context.Context, inputs []schema.ClassificationInput) ([]*schema.ClassificationResult, error) {
	return defaultClassifier.ClassifyBatch(ctx, inputs)
}
