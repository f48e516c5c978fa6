package filtering

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/skillradar/skillradar/internal/corpus"
)

// Filter represents a single filtering step applied to the corpus snapshot
// before ranking. Filters return a new snapshot and never mutate the input.
type Filter interface {
	Name() string
	Apply(ctx context.Context, c *corpus.Corpus) (*corpus.Corpus, Step, error)
}

// Step describes the result of executing a filtering step.
type Step struct {
	Initial int
	Dropped int
	Left    int
}

type Filtering struct {
	steps  []Filter
	logger *zap.Logger
}

func New(steps []Filter, logger *zap.Logger) *Filtering {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Filtering{steps: steps, logger: logger}
}

// RunFilters executes the supplied filters sequentially and returns the
// resulting snapshot.
func (f *Filtering) RunFilters(ctx context.Context, c *corpus.Corpus) (*corpus.Corpus, error) {
	for _, step := range f.steps {
		next, info, err := step.Apply(ctx, c)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", step.Name(), err)
		}

		f.logger.Info("filter step",
			zap.String("name", step.Name()),
			zap.Int("initial", info.Initial),
			zap.Int("dropped", info.Dropped),
			zap.Int("left", info.Left),
		)

		c = next
	}

	return c, nil
}
