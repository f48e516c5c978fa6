package engine

import (
	"go.uber.org/zap"

	"github.com/skillradar/skillradar/internal/corpus"
	"github.com/skillradar/skillradar/internal/errors"
)

// Config tunes the vectorizer.
type Config struct {
	// MaxFeatures bounds the vocabulary size. Default 500.
	MaxFeatures int
	// NGramMax is the longest n-gram generated. Default 2.
	NGramMax int
}

// Engine runs matching over one corpus snapshot. A new Engine is cheap to
// construct; callers build one per snapshot and share nothing between runs.
type Engine struct {
	snapshot *corpus.Corpus
	cfg      Config
	logger   *zap.Logger
}

func New(snapshot *corpus.Corpus, cfg Config, logger *zap.Logger) *Engine {
	if snapshot == nil {
		snapshot = &corpus.Corpus{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{
		snapshot: snapshot,
		cfg:      cfg,
		logger:   logger,
	}
}

func (e *Engine) Corpus() *corpus.Corpus {
	return e.snapshot
}

// Recommend ranks the snapshot against the query and returns at most topN
// results, best first. An empty corpus yields an empty result, not an error.
func (e *Engine) Recommend(query SkillQuery, topN int) ([]MatchResult, error) {
	if topN < 1 {
		return nil, errors.InvalidInput("top_n must be at least 1", nil)
	}

	if e.snapshot.Len() == 0 {
		return []MatchResult{}, nil
	}

	space := buildTermSpace(e.snapshot.Texts(), query.Text(), e.cfg)
	queryVector := space.Vector(query.Text())

	results := rankResults(space, queryVector, e.snapshot.Items, topN)

	e.logger.Debug("matching run completed",
		zap.Int("corpus_size", e.snapshot.Len()),
		zap.Int("vocabulary_size", space.Size()),
		zap.Int("query_tokens", query.Len()),
		zap.Int("results", len(results)),
	)

	return results, nil
}

// AnalyzeGap partitions the reference requirement vocabulary into skills the
// candidate holds and skills they lack, ordered by market demand.
func (e *Engine) AnalyzeGap(query SkillQuery, ref GapReference) *SkillGapReport {
	return analyzeGap(query, ref, e.snapshot.SkillDemand())
}

// MarketInsights aggregates statistics over a ranked result set.
func (e *Engine) MarketInsights(results []MatchResult) *MarketInsights {
	return aggregateInsights(results)
}
