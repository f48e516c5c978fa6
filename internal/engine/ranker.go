package engine

import (
	"math"
	"sort"

	"github.com/skillradar/skillradar/internal/corpus"
)

// Tier is the display bucket derived from a percent score.
type Tier string

const (
	TierHigh   Tier = "High"
	TierMedium Tier = "Medium"
	TierLow    Tier = "Low"
)

const (
	highThreshold   = 70.0
	mediumThreshold = 50.0
)

// TierFor maps a percent score to its tier. Lower bounds are inclusive:
// exactly 70 is High, exactly 50 is Medium.
func TierFor(percent float64) Tier {
	switch {
	case percent >= highThreshold:
		return TierHigh
	case percent >= mediumThreshold:
		return TierMedium
	default:
		return TierLow
	}
}

// MatchResult is one ranked posting. Score is the cosine similarity as a
// percentage rounded to one decimal; raw keeps the unrounded cosine for
// ordering.
type MatchResult struct {
	Posting *corpus.JobPosting `json:"posting"`
	Score   float64            `json:"score"`
	Tier    Tier               `json:"tier"`
	Rank    int                `json:"rank"`

	raw float64
}

func rankResults(space *termSpace, queryVector []float64, postings []*corpus.JobPosting, topN int) []MatchResult {
	results := make([]MatchResult, 0, len(postings))

	for _, posting := range postings {
		raw := cosine(queryVector, space.Vector(posting.CombinedText()))
		percent := roundPercent(raw * 100)
		results = append(results, MatchResult{
			Posting: posting,
			Score:   percent,
			Tier:    TierFor(percent),
			raw:     raw,
		})
	}

	// Stable sort keeps snapshot order on ties, so identical input always
	// yields identical ranking.
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].raw > results[j].raw
	})

	if topN < len(results) {
		results = results[:topN]
	}

	for i := range results {
		results[i].Rank = i + 1
	}

	return results
}

// cosine returns the cosine similarity of two vectors. A zero-magnitude
// vector on either side yields 0, never NaN.
func cosine(a, b []float64) float64 {
	if len(a) != len(b) {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}

	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

func roundPercent(x float64) float64 {
	return math.Round(x*10) / 10
}
