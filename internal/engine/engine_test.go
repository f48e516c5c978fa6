package engine

import (
	"testing"

	"github.com/skillradar/skillradar/internal/corpus"
	"github.com/skillradar/skillradar/internal/errors"
)

func TestRecommendRejectsInvalidTopN(t *testing.T) {
	eng := New(corpus.Sample(), Config{}, nil)

	for _, topN := range []int{0, -1} {
		_, err := eng.Recommend(NewSkillQuery([]string{"python"}), topN)
		if err == nil {
			t.Fatalf("expected error for top_n %d", topN)
		}
		if !errors.IsType(err, errors.ErrTypeInvalidInput) {
			t.Fatalf("expected InvalidInput error, got %v", err)
		}
	}
}

func TestRecommendEmptyCorpus(t *testing.T) {
	eng := New(&corpus.Corpus{}, Config{}, nil)

	results, err := eng.Recommend(NewSkillQuery([]string{"python"}), 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(results) != 0 {
		t.Fatalf("expected no results for an empty corpus, got %d", len(results))
	}
}

func TestRecommendAgainstSampleCorpus(t *testing.T) {
	eng := New(corpus.Sample(), Config{}, nil)

	results, err := eng.Recommend(NewSkillQuery([]string{"python", "react", "mongodb"}), 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(results) != 5 {
		t.Fatalf("expected 5 results, got %d", len(results))
	}

	for i, result := range results {
		if result.Score < 0 || result.Score > 100 {
			t.Fatalf("score out of range at %d: %v", i, result.Score)
		}
		if result.Rank != i+1 {
			t.Fatalf("expected rank %d, got %d", i+1, result.Rank)
		}
		if i > 0 && results[i-1].Score < result.Score {
			t.Fatalf("scores not non-increasing at %d: %v then %v", i, results[i-1].Score, result.Score)
		}
	}
}

func TestRecommendEmptyQueryScoresZero(t *testing.T) {
	eng := New(corpus.Sample(), Config{}, nil)

	results, err := eng.Recommend(NewSkillQuery(nil), 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(results) != 5 {
		t.Fatalf("expected 5 results, got %d", len(results))
	}
	for i, result := range results {
		if result.Score != 0 {
			t.Fatalf("expected zero score at %d, got %v", i, result.Score)
		}
		if result.Tier != TierLow {
			t.Fatalf("expected Low tier at %d, got %s", i, result.Tier)
		}
	}
}

func TestRecommendFullTextMatchWinsOverDisjoint(t *testing.T) {
	items := []*corpus.JobPosting{
		{ID: "1", Title: "Gardener", Description: "Tend flower beds and prune hedges daily."},
		{ID: "2", Title: "Developer", Description: "We need python react engineers to ship features."},
		{ID: "3", Title: "Chef", Description: "Prepare seasonal menus and manage kitchen staff."},
	}
	eng := New(&corpus.Corpus{Items: items}, Config{}, nil)

	results, err := eng.Recommend(NewSkillQuery([]string{"python", "react"}), 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if results[0].Posting.ID != "2" {
		t.Fatalf("expected the matching posting first, got %s", results[0].Posting.ID)
	}
	if results[0].Score <= results[1].Score {
		t.Fatalf("expected strictly greater score for the matching posting: %v vs %v", results[0].Score, results[1].Score)
	}
	for _, result := range results[1:] {
		if result.Score != 0 {
			t.Fatalf("expected zero score for a disjoint posting, got %v", result.Score)
		}
	}
}

func TestRecommendIsDeterministic(t *testing.T) {
	eng := New(corpus.Sample(), Config{}, nil)
	query := NewSkillQuery([]string{"java", "docker", "aws"})

	first, err := eng.Recommend(query, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := eng.Recommend(query, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(first) != len(second) {
		t.Fatalf("result lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].Posting.ID != second[i].Posting.ID {
			t.Fatalf("ordering differs at %d: %s vs %s", i, first[i].Posting.ID, second[i].Posting.ID)
		}
		if first[i].Score != second[i].Score {
			t.Fatalf("score differs at %d: %v vs %v", i, first[i].Score, second[i].Score)
		}
	}
}

func TestRecommendTopNBeyondCorpusSize(t *testing.T) {
	eng := New(corpus.Sample(), Config{}, nil)

	results, err := eng.Recommend(NewSkillQuery([]string{"python"}), 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(results) != corpus.Sample().Len() {
		t.Fatalf("expected the full ranked corpus, got %d results", len(results))
	}
}
