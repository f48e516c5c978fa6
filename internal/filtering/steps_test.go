package filtering

import (
	"context"
	"testing"
	"time"

	"github.com/skillradar/skillradar/internal/corpus"
)

func postings() *corpus.Corpus {
	return &corpus.Corpus{Items: []*corpus.JobPosting{
		{ID: "1", Title: "Backend Developer", Location: "Colombo 05", Description: "Go", ClosingDate: "2024-03-15"},
		{ID: "2", Title: "Frontend Developer", Location: "Kandy", Description: "React", ClosingDate: "2024-04-10"},
		{ID: "3", Title: "Data Engineer", Location: "Colombo", Description: "ETL", ClosingDate: ""},
	}}
}

func TestLocationFilter(t *testing.T) {
	filter := NewLocation("colombo")

	next, step, err := filter.Apply(context.Background(), postings())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if next.Len() != 2 {
		t.Fatalf("expected 2 postings, got %d", next.Len())
	}
	if next.FindByID("2") != nil {
		t.Fatalf("expected the Kandy posting to be dropped")
	}
	if step.Initial != 3 || step.Dropped != 1 || step.Left != 2 {
		t.Fatalf("unexpected step accounting: %+v", step)
	}
}

func TestLocationFilterEmptyValueKeepsEverything(t *testing.T) {
	filter := NewLocation("")

	next, step, err := filter.Apply(context.Background(), postings())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if next.Len() != 3 || step.Dropped != 0 {
		t.Fatalf("expected a no-op, got %d postings (step %+v)", next.Len(), step)
	}
}

func TestClosingDateFilter(t *testing.T) {
	now := time.Date(2024, 3, 20, 12, 0, 0, 0, time.UTC)
	filter := NewClosingDate(now)

	next, step, err := filter.Apply(context.Background(), postings())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if next.Len() != 2 {
		t.Fatalf("expected 2 postings, got %d", next.Len())
	}
	if next.FindByID("1") != nil {
		t.Fatalf("expected the closed posting to be dropped")
	}
	// Postings without a parseable closing date stay in.
	if next.FindByID("3") == nil {
		t.Fatalf("expected the posting without a closing date to be kept")
	}
	if step.Dropped != 1 {
		t.Fatalf("unexpected step accounting: %+v", step)
	}
}

func TestRunFiltersSequentially(t *testing.T) {
	now := time.Date(2024, 3, 20, 12, 0, 0, 0, time.UTC)
	pipeline := New([]Filter{NewLocation("colombo"), NewClosingDate(now)}, nil)

	next, err := pipeline.RunFilters(context.Background(), postings())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if next.Len() != 1 || next.Items[0].ID != "3" {
		t.Fatalf("expected only posting 3 to survive, got %v", next.Items)
	}
}
