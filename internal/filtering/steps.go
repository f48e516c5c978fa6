package filtering

import (
	"context"
	"strings"
	"time"

	"github.com/skillradar/skillradar/internal/corpus"
)

const closingDateLayout = "2006-01-02"

type locationFilter struct {
	location string
}

// NewLocation creates a filter that keeps only postings whose location
// contains the given value, case-insensitively. An empty value keeps
// everything.
func NewLocation(location string) Filter {
	return &locationFilter{location: strings.ToLower(strings.TrimSpace(location))}
}

func (f *locationFilter) Name() string { return "location" }

func (f *locationFilter) Apply(_ context.Context, c *corpus.Corpus) (*corpus.Corpus, Step, error) {
	initial := c.Len()
	if f.location == "" {
		return c, Step{Initial: initial, Dropped: 0, Left: initial}, nil
	}

	drop := make(map[int]bool)
	for idx, posting := range c.Items {
		if !strings.Contains(strings.ToLower(posting.Location), f.location) {
			drop[idx] = true
		}
	}

	next := c.Remove(drop)
	return next, Step{Initial: initial, Dropped: len(drop), Left: next.Len()}, nil
}

type closingDateFilter struct {
	now time.Time
}

// NewClosingDate creates a filter that drops postings whose closing date has
// already passed. Postings without a parseable closing date are kept.
func NewClosingDate(now time.Time) Filter {
	return &closingDateFilter{now: now}
}

func (f *closingDateFilter) Name() string { return "closing_date" }

func (f *closingDateFilter) Apply(_ context.Context, c *corpus.Corpus) (*corpus.Corpus, Step, error) {
	initial := c.Len()

	drop := make(map[int]bool)
	for idx, posting := range c.Items {
		if posting.ClosingDate == "" {
			continue
		}
		closes, err := time.Parse(closingDateLayout, posting.ClosingDate)
		if err != nil {
			continue
		}
		if closes.Before(f.now.Truncate(24 * time.Hour)) {
			drop[idx] = true
		}
	}

	next := c.Remove(drop)
	return next, Step{Initial: initial, Dropped: len(drop), Left: next.Len()}, nil
}
