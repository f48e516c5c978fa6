package engine

import (
	"testing"

	"github.com/skillradar/skillradar/internal/corpus"
)

func TestMarketInsightsEmptyResults(t *testing.T) {
	eng := New(nil, Config{}, nil)

	insights := eng.MarketInsights(nil)

	if insights.TotalJobs != 0 {
		t.Fatalf("expected 0 total jobs, got %d", insights.TotalJobs)
	}
	if insights.HighCount != 0 || insights.MediumCount != 0 || insights.LowCount != 0 {
		t.Fatalf("expected zero tier counts, got %d/%d/%d", insights.HighCount, insights.MediumCount, insights.LowCount)
	}
	if insights.AverageScore != 0 {
		t.Fatalf("expected average 0, got %v", insights.AverageScore)
	}
}

func TestMarketInsightsAggregates(t *testing.T) {
	results := []MatchResult{
		{Posting: &corpus.JobPosting{Company: "Acme", Location: "Colombo"}, Score: 80, Tier: TierHigh},
		{Posting: &corpus.JobPosting{Company: "Globex", Location: "Kandy"}, Score: 60, Tier: TierMedium},
		{Posting: &corpus.JobPosting{Company: "Acme", Location: "Colombo"}, Score: 20, Tier: TierLow},
	}

	eng := New(nil, Config{}, nil)
	insights := eng.MarketInsights(results)

	if insights.TotalJobs != 3 {
		t.Fatalf("expected 3 total jobs, got %d", insights.TotalJobs)
	}
	if insights.HighCount != 1 || insights.MediumCount != 1 || insights.LowCount != 1 {
		t.Fatalf("unexpected tier counts: %d/%d/%d", insights.HighCount, insights.MediumCount, insights.LowCount)
	}
	if insights.AverageScore != 53.3 {
		t.Fatalf("expected average 53.3, got %v", insights.AverageScore)
	}

	if len(insights.TopCompanies) != 2 || insights.TopCompanies[0] != "Acme" || insights.TopCompanies[1] != "Globex" {
		t.Fatalf("unexpected top companies: %v", insights.TopCompanies)
	}
	if len(insights.TopLocations) != 2 || insights.TopLocations[0] != "Colombo" || insights.TopLocations[1] != "Kandy" {
		t.Fatalf("unexpected top locations: %v", insights.TopLocations)
	}
}
