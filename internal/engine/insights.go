package engine

// leadingResults caps how many top-ranked results feed the company and
// location summaries.
const leadingResults = 10

// MarketInsights aggregates an already-ranked, already-tiered result set.
type MarketInsights struct {
	TotalJobs    int      `json:"total_jobs"`
	HighCount    int      `json:"high_count"`
	MediumCount  int      `json:"medium_count"`
	LowCount     int      `json:"low_count"`
	AverageScore float64  `json:"average_score"`
	TopCompanies []string `json:"top_companies"`
	TopLocations []string `json:"top_locations"`
}

// aggregateInsights is a pure aggregation with no side effects. An empty
// result set yields zero counts and a zero mean, never a division by zero.
func aggregateInsights(results []MatchResult) *MarketInsights {
	insights := &MarketInsights{
		TotalJobs:    len(results),
		TopCompanies: []string{},
		TopLocations: []string{},
	}

	if len(results) == 0 {
		return insights
	}

	var sum float64
	for _, result := range results {
		sum += result.Score
		switch result.Tier {
		case TierHigh:
			insights.HighCount++
		case TierMedium:
			insights.MediumCount++
		default:
			insights.LowCount++
		}
	}
	insights.AverageScore = roundPercent(sum / float64(len(results)))

	leading := results
	if len(leading) > leadingResults {
		leading = leading[:leadingResults]
	}

	seenCompany := make(map[string]bool)
	seenLocation := make(map[string]bool)
	for _, result := range leading {
		if company := result.Posting.Company; company != "" && !seenCompany[company] {
			seenCompany[company] = true
			insights.TopCompanies = append(insights.TopCompanies, company)
		}
		if location := result.Posting.Location; location != "" && !seenLocation[location] {
			seenLocation[location] = true
			insights.TopLocations = append(insights.TopLocations, location)
		}
	}

	return insights
}
