package search

import (
	domsearch "github.com/competia/searchapi/internal/domain/search"
)

// Analytics returns a search usage summary. Nothing persists per-query
// counters yet, so totals are zero and the type distribution is an even
// split across the registered strategies.
// TODO: back this with a query log table once search logging lands.
func (s *Service) Analytics() domsearch.AnalyticsSummary {
	types := s.registry.Types()
	dist := make([]domsearch.TypePercentage, 0, len(types))
	if len(types) > 0 {
		share := 100.0 / float64(len(types))
		for _, t := range types {
			dist = append(dist, domsearch.TypePercentage{Type: t, Percentage: share})
		}
	}

	return domsearch.AnalyticsSummary{
		TotalSearches:          0,
		PopularQueries:         []domsearch.QueryCount{},
		EntityTypeDistribution: dist,
		AverageSearchTime:      0,
	}
}
