package search

import (
	"time"

	"github.com/competia/searchapi/internal/domain/entity"
)

// Group is one entity type's slice of the result universe, sorted by
// score descending. Groups keep the first-seen order of the merged set.
type Group struct {
	Type  entity.Type
	Count int
	Items []ResultItem
}

// FacetCount is the number of matches for one entity type.
type FacetCount struct {
	Type  entity.Type
	Count int
}

// TermFacet is a count for one tag or status value.
type TermFacet struct {
	Term  string
	Count int
}

// DateRangeFacet is a count of matches within a named date window.
type DateRangeFacet struct {
	Label string
	From  *time.Time
	To    *time.Time
	Count int
}

// Facets is the count breakdown of the unpaginated result universe.
// DateRanges, Tags and Statuses are extension points that no strategy
// currently populates.
type Facets struct {
	EntityTypes []FacetCount
	DateRanges  []DateRangeFacet
	Tags        []TermFacet
	Statuses    []TermFacet
}

// Response is the envelope returned by global and advanced search.
// TotalResults counts the merged set before pagination.
type Response struct {
	Query        string
	TotalResults int
	SearchTime   time.Duration
	Results      []ResultItem
	Grouped      []Group
	Facets       Facets
	Suggestions  []string
}

// Suggestion is one autocomplete candidate.
type Suggestion struct {
	Text       string
	EntityType entity.Type
	EntityID   string
	Score      int
}

// QueryCount pairs a query string with its occurrence count.
type QueryCount struct {
	Query string
	Count int64
}

// TypePercentage is one entity type's share of all searches.
type TypePercentage struct {
	Type       entity.Type
	Percentage float64
}

// AnalyticsSummary aggregates search usage. The current implementation is
// a placeholder fed by zeroed counters; a persisted query log would back a
// real one.
type AnalyticsSummary struct {
	TotalSearches          int64
	PopularQueries         []QueryCount
	EntityTypeDistribution []TypePercentage
	AverageSearchTime      float64
}
