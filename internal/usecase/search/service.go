// Package search orchestrates federated search across entity strategies:
// fan-out, merge, ranking, pagination, grouping, faceting, highlighting
// and autocomplete.
package search

import (
	"context"
	"sort"
	"time"

	"github.com/competia/searchapi/internal/domain/entity"
	domsearch "github.com/competia/searchapi/internal/domain/search"
	"github.com/competia/searchapi/internal/metrics"
	"github.com/competia/searchapi/internal/strategy"
)

// Default post-processing bounds.
const (
	// DefaultFacetLimit is the per-strategy limit for the facet round.
	DefaultFacetLimit = 100
	// DefaultAutocompleteLimit caps returned autocomplete suggestions.
	DefaultAutocompleteLimit = 10
	// autocompleteFanoutLimit is the small per-strategy bound used by
	// autocomplete, which favors latency over completeness.
	autocompleteFanoutLimit = 5
	// minAutocompleteQueryLen short-circuits one-character lookups.
	minAutocompleteQueryLen = 2
)

// Service coordinates the end-to-end search protocols. The registry is
// read-only after startup; the service holds no per-request state.
type Service struct {
	registry          Registry
	suggest           SuggestionSource
	cache             FacetCache
	facetLimit        int
	autocompleteLimit int
	strategyTimeout   time.Duration
	maxConcurrent     int
}

// New creates a search orchestrator. suggest may be nil to disable
// query refinement suggestions. Per-request logging flows through the
// context logger set by the HTTP middleware.
func New(registry Registry, suggest SuggestionSource) *Service {
	return &Service{
		registry:          registry,
		suggest:           suggest,
		facetLimit:        DefaultFacetLimit,
		autocompleteLimit: DefaultAutocompleteLimit,
	}
}

// WithFacetCache configures the optional facet cache.
func (s *Service) WithFacetCache(cache FacetCache) *Service {
	s.cache = cache
	return s
}

// WithLimits configures the facet and autocomplete bounds.
func (s *Service) WithLimits(facetLimit, autocompleteLimit int) *Service {
	if facetLimit > 0 {
		s.facetLimit = facetLimit
	}
	if autocompleteLimit > 0 {
		s.autocompleteLimit = autocompleteLimit
	}
	return s
}

// WithFanout configures the per-fan-out deadline and concurrency bound.
// Zero values leave the corresponding limit disabled.
func (s *Service) WithFanout(strategyTimeout time.Duration, maxConcurrent int) *Service {
	s.strategyTimeout = strategyTimeout
	s.maxConcurrent = maxConcurrent
	return s
}

// GlobalSearch fans the query out across the resolved strategies, merges
// and ranks the hits, then paginates, highlights, groups and facets.
func (s *Service) GlobalSearch(ctx context.Context, req domsearch.Request) domsearch.Response {
	metrics.SearchesTotal.WithLabelValues("global").Inc()
	return s.run(ctx, "global", req)
}

// AdvancedSearch is GlobalSearch with the date range pushed down to every
// strategy call and a minimum score filter applied after merge. It never
// highlights.
func (s *Service) AdvancedSearch(ctx context.Context, req domsearch.Request) domsearch.Response {
	metrics.SearchesTotal.WithLabelValues("advanced").Inc()
	return s.run(ctx, "advanced", req)
}

// run owns the shared fan-out/merge/post-process pipeline. Highlighting
// only happens when the request asked for it, which the advanced path
// never does; the min score filter is a no-op at its zero value.
func (s *Service) run(ctx context.Context, op string, req domsearch.Request) domsearch.Response {
	start := time.Now()

	strategies := s.resolve(req.EntityTypes())

	opts := domsearch.Options{Limit: req.Limit()}
	if req.DateFrom() != nil || req.DateTo() != nil {
		opts.DateFilter = &domsearch.DateFilter{From: req.DateFrom(), To: req.DateTo()}
	}

	merged := flatten(s.fanOut(ctx, op, strategies, req.Query(), req.TenantID(), opts))

	if req.MinScore() > 0 {
		filtered := merged[:0]
		for _, item := range merged {
			if item.Score >= req.MinScore() {
				filtered = append(filtered, item)
			}
		}
		merged = filtered
	}

	// Ties keep their input order so repeated searches stay deterministic.
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Score > merged[j].Score
	})

	total := len(merged)
	page := paginate(merged, req.Skip(), req.Limit())
	if req.Highlight() {
		page = highlightItems(page, req.Query())
	}

	return domsearch.Response{
		Query:        req.Query(),
		TotalResults: total,
		SearchTime:   time.Since(start),
		Results:      page,
		Grouped:      groupByType(merged),
		Facets:       s.facets(ctx, req.Query(), req.TenantID()),
		Suggestions:  s.suggestions(ctx, req.Query()),
	}
}

// resolve picks the target strategies: the explicit restriction when
// present and non-empty, otherwise every registered strategy.
func (s *Service) resolve(types []entity.Type) []strategy.Strategy {
	if len(types) > 0 {
		return s.registry.ForTypes(types)
	}
	return s.registry.All()
}

// paginate slices [skip, skip+limit) with bounds clamping.
func paginate(items []domsearch.ResultItem, skip, limit int) []domsearch.ResultItem {
	if skip >= len(items) {
		return []domsearch.ResultItem{}
	}
	end := skip + limit
	if end > len(items) {
		end = len(items)
	}
	return items[skip:end]
}

func flatten(slots [][]domsearch.ResultItem) []domsearch.ResultItem {
	n := 0
	for _, s := range slots {
		n += len(s)
	}
	out := make([]domsearch.ResultItem, 0, n)
	for _, s := range slots {
		out = append(out, s...)
	}
	return out
}
