package search

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	domsearch "github.com/competia/searchapi/internal/domain/search"
	"github.com/competia/searchapi/internal/logger"
	"github.com/competia/searchapi/internal/metrics"
	"github.com/competia/searchapi/internal/repository/cache"
)

// facets counts matches per registered entity type with one additional
// fan-out round at the facet limit, independent of any type restriction
// on the main round. Types with zero matches are omitted. Date range,
// tag and status facets are declared in the envelope but not yet fed by
// any strategy.
func (s *Service) facets(ctx context.Context, query, tenantID string) domsearch.Facets {
	if counts, ok := s.cachedFacets(ctx, query, tenantID); ok {
		return domsearch.Facets{EntityTypes: counts}
	}

	all := s.registry.All()
	slots := s.fanOut(ctx, "facets", all, query, tenantID, domsearch.Options{Limit: s.facetLimit})

	counts := make([]domsearch.FacetCount, 0, len(all))
	for i, st := range all {
		if len(slots[i]) == 0 {
			continue
		}
		counts = append(counts, domsearch.FacetCount{
			Type:  st.EntityType(),
			Count: len(slots[i]),
		})
	}

	s.storeFacets(ctx, query, tenantID, counts)
	return domsearch.Facets{EntityTypes: counts}
}

func (s *Service) cachedFacets(ctx context.Context, query, tenantID string) ([]domsearch.FacetCount, bool) {
	if s.cache == nil {
		return nil, false
	}

	data, found, err := s.cache.Get(ctx, s.facetKey(query, tenantID))
	if err != nil {
		metrics.FacetCacheTotal.WithLabelValues("error").Inc()
		logger.FromContext(ctx).Debug("facet cache get failed", zap.Error(err))
		return nil, false
	}
	if !found {
		metrics.FacetCacheTotal.WithLabelValues("miss").Inc()
		return nil, false
	}

	var counts []domsearch.FacetCount
	if err := json.Unmarshal(data, &counts); err != nil {
		metrics.FacetCacheTotal.WithLabelValues("error").Inc()
		logger.FromContext(ctx).Debug("facet cache decode failed", zap.Error(err))
		return nil, false
	}
	metrics.FacetCacheTotal.WithLabelValues("hit").Inc()
	return counts, true
}

func (s *Service) storeFacets(ctx context.Context, query, tenantID string, counts []domsearch.FacetCount) {
	if s.cache == nil {
		return
	}
	data, err := json.Marshal(counts)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, s.facetKey(query, tenantID), data); err != nil {
		logger.FromContext(ctx).Debug("facet cache set failed", zap.Error(err))
	}
}

func (s *Service) facetKey(query, tenantID string) string {
	types := s.registry.Types()
	names := make([]string, len(types))
	for i, t := range types {
		names[i] = string(t)
	}
	return cache.Key(query, tenantID, names)
}
