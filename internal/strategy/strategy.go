// Package strategy implements per-entity-type search over the entity
// repositories. Every entity kind gets one Strategy; the orchestrator
// stays entity-agnostic by resolving strategies through the Registry.
// Adding a searchable kind means writing one strategy and registering
// it, never touching the orchestrator.
package strategy

import (
	"context"
	"strings"

	"github.com/competia/searchapi/internal/domain/entity"
	"github.com/competia/searchapi/internal/domain/search"
	"github.com/competia/searchapi/internal/relevance"
)

// DefaultLimit is the per-strategy result bound when options carry none.
const DefaultLimit = 20

// Strategy searches one entity kind and shapes hits into the uniform
// result item.
type Strategy interface {
	// EntityType is the constant tag identifying what this strategy serves.
	EntityType() entity.Type
	// Search runs one repository lookup for the normalized query, scoped
	// by tenant where the entity is tenant-owned, bounded by opts.Limit.
	Search(ctx context.Context, query, tenantID string, opts search.Options) ([]search.ResultItem, error)
	// CalculateScore exposes the relevance heuristic for ad hoc scoring.
	CalculateScore(query string, fields []string) int
}

// scorer provides the shared CalculateScore implementation; every
// concrete strategy embeds it.
type scorer struct{}

func (scorer) CalculateScore(query string, fields []string) int {
	return relevance.Score(query, fields)
}

// normalize lowercases and trims the query once per strategy call.
func normalize(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}

// effectiveLimit resolves the per-strategy result bound.
func effectiveLimit(opts search.Options) int {
	if opts.Limit > 0 {
		return opts.Limit
	}
	return DefaultLimit
}

// truncate shortens s to at most n bytes on a rune boundary.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
