package search

import (
	"context"

	"github.com/competia/searchapi/internal/domain/entity"
	"github.com/competia/searchapi/internal/strategy"
)

// Registry resolves entity types to strategies. Implemented by
// strategy.Registry; declared here so tests can swap it.
type Registry interface {
	Strategy(t entity.Type) (strategy.Strategy, bool)
	All() []strategy.Strategy
	ForTypes(types []entity.Type) []strategy.Strategy
	Types() []entity.Type
}

// SuggestionSource looks up competency standard codes by prefix for the
// query refinement heuristic.
type SuggestionSource interface {
	CodesWithPrefix(ctx context.Context, prefix string, limit int) ([]string, error)
}

// FacetCache stores serialized facet lists with a short TTL. All errors
// are soft: the orchestrator recomputes on any cache failure.
type FacetCache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
}
