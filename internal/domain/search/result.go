package search

import (
	"time"

	"github.com/competia/searchapi/internal/domain/entity"
)

// ResultItem is a single search hit in the uniform cross-entity shape.
// Score is always within [0, MaxScore].
type ResultItem struct {
	ID          string
	EntityType  entity.Type
	Title       string
	Description string
	Highlights  map[string][]string
	Score       int
	Metadata    map[string]any
	URL         string
	CreatedAt   *time.Time
	UpdatedAt   *time.Time
}

// Options are per-strategy execution parameters, passed uniformly to every
// strategy regardless of entity shape.
type Options struct {
	Limit      int
	DateFilter *DateFilter
}

// DateFilter bounds results by creation timestamp, inclusive on both ends.
// Items without a creation timestamp pass unfiltered.
type DateFilter struct {
	From *time.Time
	To   *time.Time
}

// Matches reports whether a creation timestamp falls within the filter.
func (f *DateFilter) Matches(createdAt *time.Time) bool {
	if createdAt == nil {
		return true
	}
	if f.From != nil && createdAt.Before(*f.From) {
		return false
	}
	if f.To != nil && createdAt.After(*f.To) {
		return false
	}
	return true
}
