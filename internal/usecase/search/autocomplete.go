package search

import (
	"context"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/competia/searchapi/internal/domain/entity"
	domsearch "github.com/competia/searchapi/internal/domain/search"
	"github.com/competia/searchapi/internal/metrics"
)

// defaultAutocompleteTypes narrows typeahead to the entities users
// actually type toward. The full set stays available via an explicit
// type restriction.
var defaultAutocompleteTypes = []entity.Type{
	entity.Course,
	entity.Standard,
	entity.User,
	entity.RenecStandard,
}

// Autocomplete returns ranked typeahead suggestions. Queries shorter
// than two characters return nothing; each strategy contributes at most
// a handful of candidates so the round stays cheap.
func (s *Service) Autocomplete(
	ctx context.Context,
	query, tenantID string,
	types []entity.Type,
	limit int,
) []domsearch.Suggestion {
	metrics.SearchesTotal.WithLabelValues("autocomplete").Inc()

	// Counted in runes, not bytes: "ñ" is one character.
	trimmed := strings.TrimSpace(query)
	if utf8.RuneCountInString(trimmed) < minAutocompleteQueryLen {
		return []domsearch.Suggestion{}
	}
	if limit <= 0 || limit > s.autocompleteLimit {
		limit = s.autocompleteLimit
	}
	if len(types) == 0 {
		types = defaultAutocompleteTypes
	}

	strategies := s.registry.ForTypes(types)
	slots := s.fanOut(ctx, "autocomplete", strategies, trimmed, tenantID,
		domsearch.Options{Limit: autocompleteFanoutLimit})

	suggestions := make([]domsearch.Suggestion, 0, len(strategies)*autocompleteFanoutLimit)
	for _, items := range slots {
		for _, item := range items {
			suggestions = append(suggestions, domsearch.Suggestion{
				Text:       item.Title,
				EntityType: item.EntityType,
				EntityID:   item.ID,
				Score:      item.Score,
			})
		}
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].Score > suggestions[j].Score
	})
	if len(suggestions) > limit {
		suggestions = suggestions[:limit]
	}
	return suggestions
}
