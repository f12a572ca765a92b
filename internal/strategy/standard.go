package strategy

import (
	"context"
	"fmt"

	"github.com/competia/searchapi/internal/domain/entity"
	"github.com/competia/searchapi/internal/domain/search"
	"github.com/competia/searchapi/internal/relevance"
	"github.com/competia/searchapi/internal/repository"
)

// StandardRepo is the lookup contract served by repository.Standards.
type StandardRepo interface {
	Search(ctx context.Context, q, tenantID string, limit int) ([]repository.StandardRecord, error)
}

// Standard searches the platform's competency standard catalog.
type Standard struct {
	scorer
	repo StandardRepo
}

// NewStandard creates the competency standard strategy.
func NewStandard(repo StandardRepo) *Standard {
	return &Standard{repo: repo}
}

// EntityType returns entity.Standard.
func (s *Standard) EntityType() entity.Type { return entity.Standard }

// Search looks up standards matching the query. Standards are global;
// the tenant id is passed through for interface uniformity only.
func (s *Standard) Search(
	ctx context.Context, query, tenantID string, opts search.Options,
) ([]search.ResultItem, error) {
	recs, err := s.repo.Search(ctx, normalize(query), tenantID, effectiveLimit(opts))
	if err != nil {
		return nil, fmt.Errorf("search standards: %w", err)
	}

	items := make([]search.ResultItem, 0, len(recs))
	for _, rec := range recs {
		if opts.DateFilter != nil && !opts.DateFilter.Matches(rec.CreatedAt) {
			continue
		}
		items = append(items, search.ResultItem{
			ID:          rec.Code,
			EntityType:  entity.Standard,
			Title:       codedTitle(rec.Code, rec.Title),
			Description: rec.Description,
			Score:       relevance.Score(query, []string{rec.Code, rec.Title, rec.Description}),
			Metadata:    map[string]any{"sector": rec.Sector, "level": rec.Level},
			URL:         "/standards/" + rec.Code,
			CreatedAt:   rec.CreatedAt,
		})
	}
	return items, nil
}
