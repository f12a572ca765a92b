package strategy

import (
	"context"
	"fmt"

	"github.com/competia/searchapi/internal/domain/entity"
	"github.com/competia/searchapi/internal/domain/search"
	"github.com/competia/searchapi/internal/relevance"
	"github.com/competia/searchapi/internal/repository"
)

// CenterRepo is the lookup contract served by repository.Centers.
type CenterRepo interface {
	Search(ctx context.Context, q, tenantID string, limit int) ([]repository.CenterRecord, error)
}

// Center searches evaluation centers.
type Center struct {
	scorer
	repo CenterRepo
}

// NewCenter creates the evaluation center strategy.
func NewCenter(repo CenterRepo) *Center {
	return &Center{repo: repo}
}

// EntityType returns entity.Center.
func (s *Center) EntityType() entity.Type { return entity.Center }

// Search looks up centers matching the query. Registry data is global;
// tenant scoping does not apply.
func (s *Center) Search(
	ctx context.Context, query, tenantID string, opts search.Options,
) ([]search.ResultItem, error) {
	recs, err := s.repo.Search(ctx, normalize(query), tenantID, effectiveLimit(opts))
	if err != nil {
		return nil, fmt.Errorf("search centers: %w", err)
	}

	items := make([]search.ResultItem, 0, len(recs))
	for _, rec := range recs {
		if opts.DateFilter != nil && !opts.DateFilter.Matches(rec.CreatedAt) {
			continue
		}
		items = append(items, search.ResultItem{
			ID:          rec.ID,
			EntityType:  entity.Center,
			Title:       codedTitle(rec.Code, rec.Name),
			Description: rec.State,
			Score:       relevance.Score(query, []string{rec.Code, rec.Name, rec.State}),
			Metadata:    map[string]any{"state": rec.State},
			URL:         "/renec/centers/" + rec.ID,
			CreatedAt:   rec.CreatedAt,
		})
	}
	return items, nil
}
