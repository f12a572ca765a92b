package strategy

import (
	"context"
	"fmt"

	"github.com/competia/searchapi/internal/domain/entity"
	"github.com/competia/searchapi/internal/domain/search"
	"github.com/competia/searchapi/internal/relevance"
	"github.com/competia/searchapi/internal/repository"
)

// RenecStandardRepo is the lookup contract served by repository.RenecStandards.
type RenecStandardRepo interface {
	Search(ctx context.Context, q, tenantID string, limit int) ([]repository.RenecStandardRecord, error)
}

// RenecStandard searches EC standards in the national registry directory.
type RenecStandard struct {
	scorer
	repo RenecStandardRepo
}

// NewRenecStandard creates the registry standard strategy.
func NewRenecStandard(repo RenecStandardRepo) *RenecStandard {
	return &RenecStandard{repo: repo}
}

// EntityType returns entity.RenecStandard.
func (s *RenecStandard) EntityType() entity.Type { return entity.RenecStandard }

// Search looks up registry standards matching the query. Registry data
// is global; tenant scoping does not apply.
func (s *RenecStandard) Search(
	ctx context.Context, query, tenantID string, opts search.Options,
) ([]search.ResultItem, error) {
	recs, err := s.repo.Search(ctx, normalize(query), tenantID, effectiveLimit(opts))
	if err != nil {
		return nil, fmt.Errorf("search renec standards: %w", err)
	}

	items := make([]search.ResultItem, 0, len(recs))
	for _, rec := range recs {
		if opts.DateFilter != nil && !opts.DateFilter.Matches(rec.CreatedAt) {
			continue
		}
		items = append(items, search.ResultItem{
			ID:          rec.Code,
			EntityType:  entity.RenecStandard,
			Title:       codedTitle(rec.Code, rec.Title),
			Description: rec.Sector,
			Score:       relevance.Score(query, []string{rec.Code, rec.Title, rec.Sector}),
			Metadata:    map[string]any{"sector": rec.Sector, "committee": rec.Committee},
			URL:         "/renec/standards/" + rec.Code,
			CreatedAt:   rec.CreatedAt,
		})
	}
	return items, nil
}
