package strategy

import (
	"context"
	"fmt"

	"github.com/competia/searchapi/internal/domain/entity"
	"github.com/competia/searchapi/internal/domain/search"
	"github.com/competia/searchapi/internal/relevance"
	"github.com/competia/searchapi/internal/repository"
)

// SimulationRepo is the lookup contract served by repository.Simulations.
type SimulationRepo interface {
	Search(ctx context.Context, q, tenantID string, limit int) ([]repository.SimulationRecord, error)
}

// Simulation searches practice simulations.
type Simulation struct {
	scorer
	repo SimulationRepo
}

// NewSimulation creates the simulation strategy.
func NewSimulation(repo SimulationRepo) *Simulation {
	return &Simulation{repo: repo}
}

// EntityType returns entity.Simulation.
func (s *Simulation) EntityType() entity.Type { return entity.Simulation }

// Search looks up simulations matching the query.
func (s *Simulation) Search(
	ctx context.Context, query, tenantID string, opts search.Options,
) ([]search.ResultItem, error) {
	recs, err := s.repo.Search(ctx, normalize(query), tenantID, effectiveLimit(opts))
	if err != nil {
		return nil, fmt.Errorf("search simulations: %w", err)
	}

	items := make([]search.ResultItem, 0, len(recs))
	for _, rec := range recs {
		if opts.DateFilter != nil && !opts.DateFilter.Matches(rec.CreatedAt) {
			continue
		}
		items = append(items, search.ResultItem{
			ID:          rec.ID,
			EntityType:  entity.Simulation,
			Title:       rec.Title,
			Description: rec.Description,
			Score:       relevance.Score(query, []string{rec.Title, rec.Description}),
			Metadata:    map[string]any{"kind": rec.Kind},
			URL:         "/simulations/" + rec.ID,
			CreatedAt:   rec.CreatedAt,
		})
	}
	return items, nil
}
