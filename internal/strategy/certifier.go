package strategy

import (
	"context"
	"fmt"

	"github.com/competia/searchapi/internal/domain/entity"
	"github.com/competia/searchapi/internal/domain/search"
	"github.com/competia/searchapi/internal/relevance"
	"github.com/competia/searchapi/internal/repository"
)

// CertifierRepo is the lookup contract served by repository.Certifiers.
type CertifierRepo interface {
	Search(ctx context.Context, q, tenantID string, limit int) ([]repository.CertifierRecord, error)
}

// Certifier searches accredited certifier entities (ECE/OC).
type Certifier struct {
	scorer
	repo CertifierRepo
}

// NewCertifier creates the certifier strategy.
func NewCertifier(repo CertifierRepo) *Certifier {
	return &Certifier{repo: repo}
}

// EntityType returns entity.Certifier.
func (s *Certifier) EntityType() entity.Type { return entity.Certifier }

// Search looks up certifiers matching the query. Registry data is
// global; tenant scoping does not apply.
func (s *Certifier) Search(
	ctx context.Context, query, tenantID string, opts search.Options,
) ([]search.ResultItem, error) {
	recs, err := s.repo.Search(ctx, normalize(query), tenantID, effectiveLimit(opts))
	if err != nil {
		return nil, fmt.Errorf("search certifiers: %w", err)
	}

	items := make([]search.ResultItem, 0, len(recs))
	for _, rec := range recs {
		if opts.DateFilter != nil && !opts.DateFilter.Matches(rec.CreatedAt) {
			continue
		}
		items = append(items, search.ResultItem{
			ID:          rec.ID,
			EntityType:  entity.Certifier,
			Title:       codedTitle(rec.Code, rec.Name),
			Description: locationLine(rec.City, rec.State),
			Score:       relevance.Score(query, []string{rec.Code, rec.Name, rec.City, rec.State}),
			Metadata:    map[string]any{"kind": rec.Kind, "city": rec.City, "state": rec.State},
			URL:         "/renec/certifiers/" + rec.ID,
			CreatedAt:   rec.CreatedAt,
		})
	}
	return items, nil
}

// locationLine joins city and state, tolerating either being empty.
func locationLine(city, state string) string {
	switch {
	case city == "":
		return state
	case state == "":
		return city
	default:
		return city + ", " + state
	}
}
