package strategy

import (
	"context"
	"fmt"

	"github.com/competia/searchapi/internal/domain/entity"
	"github.com/competia/searchapi/internal/domain/search"
	"github.com/competia/searchapi/internal/relevance"
	"github.com/competia/searchapi/internal/repository"
)

// CertificationRepo is the lookup contract served by repository.Certifications.
type CertificationRepo interface {
	Search(ctx context.Context, q, tenantID string, limit int) ([]repository.CertificationRecord, error)
}

// Certification searches issued certification records.
type Certification struct {
	scorer
	repo CertificationRepo
}

// NewCertification creates the certification strategy.
func NewCertification(repo CertificationRepo) *Certification {
	return &Certification{repo: repo}
}

// EntityType returns entity.Certification.
func (s *Certification) EntityType() entity.Type { return entity.Certification }

// Search looks up certifications matching the query.
func (s *Certification) Search(
	ctx context.Context, query, tenantID string, opts search.Options,
) ([]search.ResultItem, error) {
	recs, err := s.repo.Search(ctx, normalize(query), tenantID, effectiveLimit(opts))
	if err != nil {
		return nil, fmt.Errorf("search certifications: %w", err)
	}

	items := make([]search.ResultItem, 0, len(recs))
	for _, rec := range recs {
		if opts.DateFilter != nil && !opts.DateFilter.Matches(rec.CreatedAt) {
			continue
		}
		items = append(items, search.ResultItem{
			ID:          rec.ID,
			EntityType:  entity.Certification,
			Title:       codedTitle(rec.StandardCode, rec.StandardTitle),
			Description: "Certification held by " + rec.UserName,
			Score:       relevance.Score(query, []string{rec.StandardCode, rec.StandardTitle, rec.UserName}),
			Metadata: map[string]any{
				"userId":       rec.UserID,
				"standardCode": rec.StandardCode,
				"status":       rec.Status,
			},
			URL:       "/certifications/" + rec.ID,
			CreatedAt: rec.CreatedAt,
		})
	}
	return items, nil
}
