package strategy

import (
	"context"
	"fmt"

	"github.com/competia/searchapi/internal/domain/entity"
	"github.com/competia/searchapi/internal/domain/search"
	"github.com/competia/searchapi/internal/relevance"
	"github.com/competia/searchapi/internal/repository"
)

// DocumentRepo is the lookup contract served by repository.Documents.
type DocumentRepo interface {
	Search(ctx context.Context, q, tenantID string, limit int) ([]repository.DocumentRecord, error)
}

// Document searches uploaded documents.
type Document struct {
	scorer
	repo DocumentRepo
}

// NewDocument creates the document strategy.
func NewDocument(repo DocumentRepo) *Document {
	return &Document{repo: repo}
}

// EntityType returns entity.Document.
func (s *Document) EntityType() entity.Type { return entity.Document }

// Search looks up documents matching the query.
func (s *Document) Search(
	ctx context.Context, query, tenantID string, opts search.Options,
) ([]search.ResultItem, error) {
	recs, err := s.repo.Search(ctx, normalize(query), tenantID, effectiveLimit(opts))
	if err != nil {
		return nil, fmt.Errorf("search documents: %w", err)
	}

	items := make([]search.ResultItem, 0, len(recs))
	for _, rec := range recs {
		if opts.DateFilter != nil && !opts.DateFilter.Matches(rec.CreatedAt) {
			continue
		}
		items = append(items, search.ResultItem{
			ID:          rec.ID,
			EntityType:  entity.Document,
			Title:       rec.Title,
			Description: rec.Description,
			Score:       relevance.Score(query, []string{rec.Title, rec.Description}),
			Metadata:    map[string]any{"fileType": rec.FileType},
			URL:         "/documents/" + rec.ID,
			CreatedAt:   rec.CreatedAt,
		})
	}
	return items, nil
}
