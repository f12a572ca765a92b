package strategy

import (
	"context"
	"fmt"

	"github.com/competia/searchapi/internal/domain/entity"
	"github.com/competia/searchapi/internal/domain/search"
	"github.com/competia/searchapi/internal/relevance"
	"github.com/competia/searchapi/internal/repository"
)

// CourseRepo is the lookup contract served by repository.Courses.
type CourseRepo interface {
	Search(ctx context.Context, q, tenantID string, limit int) ([]repository.CourseRecord, error)
}

// Course searches courses by code, title and description.
type Course struct {
	scorer
	repo CourseRepo
}

// NewCourse creates the course strategy.
func NewCourse(repo CourseRepo) *Course {
	return &Course{repo: repo}
}

// EntityType returns entity.Course.
func (s *Course) EntityType() entity.Type { return entity.Course }

// Search looks up courses matching the query.
func (s *Course) Search(
	ctx context.Context, query, tenantID string, opts search.Options,
) ([]search.ResultItem, error) {
	recs, err := s.repo.Search(ctx, normalize(query), tenantID, effectiveLimit(opts))
	if err != nil {
		return nil, fmt.Errorf("search courses: %w", err)
	}

	items := make([]search.ResultItem, 0, len(recs))
	for _, rec := range recs {
		if opts.DateFilter != nil && !opts.DateFilter.Matches(rec.CreatedAt) {
			continue
		}
		items = append(items, search.ResultItem{
			ID:          rec.ID,
			EntityType:  entity.Course,
			Title:       codedTitle(rec.Code, rec.Title),
			Description: rec.Description,
			Score:       relevance.Score(query, []string{rec.Code, rec.Title, rec.Description}),
			Metadata:    map[string]any{"code": rec.Code, "status": rec.Status},
			URL:         "/courses/" + rec.ID,
			CreatedAt:   rec.CreatedAt,
		})
	}
	return items, nil
}

// codedTitle composes the "{code} - {title}" display form used by coded
// entities, dropping the prefix when no code is stored.
func codedTitle(code, title string) string {
	if code == "" {
		return title
	}
	return code + " - " + title
}
