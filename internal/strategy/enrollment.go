package strategy

import (
	"context"
	"fmt"

	"github.com/competia/searchapi/internal/domain/entity"
	"github.com/competia/searchapi/internal/domain/search"
	"github.com/competia/searchapi/internal/relevance"
	"github.com/competia/searchapi/internal/repository"
)

// EnrollmentRepo is the lookup contract served by repository.Enrollments.
type EnrollmentRepo interface {
	Search(ctx context.Context, q, tenantID string, limit int) ([]repository.EnrollmentRecord, error)
}

// Enrollment searches course enrollments by learner name and course title.
type Enrollment struct {
	scorer
	repo EnrollmentRepo
}

// NewEnrollment creates the enrollment strategy.
func NewEnrollment(repo EnrollmentRepo) *Enrollment {
	return &Enrollment{repo: repo}
}

// EntityType returns entity.Enrollment.
func (s *Enrollment) EntityType() entity.Type { return entity.Enrollment }

// Search looks up enrollments matching the query.
func (s *Enrollment) Search(
	ctx context.Context, query, tenantID string, opts search.Options,
) ([]search.ResultItem, error) {
	recs, err := s.repo.Search(ctx, normalize(query), tenantID, effectiveLimit(opts))
	if err != nil {
		return nil, fmt.Errorf("search enrollments: %w", err)
	}

	items := make([]search.ResultItem, 0, len(recs))
	for _, rec := range recs {
		if opts.DateFilter != nil && !opts.DateFilter.Matches(rec.CreatedAt) {
			continue
		}
		items = append(items, search.ResultItem{
			ID:          rec.ID,
			EntityType:  entity.Enrollment,
			Title:       rec.UserName + " - " + rec.CourseTitle,
			Description: "Enrollment in " + rec.CourseTitle,
			Score:       relevance.Score(query, []string{rec.UserName, rec.CourseTitle}),
			Metadata: map[string]any{
				"userId":   rec.UserID,
				"courseId": rec.CourseID,
				"status":   rec.Status,
			},
			URL:       "/enrollments/" + rec.ID,
			CreatedAt: rec.CreatedAt,
		})
	}
	return items, nil
}
