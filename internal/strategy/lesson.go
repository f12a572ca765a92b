package strategy

import (
	"context"
	"fmt"

	"github.com/competia/searchapi/internal/domain/entity"
	"github.com/competia/searchapi/internal/domain/search"
	"github.com/competia/searchapi/internal/relevance"
	"github.com/competia/searchapi/internal/repository"
)

// lessonPreviewLen bounds the description excerpt taken from lesson content.
const lessonPreviewLen = 200

// LessonRepo is the lookup contract served by repository.Lessons.
type LessonRepo interface {
	Search(ctx context.Context, q, tenantID string, limit int) ([]repository.LessonRecord, error)
}

// Lesson searches lessons by title and body content.
type Lesson struct {
	scorer
	repo LessonRepo
}

// NewLesson creates the lesson strategy.
func NewLesson(repo LessonRepo) *Lesson {
	return &Lesson{repo: repo}
}

// EntityType returns entity.Lesson.
func (s *Lesson) EntityType() entity.Type { return entity.Lesson }

// Search looks up lessons matching the query. The description is the
// lesson content truncated to 200 characters.
func (s *Lesson) Search(
	ctx context.Context, query, tenantID string, opts search.Options,
) ([]search.ResultItem, error) {
	recs, err := s.repo.Search(ctx, normalize(query), tenantID, effectiveLimit(opts))
	if err != nil {
		return nil, fmt.Errorf("search lessons: %w", err)
	}

	items := make([]search.ResultItem, 0, len(recs))
	for _, rec := range recs {
		if opts.DateFilter != nil && !opts.DateFilter.Matches(rec.CreatedAt) {
			continue
		}
		items = append(items, search.ResultItem{
			ID:          rec.ID,
			EntityType:  entity.Lesson,
			Title:       rec.Title,
			Description: truncate(rec.Content, lessonPreviewLen),
			Score:       relevance.Score(query, []string{rec.Title, rec.Content}),
			Metadata:    map[string]any{"courseId": rec.CourseID},
			URL:         "/courses/" + rec.CourseID + "/lessons/" + rec.ID,
			CreatedAt:   rec.CreatedAt,
		})
	}
	return items, nil
}
