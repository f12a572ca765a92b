package strategy

import (
	"context"
	"fmt"
	"strings"

	"github.com/competia/searchapi/internal/domain/entity"
	"github.com/competia/searchapi/internal/domain/search"
	"github.com/competia/searchapi/internal/relevance"
	"github.com/competia/searchapi/internal/repository"
)

// UserRepo is the lookup contract served by repository.Users.
type UserRepo interface {
	Search(ctx context.Context, q, tenantID string, limit int) ([]repository.UserRecord, error)
}

// User searches platform users by name and email.
type User struct {
	scorer
	repo UserRepo
}

// NewUser creates the user strategy.
func NewUser(repo UserRepo) *User {
	return &User{repo: repo}
}

// EntityType returns entity.User.
func (s *User) EntityType() entity.Type { return entity.User }

// Search looks up users matching the query. The title is the full name,
// falling back to email when no name is stored.
func (s *User) Search(
	ctx context.Context, query, tenantID string, opts search.Options,
) ([]search.ResultItem, error) {
	recs, err := s.repo.Search(ctx, normalize(query), tenantID, effectiveLimit(opts))
	if err != nil {
		return nil, fmt.Errorf("search users: %w", err)
	}

	items := make([]search.ResultItem, 0, len(recs))
	for _, rec := range recs {
		if opts.DateFilter != nil && !opts.DateFilter.Matches(rec.CreatedAt) {
			continue
		}
		name := strings.TrimSpace(rec.FirstName + " " + rec.LastName)
		title := name
		if title == "" {
			title = rec.Email
		}
		items = append(items, search.ResultItem{
			ID:          rec.ID,
			EntityType:  entity.User,
			Title:       title,
			Description: rec.Email,
			Score:       relevance.Score(query, []string{name, rec.Email}),
			Metadata:    map[string]any{"role": rec.Role},
			URL:         "/users/" + rec.ID,
			CreatedAt:   rec.CreatedAt,
		})
	}
	return items, nil
}
