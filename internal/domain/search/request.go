package search

import (
	"fmt"
	"strings"
	"time"

	"github.com/competia/searchapi/internal/domain"
	"github.com/competia/searchapi/internal/domain/entity"
)

// Search parameter limits.
const (
	// MaxQueryLength is the maximum allowed search query length.
	MaxQueryLength = 1024
	DefaultLimit   = 20
	MaxLimit       = 100
	// MaxScore is the ceiling of the relevance scale.
	MaxScore = 100
)

// Request is a validated search query.
type Request struct {
	query       string
	entityTypes []entity.Type
	tenantID    string
	skip        int
	limit       int
	highlight   bool
	dateFrom    *time.Time
	dateTo      *time.Time
	minScore    int
}

// New validates and normalizes search parameters.
// Defaults: skip=0, limit=20. Limit is clamped to [1, MaxLimit].
// Unknown entity types are kept; the registry drops them at resolution time.
func New(
	query string,
	entityTypes []entity.Type,
	tenantID string,
	skip, limit int,
	highlight bool,
	dateFrom, dateTo *time.Time,
	minScore int,
) (Request, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return Request{}, fmt.Errorf("%w: query is required", domain.ErrInvalidQuery)
	}
	if len(query) > MaxQueryLength {
		return Request{}, fmt.Errorf("%w: query too long (max %d chars)", domain.ErrInvalidQuery, MaxQueryLength)
	}
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	if minScore < 0 {
		minScore = 0
	}
	if dateFrom != nil && dateTo != nil && dateTo.Before(*dateFrom) {
		return Request{}, fmt.Errorf("%w: dateTo must not precede dateFrom", domain.ErrInvalidQuery)
	}

	return Request{
		query:       query,
		entityTypes: entityTypes,
		tenantID:    tenantID,
		skip:        skip,
		limit:       limit,
		highlight:   highlight,
		dateFrom:    dateFrom,
		dateTo:      dateTo,
		minScore:    minScore,
	}, nil
}

// Query returns the trimmed query text.
func (r *Request) Query() string { return r.query }

// EntityTypes returns the requested type restriction (nil means all).
func (r *Request) EntityTypes() []entity.Type { return r.entityTypes }

// TenantID returns the opaque tenant scope, empty when unscoped.
func (r *Request) TenantID() string { return r.tenantID }

// Skip returns the pagination offset.
func (r *Request) Skip() int { return r.skip }

// Limit returns the page size.
func (r *Request) Limit() int { return r.limit }

// Highlight reports whether match highlighting was requested.
func (r *Request) Highlight() bool { return r.highlight }

// DateFrom returns the inclusive lower creation-date bound, if any.
func (r *Request) DateFrom() *time.Time { return r.dateFrom }

// DateTo returns the inclusive upper creation-date bound, if any.
func (r *Request) DateTo() *time.Time { return r.dateTo }

// MinScore returns the minimum relevance threshold (0 means unfiltered).
func (r *Request) MinScore() int { return r.minScore }
