package chi

import (
	"time"

	domsearch "github.com/competia/searchapi/internal/domain/search"
	healthuc "github.com/competia/searchapi/internal/usecase/health"
)

// Error codes returned in the JSON error envelope.
const (
	codeBadRequest       = "bad_request"
	codeValidationFailed = "validation_failed"
	codeUnauthorized     = "unauthorized"
	codeInternalError    = "internal_error"
)

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type resultItemDTO struct {
	ID          string              `json:"id"`
	EntityType  string              `json:"entityType"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Highlights  map[string][]string `json:"highlights,omitempty"`
	Score       int                 `json:"score"`
	Metadata    map[string]any      `json:"metadata,omitempty"`
	URL         string              `json:"url"`
	CreatedAt   *time.Time          `json:"createdAt,omitempty"`
	UpdatedAt   *time.Time          `json:"updatedAt,omitempty"`
}

type groupDTO struct {
	Count int             `json:"count"`
	Items []resultItemDTO `json:"items"`
}

type facetCountDTO struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}

type termFacetDTO struct {
	Term  string `json:"term"`
	Count int    `json:"count"`
}

type dateRangeFacetDTO struct {
	Label string     `json:"label"`
	From  *time.Time `json:"from,omitempty"`
	To    *time.Time `json:"to,omitempty"`
	Count int        `json:"count"`
}

type facetsDTO struct {
	EntityTypes []facetCountDTO     `json:"entityTypes"`
	DateRanges  []dateRangeFacetDTO `json:"dateRanges,omitempty"`
	Tags        []termFacetDTO      `json:"tags,omitempty"`
	Statuses    []termFacetDTO      `json:"statuses,omitempty"`
}

type searchResponseDTO struct {
	Query          string              `json:"query"`
	TotalResults   int                 `json:"totalResults"`
	SearchTime     float64             `json:"searchTime"` // milliseconds
	Results        []resultItemDTO     `json:"results"`
	GroupedResults map[string]groupDTO `json:"groupedResults"`
	Facets         facetsDTO           `json:"facets"`
	Suggestions    []string            `json:"suggestions,omitempty"`
}

type advancedSearchRequestDTO struct {
	Query       string     `json:"query"`
	EntityTypes []string   `json:"entityTypes,omitempty"`
	TenantID    string     `json:"tenantId,omitempty"`
	DateFrom    *time.Time `json:"dateFrom,omitempty"`
	DateTo      *time.Time `json:"dateTo,omitempty"`
	MinScore    int        `json:"minScore,omitempty"`
	Skip        int        `json:"skip,omitempty"`
	Limit       int        `json:"limit,omitempty"`
}

type suggestionDTO struct {
	Text       string `json:"text"`
	EntityType string `json:"entityType"`
	EntityID   string `json:"entityId"`
	Score      int    `json:"score"`
}

type queryCountDTO struct {
	Query string `json:"query"`
	Count int64  `json:"count"`
}

type typePercentageDTO struct {
	Type       string  `json:"type"`
	Percentage float64 `json:"percentage"`
}

type analyticsResponseDTO struct {
	TotalSearches          int64               `json:"totalSearches"`
	PopularQueries         []queryCountDTO     `json:"popularQueries"`
	EntityTypeDistribution []typePercentageDTO `json:"entityTypeDistribution"`
	AverageSearchTime      float64             `json:"averageSearchTime"`
}

type healthResponseDTO struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

func resultItemToDTO(item domsearch.ResultItem) resultItemDTO {
	return resultItemDTO{
		ID:          item.ID,
		EntityType:  string(item.EntityType),
		Title:       item.Title,
		Description: item.Description,
		Highlights:  item.Highlights,
		Score:       item.Score,
		Metadata:    item.Metadata,
		URL:         item.URL,
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
	}
}

func searchResponseToDTO(resp domsearch.Response) searchResponseDTO {
	results := make([]resultItemDTO, len(resp.Results))
	for i, item := range resp.Results {
		results[i] = resultItemToDTO(item)
	}

	grouped := make(map[string]groupDTO, len(resp.Grouped))
	for _, g := range resp.Grouped {
		items := make([]resultItemDTO, len(g.Items))
		for i, item := range g.Items {
			items[i] = resultItemToDTO(item)
		}
		grouped[string(g.Type)] = groupDTO{Count: g.Count, Items: items}
	}

	return searchResponseDTO{
		Query:          resp.Query,
		TotalResults:   resp.TotalResults,
		SearchTime:     float64(resp.SearchTime.Microseconds()) / 1000.0,
		Results:        results,
		GroupedResults: grouped,
		Facets:         facetsToDTO(resp.Facets),
		Suggestions:    resp.Suggestions,
	}
}

func facetsToDTO(f domsearch.Facets) facetsDTO {
	entityTypes := make([]facetCountDTO, len(f.EntityTypes))
	for i, fc := range f.EntityTypes {
		entityTypes[i] = facetCountDTO{Type: string(fc.Type), Count: fc.Count}
	}

	dto := facetsDTO{EntityTypes: entityTypes}
	for _, dr := range f.DateRanges {
		dto.DateRanges = append(dto.DateRanges, dateRangeFacetDTO{
			Label: dr.Label, From: dr.From, To: dr.To, Count: dr.Count,
		})
	}
	for _, t := range f.Tags {
		dto.Tags = append(dto.Tags, termFacetDTO{Term: t.Term, Count: t.Count})
	}
	for _, st := range f.Statuses {
		dto.Statuses = append(dto.Statuses, termFacetDTO{Term: st.Term, Count: st.Count})
	}
	return dto
}

// suggestionsToDTO maps to the bare list shape the autocomplete endpoint
// publishes.
func suggestionsToDTO(suggestions []domsearch.Suggestion) []suggestionDTO {
	out := make([]suggestionDTO, len(suggestions))
	for i, s := range suggestions {
		out[i] = suggestionDTO{
			Text:       s.Text,
			EntityType: string(s.EntityType),
			EntityID:   s.EntityID,
			Score:      s.Score,
		}
	}
	return out
}

func analyticsToDTO(a domsearch.AnalyticsSummary) analyticsResponseDTO {
	queries := make([]queryCountDTO, len(a.PopularQueries))
	for i, q := range a.PopularQueries {
		queries[i] = queryCountDTO{Query: q.Query, Count: q.Count}
	}
	dist := make([]typePercentageDTO, len(a.EntityTypeDistribution))
	for i, d := range a.EntityTypeDistribution {
		dist[i] = typePercentageDTO{Type: string(d.Type), Percentage: d.Percentage}
	}
	return analyticsResponseDTO{
		TotalSearches:          a.TotalSearches,
		PopularQueries:         queries,
		EntityTypeDistribution: dist,
		AverageSearchTime:      a.AverageSearchTime,
	}
}

func healthToDTO(r healthuc.Report) healthResponseDTO {
	checks := make(map[string]string, len(r.Checks))
	for k, v := range r.Checks {
		checks[k] = string(v)
	}
	return healthResponseDTO{Status: string(r.Status), Checks: checks}
}
