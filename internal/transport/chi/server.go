package chi

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/competia/searchapi/internal/domain/entity"
	domsearch "github.com/competia/searchapi/internal/domain/search"
	healthuc "github.com/competia/searchapi/internal/usecase/health"
)

// SearchService is the search orchestrator surface the server needs.
type SearchService interface {
	GlobalSearch(ctx context.Context, req domsearch.Request) domsearch.Response
	AdvancedSearch(ctx context.Context, req domsearch.Request) domsearch.Response
	Autocomplete(ctx context.Context, query, tenantID string, types []entity.Type, limit int) []domsearch.Suggestion
	Analytics() domsearch.AnalyticsSummary
}

// HealthService reports component health.
type HealthService interface {
	Check(ctx context.Context) healthuc.Report
}

// Server exposes the search API over HTTP.
type Server struct {
	search      SearchService
	health      HealthService
	logger      *zap.Logger
	defaultPage int
	maxPage     int
}

// NewServer creates an HTTP API server.
func NewServer(search SearchService, health HealthService, logger *zap.Logger) *Server {
	return &Server{
		search:      search,
		health:      health,
		logger:      logger,
		defaultPage: domsearch.DefaultLimit,
		maxPage:     domsearch.MaxLimit,
	}
}

// WithPageSizes overrides the deployment's default and maximum page size.
func (s *Server) WithPageSizes(defaultPage, maxPage int) *Server {
	if defaultPage > 0 {
		s.defaultPage = defaultPage
	}
	if maxPage > 0 {
		s.maxPage = maxPage
	}
	return s
}

// clampLimit applies the deployment page bounds before domain validation.
func (s *Server) clampLimit(limit int) int {
	if limit <= 0 {
		return s.defaultPage
	}
	if limit > s.maxPage {
		return s.maxPage
	}
	return limit
}

// Routes registers all endpoints on the router.
func (s *Server) Routes(r chi.Router) {
	r.Get("/search", s.GlobalSearch)
	r.Post("/search/advanced", s.AdvancedSearch)
	r.Get("/search/autocomplete", s.Autocomplete)
	r.Get("/search/analytics", s.Analytics)
	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)
}

// GlobalSearch handles GET /search.
func (s *Server) GlobalSearch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	skip, err := queryInt(q.Get("skip"), 0)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeValidationFailed, "skip must be an integer")
		return
	}
	limit, err := queryInt(q.Get("limit"), 0)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeValidationFailed, "limit must be an integer")
		return
	}

	// An empty tenantId means an unscoped (back-office) search.
	// Highlighting is on unless the caller opts out explicitly.
	req, err := domsearch.New(
		q.Get("query"),
		entityTypesFromParam(q.Get("entityTypes")),
		q.Get("tenantId"),
		skip, s.clampLimit(limit),
		q.Get("highlightMatches") != "false",
		nil, nil, 0,
	)
	if err != nil {
		s.logger.Debug("rejected search request", zap.Error(err))
		writeError(w, http.StatusBadRequest, codeValidationFailed, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, searchResponseToDTO(s.search.GlobalSearch(r.Context(), req)))
}

// AdvancedSearch handles POST /search/advanced.
func (s *Server) AdvancedSearch(w http.ResponseWriter, r *http.Request) {
	var body advancedSearchRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, codeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	types := make([]entity.Type, 0, len(body.EntityTypes))
	for _, t := range body.EntityTypes {
		types = append(types, entity.Type(t))
	}

	req, err := domsearch.New(
		body.Query,
		types,
		body.TenantID,
		body.Skip, s.clampLimit(body.Limit),
		false,
		body.DateFrom, body.DateTo,
		body.MinScore,
	)
	if err != nil {
		s.logger.Debug("rejected advanced search request", zap.Error(err))
		writeError(w, http.StatusBadRequest, codeValidationFailed, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, searchResponseToDTO(s.search.AdvancedSearch(r.Context(), req)))
}

// Autocomplete handles GET /search/autocomplete.
func (s *Server) Autocomplete(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	limit, err := queryInt(q.Get("limit"), 0)
	if err != nil {
		writeError(w, http.StatusBadRequest, codeValidationFailed, "limit must be an integer")
		return
	}

	suggestions := s.search.Autocomplete(
		r.Context(),
		q.Get("query"),
		q.Get("tenantId"),
		entityTypesFromParam(q.Get("entityTypes")),
		limit,
	)

	writeJSON(w, http.StatusOK, suggestionsToDTO(suggestions))
}

// Analytics handles GET /search/analytics.
func (s *Server) Analytics(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, analyticsToDTO(s.search.Analytics()))
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, healthToDTO(report))
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

// entityTypesFromParam parses a comma-separated type list. Unknown names
// pass through; the registry drops them at resolution time.
func entityTypesFromParam(param string) []entity.Type {
	if param == "" {
		return nil
	}
	var types []entity.Type
	for _, part := range strings.Split(param, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			types = append(types, entity.Type(part))
		}
	}
	return types
}

func queryInt(raw string, fallback int) (int, error) {
	if raw == "" {
		return fallback, nil
	}
	return strconv.Atoi(raw)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, errorResponse{
		Code:    code,
		Message: message,
	})
}
