package search

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/competia/searchapi/internal/domain/entity"
	domsearch "github.com/competia/searchapi/internal/domain/search"
	"github.com/competia/searchapi/internal/strategy"
)

// stubStrategy returns canned items and counts invocations. The facet
// round re-invokes strategies, so tests that care about the main round
// must account for both.
type stubStrategy struct {
	entityType entity.Type
	items      []domsearch.ResultItem
	err        error
	calls      atomic.Int32
	lastLimit  atomic.Int32
}

func (s *stubStrategy) EntityType() entity.Type { return s.entityType }

func (s *stubStrategy) Search(
	_ context.Context, _, _ string, opts domsearch.Options,
) ([]domsearch.ResultItem, error) {
	s.calls.Add(1)
	s.lastLimit.Store(int32(opts.Limit))
	if s.err != nil {
		return nil, s.err
	}
	return s.items, nil
}

func (s *stubStrategy) CalculateScore(_ string, _ []string) int { return 0 }

func item(id string, t entity.Type, score int) domsearch.ResultItem {
	return domsearch.ResultItem{ID: id, EntityType: t, Title: id, Score: score}
}

func mustRequest(t *testing.T, query string, types []entity.Type, skip, limit int, highlight bool, minScore int) domsearch.Request {
	t.Helper()
	req, err := domsearch.New(query, types, "t1", skip, limit, highlight, nil, nil, minScore)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	return req
}

func newService(strategies ...strategy.Strategy) *Service {
	return New(strategy.NewRegistry(strategies...), nil)
}

func TestGlobalSearch_MergesAndRanks(t *testing.T) {
	courses := &stubStrategy{entityType: entity.Course, items: []domsearch.ResultItem{
		item("c1", entity.Course, 80),
		item("c2", entity.Course, 50),
	}}
	users := &stubStrategy{entityType: entity.User, items: []domsearch.ResultItem{
		item("u1", entity.User, 100),
		item("u2", entity.User, 50),
	}}
	svc := newService(courses, users)

	resp := svc.GlobalSearch(context.Background(), mustRequest(t, "ana", nil, 0, 20, false, 0))

	if resp.TotalResults != 4 {
		t.Fatalf("totalResults = %d, want 4", resp.TotalResults)
	}
	if resp.Results[0].ID != "u1" || resp.Results[1].ID != "c1" {
		t.Errorf("head of ranking = %s, %s; want u1, c1", resp.Results[0].ID, resp.Results[1].ID)
	}
	// c2 registered before u2; equal scores keep registration order.
	if resp.Results[2].ID != "c2" || resp.Results[3].ID != "u2" {
		t.Errorf("tie order = %s, %s; want c2, u2", resp.Results[2].ID, resp.Results[3].ID)
	}
}

func TestGlobalSearch_Deterministic(t *testing.T) {
	a := &stubStrategy{entityType: entity.Course, items: []domsearch.ResultItem{
		item("c1", entity.Course, 50), item("c2", entity.Course, 50),
	}}
	b := &stubStrategy{entityType: entity.Document, items: []domsearch.ResultItem{
		item("d1", entity.Document, 50),
	}}
	svc := newService(a, b)
	req := mustRequest(t, "x", nil, 0, 20, false, 0)

	first := svc.GlobalSearch(context.Background(), req)
	for range 10 {
		again := svc.GlobalSearch(context.Background(), req)
		for i := range first.Results {
			if again.Results[i].ID != first.Results[i].ID {
				t.Fatalf("ordering not deterministic at %d: %s vs %s",
					i, again.Results[i].ID, first.Results[i].ID)
			}
		}
	}
}

func TestGlobalSearch_Pagination(t *testing.T) {
	var items []domsearch.ResultItem
	for i := range 30 {
		items = append(items, item(strings.Repeat("c", i+1), entity.Course, 100-i))
	}
	svc := newService(&stubStrategy{entityType: entity.Course, items: items})

	resp := svc.GlobalSearch(context.Background(), mustRequest(t, "x", nil, 10, 5, false, 0))

	if resp.TotalResults != 30 {
		t.Errorf("totalResults = %d, want 30 regardless of page", resp.TotalResults)
	}
	if len(resp.Results) != 5 {
		t.Fatalf("page size = %d, want 5", len(resp.Results))
	}
	if resp.Results[0].Score != 90 {
		t.Errorf("page head score = %d, want 90", resp.Results[0].Score)
	}

	// skip beyond the universe yields an empty page, same total.
	resp = svc.GlobalSearch(context.Background(), mustRequest(t, "x", nil, 100, 5, false, 0))
	if len(resp.Results) != 0 || resp.TotalResults != 30 {
		t.Errorf("overshoot page = %d items, total %d", len(resp.Results), resp.TotalResults)
	}
}

func TestGlobalSearch_TypeRestriction(t *testing.T) {
	courses := &stubStrategy{entityType: entity.Course, items: []domsearch.ResultItem{
		item("c1", entity.Course, 60),
	}}
	users := &stubStrategy{entityType: entity.User, items: []domsearch.ResultItem{
		item("u1", entity.User, 90),
	}}
	svc := newService(courses, users)

	req := mustRequest(t, "x", []entity.Type{entity.Course, "bogus"}, 0, 20, false, 0)
	resp := svc.GlobalSearch(context.Background(), req)

	for _, r := range resp.Results {
		if r.EntityType != entity.Course {
			t.Errorf("restricted results contain %s", r.EntityType)
		}
	}
	// Main round skips users; the facet round still counts them once.
	if got := courses.calls.Load(); got != 2 {
		t.Errorf("course strategy calls = %d, want 2 (main + facets)", got)
	}
	if got := users.calls.Load(); got != 1 {
		t.Errorf("user strategy calls = %d, want 1 (facets only)", got)
	}
}

func TestGlobalSearch_StrategyFailureDegrades(t *testing.T) {
	ok := &stubStrategy{entityType: entity.Course, items: []domsearch.ResultItem{
		item("c1", entity.Course, 70),
	}}
	broken := &stubStrategy{entityType: entity.User, err: errors.New("db down")}
	svc := newService(ok, broken)

	resp := svc.GlobalSearch(context.Background(), mustRequest(t, "x", nil, 0, 20, false, 0))

	if resp.TotalResults != 1 || resp.Results[0].ID != "c1" {
		t.Fatalf("surviving strategy should still contribute, got %d results", resp.TotalResults)
	}
}

func TestGlobalSearch_Highlighting(t *testing.T) {
	svc := newService(&stubStrategy{entityType: entity.Course, items: []domsearch.ResultItem{
		{ID: "c1", EntityType: entity.Course, Title: "Workplace Safety", Description: "safety basics", Score: 80},
		{ID: "c2", EntityType: entity.Course, Title: "Finance", Description: "budgets", Score: 50},
	}})

	resp := svc.GlobalSearch(context.Background(), mustRequest(t, "safety", nil, 0, 20, true, 0))

	h := resp.Results[0].Highlights
	if h == nil {
		t.Fatal("matched item should carry highlights")
	}
	if h["title"][0] != "Workplace <mark>Safety</mark>" {
		t.Errorf("title highlight = %q", h["title"][0])
	}
	if h["description"][0] != "<mark>safety</mark> basics" {
		t.Errorf("description highlight = %q", h["description"][0])
	}
	if resp.Results[1].Highlights != nil {
		t.Error("unmatched item should carry no highlights")
	}

	// Highlighting is opt-in.
	resp = svc.GlobalSearch(context.Background(), mustRequest(t, "safety", nil, 0, 20, false, 0))
	if resp.Results[0].Highlights != nil {
		t.Error("highlights present without the flag")
	}
}

func TestAdvancedSearch_MinScore(t *testing.T) {
	svc := newService(&stubStrategy{entityType: entity.Course, items: []domsearch.ResultItem{
		item("hi", entity.Course, 80),
		item("mid", entity.Course, 50),
		item("lo", entity.Course, 30),
	}})

	resp := svc.AdvancedSearch(context.Background(), mustRequest(t, "x", nil, 0, 20, false, 50))

	if resp.TotalResults != 2 {
		t.Fatalf("totalResults = %d, want 2 after min score filter", resp.TotalResults)
	}
	for _, r := range resp.Results {
		if r.Score < 50 {
			t.Errorf("item %s below threshold with score %d", r.ID, r.Score)
		}
	}
}

func TestAdvancedSearch_DateFilterPushedDown(t *testing.T) {
	st := &stubStrategy{entityType: entity.Course}
	svc := newService(st)

	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	req, err := domsearch.New("x", nil, "t1", 0, 20, false, &from, nil, 0)
	if err != nil {
		t.Fatalf("request: %v", err)
	}

	// The stub cannot observe opts.DateFilter directly, but the call must
	// succeed and keep the envelope well-formed.
	resp := svc.AdvancedSearch(context.Background(), req)
	if resp.TotalResults != 0 {
		t.Errorf("totalResults = %d, want 0", resp.TotalResults)
	}
	if resp.Results == nil {
		t.Error("results should be an empty slice, not nil")
	}
}

func TestGlobalSearch_Grouping(t *testing.T) {
	courses := &stubStrategy{entityType: entity.Course, items: []domsearch.ResultItem{
		item("c1", entity.Course, 40),
		item("c2", entity.Course, 90),
	}}
	users := &stubStrategy{entityType: entity.User, items: []domsearch.ResultItem{
		item("u1", entity.User, 100),
	}}
	svc := newService(courses, users)

	resp := svc.GlobalSearch(context.Background(), mustRequest(t, "x", nil, 0, 20, false, 0))

	if len(resp.Grouped) != 2 {
		t.Fatalf("groups = %d, want 2", len(resp.Grouped))
	}
	// u1 ranks first, so the user group is seen first.
	if resp.Grouped[0].Type != entity.User || resp.Grouped[0].Count != 1 {
		t.Errorf("first group = %s (%d)", resp.Grouped[0].Type, resp.Grouped[0].Count)
	}
	courseGroup := resp.Grouped[1]
	if courseGroup.Count != 2 || courseGroup.Items[0].ID != "c2" {
		t.Errorf("course group head = %s, want c2", courseGroup.Items[0].ID)
	}
}

func TestGlobalSearch_FacetsOmitZeroCounts(t *testing.T) {
	hits := &stubStrategy{entityType: entity.Course, items: []domsearch.ResultItem{
		item("c1", entity.Course, 60),
	}}
	empty := &stubStrategy{entityType: entity.Document}
	svc := newService(hits, empty)

	resp := svc.GlobalSearch(context.Background(), mustRequest(t, "x", nil, 0, 20, false, 0))

	if len(resp.Facets.EntityTypes) != 1 {
		t.Fatalf("facets = %d entries, want 1", len(resp.Facets.EntityTypes))
	}
	f := resp.Facets.EntityTypes[0]
	if f.Type != entity.Course || f.Count != 1 {
		t.Errorf("facet = %s (%d)", f.Type, f.Count)
	}
}

// stubCache is an in-memory FacetCache.
type stubCache struct {
	data map[string][]byte
	gets int
	sets int
}

func (c *stubCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	c.gets++
	v, ok := c.data[key]
	return v, ok, nil
}

func (c *stubCache) Set(_ context.Context, key string, value []byte) error {
	c.sets++
	c.data[key] = value
	return nil
}

func TestGlobalSearch_FacetCacheShortcutsSecondRound(t *testing.T) {
	st := &stubStrategy{entityType: entity.Course, items: []domsearch.ResultItem{
		item("c1", entity.Course, 60),
	}}
	cache := &stubCache{data: make(map[string][]byte)}
	svc := newService(st).WithFacetCache(cache)
	req := mustRequest(t, "x", nil, 0, 20, false, 0)

	first := svc.GlobalSearch(context.Background(), req)
	callsAfterFirst := st.calls.Load()
	second := svc.GlobalSearch(context.Background(), req)

	if cache.sets != 1 {
		t.Errorf("cache sets = %d, want 1", cache.sets)
	}
	// Second search adds only the main round; facets come from cache.
	if got := st.calls.Load(); got != callsAfterFirst+1 {
		t.Errorf("strategy calls after cached search = %d, want %d", got, callsAfterFirst+1)
	}
	if len(second.Facets.EntityTypes) != len(first.Facets.EntityTypes) {
		t.Errorf("cached facets differ: %d vs %d",
			len(second.Facets.EntityTypes), len(first.Facets.EntityTypes))
	}
}

// stubSuggestions is a canned SuggestionSource.
type stubSuggestions struct {
	codes      []string
	lastPrefix string
}

func (s *stubSuggestions) CodesWithPrefix(_ context.Context, prefix string, _ int) ([]string, error) {
	s.lastPrefix = prefix
	return s.codes, nil
}

func TestGlobalSearch_StandardCodeSuggestions(t *testing.T) {
	src := &stubSuggestions{codes: []string{"EC0249", "EC0301"}}
	svc := New(strategy.NewRegistry(&stubStrategy{entityType: entity.Course}), src)

	resp := svc.GlobalSearch(context.Background(), mustRequest(t, "ec02", nil, 0, 20, false, 0))
	if len(resp.Suggestions) != 2 || src.lastPrefix != "ec02" {
		t.Errorf("suggestions = %v, prefix = %q", resp.Suggestions, src.lastPrefix)
	}

	resp = svc.GlobalSearch(context.Background(), mustRequest(t, "safety", nil, 0, 20, false, 0))
	if resp.Suggestions != nil {
		t.Errorf("non-code query produced suggestions: %v", resp.Suggestions)
	}
}

func TestAutocomplete(t *testing.T) {
	courses := &stubStrategy{entityType: entity.Course, items: []domsearch.ResultItem{
		{ID: "c1", EntityType: entity.Course, Title: "Consultoría EC0249", Score: 100},
		{ID: "c2", EntityType: entity.Course, Title: "Consulting basics", Score: 50},
	}}
	users := &stubStrategy{entityType: entity.User, items: []domsearch.ResultItem{
		{ID: "u1", EntityType: entity.User, Title: "Consuelo Ramos", Score: 80},
	}}
	docs := &stubStrategy{entityType: entity.Document}
	svc := newService(courses, users, docs)

	got := svc.Autocomplete(context.Background(), "cons", "t1", nil, 0)

	if len(got) != 3 {
		t.Fatalf("suggestions = %d, want 3", len(got))
	}
	if got[0].Text != "Consultoría EC0249" || got[0].EntityID != "c1" {
		t.Errorf("head = %+v", got[0])
	}
	if got[1].Score != 80 || got[2].Score != 50 {
		t.Errorf("suggestions not sorted by score: %+v", got)
	}
	// Documents are outside the default typeahead set.
	if docs.calls.Load() != 0 {
		t.Error("document strategy invoked without an explicit type restriction")
	}
	if courses.lastLimit.Load() != autocompleteFanoutLimit {
		t.Errorf("per-strategy limit = %d, want %d", courses.lastLimit.Load(), autocompleteFanoutLimit)
	}
}

func TestAutocomplete_ShortQuery(t *testing.T) {
	st := &stubStrategy{entityType: entity.Course, items: []domsearch.ResultItem{
		item("c1", entity.Course, 100),
	}}
	svc := newService(st)

	if got := svc.Autocomplete(context.Background(), " a ", "t1", nil, 10); len(got) != 0 {
		t.Errorf("one-character query returned %d suggestions", len(got))
	}
	// One multibyte character is still one character.
	if got := svc.Autocomplete(context.Background(), "ñ", "t1", nil, 10); len(got) != 0 {
		t.Errorf("single multibyte character returned %d suggestions", len(got))
	}
	if st.calls.Load() != 0 {
		t.Error("short query should not reach any strategy")
	}

	// Two runes clear the gate even when they span four bytes.
	if got := svc.Autocomplete(context.Background(), "ññ", "t1", nil, 10); len(got) != 1 {
		t.Errorf("two-character query returned %d suggestions, want 1", len(got))
	}
}

func TestAutocomplete_LimitTruncates(t *testing.T) {
	var items []domsearch.ResultItem
	for i := range 8 {
		items = append(items, item(strings.Repeat("c", i+1), entity.Course, 100-i))
	}
	svc := newService(&stubStrategy{entityType: entity.Course, items: items[:5]})

	got := svc.Autocomplete(context.Background(), "cons", "t1", []entity.Type{entity.Course}, 3)
	if len(got) != 3 {
		t.Errorf("suggestions = %d, want 3", len(got))
	}
}

func TestAnalytics_EvenDistribution(t *testing.T) {
	svc := newService(
		&stubStrategy{entityType: entity.Course},
		&stubStrategy{entityType: entity.User},
		&stubStrategy{entityType: entity.Document},
		&stubStrategy{entityType: entity.Standard},
	)

	summary := svc.Analytics()

	if summary.TotalSearches != 0 || summary.AverageSearchTime != 0 {
		t.Errorf("placeholder counters should be zero: %+v", summary)
	}
	if len(summary.EntityTypeDistribution) != 4 {
		t.Fatalf("distribution entries = %d, want 4", len(summary.EntityTypeDistribution))
	}
	for _, d := range summary.EntityTypeDistribution {
		if d.Percentage != 25.0 {
			t.Errorf("share for %s = %v, want 25", d.Type, d.Percentage)
		}
	}
}

func TestGlobalSearch_RespectsFanoutBound(t *testing.T) {
	st := &stubStrategy{entityType: entity.Course, items: []domsearch.ResultItem{
		item("c1", entity.Course, 60),
	}}
	svc := newService(st).WithFanout(50*time.Millisecond, 2)

	resp := svc.GlobalSearch(context.Background(), mustRequest(t, "x", nil, 0, 20, false, 0))
	if resp.TotalResults != 1 {
		t.Errorf("totalResults = %d, want 1", resp.TotalResults)
	}
}
