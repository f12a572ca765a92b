package strategy

import (
	"context"
	"testing"

	"github.com/competia/searchapi/internal/domain/search"
	"github.com/competia/searchapi/internal/repository"
)

type mockUserRepo struct {
	recs []repository.UserRecord
}

func (m *mockUserRepo) Search(
	_ context.Context, _, _ string, _ int,
) ([]repository.UserRecord, error) {
	return m.recs, nil
}

func TestUser_Search_TitleComposition(t *testing.T) {
	repo := &mockUserRepo{recs: []repository.UserRecord{
		{ID: "u1", FirstName: "Maria", LastName: "Lopez", Email: "maria@acme.mx", Role: "admin"},
		{ID: "u2", Email: "anon@acme.mx"},
	}}
	s := NewUser(repo)

	items, err := s.Search(context.Background(), "acme", "t1", search.Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].Title != "Maria Lopez" {
		t.Errorf("title = %q, want full name", items[0].Title)
	}
	if items[1].Title != "anon@acme.mx" {
		t.Errorf("title = %q, want email fallback", items[1].Title)
	}
	if items[0].Metadata["role"] != "admin" {
		t.Errorf("metadata role = %v", items[0].Metadata["role"])
	}
	if items[0].URL != "/users/u1" {
		t.Errorf("url = %q", items[0].URL)
	}
}
