package strategy

import (
	"context"
	"strings"
	"testing"

	"github.com/competia/searchapi/internal/domain/search"
	"github.com/competia/searchapi/internal/repository"
)

type mockLessonRepo struct {
	recs []repository.LessonRecord
}

func (m *mockLessonRepo) Search(
	_ context.Context, _, _ string, _ int,
) ([]repository.LessonRecord, error) {
	return m.recs, nil
}

func TestLesson_Search_ContentPreview(t *testing.T) {
	long := strings.Repeat("safety first ", 30) // well over 200 chars
	repo := &mockLessonRepo{recs: []repository.LessonRecord{
		{ID: "l1", CourseID: "c1", Title: "Intro", Content: long},
		{ID: "l2", CourseID: "c1", Title: "Short", Content: "brief safety note"},
	}}
	s := NewLesson(repo)

	items, err := s.Search(context.Background(), "safety", "t1", search.Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items[0].Description) != lessonPreviewLen {
		t.Errorf("description length = %d, want %d", len(items[0].Description), lessonPreviewLen)
	}
	if items[1].Description != "brief safety note" {
		t.Errorf("short content should pass through, got %q", items[1].Description)
	}
	if items[0].URL != "/courses/c1/lessons/l1" {
		t.Errorf("url = %q", items[0].URL)
	}
}
