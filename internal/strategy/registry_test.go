package strategy

import (
	"context"
	"testing"

	"github.com/competia/searchapi/internal/domain/entity"
	"github.com/competia/searchapi/internal/domain/search"
)

// stubStrategy is a minimal Strategy for registry tests.
type stubStrategy struct {
	scorer
	entityType entity.Type
}

func (s *stubStrategy) EntityType() entity.Type { return s.entityType }

func (s *stubStrategy) Search(
	_ context.Context, _, _ string, _ search.Options,
) ([]search.ResultItem, error) {
	return nil, nil
}

func TestRegistry_RegistrationOrder(t *testing.T) {
	course := &stubStrategy{entityType: entity.Course}
	user := &stubStrategy{entityType: entity.User}
	standard := &stubStrategy{entityType: entity.Standard}

	reg := NewRegistry(course, user, standard)

	types := reg.Types()
	want := []entity.Type{entity.Course, entity.User, entity.Standard}
	if len(types) != len(want) {
		t.Fatalf("expected %d types, got %d", len(want), len(types))
	}
	for i, tt := range want {
		if types[i] != tt {
			t.Errorf("types[%d] = %s, want %s", i, types[i], tt)
		}
	}

	all := reg.All()
	if len(all) != 3 || all[0] != course || all[1] != user || all[2] != standard {
		t.Error("All() should preserve registration order")
	}
}

func TestRegistry_SingleStrategy(t *testing.T) {
	course := &stubStrategy{entityType: entity.Course}
	reg := NewRegistry(course)

	types := reg.Types()
	if len(types) != 1 || types[0] != entity.Course {
		t.Fatalf("expected exactly [course], got %v", types)
	}

	got := reg.ForTypes([]entity.Type{entity.Course, entity.Type("unknown")})
	if len(got) != 1 || got[0] != course {
		t.Fatalf("expected exactly the course strategy, got %d strategies", len(got))
	}
}

func TestRegistry_StrategyLookup(t *testing.T) {
	user := &stubStrategy{entityType: entity.User}
	reg := NewRegistry(user)

	if s, ok := reg.Strategy(entity.User); !ok || s != user {
		t.Error("expected user strategy to resolve")
	}
	if _, ok := reg.Strategy(entity.Course); ok {
		t.Error("unregistered type should not resolve")
	}
}

func TestRegistry_ForTypes_DropsUnknownSilently(t *testing.T) {
	course := &stubStrategy{entityType: entity.Course}
	user := &stubStrategy{entityType: entity.User}
	reg := NewRegistry(course, user)

	got := reg.ForTypes([]entity.Type{
		entity.User, entity.Type("bogus"), entity.Course, entity.Lesson,
	})
	if len(got) != 2 {
		t.Fatalf("expected 2 strategies, got %d", len(got))
	}
	if got[0] != user || got[1] != course {
		t.Error("ForTypes should keep request order for known types")
	}
}
