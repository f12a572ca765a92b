package strategy

import "github.com/competia/searchapi/internal/domain/entity"

// Registry maps entity types to strategy instances. It is populated once
// at startup and read-only afterwards, so it is safe to share across
// concurrent requests without synchronization.
type Registry struct {
	order  []entity.Type
	byType map[entity.Type]Strategy
}

// NewRegistry composes the given strategies, preserving registration
// order. A later strategy for an already-registered type replaces the
// earlier one without disturbing its position.
func NewRegistry(strategies ...Strategy) *Registry {
	r := &Registry{byType: make(map[entity.Type]Strategy, len(strategies))}
	for _, s := range strategies {
		t := s.EntityType()
		if _, exists := r.byType[t]; !exists {
			r.order = append(r.order, t)
		}
		r.byType[t] = s
	}
	return r
}

// Strategy resolves one entity type.
func (r *Registry) Strategy(t entity.Type) (Strategy, bool) {
	s, ok := r.byType[t]
	return s, ok
}

// All returns every registered strategy in registration order.
func (r *Registry) All() []Strategy {
	out := make([]Strategy, 0, len(r.order))
	for _, t := range r.order {
		out = append(out, r.byType[t])
	}
	return out
}

// ForTypes maps the requested types through the registry, silently
// dropping unknown ones.
func (r *Registry) ForTypes(types []entity.Type) []Strategy {
	out := make([]Strategy, 0, len(types))
	for _, t := range types {
		if s, ok := r.byType[t]; ok {
			out = append(out, s)
		}
	}
	return out
}

// Types returns the full set of registered entity types in registration
// order.
func (r *Registry) Types() []entity.Type {
	out := make([]entity.Type, len(r.order))
	copy(out, r.order)
	return out
}
