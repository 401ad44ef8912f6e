package ecs

import (
	"iter"
	"reflect"
)

// TypedStore is the type-erased view of a Store used by the World for
// lifecycle operations that do not know the component type.
type TypedStore interface {
	Type() reflect.Type
	GetEntities() []Entity
	Entities() iter.Seq[Entity]
	HasEntity(id Entity) bool
	Add(id Entity, value any) error
	Remove(id Entity)
	Len() int
}

// Store is a sparse set holding one component type. Dense order is insertion
// order with swap-remove, so iteration order is not sorted.
type Store[T any] struct {
	typ    reflect.Type
	sparse map[Entity]int
	dense  []Entity
	data   []T
}

func newStore[T any]() *Store[T] {
	return &Store[T]{
		typ:    reflect.TypeFor[T](),
		sparse: make(map[Entity]int),
	}
}

func (s *Store[T]) Type() reflect.Type {
	return s.typ
}

// Add inserts value for id. Adding a component the entity already has
// overwrites it.
func (s *Store[T]) Add(id Entity, value any) error {
	v, ok := value.(T)
	if !ok {
		return ErrTypeMismatch
	}
	s.Set(id, v)
	return nil
}

// Set inserts or overwrites the component of id.
func (s *Store[T]) Set(id Entity, value T) {
	if idx, ok := s.sparse[id]; ok {
		s.data[idx] = value
		return
	}

	s.sparse[id] = len(s.data)
	s.data = append(s.data, value)
	s.dense = append(s.dense, id)
}

func (s *Store[T]) Remove(id Entity) {
	idx, exists := s.sparse[id]
	if !exists {
		return
	}

	lastIndex := len(s.data) - 1
	lastEntityID := s.dense[lastIndex]

	if idx != lastIndex {
		s.data[idx] = s.data[lastIndex]
		s.dense[idx] = lastEntityID
		s.sparse[lastEntityID] = idx
	}

	var zero T
	s.data[lastIndex] = zero
	s.data = s.data[:lastIndex]
	s.dense = s.dense[:lastIndex]

	delete(s.sparse, id)
}

// GetEntities returns the dense entity slice. Callers must not modify it.
func (s *Store[T]) GetEntities() []Entity {
	return s.dense
}

func (s *Store[T]) Entities() iter.Seq[Entity] {
	return func(yield func(Entity) bool) {
		for _, id := range s.dense {
			if !yield(id) {
				return
			}
		}
	}
}

func (s *Store[T]) Len() int {
	return len(s.dense)
}

func (s *Store[T]) HasEntity(id Entity) bool {
	_, ok := s.sparse[id]
	return ok
}

// Get returns a pointer into the store, or nil if id has no component.
// The pointer is invalidated by the next structural change of this store.
func (s *Store[T]) Get(id Entity) *T {
	idx, ok := s.sparse[id]
	if !ok {
		return nil
	}
	return &s.data[idx]
}
