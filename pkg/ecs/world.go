package ecs

import (
	"errors"
	"reflect"
	"sync"
	"sync/atomic"
)

// World owns entities and their component stores.
//
// Structural changes (creating and destroying entities, adding and removing
// components) are not safe while a System iterates the World. Record them on
// the CommandBuffer instead; the Scheduler applies it after each tick.
type World struct {
	next     atomic.Uint64
	mu       sync.RWMutex
	entities map[Entity]struct{}
	stores   map[reflect.Type]TypedStore
	commands *CommandBuffer
}

func NewWorld() *World {
	w := &World{
		entities: make(map[Entity]struct{}),
		stores:   make(map[reflect.Type]TypedStore),
	}
	w.commands = &CommandBuffer{world: w}
	return w
}

// Commands returns the deferred command buffer of w.
func (w *World) Commands() *CommandBuffer {
	return w.commands
}

func (w *World) reserve() Entity {
	return Entity(w.next.Add(1))
}

// CreateEntity allocates a new entity with no components.
func (w *World) CreateEntity() Entity {
	e := w.reserve()
	w.createEntity(e)
	return e
}

func (w *World) createEntity(e Entity) {
	w.mu.Lock()
	w.entities[e] = struct{}{}
	w.mu.Unlock()
}

// DestroyEntity removes e and all of its components.
func (w *World) DestroyEntity(e Entity) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if _, ok := w.entities[e]; !ok {
		return ErrEntityNotFound
	}
	delete(w.entities, e)

	for _, store := range w.stores {
		store.Remove(e)
	}
	return nil
}

// Alive reports whether e exists.
func (w *World) Alive(e Entity) bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	_, ok := w.entities[e]
	return ok
}

// Len returns the number of live entities.
func (w *World) Len() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return len(w.entities)
}

func (w *World) addComponent(e Entity, typ reflect.Type, value any) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if _, ok := w.entities[e]; !ok {
		return ErrEntityNotFound
	}
	s, ok := w.stores[typ]
	if !ok {
		return &ComponentNotRegisteredError{Type: typ}
	}
	return s.Add(e, value)
}

func (w *World) removeComponent(e Entity, typ reflect.Type) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if _, ok := w.entities[e]; !ok {
		return ErrEntityNotFound
	}
	s, ok := w.stores[typ]
	if !ok {
		return &ComponentNotRegisteredError{Type: typ}
	}
	s.Remove(e)
	return nil
}

// Flush applies and clears the command buffer. Commands are applied in the
// order they were recorded; failures do not stop later commands.
func (w *World) Flush() error {
	commands := w.commands.drain()

	var errs []error
	for _, cmd := range commands {
		if err := w.apply(cmd); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (w *World) apply(cmd Command) error {
	switch cmd.Op {
	case CreateEntityCommand:
		w.createEntity(cmd.Entity)
		var errs []error
		for _, v := range cmd.Values {
			if err := w.addComponent(cmd.Entity, reflect.TypeOf(v), v); err != nil {
				errs = append(errs, err)
			}
		}
		return errors.Join(errs...)
	case DestroyEntityCommand:
		return w.DestroyEntity(cmd.Entity)
	case AddComponentToEntity:
		return w.addComponent(cmd.Entity, cmd.Type, cmd.Value)
	case RemoveComponentFromEntity:
		return w.removeComponent(cmd.Entity, cmd.Type)
	}
	return nil
}

// ==================================================================
// Components
// ==================================================================

// RegisterComponent creates the store for T. Registering a type twice returns
// the existing store.
func RegisterComponent[T any](w *World) *Store[T] {
	t := reflect.TypeFor[T]()

	w.mu.Lock()
	defer w.mu.Unlock()

	if s, ok := w.stores[t]; ok {
		return s.(*Store[T])
	}
	s := newStore[T]()
	w.stores[t] = s
	return s
}

func getStoreFromWorld[T any](w *World) (*Store[T], error) {
	t := reflect.TypeFor[T]()

	w.mu.RLock()
	s, ok := w.stores[t]
	w.mu.RUnlock()

	if !ok {
		return nil, &ComponentNotRegisteredError{Type: t}
	}
	return s.(*Store[T]), nil
}

// Add attaches value to e, overwriting an existing component of the same type.
func Add[T any](w *World, e Entity, value T) error {
	return w.addComponent(e, reflect.TypeFor[T](), value)
}

// Remove detaches the T component from e. Removing an absent component is a no-op.
func Remove[T any](w *World, e Entity) error {
	return w.removeComponent(e, reflect.TypeFor[T]())
}

// Get returns a pointer to the T component of e.
func Get[T any](w *World, e Entity) (*T, bool) {
	s, err := getStoreFromWorld[T](w)
	if err != nil {
		return nil, false
	}
	p := s.Get(e)
	return p, p != nil
}

func Has[T any](w *World, e Entity) bool {
	s, err := getStoreFromWorld[T](w)
	if err != nil {
		return false
	}
	return s.HasEntity(e)
}
