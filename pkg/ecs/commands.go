package ecs

import (
	"reflect"
	"sync"
)

type CommandOperation int

const (
	CreateEntityCommand CommandOperation = iota
	DestroyEntityCommand
	AddComponentToEntity
	RemoveComponentFromEntity
)

// Command represents a structural change instruction
// (create entity, destroy entity, add component, remove component).
type Command struct {
	Op     CommandOperation
	Entity Entity
	Type   reflect.Type
	Value  any
	Values []any
}

// A CommandBuffer collects structural changes recorded while systems run and
// applies them on World.Flush. It is safe for concurrent use, so updates
// running in parallel mode may record commands.
type CommandBuffer struct {
	world    *World
	mu       sync.Mutex
	commands []Command
}

func (cb *CommandBuffer) push(cmd Command) {
	cb.mu.Lock()
	cb.commands = append(cb.commands, cmd)
	cb.mu.Unlock()
}

func (cb *CommandBuffer) drain() []Command {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	commands := cb.commands
	cb.commands = nil
	return commands
}

// Len returns the number of pending commands.
func (cb *CommandBuffer) Len() int {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return len(cb.commands)
}

// Reset drops all pending commands.
func (cb *CommandBuffer) Reset() {
	cb.drain()
}

// CreateEntity reserves an entity id right away and records its creation with
// the given initial components.
func (cb *CommandBuffer) CreateEntity(initial ...any) Entity {
	e := cb.world.reserve()
	cb.push(Command{
		Op:     CreateEntityCommand,
		Entity: e,
		Values: initial,
	})
	return e
}

// DestroyEntity inserts a destroy-entity-command to cb.
func (cb *CommandBuffer) DestroyEntity(e Entity) {
	cb.push(Command{
		Op:     DestroyEntityCommand,
		Entity: e,
	})
}

// AddComponent inserts a add-component-command to cb.
func (cb *CommandBuffer) AddComponent(e Entity, v any) {
	cb.push(Command{
		Op:     AddComponentToEntity,
		Entity: e,
		Type:   reflect.TypeOf(v),
		Value:  v, // ! Boxing
	})
}

// RemoveComponent inserts a remove-component-command for T to cb.
func RemoveComponent[T any](cb *CommandBuffer, e Entity) {
	cb.push(Command{
		Op:     RemoveComponentFromEntity,
		Entity: e,
		Type:   reflect.TypeFor[T](),
	})
}
