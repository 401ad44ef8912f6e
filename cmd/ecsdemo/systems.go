package main

import (
	"fmt"

	"github.com/QYUbit/ecsys/pkg/ecs"
	"github.com/QYUbit/ecsys/pkg/telemetry"
)

const (
	dt     = 1.0
	bounds = 100.0
)

// spawner is the startup system. It queues the initial population on the
// command buffer: three movers and two static entities.
type spawner struct{}

func (spawner) Name() string { return "spawner" }

func (spawner) Run(w *ecs.World) error {
	cb := w.Commands()
	cb.CreateEntity(Position{X: 0, Y: 0}, Velocity{X: 1, Y: 0})
	cb.CreateEntity(Position{X: 10, Y: 10}, Velocity{X: 0, Y: 2})
	cb.CreateEntity(Position{X: 20, Y: 20}, Velocity{X: -1, Y: -1})
	cb.CreateEntity(Position{X: 50, Y: 50})
	cb.CreateEntity(Position{X: 99, Y: 0}, Lifetime{MaxAge: 2})
	return nil
}

// movement integrates velocity. It has no optional hooks.
type movement struct{}

func (movement) Update(_ ecs.Entity, pos *Position, vel *Velocity) error {
	pos.X += vel.X * dt
	pos.Y += vel.Y * dt
	return nil
}

// tracker follows the set of moving entities.
type tracker struct {
	log   telemetry.Logger
	runs  int
	moved int

	added   []ecs.Entity
	removed []ecs.Entity
}

func (t *tracker) Pre() error {
	t.runs++
	t.moved = 0
	return nil
}

func (t *tracker) Update(ecs.Entity, *Position, *Velocity) error {
	t.moved++
	return nil
}

func (t *tracker) Notify(kind ecs.Notification, entities []ecs.Entity) error {
	switch kind {
	case ecs.Added:
		t.added = append(t.added, entities...)
	case ecs.Removed:
		t.removed = append(t.removed, entities...)
	}
	if len(entities) > 0 {
		t.log.Info("movers changed", "kind", kind.String(), "entities", fmt.Sprint(entities))
	}
	return nil
}

func (t *tracker) Post() error {
	t.log.Info("movers", "run", t.runs, "count", t.moved)
	return nil
}

// confine wraps positions into [0, bounds).
type confine struct{}

func (confine) Update(_ ecs.Entity, pos *Position) error {
	pos.X = wrap(pos.X)
	pos.Y = wrap(pos.Y)
	return nil
}

func wrap(v float64) float64 {
	for v < 0 {
		v += bounds
	}
	for v >= bounds {
		v -= bounds
	}
	return v
}

// aging destroys expired entities through the command buffer.
type aging struct {
	world *ecs.World
}

func (a *aging) Update(e ecs.Entity, l *Lifetime) error {
	l.Age += dt
	if l.Age >= l.MaxAge {
		a.world.Commands().DestroyEntity(e)
	}
	return nil
}

// handoff moves the velocity of the first mover to the first static entity
// after the first tick, so the tracker sees one entity leave and one enter.
type handoff struct {
	world *ecs.World
	ran   int
}

func (h *handoff) Update(ecs.Entity, *Position) error { return nil }

func (h *handoff) Post() error {
	h.ran++
	if h.ran != 1 {
		return nil
	}

	var from, to ecs.Entity
	view, err := ecs.Query1[Position](h.world)
	if err != nil {
		return err
	}
	for e := range ecs.Iter(view) {
		moving := ecs.Has[Velocity](h.world, e)
		if moving && from == 0 {
			from = e
		}
		if !moving && !ecs.Has[Lifetime](h.world, e) && to == 0 {
			to = e
		}
	}
	if from == 0 || to == 0 {
		return nil
	}

	vel, _ := ecs.Get[Velocity](h.world, from)
	cb := h.world.Commands()
	ecs.RemoveComponent[Velocity](cb, from)
	cb.AddComponent(to, *vel)
	return nil
}
