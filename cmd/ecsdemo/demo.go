package main

import (
	"github.com/QYUbit/ecsys/pkg/config"
	"github.com/QYUbit/ecsys/pkg/ecs"
	"github.com/QYUbit/ecsys/pkg/telemetry"
)

type demo struct {
	world     *ecs.World
	scheduler *ecs.Scheduler
	tracker   *tracker
}

func newDemo(cfg config.Config, tracer *telemetry.Tracer) *demo {
	w := ecs.NewWorld()
	ecs.RegisterComponent[Position](w)
	ecs.RegisterComponent[Velocity](w)
	ecs.RegisterComponent[Lifetime](w)

	// tracker keeps plain counters and always runs sequentially.
	t := &tracker{log: tracer.Logger()}

	opts := []ecs.SystemOption{
		ecs.WithTracer(tracer),
		ecs.WithParallel(cfg.ParallelWorkers),
	}

	s := ecs.NewScheduler(
		ecs.WithErrorPolicy(ecs.AbortTick),
		ecs.WithSchedulerTracer(tracer),
	)
	s.AddSystem(spawner{}, ecs.OnStartup)
	s.AddSystem(ecs.NewSystem2[Position, Velocity]("movement", movement{}, opts...), ecs.OnUpdate)
	s.AddSystem(ecs.NewSystem2[Position, Velocity]("tracker", t, ecs.WithTracer(tracer), ecs.WithNotifications(true)), ecs.OnUpdate)
	s.AddSystem(ecs.NewSystem1[Position]("confine", confine{}, opts...), ecs.OnUpdate)
	s.AddSystem(ecs.NewSystem1[Lifetime]("aging", &aging{world: w}, opts...), ecs.OnUpdate)
	s.AddSystem(ecs.NewSystem1[Position]("handoff", &handoff{world: w}, ecs.WithTracer(tracer)), ecs.OnUpdate)

	return &demo{world: w, scheduler: s, tracker: t}
}
