// Package pod hosts a World: it runs the startup systems once and then drives
// the Scheduler from a fixed rate Simulation.
package pod

import (
	"context"
	"time"

	"github.com/QYUbit/ecsys/pkg/ecs"
	"github.com/QYUbit/ecsys/pkg/telemetry"
)

type Pod struct {
	world     *ecs.World
	scheduler *ecs.Scheduler
	sim       *Simulation
	log       telemetry.Logger
	onError   func(error) bool
}

type Options struct {
	World     *ecs.World
	Scheduler *ecs.Scheduler
	TickRate  time.Duration
	MaxTicks  int
	Logger    telemetry.Logger

	// OnError decides whether a failed tick stops the pod. By default it does.
	OnError func(error) bool
}

func NewPod(o Options) *Pod {
	p := &Pod{
		world:     o.World,
		scheduler: o.Scheduler,
		sim:       NewSimulation(o.TickRate),
		log:       o.Logger,
		onError:   o.OnError,
	}
	if p.log == nil {
		p.log = telemetry.Nop
	}
	if p.onError == nil {
		p.onError = func(error) bool { return true }
	}

	p.sim.SetMaxTicks(o.MaxTicks)
	p.sim.OnTick(p.handleTick)
	return p
}

func (p *Pod) handleTick(dt time.Duration) error {
	err := p.scheduler.Tick(p.world)
	if err == nil {
		return nil
	}
	if p.onError(err) {
		return err
	}
	p.log.Warn("tick failed, continuing", "tick", p.sim.Ticks(), "error", err)
	return nil
}

// Start runs the startup systems and then ticks until ctx is done, Stop is
// called, the tick limit is reached or a tick error stops the pod.
func (p *Pod) Start(ctx context.Context) error {
	if err := p.scheduler.RunInit(p.world); err != nil {
		return err
	}
	p.log.Info("pod started", "entities", p.world.Len(), "systems", p.scheduler.Systems())

	if err := p.sim.Start(ctx); err != nil {
		return err
	}
	p.log.Info("pod stopped", "ticks", p.scheduler.Ticks(), "entities", p.world.Len())
	return nil
}

func (p *Pod) Stop() error {
	return p.sim.Stop()
}

func (p *Pod) World() *ecs.World { return p.world }

func (p *Pod) Scheduler() *ecs.Scheduler { return p.scheduler }
