package ecs

import (
	"errors"

	"github.com/QYUbit/ecsys/pkg/telemetry"
	"github.com/google/uuid"
	"github.com/rotisserie/eris"
)

// Runner is what the Scheduler drives. *System[R] implements it.
type Runner interface {
	Name() string
	Run(w *World) error
}

type SystemTrigger int

const (
	OnUpdate SystemTrigger = iota
	OnStartup
)

// ErrorPolicy decides what a tick does after a system fails.
type ErrorPolicy int

const (
	// AbortTick stops the tick at the first failing system and drops the
	// commands recorded during it.
	AbortTick ErrorPolicy = iota
	// ContinueTick runs the remaining systems and reports all failures.
	ContinueTick
)

type SchedulerConfig struct {
	Policy ErrorPolicy
	Tracer *telemetry.Tracer
}

type SchedulerOption func(*SchedulerConfig)

func WithErrorPolicy(policy ErrorPolicy) SchedulerOption {
	return func(config *SchedulerConfig) {
		config.Policy = policy
	}
}

func WithSchedulerTracer(t *telemetry.Tracer) SchedulerOption {
	return func(config *SchedulerConfig) {
		config.Tracer = t
	}
}

// Scheduler runs systems in registration order, once per tick. It never runs
// a system concurrently with itself.
type Scheduler struct {
	initSystems []Runner
	systems     []Runner
	policy      ErrorPolicy
	tracer      *telemetry.Tracer
	ticks       uint64
}

func NewScheduler(opts ...SchedulerOption) *Scheduler {
	var config SchedulerConfig
	for _, opt := range opts {
		opt(&config)
	}

	return &Scheduler{
		initSystems: make([]Runner, 0),
		systems:     make([]Runner, 0),
		policy:      config.Policy,
		tracer:      config.Tracer,
	}
}

func (s *Scheduler) AddSystem(sys Runner, trigger SystemTrigger) {
	switch trigger {
	case OnStartup:
		s.initSystems = append(s.initSystems, sys)
	default:
		s.systems = append(s.systems, sys)
	}
}

// Systems returns the names of the per-tick systems in run order.
func (s *Scheduler) Systems() []string {
	names := make([]string, len(s.systems))
	for i, sys := range s.systems {
		names[i] = sys.Name()
	}
	return names
}

// Ticks returns how many ticks have completed without error.
func (s *Scheduler) Ticks() uint64 {
	return s.ticks
}

// RunInit runs the startup systems once, applying commands after each of them.
func (s *Scheduler) RunInit(w *World) error {
	for _, sys := range s.initSystems {
		if err := sys.Run(w); err != nil {
			w.Commands().Reset()
			return eris.Wrapf(err, "init system %s", sys.Name())
		}
		if err := w.Flush(); err != nil {
			return eris.Wrapf(err, "apply commands of init system %s", sys.Name())
		}
	}
	return nil
}

// Tick runs every per-tick system once and then applies the command buffer.
func (s *Scheduler) Tick(w *World) error {
	defer s.tracer.Begin("scheduler", PhaseTick)()

	log := s.tracer.Logger()
	tickID := uuid.New().String()

	var errs []error
	for _, sys := range s.systems {
		err := sys.Run(w)
		if err == nil {
			continue
		}

		err = eris.Wrapf(err, "run system %s", sys.Name())
		log.Error("system failed", "tick", tickID, "system", sys.Name(), "error", err)

		if s.policy == AbortTick {
			w.Commands().Reset()
			return err
		}
		errs = append(errs, err)
	}

	end := s.tracer.Begin("scheduler", PhaseFlush)
	if err := w.Flush(); err != nil {
		errs = append(errs, eris.Wrap(err, "apply commands"))
	}
	end()

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	s.ticks++
	log.Debug("tick complete", "tick", tickID, "n", s.ticks)
	return nil
}
