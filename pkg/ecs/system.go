package ecs

import (
	"github.com/QYUbit/ecsys/pkg/telemetry"
	"github.com/google/uuid"
)

// Updater is the mandatory contract of a concrete system over row type R.
type Updater[R any] interface {
	Update(e Entity, row R) error
}

type Updater1[A any] interface {
	Update(e Entity, a *A) error
}

type Updater2[A, B any] interface {
	Update(e Entity, a *A, b *B) error
}

type Updater3[A, B, C any] interface {
	Update(e Entity, a *A, b *B, c *C) error
}

// ==================================================================
// Options
// ==================================================================

type SystemConfig struct {
	Notifications bool
	Workers       int
	Tracer        *telemetry.Tracer
}

type SystemOption func(*SystemConfig)

// WithNotifications turns added/removed bookkeeping on or off. It has no
// effect on systems that do not implement Notifier. Default off.
func WithNotifications(enabled bool) SystemOption {
	return func(config *SystemConfig) {
		config.Notifications = enabled
	}
}

// WithParallel runs updates on up to workers goroutines over contiguous
// ranges of the view. Values below 2 keep the sequential mode.
func WithParallel(workers int) SystemOption {
	return func(config *SystemConfig) {
		config.Workers = workers
	}
}

// WithTracer attaches a diagnostic sink. A nil tracer disables tracing.
func WithTracer(t *telemetry.Tracer) SystemOption {
	return func(config *SystemConfig) {
		config.Tracer = t
	}
}

// ==================================================================
// System
// ==================================================================

// System drives one concrete system: Pre, Update for each matched entity,
// diff and Notify, then Post.
//
// A System must not run concurrently with itself.
type System[R any] struct {
	id     uuid.UUID
	name   string
	query  Query[R]
	update func(Entity, R) error
	caps   Capabilities

	notifications bool
	workers       int
	iter          iterator[R]
	live          liveSet

	tracer *telemetry.Tracer
}

// NewSystem builds the driver for impl over the views produced by query.
// Optional hooks are detected on impl.
func NewSystem[R any](name string, query Query[R], impl Updater[R], opts ...SystemOption) *System[R] {
	return newSystem(name, query, impl.Update, impl, opts)
}

// NewSystem1 builds a system over entities holding an A.
func NewSystem1[A any](name string, impl Updater1[A], opts ...SystemOption) *System[Row1[A]] {
	update := func(e Entity, r Row1[A]) error {
		return impl.Update(e, r.A)
	}
	return newSystem(name, Query1[A], update, impl, opts)
}

// NewSystem2 builds a system over entities holding an A and a B.
func NewSystem2[A, B any](name string, impl Updater2[A, B], opts ...SystemOption) *System[Row2[A, B]] {
	update := func(e Entity, r Row2[A, B]) error {
		return impl.Update(e, r.A, r.B)
	}
	return newSystem(name, Query2[A, B], update, impl, opts)
}

// NewSystem3 builds a system over entities holding an A, a B and a C.
func NewSystem3[A, B, C any](name string, impl Updater3[A, B, C], opts ...SystemOption) *System[Row3[A, B, C]] {
	update := func(e Entity, r Row3[A, B, C]) error {
		return impl.Update(e, r.A, r.B, r.C)
	}
	return newSystem(name, Query3[A, B, C], update, impl, opts)
}

func newSystem[R any](name string, query Query[R], update func(Entity, R) error, impl any, opts []SystemOption) *System[R] {
	var config SystemConfig
	for _, opt := range opts {
		opt(&config)
	}

	return &System[R]{
		id:            uuid.New(),
		name:          name,
		query:         query,
		update:        update,
		caps:          Introspect(impl),
		notifications: config.Notifications,
		workers:       config.Workers,
		iter:          newIterator[R](config.Workers),
		tracer:        config.Tracer,
	}
}

func (s *System[R]) Name() string { return s.name }

func (s *System[R]) ID() uuid.UUID { return s.id }

func (s *System[R]) Capabilities() Capabilities { return s.caps }

func (s *System[R]) NotificationsEnabled() bool { return s.notifications }

// SetNotifications toggles bookkeeping at runtime. The history is kept while
// notifications are off, so re-enabling diffs against the last observed set.
func (s *System[R]) SetNotifications(enabled bool) {
	s.notifications = enabled
}

// Parallel returns the configured worker count; 0 or 1 means sequential.
func (s *System[R]) Parallel() int { return s.workers }

// SetParallel switches the iteration mode. It must not be called during Run.
func (s *System[R]) SetParallel(workers int) {
	s.workers = workers
	s.iter = newIterator[R](workers)
}

// Live returns a copy of the matched set remembered from the last run.
func (s *System[R]) Live() []Entity {
	return s.live.snapshot()
}

// Reset forgets the remembered matched set; the next run reports every
// matched entity as added.
func (s *System[R]) Reset() {
	s.live = liveSet{}
}

func (s *System[R]) tracking() bool {
	return s.caps.hasNotify && s.notifications
}

// Run executes one pass of the system against w. The first error from the
// query or from any hook aborts the run and is returned unchanged; the
// remembered matched set is then left as it was. Post runs after the matched
// set is committed, so a failing Post does not roll it back.
func (s *System[R]) Run(w *World) error {
	defer s.tracer.Begin(s.name, PhaseRun)()

	end := s.tracer.Begin(s.name, PhasePre)
	err := s.caps.CallPre()
	end()
	if err != nil {
		return err
	}

	view, err := s.query(w)
	if err != nil {
		return err
	}

	track := s.tracking()

	var visited []Entity
	if track {
		visited = s.live.scratch(view.Len())
	}

	end = s.tracer.Begin(s.name, PhaseIterate)
	visited, err = s.iter.iterate(view, s.update, visited, track)
	end()
	if err != nil {
		return err
	}

	if track {
		if err := s.diffAndNotify(visited); err != nil {
			return err
		}
	}

	end = s.tracer.Begin(s.name, PhasePost)
	err = s.caps.CallPost()
	end()
	return err
}

func (s *System[R]) diffAndNotify(visited []Entity) error {
	end := s.tracer.Begin(s.name, PhaseDiff)
	current, added, removed := s.live.compare(visited)
	end()

	defer s.tracer.Begin(s.name, PhaseNotify)()

	if err := s.caps.CallNotify(Removed, removed); err != nil {
		return err
	}
	if err := s.caps.CallNotify(Added, added); err != nil {
		return err
	}
	s.live.commit(current)

	if len(added) == 0 && len(removed) == 0 {
		return nil
	}
	s.tracer.Logger().Debug("matched set changed",
		"system", s.name,
		"id", s.id.String(),
		"added", len(added),
		"removed", len(removed),
		"live", len(current),
	)
	return nil
}
