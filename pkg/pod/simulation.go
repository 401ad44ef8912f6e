package pod

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"
)

var (
	ErrSimulationRunning    = errors.New("simulation is already running")
	ErrSimulationNotRunning = errors.New("simulation is not running")
)

// Simulation calls its tick function at a fixed rate until the context is
// done, the tick limit is reached or a tick fails. A zero tick rate runs
// ticks back to back.
type Simulation struct {
	tickRate  time.Duration
	maxTicks  int
	lastTick  time.Time
	ticks     int
	onTick    func(dt time.Duration) error
	isRunning atomic.Bool

	mu     sync.Mutex
	cancel context.CancelFunc
}

func NewSimulation(tickRate time.Duration) *Simulation {
	return &Simulation{
		tickRate: tickRate,
		onTick:   func(time.Duration) error { return nil },
	}
}

// Start blocks until the simulation ends. It returns nil when ctx is done,
// Stop was called or the tick limit was reached.
func (s *Simulation) Start(ctx context.Context) error {
	if !s.isRunning.CompareAndSwap(false, true) {
		return ErrSimulationRunning
	}
	defer func() {
		s.mu.Lock()
		s.cancel = nil
		s.mu.Unlock()
		s.isRunning.Store(false)
	}()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	s.mu.Lock()
	s.cancel = cancel
	s.mu.Unlock()

	s.ticks = 0
	s.lastTick = time.Time{}

	var tick <-chan time.Time
	if s.tickRate > 0 {
		t := time.NewTicker(s.tickRate)
		defer t.Stop()
		tick = t.C
	}

	for s.maxTicks == 0 || s.ticks < s.maxTicks {
		now := time.Now()
		if tick != nil {
			select {
			case <-ctx.Done():
				return nil
			case now = <-tick:
			}
		} else if ctx.Err() != nil {
			return nil
		}

		if err := s.step(now); err != nil {
			return err
		}
	}
	return nil
}

func (s *Simulation) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.isRunning.Load() || s.cancel == nil {
		return ErrSimulationNotRunning
	}
	s.cancel()
	return nil
}

func (s *Simulation) step(now time.Time) error {
	var d time.Duration
	if !s.lastTick.IsZero() {
		d = now.Sub(s.lastTick)
	}

	s.lastTick = now
	s.ticks++

	return s.onTick(d)
}

// Ticks returns the number of ticks started by the current or last run.
func (s *Simulation) Ticks() int {
	return s.ticks
}

func (s *Simulation) SetTickRate(d time.Duration) {
	s.tickRate = d
}

// SetMaxTicks limits the number of ticks per Start. Zero means no limit.
func (s *Simulation) SetMaxTicks(n int) {
	s.maxTicks = n
}

func (s *Simulation) OnTick(fn func(dt time.Duration) error) {
	s.onTick = fn
}
