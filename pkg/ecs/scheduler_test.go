package ecs

import (
	"errors"
	"testing"

	"github.com/QYUbit/ecsys/pkg/telemetry"
	"github.com/QYUbit/ecsys/pkg/telemetry/mock_telemetry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type stubRunner struct {
	name  string
	err   error
	trace *[]string
	run   func(w *World)
}

func (s *stubRunner) Name() string { return s.name }

func (s *stubRunner) Run(w *World) error {
	*s.trace = append(*s.trace, s.name)
	if s.run != nil {
		s.run(w)
	}
	return s.err
}

// TestSchedulerOrder tests that systems run in registration order
func TestSchedulerOrder(t *testing.T) {
	var trace []string
	s := NewScheduler()
	s.AddSystem(&stubRunner{name: "a", trace: &trace}, OnUpdate)
	s.AddSystem(&stubRunner{name: "init", trace: &trace}, OnStartup)
	s.AddSystem(&stubRunner{name: "b", trace: &trace}, OnUpdate)

	w := NewWorld()
	require.NoError(t, s.RunInit(w))
	require.NoError(t, s.Tick(w))
	require.NoError(t, s.Tick(w))

	assert.Equal(t, []string{"init", "a", "b", "a", "b"}, trace)
	assert.Equal(t, []string{"a", "b"}, s.Systems())
	assert.EqualValues(t, 2, s.Ticks())
}

func TestSchedulerFlushesAfterTick(t *testing.T) {
	var trace []string
	var created Entity
	s := NewScheduler()
	s.AddSystem(&stubRunner{name: "spawn", trace: &trace, run: func(w *World) {
		created = w.Commands().CreateEntity()
	}}, OnUpdate)

	w := NewWorld()
	require.NoError(t, s.Tick(w))
	assert.True(t, w.Alive(created))
}

func TestSchedulerAbortTick(t *testing.T) {
	var trace []string
	boom := errors.New("boom")
	s := NewScheduler(WithErrorPolicy(AbortTick))
	s.AddSystem(&stubRunner{name: "spawn", trace: &trace, run: func(w *World) {
		w.Commands().CreateEntity()
	}}, OnUpdate)
	s.AddSystem(&stubRunner{name: "fail", trace: &trace, err: boom}, OnUpdate)
	s.AddSystem(&stubRunner{name: "never", trace: &trace}, OnUpdate)

	w := NewWorld()
	err := s.Tick(w)
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "run system fail")
	assert.Equal(t, []string{"spawn", "fail"}, trace)
	assert.Zero(t, w.Len(), "commands of an aborted tick are dropped")
	assert.Zero(t, w.Commands().Len())
	assert.Zero(t, s.Ticks())
}

func TestSchedulerContinueTick(t *testing.T) {
	var trace []string
	boom := errors.New("boom")
	bang := errors.New("bang")
	s := NewScheduler(WithErrorPolicy(ContinueTick))
	s.AddSystem(&stubRunner{name: "first", trace: &trace, err: boom}, OnUpdate)
	s.AddSystem(&stubRunner{name: "spawn", trace: &trace, run: func(w *World) {
		w.Commands().CreateEntity()
	}}, OnUpdate)
	s.AddSystem(&stubRunner{name: "last", trace: &trace, err: bang}, OnUpdate)

	w := NewWorld()
	err := s.Tick(w)
	assert.ErrorIs(t, err, boom)
	assert.ErrorIs(t, err, bang)
	assert.Equal(t, []string{"first", "spawn", "last"}, trace)
	assert.Equal(t, 1, w.Len())
	assert.Zero(t, s.Ticks())
}

func TestSchedulerInitFailure(t *testing.T) {
	var trace []string
	boom := errors.New("boom")
	s := NewScheduler()
	s.AddSystem(&stubRunner{name: "setup", trace: &trace, err: boom, run: func(w *World) {
		w.Commands().CreateEntity()
	}}, OnStartup)

	w := NewWorld()
	err := s.RunInit(w)
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "init system setup")
	assert.Zero(t, w.Len())
}

func TestSchedulerRunsSystems(t *testing.T) {
	w, es := newMovers(t, 2)
	r := &recorder{}
	s := NewScheduler()
	s.AddSystem(NewSystem2[TestPosition, TestVelocity]("rec", r, WithNotifications(true)), OnUpdate)

	require.NoError(t, s.Tick(w))
	w.Commands().DestroyEntity(es[0])
	require.NoError(t, w.Flush())
	require.NoError(t, s.Tick(w))

	assert.Equal(t, [][]Entity{es, nil}, r.added)
	assert.Equal(t, [][]Entity{nil, {es[0]}}, r.removed)
}

func TestSystemTracing(t *testing.T) {
	ctrl := gomock.NewController(t)
	prof := mock_telemetry.NewMockProfiler(ctrl)

	gomock.InOrder(
		prof.EXPECT().Observe("rec", PhasePre, gomock.Any()),
		prof.EXPECT().Observe("rec", PhaseIterate, gomock.Any()),
		prof.EXPECT().Observe("rec", PhaseDiff, gomock.Any()),
		prof.EXPECT().Observe("rec", PhaseNotify, gomock.Any()),
		prof.EXPECT().Observe("rec", PhasePost, gomock.Any()),
		prof.EXPECT().Observe("rec", PhaseRun, gomock.Any()),
		prof.EXPECT().Observe("scheduler", PhaseFlush, gomock.Any()),
		prof.EXPECT().Observe("scheduler", PhaseTick, gomock.Any()),
	)

	tracer := telemetry.NewTracer(telemetry.Nop, prof, true)
	w, _ := newMovers(t, 2)
	s := NewScheduler(WithSchedulerTracer(tracer))
	s.AddSystem(NewSystem2[TestPosition, TestVelocity]("rec", &recorder{}, WithNotifications(true), WithTracer(tracer)), OnUpdate)

	require.NoError(t, s.Tick(w))
}

func TestSchedulerLogsFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mock_telemetry.NewMockLogger(ctrl)
	log.EXPECT().Trace(gomock.Any(), gomock.Any()).AnyTimes()
	log.EXPECT().Debug(gomock.Any(), gomock.Any()).AnyTimes()
	log.EXPECT().Error("system failed", "tick", gomock.Any(), "system", "fail", "error", gomock.Any())

	var trace []string
	s := NewScheduler(WithSchedulerTracer(telemetry.NewTracer(log, nil, false)))
	s.AddSystem(&stubRunner{name: "fail", trace: &trace, err: errors.New("boom")}, OnUpdate)

	assert.Error(t, s.Tick(NewWorld()))
}

func TestFailedRunIsProfiled(t *testing.T) {
	ctrl := gomock.NewController(t)
	prof := mock_telemetry.NewMockProfiler(ctrl)

	gomock.InOrder(
		prof.EXPECT().Observe("rec", PhasePre, gomock.Any()),
		prof.EXPECT().Observe("rec", telemetry.PhaseRun, gomock.Any()),
	)

	tracer := telemetry.NewTracer(telemetry.Nop, prof, true)
	w, _ := newMovers(t, 1)
	sys := NewSystem2[TestPosition, TestVelocity]("rec", &recorder{failPre: errors.New("boom")}, WithTracer(tracer))

	assert.Error(t, sys.Run(w))
}
