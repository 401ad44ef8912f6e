package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/QYUbit/ecsys/pkg/config"
	"github.com/QYUbit/ecsys/pkg/ecs"
	"github.com/QYUbit/ecsys/pkg/telemetry"
	"github.com/QYUbit/ecsys/pkg/telemetry/logrusadapter"
	"github.com/QYUbit/ecsys/pkg/telemetry/slogadapter"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDemoTicks(t *testing.T) {
	for _, workers := range []int{0, 4} {
		t.Run(map[int]string{0: "sequential", 4: "parallel"}[workers], func(t *testing.T) {
			cfg := config.Default()
			cfg.ParallelWorkers = workers

			logger, hook := test.NewNullLogger()
			tracer := telemetry.NewTracer(logrusadapter.New(logger), nil, false)
			d := newDemo(cfg, tracer)

			require.NoError(t, d.scheduler.RunInit(d.world))
			require.Equal(t, 5, d.world.Len())

			require.NoError(t, d.scheduler.Tick(d.world))
			assert.Equal(t, []ecs.Entity{1, 2, 3}, d.tracker.added)
			assert.Empty(t, d.tracker.removed)
			assert.Equal(t, 3, d.tracker.moved)

			// Velocity moved from e1 to e4 after the first tick; e5 expires
			// at the end of the second.
			require.NoError(t, d.scheduler.Tick(d.world))
			assert.Equal(t, []ecs.Entity{1, 2, 3, 4}, d.tracker.added)
			assert.Equal(t, []ecs.Entity{1}, d.tracker.removed)
			assert.Equal(t, 4, d.world.Len())
			assert.False(t, d.world.Alive(5))

			require.NoError(t, d.scheduler.Tick(d.world))
			assert.Equal(t, []ecs.Entity{1, 2, 3, 4}, d.tracker.added)
			assert.Equal(t, []ecs.Entity{1}, d.tracker.removed)
			assert.Equal(t, 3, d.tracker.runs)
			assert.EqualValues(t, 3, d.scheduler.Ticks())

			pos, ok := ecs.Get[Position](d.world, 2)
			require.True(t, ok)
			assert.Equal(t, Position{X: 10, Y: 16}, *pos)

			assert.NotEmpty(t, hook.AllEntries())
		})
	}
}

func TestRun(t *testing.T) {
	cfg := config.Default()
	cfg.Ticks = 2

	logger, hook := test.NewNullLogger()
	tracer := telemetry.NewTracer(logrusadapter.New(logger), nil, false)

	require.NoError(t, run(context.Background(), cfg, tracer))
	assert.Equal(t, "pod stopped", hook.LastEntry().Message)
	assert.Equal(t, uint64(2), hook.LastEntry().Data["ticks"])
}

func TestWrap(t *testing.T) {
	assert.Equal(t, 1.0, wrap(101))
	assert.Equal(t, 99.0, wrap(-1))
	assert.Equal(t, 0.0, wrap(100))
}

func TestNewLogger(t *testing.T) {
	cfg := config.Default()

	var buf bytes.Buffer
	cfg.LogFormat = "slog"
	log := newLogger(cfg, &buf)
	assert.IsType(t, &slogadapter.Adapter{}, log)
	log.Info("world ready")
	assert.Contains(t, buf.String(), "msg=\"world ready\" app=ecsdemo")

	buf.Reset()
	cfg.LogFormat = "json"
	log = newLogger(cfg, &buf)
	assert.IsType(t, &logrusadapter.Adapter{}, log)
	log.Info("world ready")
	assert.Contains(t, buf.String(), `"app":"ecsdemo"`)
}

func TestRealMainFailureExitCode(t *testing.T) {
	t.Setenv(config.EnvLogLevel, "off")
	t.Setenv(config.EnvTicks, "1")
	t.Setenv(config.EnvLogFormat, "yaml")

	assert.Equal(t, 2, realMain())
}
