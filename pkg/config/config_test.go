package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/QYUbit/ecsys/pkg/telemetry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lookupMap(m map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := m[key]
		return v, ok
	}
}

func TestFromEnvDefaults(t *testing.T) {
	c, err := FromEnv(lookupMap(nil))
	require.NoError(t, err)
	assert.Equal(t, Default(), c)
	assert.Equal(t, telemetry.LevelInfo, c.LogLevel)
	assert.Equal(t, 3, c.Ticks)
}

func TestFromEnvValues(t *testing.T) {
	c, err := FromEnv(lookupMap(map[string]string{
		EnvLogLevel:        "debug",
		EnvLogFormat:       "json",
		EnvProfiling:       "true",
		EnvParallelWorkers: "4",
		EnvTicks:           "10",
		EnvTickInterval:    "50ms",
		EnvMetricsAddr:     ":9090",
		EnvCPUProfile:      "/tmp/prof",
	}))
	require.NoError(t, err)

	assert.Equal(t, Config{
		LogLevel:        telemetry.LevelDebug,
		LogFormat:       "json",
		Profiling:       true,
		ParallelWorkers: 4,
		Ticks:           10,
		TickInterval:    50 * time.Millisecond,
		MetricsAddr:     ":9090",
		CPUProfile:      "/tmp/prof",
	}, c)
}

func TestFromEnvSlogFormat(t *testing.T) {
	c, err := FromEnv(lookupMap(map[string]string{EnvLogFormat: "slog"}))
	require.NoError(t, err)
	assert.Equal(t, "slog", c.LogFormat)
}

func TestFromEnvInvalid(t *testing.T) {
	cases := []struct {
		name  string
		key   string
		value string
	}{
		{"level", EnvLogLevel, "loud"},
		{"format", EnvLogFormat, "xml"},
		{"profiling", EnvProfiling, "maybe"},
		{"workers", EnvParallelWorkers, "-1"},
		{"ticks", EnvTicks, "many"},
		{"interval", EnvTickInterval, "soon"},
		{"negative interval", EnvTickInterval, "-1s"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := FromEnv(lookupMap(map[string]string{tc.key: tc.value}))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.key)
		})
	}
}

func TestLoadFileAndEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("ECS_TICKS=7\nECS_LOG_FORMAT=json\n"), 0o644))

	t.Setenv(EnvLogFormat, "text")

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 7, c.Ticks)
	assert.Equal(t, "text", c.LogFormat)
}

func TestLoadMissingFile(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "absent.env"))
	require.NoError(t, err)
	assert.Equal(t, 3, c.Ticks)
}
