// Package config reads runtime settings from .env files and the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/QYUbit/ecsys/pkg/telemetry"
	"github.com/joho/godotenv"
)

const (
	EnvLogLevel        = "ECS_LOG_LEVEL"
	EnvLogFormat       = "ECS_LOG_FORMAT"
	EnvProfiling       = "ECS_PROFILING"
	EnvParallelWorkers = "ECS_PARALLEL_WORKERS"
	EnvTicks           = "ECS_TICKS"
	EnvTickInterval    = "ECS_TICK_INTERVAL"
	EnvMetricsAddr     = "ECS_METRICS_ADDR"
	EnvCPUProfile      = "ECS_CPU_PROFILE"
)

type Config struct {
	LogLevel  telemetry.Level
	LogFormat string // "text", "json" or "slog"
	Profiling bool

	// ParallelWorkers <= 1 keeps systems sequential.
	ParallelWorkers int
	Ticks           int // 0 runs until interrupted
	TickInterval    time.Duration

	MetricsAddr string // empty disables the /metrics endpoint
	CPUProfile  string // directory for the CPU profile, empty disables it
}

func Default() Config {
	return Config{
		LogLevel:  telemetry.LevelInfo,
		LogFormat: "text",
		Ticks:     3,
	}
}

// Load reads files (".env" when none are given) and then the process
// environment, which wins over file values. Missing files are skipped.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}

	fromFiles := make(map[string]string)
	for _, file := range files {
		values, err := godotenv.Read(file)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return Config{}, fmt.Errorf("read %s: %w", file, err)
		}
		for k, v := range values {
			fromFiles[k] = v
		}
	}

	return FromEnv(func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := fromFiles[key]
		return v, ok
	})
}

// FromEnv builds a Config from lookup, starting at Default.
func FromEnv(lookup func(string) (string, bool)) (Config, error) {
	c := Default()
	var err error

	if v, ok := lookup(EnvLogLevel); ok {
		if c.LogLevel, err = telemetry.ParseLevel(v); err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvLogLevel, err)
		}
	}
	if v, ok := lookup(EnvLogFormat); ok {
		switch v {
		case "text", "json", "slog":
			c.LogFormat = v
		default:
			return Config{}, fmt.Errorf("%s: unknown format %q", EnvLogFormat, v)
		}
	}
	if v, ok := lookup(EnvProfiling); ok {
		if c.Profiling, err = strconv.ParseBool(v); err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvProfiling, err)
		}
	}
	if v, ok := lookup(EnvParallelWorkers); ok {
		if c.ParallelWorkers, err = nonNegative(v); err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvParallelWorkers, err)
		}
	}
	if v, ok := lookup(EnvTicks); ok {
		if c.Ticks, err = nonNegative(v); err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvTicks, err)
		}
	}
	if v, ok := lookup(EnvTickInterval); ok {
		if c.TickInterval, err = time.ParseDuration(v); err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvTickInterval, err)
		}
		if c.TickInterval < 0 {
			return Config{}, fmt.Errorf("%s: negative interval %s", EnvTickInterval, v)
		}
	}
	if v, ok := lookup(EnvMetricsAddr); ok {
		c.MetricsAddr = v
	}
	if v, ok := lookup(EnvCPUProfile); ok {
		c.CPUProfile = v
	}
	return c, nil
}

func nonNegative(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, fmt.Errorf("negative value %d", n)
	}
	return n, nil
}
