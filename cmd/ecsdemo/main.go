// Command ecsdemo runs a small simulation on the ecs runtime and logs how the
// matched set of a tracking system changes from tick to tick.
package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/QYUbit/ecsys/pkg/config"
	"github.com/QYUbit/ecsys/pkg/pod"
	"github.com/QYUbit/ecsys/pkg/telemetry"
	"github.com/QYUbit/ecsys/pkg/telemetry/logrusadapter"
	"github.com/QYUbit/ecsys/pkg/telemetry/slogadapter"
	"github.com/pkg/profile"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

var envFile = flag.String("env", ".env", "dotenv file to read before the environment")

func main() {
	flag.Parse()
	os.Exit(realMain())
}

// realMain returns the exit code so that its defers run before os.Exit.
func realMain() int {
	cfg, err := config.Load(*envFile)
	if err != nil {
		logrus.WithError(err).Error("load config")
		return 2
	}

	log := newLogger(cfg, os.Stderr)

	if cfg.CPUProfile != "" {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(cfg.CPUProfile), profile.Quiet).Stop()
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	profiler, err := telemetry.NewPromProfiler(reg)
	if err != nil {
		log.Error("register metrics", "error", err)
		return 1
	}

	if cfg.MetricsAddr != "" {
		srv := &http.Server{
			Addr:              cfg.MetricsAddr,
			Handler:           promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
			ReadHeaderTimeout: 5 * time.Second,
		}
		go func() {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Error("metrics server stopped", "error", err)
			}
		}()
		defer srv.Close()
		log.Info("serving metrics", "addr", cfg.MetricsAddr)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	tracer := telemetry.NewTracer(log, profiler, cfg.Profiling)
	if err := run(ctx, cfg, tracer); err != nil {
		log.Error("demo failed", "error", err)
		return 1
	}
	return 0
}

// newLogger picks the logging backend for cfg.LogFormat: slog for "slog",
// logrus otherwise.
func newLogger(cfg config.Config, out io.Writer) telemetry.Logger {
	if cfg.LogFormat == "slog" {
		return slogadapter.NewText(cfg.LogLevel, out).With("app", "ecsdemo")
	}
	logger := telemetry.NewLogrus(cfg.LogLevel, cfg.LogFormat, out)
	return logrusadapter.NewEntry(logger.WithField("app", "ecsdemo"))
}

func run(ctx context.Context, cfg config.Config, tracer *telemetry.Tracer) error {
	d := newDemo(cfg, tracer)
	p := pod.NewPod(pod.Options{
		World:     d.world,
		Scheduler: d.scheduler,
		TickRate:  cfg.TickInterval,
		MaxTicks:  cfg.Ticks,
		Logger:    tracer.Logger(),
	})
	return p.Start(ctx)
}
