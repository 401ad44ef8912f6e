// Package slogadapter exposes a *slog.Logger as a telemetry.Logger.
package slogadapter

import (
	"context"
	"io"
	"log/slog"
	"math"

	"github.com/QYUbit/ecsys/pkg/telemetry"
)

var _ telemetry.Logger = (*Adapter)(nil)

// LevelTrace sits below slog.LevelDebug.
const LevelTrace = slog.LevelDebug - 4

// Level maps a telemetry level onto slog. LevelOff maps above every level
// slog emits.
func Level(l telemetry.Level) slog.Level {
	switch l {
	case telemetry.LevelTrace:
		return LevelTrace
	case telemetry.LevelDebug:
		return slog.LevelDebug
	case telemetry.LevelWarn:
		return slog.LevelWarn
	case telemetry.LevelError:
		return slog.LevelError
	case telemetry.LevelOff:
		return slog.Level(math.MaxInt)
	default:
		return slog.LevelInfo
	}
}

// NewText builds an adapter over a slog text handler writing to out.
func NewText(level telemetry.Level, out io.Writer) *Adapter {
	h := slog.NewTextHandler(out, &slog.HandlerOptions{
		Level: Level(level),
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.LevelKey && a.Value.Any() == LevelTrace {
				a.Value = slog.StringValue("TRACE")
			}
			return a
		},
	})
	return New(slog.New(h))
}

type Adapter struct {
	logger *slog.Logger
}

// New wraps logger; a nil logger means slog.Default().
func New(logger *slog.Logger) *Adapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Adapter{logger: logger}
}

// With returns an adapter that adds keysAndValues to every record.
func (a *Adapter) With(keysAndValues ...any) *Adapter {
	return &Adapter{logger: a.logger.With(keysAndValues...)}
}

func (a *Adapter) Info(msg string, keysAndValues ...any) {
	a.logger.Info(msg, keysAndValues...)
}

func (a *Adapter) Error(msg string, keysAndValues ...any) {
	a.logger.Error(msg, keysAndValues...)
}

func (a *Adapter) Debug(msg string, keysAndValues ...any) {
	a.logger.Debug(msg, keysAndValues...)
}

func (a *Adapter) Trace(msg string, keysAndValues ...any) {
	a.logger.Log(context.Background(), LevelTrace, msg, keysAndValues...)
}

func (a *Adapter) Warn(msg string, keysAndValues ...any) {
	a.logger.Warn(msg, keysAndValues...)
}
