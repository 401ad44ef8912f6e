//go:generate mockgen -destination=mock_telemetry/mock_telemetry.go -package=mock_telemetry github.com/QYUbit/ecsys/pkg/telemetry Logger,Profiler

// Package telemetry is the diagnostic sink of the ECS runtime: structured
// logging, ENTER/EXIT tracing of run phases and optional profiling timers.
// Nothing in it feeds back into control flow.
package telemetry

// Logger is the structured logging interface consumed by the runtime.
// keyValues alternate between string keys and arbitrary values.
type Logger interface {
	Info(s string, keyValues ...any)
	Error(s string, keyValues ...any)
	Debug(s string, keyValues ...any)
	Warn(s string, keyValues ...any)
	// Trace carries per-phase events that are too chatty for Debug.
	Trace(s string, keyValues ...any)
}

type nop struct{}

func (nop) Info(string, ...any)  {}
func (nop) Error(string, ...any) {}
func (nop) Debug(string, ...any) {}
func (nop) Warn(string, ...any)  {}
func (nop) Trace(string, ...any) {}

// Nop discards everything.
var Nop Logger = nop{}
