package telemetry

import "time"

// Tracer emits ENTER/EXIT trace events around run phases and, when Profiling
// is on, times them. A nil *Tracer is valid and does nothing.
type Tracer struct {
	Log       Logger
	Profiler  Profiler
	Profiling bool
}

func NewTracer(log Logger, profiler Profiler, profiling bool) *Tracer {
	return &Tracer{
		Log:       log,
		Profiler:  profiler,
		Profiling: profiling,
	}
}

func nopEnd() {}

// Logger returns the tracer's logger, or Nop.
func (t *Tracer) Logger() Logger {
	if t == nil || t.Log == nil {
		return Nop
	}
	return t.Log
}

// Begin marks the start of phase in system and returns the function that
// marks its end.
func (t *Tracer) Begin(system, phase string) func() {
	if t == nil {
		return nopEnd
	}

	log := t.Logger()
	log.Trace("ENTER", "system", system, "phase", phase)

	if !t.Profiling {
		return func() {
			log.Trace("EXIT", "system", system, "phase", phase)
		}
	}

	start := time.Now()
	return func() {
		d := time.Since(start)
		if t.Profiler != nil {
			t.Profiler.Observe(system, phase, d)
		}
		log.Info("PROFILING", "system", system, "phase", phase, "ms", float64(d.Nanoseconds())/1e6)
		log.Trace("EXIT", "system", system, "phase", phase)
	}
}
