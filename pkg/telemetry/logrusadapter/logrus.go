// Package logrusadapter exposes logrus as a telemetry.Logger.
package logrusadapter

import (
	"fmt"

	"github.com/QYUbit/ecsys/pkg/telemetry"
	"github.com/sirupsen/logrus"
)

var _ telemetry.Logger = (*Adapter)(nil)

const badKey = "!BADKEY"

type Adapter struct {
	entry *logrus.Entry
}

func New(logger *logrus.Logger) *Adapter {
	return &Adapter{entry: logrus.NewEntry(logger)}
}

// NewEntry wraps an entry that already carries fields, e.g.
// logrus.WithField("component", "scheduler").
func NewEntry(entry *logrus.Entry) *Adapter {
	return &Adapter{entry: entry}
}

func (a *Adapter) Info(msg string, keysAndValues ...any) {
	a.entry.WithFields(fields(keysAndValues)).Info(msg)
}

func (a *Adapter) Error(msg string, keysAndValues ...any) {
	a.entry.WithFields(fields(keysAndValues)).Error(msg)
}

func (a *Adapter) Debug(msg string, keysAndValues ...any) {
	a.entry.WithFields(fields(keysAndValues)).Debug(msg)
}

func (a *Adapter) Trace(msg string, keysAndValues ...any) {
	a.entry.WithFields(fields(keysAndValues)).Trace(msg)
}

func (a *Adapter) Warn(msg string, keysAndValues ...any) {
	a.entry.WithFields(fields(keysAndValues)).Warn(msg)
}

// fields pairs up keysAndValues the way slog does: a non-string key or a
// trailing value without key is stored under !BADKEY.
func fields(keysAndValues []any) logrus.Fields {
	f := make(logrus.Fields, len(keysAndValues)/2+1)
	for i := 0; i < len(keysAndValues); {
		key, ok := keysAndValues[i].(string)
		if !ok || i+1 == len(keysAndValues) {
			f[badKey] = keysAndValues[i]
			i++
			continue
		}
		value := keysAndValues[i+1]
		if err, isErr := value.(error); isErr {
			value = fmt.Sprint(err)
		}
		f[key] = value
		i += 2
	}
	return f
}
