// SPDX-License-Identifier: Apache-2.0

package zerolog

import (
	"os"
	"time"

	"github.com/rs/zerolog"

	loglib "github.com/cassink/cassink/pkg/log"
)

type Config struct {
	LogLevel string
}

// NewLogger creates a console logger writing to stderr at the configured
// level, with timestamps and caller information.
func NewLogger(config *Config) *zerolog.Logger {
	// ignore the error, it defaults to no level
	level, _ := zerolog.ParseLevel(config.LogLevel)
	out := zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) {
		w.Out = os.Stderr
		w.TimeFormat = time.RFC3339Nano
	})

	logger := zerolog.New(out).
		With().
		Timestamp().
		Caller().
		Logger().
		Level(level)

	return &logger
}

// Logger adapts a zerolog logger to the sink's Logger interface.
type Logger struct {
	zerologger *zerolog.Logger
	fields     loglib.Fields
}

func NewStdLogger(zl *zerolog.Logger) *Logger {
	return &Logger{
		zerologger: zl,
	}
}

func (l *Logger) Debug(msg string, fields ...loglib.Fields) {
	withFields(l.zerologger.Debug(), append(fields, l.fields)...).Msg(msg)
}

func (l *Logger) Info(msg string, fields ...loglib.Fields) {
	withFields(l.zerologger.Info(), append(fields, l.fields)...).Msg(msg)
}

func (l *Logger) Warn(err error, msg string, fields ...loglib.Fields) {
	withFields(l.zerologger.Warn().Err(err), append(fields, l.fields)...).Msg(msg)
}

func (l *Logger) Error(err error, msg string, fields ...loglib.Fields) {
	withFields(l.zerologger.Error().Err(err), append(fields, l.fields)...).Msg(msg)
}

func (l *Logger) WithFields(fields loglib.Fields) loglib.Logger {
	return &Logger{
		zerologger: l.zerologger,
		fields:     loglib.MergeFields(l.fields, fields),
	}
}

func withFields(event *zerolog.Event, fieldMaps ...loglib.Fields) *zerolog.Event {
	for _, m := range fieldMaps {
		for key, value := range m {
			switch v := value.(type) {
			case string:
				event = event.Str(key, v)
			case int:
				event = event.Int(key, v)
			case []string:
				event = event.Strs(key, v)
			default:
				event = event.Any(key, v)
			}
		}
	}
	return event
}
