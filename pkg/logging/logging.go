// Package logging wraps zap so the renderer logs structured fields the
// way the gopher3D example's internal logger package does
// (logger.Log.Info("msg", zap.String(...), zap.Error(err))) instead of
// reaching for fmt.Printf.
package logging

import (
	"go.uber.org/zap"

	"github.com/arcweave/pathtracer/pkg/core"
)

// Logger wraps a *zap.Logger and additionally satisfies core.Logger's
// Printf contract for call sites that just want a formatted line.
type Logger struct {
	zap *zap.Logger
}

// New builds a production zap logger (JSON encoding, info level and
// above). Falls back to a no-op logger if zap fails to construct one.
func New() *Logger {
	z, err := zap.NewProduction()
	if err != nil {
		z = zap.NewNop()
	}
	return &Logger{zap: z}
}

// NewDevelopment builds a human-readable console logger writing to
// stderr, useful for a CLI's progress output.
func NewDevelopment() *Logger {
	z, err := zap.NewDevelopment()
	if err != nil {
		z = zap.NewNop()
	}
	return &Logger{zap: z}
}

var _ core.Logger = (*Logger)(nil)

// Printf implements core.Logger for callers that only want a formatted
// message, routed through zap's Sugar at info level.
func (l *Logger) Printf(format string, args ...interface{}) {
	l.zap.Sugar().Infof(format, args...)
}

// Info logs a structured message at info level.
func (l *Logger) Info(msg string, fields ...zap.Field) {
	l.zap.Info(msg, fields...)
}

// Warn logs a structured message at warn level.
func (l *Logger) Warn(msg string, fields ...zap.Field) {
	l.zap.Warn(msg, fields...)
}

// Error logs a structured message at error level.
func (l *Logger) Error(msg string, fields ...zap.Field) {
	l.zap.Error(msg, fields...)
}

// Sync flushes any buffered log entries; callers should defer it after
// constructing a Logger.
func (l *Logger) Sync() error {
	return l.zap.Sync()
}
