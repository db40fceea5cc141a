// Package log builds the zap logger used by the simplescan command.
package log

import (
	"time"

	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a sugared console logger at the given verbosity writing to w.
func New(verbosity string, w zapcore.WriteSyncer) (*zap.SugaredLogger, error) {
	level, err := zapcore.ParseLevel(verbosity)
	if err != nil {
		return nil, err
	}

	config := zap.NewProductionEncoderConfig()
	// Timestamp format (ISO8601) and time zone (UTC)
	config.EncodeTime = func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
		enc.AppendString(t.UTC().Format("2006-01-02T15:04:05Z0700"))
	}
	config.EncodeLevel = zapcore.CapitalLevelEncoder

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(config), w, zap.NewAtomicLevelAt(level))
	return zap.New(core).Sugar(), nil
}

// Level is a zap level usable as a command-line flag.
type Level struct {
	zapcore.Level
}

var _ pflag.Value = (*Level)(nil)

// Type names the flag value type in help output.
func (l *Level) Type() string {
	return "level"
}
