// Package log is a thin wrapper around zap. Packages log through the default
// logger or a named child of it; the process configures it once at startup.
package log

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"moul.io/zapfilter"
)

type (
	Field = zap.Field
	Level = zapcore.Level
)

const (
	DebugLevel = zapcore.DebugLevel
	InfoLevel  = zapcore.InfoLevel
	WarnLevel  = zapcore.WarnLevel
	ErrorLevel = zapcore.ErrorLevel
)

// Config selects level, encoding and optional filter rules.
type Config struct {
	Level  string    // zap level name, default "info"
	Format string    // "text" or "json"
	Filter string    // zapfilter rules, e.g. "debug:pipeline info:*"
	Output io.Writer // default os.Stderr
}

type Logger struct {
	l *zap.Logger
}

// New builds a logger from cfg. With Filter set the level only caps the
// default rule; the filter rules decide per logger name.
func New(cfg Config) (*Logger, error) {
	lvl := InfoLevel
	if cfg.Level != "" {
		if err := lvl.UnmarshalText([]byte(cfg.Level)); err != nil {
			return nil, fmt.Errorf("log: invalid level %q: %w", cfg.Level, err)
		}
	}
	var enc zapcore.Encoder
	switch strings.ToLower(cfg.Format) {
	case "", "text":
		ec := zap.NewDevelopmentEncoderConfig()
		ec.EncodeTime = zapcore.RFC3339NanoTimeEncoder
		enc = zapcore.NewConsoleEncoder(ec)
	case "json":
		enc = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	default:
		return nil, fmt.Errorf("log: unknown format %q", cfg.Format)
	}
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}

	var core zapcore.Core
	if cfg.Filter == "" {
		core = zapcore.NewCore(enc, zapcore.AddSync(out), lvl)
	} else {
		rules, err := zapfilter.ParseRules(cfg.Filter)
		if err != nil {
			return nil, fmt.Errorf("log: invalid filter %q: %w", cfg.Filter, err)
		}
		core = zapfilter.NewFilteringCore(
			zapcore.NewCore(enc, zapcore.AddSync(out), DebugLevel), rules)
	}
	return &Logger{l: zap.New(core)}, nil
}

func (l *Logger) Debug(msg string, fields ...Field) { l.l.Debug(msg, fields...) }
func (l *Logger) Info(msg string, fields ...Field)  { l.l.Info(msg, fields...) }
func (l *Logger) Warn(msg string, fields ...Field)  { l.l.Warn(msg, fields...) }
func (l *Logger) Error(msg string, fields ...Field) { l.l.Error(msg, fields...) }

// Enabled reports whether messages at lvl would be written.
func (l *Logger) Enabled(lvl Level) bool { return l.l.Core().Enabled(lvl) }

func (l *Logger) Named(name string) *Logger { return &Logger{l: l.l.Named(name)} }

func (l *Logger) With(fields ...Field) *Logger { return &Logger{l: l.l.With(fields...)} }

func (l *Logger) Sync() error { return l.l.Sync() }

// Zap exposes the underlying logger for libraries that take one.
func (l *Logger) Zap() *zap.Logger { return l.l }

var (
	mu  sync.RWMutex
	std = &Logger{l: zap.NewNop()}
)

func init() {
	if l, err := New(Config{}); err == nil {
		std = l
	}
}

// Default returns the process wide logger.
func Default() *Logger {
	mu.RLock()
	defer mu.RUnlock()
	return std
}

// ResetDefault replaces the process wide logger. Loggers already derived
// with Named or With keep writing to the old one.
func ResetDefault(l *Logger) {
	mu.Lock()
	std = l
	mu.Unlock()
}

func Debug(msg string, fields ...Field) { Default().l.Debug(msg, fields...) }
func Info(msg string, fields ...Field)  { Default().l.Info(msg, fields...) }
func Warn(msg string, fields ...Field)  { Default().l.Warn(msg, fields...) }
func Error(msg string, fields ...Field) { Default().l.Error(msg, fields...) }

func Sync() error { return Default().Sync() }
