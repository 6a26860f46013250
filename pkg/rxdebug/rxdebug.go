package rxdebug

import (
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/dmitrymomot/rxkit/pkg/logger"
	"github.com/dmitrymomot/rxkit/pkg/rx"
)

// NewLogger builds the trace logger described by cfg, writing to stderr.
// The json format uses the production preset, anything else the
// development one; Level overrides the preset level. A disabled config
// yields a logger that drops everything.
func NewLogger(cfg Config) *slog.Logger {
	return newLogger(cfg, os.Stderr)
}

func newLogger(cfg Config, w io.Writer) *slog.Logger {
	if !cfg.Enabled {
		return slog.New(slog.DiscardHandler)
	}
	preset := logger.WithDevelopment(cfg.Service)
	if format, err := logger.ParseFormat(cfg.Format); err == nil && format == logger.FormatJSON {
		preset = logger.WithProduction(cfg.Service)
	}
	return logger.New(preset, logger.WithLevel(cfg.level()), logger.WithOutput(w))
}

var (
	defaultMu     sync.Mutex
	defaultLogger *slog.Logger
)

// Default returns the logger configured from the environment, building it
// on first use. A config that fails to load disables tracing.
func Default() *slog.Logger {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultLogger == nil {
		cfg, err := LoadConfig()
		if err != nil {
			cfg = Config{}
		}
		defaultLogger = NewLogger(cfg)
	}
	return defaultLogger
}

// SetDefault replaces the logger used by Trace. Passing nil makes the next
// Trace rebuild it from the environment.
func SetDefault(l *slog.Logger) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = l
}

// Trace attaches the Debug operator to src using the environment configured
// logger. With RX_DEBUG unset every record is dropped at the level check.
func Trace[T any](src rx.Source[T], label string) rx.Observable[T] {
	return rx.Debug(src, label, Default())
}
