package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// Format is the output encoding of a logger.
type Format string

const (
	FormatJSON Format = "json"
	FormatText Format = "text"
)

// ParseFormat validates a format name coming from configuration.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatJSON, FormatText:
		return f, nil
	default:
		return "", fmt.Errorf("invalid log format %q: must be %q or %q", s, FormatJSON, FormatText)
	}
}

// Option configures New.
type Option func(*options)

type options struct {
	level  slog.Leveler
	format Format
	output io.Writer
	attrs  []slog.Attr
}

func WithLevel(l slog.Leveler) Option {
	return func(o *options) {
		if l != nil {
			o.level = l
		}
	}
}

// WithOutput sets the destination. Nil writers are ignored.
func WithOutput(w io.Writer) Option {
	return func(o *options) {
		if w != nil {
			o.output = w
		}
	}
}

// WithDevelopment selects readable debug output tagged with service.
func WithDevelopment(service string) Option {
	return func(o *options) {
		o.level = slog.LevelDebug
		o.format = FormatText
		o.attrs = appendService(o.attrs, service)
	}
}

// WithProduction selects JSON output at info level tagged with service.
func WithProduction(service string) Option {
	return func(o *options) {
		o.level = slog.LevelInfo
		o.format = FormatJSON
		o.attrs = appendService(o.attrs, service)
	}
}

func appendService(attrs []slog.Attr, service string) []slog.Attr {
	if service == "" {
		return attrs
	}
	return append(attrs, slog.String("service", service))
}

// New creates a logger. Without options it writes JSON at info level to
// stdout. Options apply in order, so WithLevel after WithDevelopment wins.
func New(opts ...Option) *slog.Logger {
	o := &options{
		level:  slog.LevelInfo,
		format: FormatJSON,
		output: os.Stdout,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}

	handlerOpts := &slog.HandlerOptions{Level: o.level}

	var handler slog.Handler
	switch o.format {
	case FormatText:
		handler = slog.NewTextHandler(o.output, handlerOpts)
	default:
		handler = slog.NewJSONHandler(o.output, handlerOpts)
	}
	if len(o.attrs) > 0 {
		handler = handler.WithAttrs(o.attrs)
	}
	return slog.New(handler)
}
