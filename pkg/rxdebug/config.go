package rxdebug

import (
	"log/slog"
	"strings"

	"github.com/dmitrymomot/rxkit/pkg/config"
)

// Config controls stream tracing. All fields come from the environment.
type Config struct {
	Enabled bool   `env:"RX_DEBUG" envDefault:"false"`
	Format  string `env:"RX_DEBUG_FORMAT" envDefault:"text"`
	Level   string `env:"RX_DEBUG_LEVEL" envDefault:"info"`
	Service string `env:"RX_DEBUG_SERVICE" envDefault:"rxkit"`
}

// LoadConfig reads Config through the cached config loader.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// level maps the configured name to a slog level. Unknown names mean info.
func (c Config) level() slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.ToUpper(strings.TrimSpace(c.Level)))); err != nil {
		return slog.LevelInfo
	}
	return l
}
