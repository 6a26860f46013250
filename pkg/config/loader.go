package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// registry keeps one parsed copy per configuration type.
type registry struct {
	mu     sync.Mutex
	values map[reflect.Type]any
}

var (
	loaded = &registry{values: make(map[reflect.Type]any)}

	defaultEnvOnce sync.Once
)

// Load parses environment variables into v and caches the result per type,
// so later calls for the same type return the first successful parse.
// The default .env file in the working directory is read once, if present.
//
// Example:
//
//	type DebugConfig struct {
//		Enabled bool   `env:"RX_DEBUG" envDefault:"false"`
//		Format  string `env:"RX_DEBUG_FORMAT" envDefault:"text"`
//	}
//
//	var cfg DebugConfig
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}
	defaultEnvOnce.Do(func() {
		// a missing .env is fine
		_ = godotenv.Load()
	})

	key := typeKey[T]()

	loaded.mu.Lock()
	defer loaded.mu.Unlock()

	if cached, ok := loaded.values[key]; ok {
		typed, ok := cached.(T)
		if !ok {
			return ErrInvalidConfigType
		}
		*v = typed
		return nil
	}

	return parseLocked(key, v)
}

// MustLoad is Load that panics on failure.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

// ForceReloadConfig parses v again, replacing the cached copy of its type.
func ForceReloadConfig[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}
	key := typeKey[T]()

	loaded.mu.Lock()
	defer loaded.mu.Unlock()

	delete(loaded.values, key)
	return parseLocked(key, v)
}

// LoadEnv reads the given files into the process environment. Later files
// override values set by earlier ones. Without arguments it reads .env.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	if err := godotenv.Overload(files...); err != nil {
		return fmt.Errorf("config: load env files %v: %w", files, err)
	}
	return nil
}

// MustLoadEnv is LoadEnv that panics on failure.
func MustLoadEnv(files ...string) {
	if err := LoadEnv(files...); err != nil {
		panic(err)
	}
}

// ResetCache drops every cached configuration. Intended for tests.
func ResetCache() {
	loaded.mu.Lock()
	defer loaded.mu.Unlock()
	clear(loaded.values)
}

func parseLocked[T any](key reflect.Type, v *T) error {
	var parsed T
	if err := env.Parse(&parsed); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	loaded.values[key] = parsed
	*v = parsed
	return nil
}

func typeKey[T any]() reflect.Type {
	return reflect.TypeFor[T]()
}
