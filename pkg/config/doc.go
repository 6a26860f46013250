// Package config loads typed configuration from the environment.
//
// It combines github.com/joho/godotenv, which reads .env files into the
// process environment, with github.com/caarlos0/env/v11, which parses the
// environment into structs annotated with `env` tags. Every configuration
// type is parsed once and cached; ForceReloadConfig and ResetCache drop the
// cached copy, mostly for tests.
//
// # Usage
//
//	type DebugConfig struct {
//		Enabled bool   `env:"RX_DEBUG" envDefault:"false"`
//		Level   string `env:"RX_DEBUG_LEVEL" envDefault:"debug"`
//	}
//
//	config.MustLoadEnv(".env", ".env.local")
//
//	var cfg DebugConfig
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//
// A failed parse is not cached, so a later Load for the same type retries.
package config
