// Package config resolves the tool's defaults from the environment.
// Command line flags are applied on top by main.
package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

// Config holds runtime settings.
type Config struct {
	Dir      string // trace directory
	Port     int    // web mode listen port
	Jobs     int    // trace files decoded at once
	LogLevel string
	Samples  int    // unknown records kept per run
	Compiler string // "npx" or "tsc", used by --generate
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Port:     8080,
		Jobs:     4,
		LogLevel: "warn",
		Samples:  5,
		Compiler: "npx",
	}
}

// Load reads a .env file from the working directory, if any, and applies
// TYPETRACE_* variables over the defaults.
func Load() (Config, error) {
	_ = godotenv.Load()
	return FromEnv(os.LookupEnv)
}

// FromEnv applies variables from lookup over the defaults.
func FromEnv(lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()

	if v, ok := lookup("TYPETRACE_DIR"); ok {
		cfg.Dir = strings.TrimSpace(v)
	}
	if v, ok := lookup("TYPETRACE_LOG_LEVEL"); ok && strings.TrimSpace(v) != "" {
		cfg.LogLevel = strings.ToLower(strings.TrimSpace(v))
	}
	if v, ok := lookup("TYPETRACE_COMPILER"); ok && strings.TrimSpace(v) != "" {
		cfg.Compiler = strings.ToLower(strings.TrimSpace(v))
	}

	var err error
	if cfg.Port, err = intEnv(lookup, "TYPETRACE_PORT", cfg.Port); err != nil {
		return cfg, err
	}
	if cfg.Jobs, err = intEnv(lookup, "TYPETRACE_JOBS", cfg.Jobs); err != nil {
		return cfg, err
	}
	if cfg.Samples, err = intEnv(lookup, "TYPETRACE_SAMPLES", cfg.Samples); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// Validate rejects settings the tool cannot run with.
func (c Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return errors.Errorf("invalid port %d", c.Port)
	}
	if c.Jobs < 1 {
		return errors.Errorf("jobs must be at least 1, got %d", c.Jobs)
	}
	if c.Samples < 0 {
		return errors.Errorf("samples must not be negative, got %d", c.Samples)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return errors.Errorf("unknown log level %q", c.LogLevel)
	}
	switch c.Compiler {
	case "npx", "tsc":
	default:
		return errors.Errorf("unknown compiler %q", c.Compiler)
	}
	return nil
}

func intEnv(lookup func(string) (string, bool), key string, def int) (int, error) {
	v, ok := lookup(key)
	if !ok || strings.TrimSpace(v) == "" {
		return def, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return def, errors.Wrapf(err, "%s", key)
	}
	return n, nil
}
