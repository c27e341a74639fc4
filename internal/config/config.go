// Package config resolves runtime settings from flags, environment
// variables, and an optional .env file, in that order of precedence.
package config

import (
	"os"
	"runtime"
	"strconv"

	"github.com/joho/godotenv"
)

// Config is the resolved set of runtime settings the CLI needs.
type Config struct {
	Concurrency int
	Renderer    string
	LogLevel    string
}

// Defaults returns the built-in fallback values: concurrency equal to
// the host's CPU count clamped to [1, 200], human renderer, info-level
// logging.
func Defaults() Config {
	n := runtime.NumCPU()
	if n < 1 {
		n = 1
	}
	if n > 200 {
		n = 200
	}
	return Config{Concurrency: n, Renderer: "human", LogLevel: "info"}
}

// Flags carries whatever the CLI layer parsed explicitly; a nil/zero
// field means "not set on the command line" and falls through to env
// then .env then defaults.
type Flags struct {
	Concurrency *int
	Renderer    *string
	LogLevel    *string
}

// Resolve merges flags, then AXOTLY_* environment variables, then the
// contents of a .env file (if present) on top of Defaults(). It is a
// pure function of its inputs so it can be unit-tested without mutating
// the real process environment.
func Resolve(flags Flags, env map[string]string, dotenv map[string]string) Config {
	cfg := Defaults()

	apply := func(source map[string]string) {
		if v, ok := source["AXOTLY_CONCURRENCY"]; ok {
			if n, err := strconv.Atoi(v); err == nil {
				cfg.Concurrency = clamp(n, 1, 200)
			}
		}
		if v, ok := source["AXOTLY_RENDERER"]; ok && v != "" {
			cfg.Renderer = v
		}
		if v, ok := source["AXOTLY_LOG_LEVEL"]; ok && v != "" {
			cfg.LogLevel = v
		}
	}

	apply(dotenv)
	apply(env)

	if flags.Concurrency != nil {
		cfg.Concurrency = clamp(*flags.Concurrency, 1, 200)
	}
	if flags.Renderer != nil {
		cfg.Renderer = *flags.Renderer
	}
	if flags.LogLevel != nil {
		cfg.LogLevel = *flags.LogLevel
	}

	return cfg
}

// LoadDotEnv reads a .env file at path if present, returning an empty map
// if it does not exist. Errors other than "file does not exist" are
// returned so misconfigured files are not silently ignored.
func LoadDotEnv(path string) (map[string]string, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return map[string]string{}, nil
	}
	return godotenv.Read(path)
}

func clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}
