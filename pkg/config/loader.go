package config

import (
	"errors"
	"fmt"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var defaultEnvLoaded sync.Once

// Load parses environment variables into a fresh T. The default .env
// file in the working directory is loaded once per process, best-effort;
// a missing file is not an error.
func Load[T any]() (T, error) {
	defaultEnvLoaded.Do(func() {
		_ = godotenv.Load()
	})

	cfg, err := env.ParseAs[T]()
	if err != nil {
		var zero T
		return zero, errors.Join(ErrParsingConfig, err)
	}
	return cfg, nil
}

// LoadFrom seeds the process environment from the named .env files
// before parsing. Unlike Load, every named file must exist.
func LoadFrom[T any](files ...string) (T, error) {
	if err := godotenv.Load(files...); err != nil {
		var zero T
		return zero, errors.Join(ErrLoadingEnvFile, err)
	}

	cfg, err := env.ParseAs[T]()
	if err != nil {
		var zero T
		return zero, errors.Join(ErrParsingConfig, err)
	}
	return cfg, nil
}

// MustLoad works like Load but panics on failure. Intended for
// configuration the process cannot start without.
func MustLoad[T any]() T {
	cfg, err := Load[T]()
	if err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
	return cfg
}
