// Package config loads engine configuration from environment variables.
//
// It composes github.com/joho/godotenv for optional .env seeding with
// github.com/caarlos0/env/v11 for tag-driven struct parsing:
//
//	type GovernorConfig struct {
//	    CacheTTL      time.Duration `env:"USAGE_CACHE_TTL" envDefault:"60s"`
//	    WarnThreshold float64       `env:"USAGE_WARN_THRESHOLD" envDefault:"0.8"`
//	}
//
//	cfg, err := config.Load[GovernorConfig]()
//
// Load returns a freshly parsed value on every call so tests can mutate
// the environment between calls without cache invalidation tricks.
package config
