package usage

import "time"

type Config struct {
	CacheTTL      time.Duration `env:"USAGE_CACHE_TTL" envDefault:"60s"`      // CacheTTL is how long a cached usage count stays fresh.
	SweepInterval time.Duration `env:"USAGE_SWEEP_INTERVAL" envDefault:"5m"`  // SweepInterval is how often the in-memory cache drops stale entries.
	WarnThreshold float64       `env:"USAGE_WARN_THRESHOLD" envDefault:"0.8"` // WarnThreshold is the usage ratio that triggers a near-limit warning.
}

// WithConfig applies env-loaded tuning in one option.
func WithConfig(cfg Config) Option {
	return func(g *Governor) {
		if cfg.CacheTTL > 0 {
			g.ttl = cfg.CacheTTL
		}
		if cfg.SweepInterval > 0 {
			g.sweepInterval = cfg.SweepInterval
		}
		if cfg.WarnThreshold > 0 {
			g.warnThreshold = cfg.WarnThreshold
		}
	}
}
