package ledger

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds connection and cache settings read from the environment.
type Config struct {
	RedisAddr      string        `env:"LEDGER_REDIS_ADDR" envDefault:"localhost:6379"`
	RedisDB        int           `env:"LEDGER_REDIS_DB" envDefault:"0"`
	FlushOnConnect bool          `env:"LEDGER_FLUSH_ON_CONNECT" envDefault:"true"`
	PageTTL        time.Duration `env:"LEDGER_PAGE_TTL" envDefault:"10s"`
	Namespace      string        `env:"LEDGER_NAMESPACE" envDefault:"ObjectCache"`
}

// LoadConfig parses Config from environment variables, applying defaults for
// anything unset.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Options converts the cache-level settings of cfg into options.
func (cfg Config) Options() []Option {
	return []Option{
		WithTTL(cfg.PageTTL),
		WithNamespace(cfg.Namespace),
	}
}
