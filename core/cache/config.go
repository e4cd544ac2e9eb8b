package cache

import (
	"fmt"
	"time"

	"github.com/dmitrymomot/lru/core/config"
)

// Config holds environment-driven cache settings.
type Config struct {
	MaxSize         int           `env:"CACHE_MAX_SIZE" envDefault:"25"`
	EntryExpiration time.Duration `env:"CACHE_ENTRY_EXPIRATION"`
	Clone           bool          `env:"CACHE_CLONE" envDefault:"false"`
}

// DefaultConfig returns the settings New uses without options.
func DefaultConfig() Config {
	return Config{
		MaxSize: DefaultMaxSize,
	}
}

// LoadConfig reads Config from the environment (and a .env file, if present).
func LoadConfig() (Config, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return Config{}, fmt.Errorf("load cache config: %w", err)
	}
	return cfg, nil
}

// NewFromConfig creates a cache from cfg. MaxSize must be positive; start from
// DefaultConfig or LoadConfig to get the default size. A zero EntryExpiration
// means entries never expire. Options are applied after the config and
// override it.
func NewFromConfig[K comparable, V any](cfg Config, opts ...Option) (*Cache[K, V], error) {
	if cfg.MaxSize <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidMaxSize, cfg.MaxSize)
	}
	if cfg.EntryExpiration < 0 {
		return nil, fmt.Errorf("%w: got %s", ErrInvalidExpiration, cfg.EntryExpiration)
	}

	base := make([]Option, 0, 3+len(opts))
	base = append(base, WithMaxSize(cfg.MaxSize))
	if cfg.EntryExpiration > 0 {
		base = append(base, WithEntryExpiration(cfg.EntryExpiration))
	}
	if cfg.Clone {
		base = append(base, WithClone())
	}

	return New[K, V](append(base, opts...)...)
}
