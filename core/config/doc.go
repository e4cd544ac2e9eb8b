// Package config provides type-safe environment variable loading with caching
// using Go generics. Each configuration type is loaded once and cached for
// subsequent calls.
//
// The package loads a .env file on first use and uses the caarlos0/env library
// for parsing environment variables into struct fields.
//
// Basic usage:
//
//	import "github.com/dmitrymomot/lru/core/config"
//
//	type SessionCacheConfig struct {
//		MaxSize int           `env:"SESSION_CACHE_MAX_SIZE" envDefault:"10000"`
//		TTL     time.Duration `env:"SESSION_CACHE_TTL" envDefault:"30m"`
//	}
//
//	func main() {
//		var cfg SessionCacheConfig
//
//		// Load with error handling
//		if err := config.Load(&cfg); err != nil {
//			log.Fatal(err)
//		}
//
//		// Or panic on failure (useful for startup)
//		config.MustLoad(&cfg)
//	}
//
// # Caching Behavior
//
// Each configuration type is loaded only once per process:
//
//	var cfg1 SessionCacheConfig
//	config.Load(&cfg1) // Loads from environment
//
//	var cfg2 SessionCacheConfig
//	config.Load(&cfg2) // Returns cached value, cfg1 == cfg2
//
// Different types are cached independently. The cache package's own Config
// is loaded the same way through cache.LoadConfig.
package config
