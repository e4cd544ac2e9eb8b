// Package logger provides small structured logging utilities built on Go's
// standard slog package: a constructor with environment presets and attribute
// helpers used across the module.
//
// # Basic Usage
//
//	import "github.com/dmitrymomot/lru/core/logger"
//
//	// Development: text format, debug level
//	log := logger.New(logger.WithDevelopment("myapp"))
//
//	// Production: JSON format, info level
//	log := logger.New(
//		logger.WithProduction("myapp"),
//		logger.WithOutput(os.Stderr),
//	)
//
// # Attribute Helpers
//
// Helpers return an empty slog.Attr for nil input, which slog drops:
//
//	log.Debug("cache entry evicted",
//		logger.Component("cache"),
//		logger.Key("key", key),
//		logger.Expired(false),
//	)
//
//	log.Error("load failed", logger.Error(err), logger.Action("load_config"))
//
// Pass the logger to a cache with cache.WithLogger to see its debug output.
package logger
