package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// ErrParsingConfig is returned when environment variables cannot be parsed
// into the target struct.
var ErrParsingConfig = errors.New("failed to parse config from environment")

var (
	dotenvOnce sync.Once

	mu     sync.RWMutex
	loaded = make(map[reflect.Type]any)
)

// Load fills cfg from the environment. The first call loads a .env file from
// the working directory, if one exists. Each config type is parsed once and
// the result is reused by later calls.
func Load[T any](cfg *T) error {
	dotenvOnce.Do(func() {
		// A missing .env file is normal outside local development.
		_ = godotenv.Load()
	})

	typ := reflect.TypeFor[T]()

	mu.RLock()
	v, ok := loaded[typ]
	mu.RUnlock()
	if ok {
		*cfg = v.(T)
		return nil
	}

	mu.Lock()
	defer mu.Unlock()

	if v, ok := loaded[typ]; ok {
		*cfg = v.(T)
		return nil
	}

	var parsed T
	if err := env.Parse(&parsed); err != nil {
		return errors.Join(ErrParsingConfig, fmt.Errorf("%s: %w", typ, err))
	}

	loaded[typ] = parsed
	*cfg = parsed
	return nil
}

// MustLoad is Load that panics on failure. Intended for program startup.
func MustLoad[T any](cfg *T) {
	if err := Load(cfg); err != nil {
		panic(err)
	}
}
