package cache

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/lightningnetwork/lnd/clock"
	"github.com/lightningnetwork/lnd/fn/v2"
)

// DefaultMaxSize is the capacity used when WithMaxSize is not given.
const DefaultMaxSize = 25

type options struct {
	maxSize    int
	expiration fn.Option[time.Duration]
	clone      bool
	clock      clock.Clock
	logger     *slog.Logger
	metrics    Metrics
}

func defaultOptions() options {
	return options{
		maxSize:    DefaultMaxSize,
		expiration: fn.None[time.Duration](),
		clock:      clock.NewDefaultClock(),
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		metrics:    NoopMetrics{},
	}
}

// validate checks the options before a cache is built from them.
func (o options) validate() error {
	if o.maxSize <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidMaxSize, o.maxSize)
	}
	return validateExpiration(o.expiration)
}

func validateExpiration(exp fn.Option[time.Duration]) error {
	invalid := fn.MapOptionZ(exp, func(d time.Duration) bool {
		return d <= 0
	})
	if invalid {
		return ErrInvalidExpiration
	}
	return nil
}

// Option configures a Cache.
type Option func(*options)

// WithMaxSize sets the initial capacity. New fails with ErrInvalidMaxSize
// when size is not positive.
func WithMaxSize(size int) Option {
	return func(o *options) {
		o.maxSize = size
	}
}

// WithEntryExpiration sets the cache-wide expiration applied to entries that
// do not override it. New fails with ErrInvalidExpiration when d is not positive.
func WithEntryExpiration(d time.Duration) Option {
	return func(o *options) {
		o.expiration = fn.Some(d)
	}
}

// WithClone makes the cache store and hand out deep copies of values.
// Use SetCloneFunc to replace the default copier.
func WithClone() Option {
	return func(o *options) {
		o.clone = true
	}
}

// WithClock sets the time source used for entry creation and expiry checks.
func WithClock(c clock.Clock) Option {
	return func(o *options) {
		if c != nil {
			o.clock = c
		}
	}
}

// WithLogger sets the logger for debug output about evictions and resizing.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithMetrics sets the recorder for hits, misses, evictions and expirations.
func WithMetrics(m Metrics) Option {
	return func(o *options) {
		if m != nil {
			o.metrics = m
		}
	}
}

// EntryOptions overrides cache-level policy for a single entry. The zero value
// inherits everything. Overrides are captured when the entry is stored and do
// not change for the entry's lifetime.
type EntryOptions[K comparable, V any] struct {
	// Expiration replaces the cache-wide expiration for this entry.
	Expiration fn.Option[time.Duration]

	// OnEvicted replaces the cache-level eviction callback for this entry.
	OnEvicted func(EvictedEntry[K, V])

	// OnPromoted replaces the cache-level promotion callback for this entry.
	OnPromoted func(Entry[K, V])

	// Clone switches value copying on or off for this entry.
	Clone fn.Option[bool]

	// CloneFunc sets the copier for this entry and implies Clone.
	CloneFunc func(V) V
}
