package cachemetrics

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// ErrRegistration is returned when the counters cannot be registered.
var ErrRegistration = errors.New("failed to register cache metrics")

// Collector records cache events as Prometheus counters.
// It satisfies cache.Metrics.
type Collector struct {
	hits        prometheus.Counter
	misses      prometheus.Counter
	evictions   prometheus.Counter
	expirations prometheus.Counter
}

type options struct {
	namespace   string
	subsystem   string
	constLabels prometheus.Labels
}

// Option configures a Collector.
type Option func(*options)

// WithNamespace sets the metric namespace.
func WithNamespace(ns string) Option {
	return func(o *options) {
		o.namespace = ns
	}
}

// WithSubsystem sets the metric subsystem. Defaults to "cache".
func WithSubsystem(subsystem string) Option {
	return func(o *options) {
		if subsystem != "" {
			o.subsystem = subsystem
		}
	}
}

// WithLabels adds constant labels, typically the name of the cache instance.
func WithLabels(labels prometheus.Labels) Option {
	return func(o *options) {
		o.constLabels = labels
	}
}

// New creates a Collector and registers its counters with reg. If any counter
// fails to register, none are left registered.
func New(reg prometheus.Registerer, opts ...Option) (*Collector, error) {
	o := &options{subsystem: "cache"}
	for _, opt := range opts {
		opt(o)
	}

	counter := func(name, help string) prometheus.Counter {
		return prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   o.namespace,
			Subsystem:   o.subsystem,
			Name:        name,
			Help:        help,
			ConstLabels: o.constLabels,
		})
	}

	c := &Collector{
		hits:        counter("hits_total", "Number of lookups that found a live entry."),
		misses:      counter("misses_total", "Number of lookups that found no live entry."),
		evictions:   counter("evictions_total", "Number of entries evicted by capacity pressure or replacement."),
		expirations: counter("expirations_total", "Number of expired entries pruned."),
	}

	// Registration is all or nothing.
	registered := make([]prometheus.Collector, 0, 4)
	for _, m := range []prometheus.Collector{c.hits, c.misses, c.evictions, c.expirations} {
		if err := reg.Register(m); err != nil {
			for _, r := range registered {
				reg.Unregister(r)
			}
			return nil, errors.Join(ErrRegistration, fmt.Errorf("register: %w", err))
		}
		registered = append(registered, m)
	}

	return c, nil
}

func (c *Collector) Hit()        { c.hits.Inc() }
func (c *Collector) Miss()       { c.misses.Inc() }
func (c *Collector) Eviction()   { c.evictions.Inc() }
func (c *Collector) Expiration() { c.expirations.Inc() }
