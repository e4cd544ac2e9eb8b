package cache

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/lightningnetwork/lnd/clock"
	"github.com/lightningnetwork/lnd/fn/v2"

	"github.com/dmitrymomot/lru/core/logger"
)

// Cache is a fixed-capacity key/value store that evicts the least recently
// used entry when full. Entries may expire after a fixed duration; expiry is
// checked lazily when an entry is touched or walked past.
//
// Cache is not safe for concurrent use. Callbacks run inline and must not call
// back into the same cache.
type Cache[K comparable, V any] struct {
	capacity   int
	expiration fn.Option[time.Duration]

	index map[K]*entry[K, V]
	head  *entry[K, V]
	tail  *entry[K, V]

	onEvicted  func(EvictedEntry[K, V])
	onPromoted func(Entry[K, V])
	cloneFn    func(V) V

	clock   clock.Clock
	logger  *slog.Logger
	metrics Metrics
}

// New creates an empty cache. It fails with an error wrapping
// ErrInvalidArgument when the capacity or the default expiration is invalid.
func New[K comparable, V any](opts ...Option) (*Cache[K, V], error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if err := o.validate(); err != nil {
		return nil, err
	}

	c := &Cache[K, V]{
		capacity:   o.maxSize,
		expiration: o.expiration,
		index:      make(map[K]*entry[K, V]),
		clock:      o.clock,
		logger:     o.logger,
		metrics:    o.metrics,
	}
	if o.clone {
		c.cloneFn = DeepCopy[V]
	}

	return c, nil
}

// SetEvictCallback sets the callback fired when an entry leaves the cache
// through capacity pressure, replacement or expiry. It is not fired by Delete
// or Clear. Entries already stored keep the callback they were stored with.
func (c *Cache[K, V]) SetEvictCallback(cb func(EvictedEntry[K, V])) {
	c.onEvicted = cb
}

// SetPromoteCallback sets the callback fired whenever an entry becomes the most
// recently used one. Entries already stored keep the callback they were stored with.
func (c *Cache[K, V]) SetPromoteCallback(cb func(Entry[K, V])) {
	c.onPromoted = cb
}

// SetCloneFunc enables value copying with cloneFn. A nil function disables
// copying for entries stored afterwards.
func (c *Cache[K, V]) SetCloneFunc(cloneFn func(V) V) {
	c.cloneFn = cloneFn
}

// Set stores value under key with the cache-level policy and makes it the most
// recently used entry. An existing entry for key is evicted first.
func (c *Cache[K, V]) Set(key K, value V) *Cache[K, V] {
	c.insert(key, value, c.newEntry(key, EntryOptions[K, V]{}))
	return c
}

// SetWithOptions is Set with per-entry overrides. Invalid overrides are
// reported before the cache is touched.
func (c *Cache[K, V]) SetWithOptions(key K, value V, opts EntryOptions[K, V]) (*Cache[K, V], error) {
	if err := validateExpiration(opts.Expiration); err != nil {
		return c, err
	}
	c.insert(key, value, c.newEntry(key, opts))
	return c, nil
}

// newEntry builds an unlinked entry with every policy resolved.
func (c *Cache[K, V]) newEntry(key K, opts EntryOptions[K, V]) *entry[K, V] {
	e := &entry[K, V]{
		key:        key,
		createdAt:  c.clock.Now(),
		expiration: opts.Expiration.Alt(c.expiration),
		onEvicted:  c.onEvicted,
		onPromoted: c.onPromoted,
		clone:      c.cloneFn,
	}

	if opts.OnEvicted != nil {
		e.onEvicted = opts.OnEvicted
	}
	if opts.OnPromoted != nil {
		e.onPromoted = opts.OnPromoted
	}

	switch {
	case opts.CloneFunc != nil:
		e.clone = opts.CloneFunc
	case opts.Clone.IsSome():
		e.clone = nil
		if opts.Clone.UnwrapOr(false) {
			e.clone = c.cloneFn
			if e.clone == nil {
				e.clone = DeepCopy[V]
			}
		}
	}

	return e
}

func (c *Cache[K, V]) insert(key K, value V, e *entry[K, V]) {
	if old, ok := c.index[key]; ok {
		c.evict(old, false)
	}

	if e.clone != nil {
		value = e.clone(value)
	}
	e.value = value

	c.index[key] = e
	c.linkAsHead(e)
	c.enforceCapacity()
}

// Get returns the value for key and marks the entry as most recently used.
// An expired entry is evicted and reported as missing.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	e, ok := c.lookup(key)
	if !ok {
		var zero V
		return zero, false
	}
	c.linkAsHead(e)
	return e.view().Value, true
}

// Peek is Get without changing the recency order. Expired entries are still evicted.
func (c *Cache[K, V]) Peek(key K) (V, bool) {
	e, ok := c.lookup(key)
	if !ok {
		var zero V
		return zero, false
	}
	return e.view().Value, true
}

// lookup resolves key to a live entry, pruning it if it has expired.
func (c *Cache[K, V]) lookup(key K) (*entry[K, V], bool) {
	e, ok := c.index[key]
	if !ok {
		c.metrics.Miss()
		return nil, false
	}
	if e.isExpired(c.clock.Now()) {
		c.evict(e, true)
		c.metrics.Miss()
		return nil, false
	}
	c.metrics.Hit()
	return e, true
}

// Has reports whether key is in the index. It neither checks expiry nor
// promotes, so an expired entry that has not been pruned yet still counts.
func (c *Cache[K, V]) Has(key K) bool {
	_, ok := c.index[key]
	return ok
}

// Delete removes key without firing the eviction callback.
// It reports whether the key was present.
func (c *Cache[K, V]) Delete(key K) bool {
	e, ok := c.index[key]
	if !ok {
		return false
	}
	c.remove(e)
	return true
}

// Clear drops every entry without firing callbacks.
func (c *Cache[K, V]) Clear() {
	clear(c.index)
	c.head = nil
	c.tail = nil
}

// Find returns the first live entry, walking from newest to oldest, for which
// match returns true, and marks it as most recently used. Expired entries
// passed on the way are evicted.
func (c *Cache[K, V]) Find(match func(Entry[K, V]) bool) (Entry[K, V], bool) {
	var (
		found Entry[K, V]
		ok    bool
	)
	c.walk(func(e *entry[K, V]) bool {
		v := e.view()
		if !match(v) {
			return true
		}
		c.linkAsHead(e)
		found, ok = v, true
		return false
	})
	return found, ok
}

// RemoveOldest evicts the least recently used live entry, firing its eviction
// callback. Expired entries found at the tail on the way are evicted as expired.
func (c *Cache[K, V]) RemoveOldest() (Entry[K, V], bool) {
	now := c.clock.Now()
	for {
		e, ok := c.popTail()
		if !ok {
			return Entry[K, V]{}, false
		}
		if e.isExpired(now) {
			c.notifyEvicted(e, true)
			continue
		}
		c.notifyEvicted(e, false)
		return Entry[K, V]{Key: e.key, Value: e.value}, true
	}
}

// Prune evicts every expired entry and returns how many were removed.
func (c *Cache[K, V]) Prune() int {
	before := len(c.index)
	c.walk(func(*entry[K, V]) bool { return true })
	return before - len(c.index)
}

// MaxSize returns the capacity.
func (c *Cache[K, V]) MaxSize() int {
	return c.capacity
}

// SetMaxSize changes the capacity, evicting least recently used entries until
// the cache fits. A non-positive size is rejected and the cache is left as is.
func (c *Cache[K, V]) SetMaxSize(size int) error {
	if size <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidMaxSize, size)
	}

	c.capacity = size
	evicted := c.enforceCapacity()

	c.logger.LogAttrs(context.Background(), slog.LevelDebug, "cache resized",
		logger.Component("cache"),
		logger.Event("resized"),
		logger.Capacity(size),
		logger.Count("evicted", evicted),
	)
	return nil
}

// Len returns the number of entries, including expired ones not pruned yet.
func (c *Cache[K, V]) Len() int {
	return len(c.index)
}

// Remaining returns how many entries can be added before eviction starts.
func (c *Cache[K, V]) Remaining() int {
	return c.capacity - len(c.index)
}

// Newest returns the most recently used entry without touching it.
func (c *Cache[K, V]) Newest() (Entry[K, V], bool) {
	if c.head == nil {
		return Entry[K, V]{}, false
	}
	return c.head.view(), true
}

// Oldest returns the least recently used entry without touching it.
func (c *Cache[K, V]) Oldest() (Entry[K, V], bool) {
	if c.tail == nil {
		return Entry[K, V]{}, false
	}
	return c.tail.view(), true
}

// notifyEvicted records and reports an entry that has already been removed.
func (c *Cache[K, V]) notifyEvicted(e *entry[K, V], expired bool) {
	if expired {
		c.metrics.Expiration()
	} else {
		c.metrics.Eviction()
	}

	ctx := context.Background()
	if c.logger.Enabled(ctx, slog.LevelDebug) {
		c.logger.LogAttrs(ctx, slog.LevelDebug, "cache entry evicted",
			logger.Component("cache"),
			logger.Event("evicted"),
			logger.Key("key", e.key),
			logger.Age(e.createdAt, c.clock.Now()),
			logger.Expired(expired),
		)
	}

	if e.onEvicted != nil {
		e.onEvicted(EvictedEntry[K, V]{Key: e.key, Value: e.value, Expired: expired})
	}
}
