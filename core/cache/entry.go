package cache

import (
	"time"

	"github.com/lightningnetwork/lnd/fn/v2"
)

// Entry is a read-only view of a cached key/value pair.
type Entry[K comparable, V any] struct {
	Key   K
	Value V
}

// EvictedEntry is passed to eviction callbacks. Expired is true when the entry
// left the cache because its expiration elapsed, false when it was pushed out
// by capacity pressure or replaced by a newer value for the same key.
type EvictedEntry[K comparable, V any] struct {
	Key     K
	Value   V
	Expired bool
}

// entry is a node of the recency list. The index map is the only owner of
// entries; prev and next are plain links between nodes the map already holds.
type entry[K comparable, V any] struct {
	key        K
	value      V
	createdAt  time.Time
	expiration fn.Option[time.Duration]

	// Per-entry policy, resolved once at insertion.
	onEvicted  func(EvictedEntry[K, V])
	onPromoted func(Entry[K, V])
	clone      func(V) V

	prev *entry[K, V]
	next *entry[K, V]
}

// isExpired reports whether more than the entry's expiration has passed since
// it was created. Entries without an expiration never expire.
func (e *entry[K, V]) isExpired(now time.Time) bool {
	return fn.MapOptionZ(e.expiration, func(d time.Duration) bool {
		return now.Sub(e.createdAt) > d
	})
}

// view returns the entry as handed to caller code, cloning the value when the
// entry was stored with a clone policy.
func (e *entry[K, V]) view() Entry[K, V] {
	v := e.value
	if e.clone != nil {
		v = e.clone(v)
	}
	return Entry[K, V]{Key: e.key, Value: v}
}
