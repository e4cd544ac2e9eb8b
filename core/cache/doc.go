// Package cache provides a generic, fixed-capacity in-memory cache with
// Least Recently Used eviction and optional time-based expiry.
//
// # Features
//
//   - Generic type parameters for compile-time type safety
//   - LRU eviction with a capacity that can be changed at runtime
//   - Optional expiration, cache-wide or per entry, checked lazily
//   - Eviction and promotion callbacks, cache-wide or per entry
//   - Optional value cloning to protect cached state from aliasing
//   - Lazy iterators (iter.Seq) from newest to oldest
//   - Pluggable metrics, logging and time source
//
// # Usage
//
//	import "github.com/dmitrymomot/lru/core/cache"
//
//	// Create a cache with capacity of 100 items
//	c, err := cache.New[string, *User](cache.WithMaxSize(100))
//	if err != nil {
//		return err
//	}
//
//	// Store values; Set returns the cache for chaining
//	c.Set("user:123", &User{ID: 123, Name: "John"}).
//		Set("user:456", &User{ID: 456, Name: "Jane"})
//
//	// Retrieve values, promoting them to most recently used
//	if user, found := c.Get("user:123"); found {
//		fmt.Printf("Found user: %s\n", user.Name)
//	}
//
//	// Read without affecting the eviction order
//	user, found := c.Peek("user:456")
//
//	// Remove values
//	c.Delete("user:123")
//
// # Eviction Callbacks
//
// Eviction callbacks fire when an entry is pushed out by capacity pressure,
// replaced by a new value for the same key, or found expired. Delete and Clear
// never fire them:
//
//	c.SetEvictCallback(func(e cache.EvictedEntry[string, *Connection]) {
//		e.Value.Conn.Close()
//		if e.Expired {
//			log.Printf("connection %s expired", e.Key)
//		}
//	})
//
// # Expiration
//
// Entries expire once more than their expiration has elapsed since they were
// stored. Nothing runs in the background: expired entries are removed when Get,
// Peek, Find or an iterator reaches them, or when Prune is called.
//
//	sessions, _ := cache.New[string, *Session](
//		cache.WithMaxSize(10000),
//		cache.WithEntryExpiration(30*time.Minute),
//	)
//
// # Per-entry Options
//
// SetWithOptions overrides cache-level policy for one entry:
//
//	_, err := sessions.SetWithOptions(id, session, cache.EntryOptions[string, *Session]{
//		Expiration: fn.Some(5 * time.Minute),
//		OnEvicted: func(e cache.EvictedEntry[string, *Session]) {
//			audit.Record(e.Key)
//		},
//	})
//
// # Cloning
//
// WithClone stores a deep copy of every value and hands out deep copies on every
// read, so callers cannot mutate cached state through a shared reference.
// Unexported fields are copied as well. SetCloneFunc replaces the default copier,
// for example for values holding locks or file handles.
//
// # Iteration
//
//	for key, value := range c.All() {
//		fmt.Println(key, value)
//	}
//
// # Thread Safety
//
// A Cache is owned by a single goroutine. Wrap calls with a mutex when sharing
// one between goroutines. Callbacks run inline and must not call back into the
// cache that invoked them.
//
// # Performance Characteristics
//
//   - Get, Peek, Set, Delete: O(1) average case
//   - Find, ForEach, iteration: O(n)
//   - SetMaxSize: O(number of evicted entries)
//
// The implementation uses a hash map for lookup and a doubly-linked list for
// recency order.
package cache
