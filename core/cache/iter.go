package cache

import "iter"

// The sequences below are lazy and walk the cache from newest to oldest each
// time they are ranged over. Expired entries are evicted as the walk reaches
// them. Ranging does not promote entries; mutating the cache from the loop body
// other than through the current key leaves the remaining walk undefined.

// All returns a sequence of live key/value pairs.
func (c *Cache[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		c.walk(func(e *entry[K, V]) bool {
			v := e.view()
			return yield(v.Key, v.Value)
		})
	}
}

// Keys returns a sequence of live keys.
func (c *Cache[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		c.walk(func(e *entry[K, V]) bool {
			return yield(e.key)
		})
	}
}

// Values returns a sequence of live values.
func (c *Cache[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		c.walk(func(e *entry[K, V]) bool {
			return yield(e.view().Value)
		})
	}
}

// ForEach calls fn for every live entry with its position among live entries,
// starting at 0 for the newest.
func (c *Cache[K, V]) ForEach(fn func(key K, value V, index int)) {
	i := 0
	c.walk(func(e *entry[K, V]) bool {
		v := e.view()
		fn(v.Key, v.Value, i)
		i++
		return true
	})
}
