package cache

// The recency list runs from head (most recently used) to tail (least recently
// used). Every helper here keeps the list and the index in step: an entry is
// linked if and only if its key is present in c.index.

// linkAsHead moves e to the front of the list, linking it first if it is not
// in the list yet, and reports the promotion to the entry's hook.
func (c *Cache[K, V]) linkAsHead(e *entry[K, V]) {
	c.unlink(e)

	e.next = c.head
	if c.head != nil {
		c.head.prev = e
	}
	c.head = e

	if c.tail == nil {
		c.tail = e
	}

	if e.onPromoted != nil {
		e.onPromoted(e.view())
	}
}

// unlink splices e out of the list. Links are cleared afterwards so an entry
// handed to an eviction callback cannot reach the nodes still in the cache.
func (c *Cache[K, V]) unlink(e *entry[K, V]) {
	if e.prev == nil && c.head != e {
		// Not linked.
		return
	}

	if e.prev != nil {
		e.prev.next = e.next
	} else {
		c.head = e.next
	}

	if e.next != nil {
		e.next.prev = e.prev
	} else {
		c.tail = e.prev
	}

	e.prev = nil
	e.next = nil
}

// remove drops e from both the list and the index.
func (c *Cache[K, V]) remove(e *entry[K, V]) {
	c.unlink(e)
	delete(c.index, e.key)
}

// popTail removes the least recently used entry and returns it.
// The boolean is false when the list is empty.
func (c *Cache[K, V]) popTail() (*entry[K, V], bool) {
	e := c.tail
	if e == nil {
		return nil, false
	}
	c.remove(e)
	return e, true
}

// enforceCapacity evicts from the tail until the cache fits its capacity and
// returns the number of evicted entries.
func (c *Cache[K, V]) enforceCapacity() int {
	evicted := 0
	for len(c.index) > c.capacity {
		e, ok := c.popTail()
		if !ok {
			panic(errBrokenList)
		}
		c.notifyEvicted(e, false)
		evicted++
	}
	return evicted
}

// evict removes e and fires its eviction callback.
func (c *Cache[K, V]) evict(e *entry[K, V], expired bool) {
	c.remove(e)
	c.notifyEvicted(e, expired)
}

// walk visits live entries from head to tail, evicting expired ones it passes.
// The next pointer is captured before visiting, so visit may promote or delete
// the current entry. Walking stops as soon as visit returns false.
func (c *Cache[K, V]) walk(visit func(e *entry[K, V]) bool) {
	for e := c.head; e != nil; {
		next := e.next
		if e.isExpired(c.clock.Now()) {
			c.evict(e, true)
			e = next
			continue
		}
		if !visit(e) {
			return
		}
		e = next
	}
}
