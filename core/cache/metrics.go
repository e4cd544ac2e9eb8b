package cache

// Metrics receives cache events. Implementations are called inline on the
// goroutine that drives the cache and must not call back into it.
type Metrics interface {
	// Hit is called when Get or Peek finds a live entry.
	Hit()

	// Miss is called when Get or Peek finds nothing, or only an expired entry.
	Miss()

	// Eviction is called when an entry is pushed out by capacity pressure or
	// replaced by a newer value for the same key.
	Eviction()

	// Expiration is called when an expired entry is pruned.
	Expiration()
}

// NoopMetrics discards every event. It is the default recorder.
type NoopMetrics struct{}

func (NoopMetrics) Hit()        {}
func (NoopMetrics) Miss()       {}
func (NoopMetrics) Eviction()   {}
func (NoopMetrics) Expiration() {}
