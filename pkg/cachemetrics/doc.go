// Package cachemetrics exports cache hit, miss, eviction and expiration counts
// to Prometheus.
//
//	reg := prometheus.NewRegistry()
//	m, err := cachemetrics.New(reg,
//		cachemetrics.WithNamespace("myapp"),
//		cachemetrics.WithLabels(prometheus.Labels{"cache": "sessions"}),
//	)
//	if err != nil {
//		return err
//	}
//
//	sessions, err := cache.New[string, *Session](cache.WithMetrics(m))
package cachemetrics
