package cache

import "github.com/huandu/go-clone"

// DeepCopy returns a deep copy of v, including unexported fields.
func DeepCopy[V any](v V) V {
	c, ok := clone.Clone(v).(V)
	if !ok {
		return v
	}
	return c
}
