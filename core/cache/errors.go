package cache

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is the root of every configuration error returned by the
// cache. Validation always happens before any state is touched, so a cache that
// returned one of these errors is left exactly as it was.
var ErrInvalidArgument = errors.New("invalid argument")

var (
	// ErrInvalidMaxSize indicates a capacity that is zero or negative.
	ErrInvalidMaxSize = fmt.Errorf("%w: max size must be greater than zero", ErrInvalidArgument)

	// ErrInvalidExpiration indicates an entry expiration that is zero or negative.
	ErrInvalidExpiration = fmt.Errorf("%w: entry expiration must be greater than zero", ErrInvalidArgument)
)

// errBrokenList is raised when capacity enforcement finds entries in the index
// but no tail to evict. It can only be reached through a bug in the list code.
const errBrokenList = "cache: index is not empty but recency list has no tail"
