package alloc

import "errors"

var (
	// ErrOutOfMemory indicates an allocation request cannot be satisfied:
	// the stack allocator's page is exhausted, or an inner allocator
	// refused the request.
	ErrOutOfMemory = errors.New("alloc: allocation does not fit the available memory")
)
