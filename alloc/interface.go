package alloc

// Layout describes an allocation request: a size in bytes and a minimum
// base alignment. Align must be a power of two, at least 1. A zero Size is
// admissible and yields an empty block without reserving memory.
type Layout struct {
	Size  int
	Align int
}

// Allocator is the uniform allocation interface implemented by all
// allocators in this package. Blocks are byte slices of length
// Layout.Size whose base pointer carries the requested alignment.
//
// The same Layout passed to Alloc must be passed to Free, and a block must
// not be used after its release. Grow and Shrink may return the original
// block resized in place or a new block; when the block moves, the
// secret-safe implementations scrub the old bytes before releasing them.
//
// Allocators may be used by value or behind a shared pointer; the
// pointer/ownership semantics of the returned blocks are the same in both
// cases.
type Allocator interface {
	// Alloc obtains a block of l.Size bytes aligned to l.Align.
	Alloc(l Layout) ([]byte, error)

	// Free releases a block previously obtained from this allocator
	// with the same layout.
	Free(b []byte, l Layout)

	// Grow resizes b from oldLayout to the larger newLayout, preserving
	// the first oldLayout.Size bytes.
	Grow(b []byte, oldLayout, newLayout Layout) ([]byte, error)

	// Shrink resizes b from oldLayout to the smaller newLayout,
	// preserving the first newLayout.Size bytes.
	Shrink(b []byte, oldLayout, newLayout Layout) ([]byte, error)
}

// InPlaceResizer is an optional capability of inner allocators: resizing a
// block without moving it. ZeroizeAlloc consults it so that an in-place
// shrink can scrub the released tail instead of relocating the block.
//
// Both methods report false when the block cannot be resized in place, in
// which case the caller falls back to allocate-copy-free.
type InPlaceResizer interface {
	GrowInPlace(b []byte, oldLayout, newLayout Layout) ([]byte, bool)
	ShrinkInPlace(b []byte, oldLayout, newLayout Layout) ([]byte, bool)
}
