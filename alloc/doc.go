// Package alloc provides allocators for memory holding cryptographic
// secrets.
//
// # Overview
//
// Memory obtained through these allocators is reliably scrubbed with the
// zeroize package before it is reused or returned to the system, and the
// strongest allocator additionally keeps its backing memory locked into
// physical RAM so secrets never reach swap. These are defenses against
// memory-disclosure attacks: cold boot, core dumps, crash reports, swap
// forensics and reuse of previously freed secret buffers.
//
// # Allocator Interface
//
// The core abstraction is the Allocator interface:
//
//   - Alloc(layout): obtain a block of layout.Size bytes aligned to
//     layout.Align
//   - Free(block, layout): release a block
//   - Grow / Shrink: resize a block, in place where the implementation
//     can, moving it otherwise
//
// # Implementations
//
// ZeroizeAlloc: decorator scrubbing on release
//
//   - Wraps any inner Allocator
//   - Zeroizes every block before handing it back to the inner allocator
//   - Zeroizes the released tail on in-place shrinks
//
// SecStack: page-locked stack allocator
//
//   - Owns exactly one OS page, locked into RAM and advised no-dump
//   - Sub-allocates in stack order; LIFO release reclaims space
//   - Scrubs on every release and scrubs the whole page on Close
//
// Heap: inner allocator over the Go runtime heap
//
//   - Free is a no-op (the garbage collector reclaims)
//   - Not secret-safe on its own; wrap it in ZeroizeAlloc
//
// # Usage Example
//
//	s, err := alloc.NewSecStack()
//	if err != nil {
//	    return err
//	}
//	defer s.Close()
//
//	key, err := s.Alloc(alloc.Layout{Size: 32, Align: 8})
//	if err != nil {
//	    return err
//	}
//	// fill key with secret material ...
//	s.Free(key, alloc.Layout{Size: 32, Align: 8})
//
// # Thread Safety
//
// A SecStack is not safe for concurrent mutation; callers must serialize
// access. ZeroizeAlloc inherits the thread safety of its inner allocator:
// scrubbing touches only the block currently being released.
package alloc
