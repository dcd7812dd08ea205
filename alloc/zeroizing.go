package alloc

import "github.com/niluxv/secmem-alloc/zeroize"

// ZeroizeAlloc wraps an inner allocator and scrubs every block before it
// is released back to the inner allocator, and the released tail on
// in-place shrinks. Any byte that was ever writable through this allocator
// is zero by the time the inner allocator sees it again.
//
// Reallocation never uses the inner allocator's own Grow/Shrink: moving
// through an opaque inner reallocation would release the old bytes
// unscrubbed. Instead blocks are moved with Alloc+copy and released
// through the zeroizing Free, unless the inner allocator implements
// InPlaceResizer and can resize without moving.
//
// ZeroizeAlloc inherits the thread safety of the inner allocator:
// scrubbing only touches the block currently being released.
type ZeroizeAlloc struct {
	inner Allocator
	// wipe overrides the default strategy dispatch when non-nil.
	wipe func([]byte)
}

// NewZeroize returns a zeroizing decorator around inner using the best
// wiping strategy for the running CPU.
func NewZeroize(inner Allocator) *ZeroizeAlloc {
	return &ZeroizeAlloc{inner: inner}
}

// NewZeroizeStrategy returns a zeroizing decorator around inner that wipes
// with the given strategy.
func NewZeroizeStrategy(inner Allocator, s zeroize.Strategy) *ZeroizeAlloc {
	return &ZeroizeAlloc{inner: inner, wipe: s.Wipe}
}

func (z *ZeroizeAlloc) scrub(b []byte, align int) {
	if len(b) == 0 {
		return
	}
	if z.wipe != nil {
		z.wipe(b)
		return
	}
	zeroize.BytesAligned(b, uintptr(align))
}

// Alloc delegates to the inner allocator unchanged.
func (z *ZeroizeAlloc) Alloc(l Layout) ([]byte, error) {
	checkLayout(l)
	return z.inner.Alloc(l)
}

// Free zeroizes the full block, then releases it to the inner allocator.
func (z *ZeroizeAlloc) Free(b []byte, l Layout) {
	checkLayout(l)
	if l.Size > 0 {
		z.scrub(b[:l.Size], l.Align)
	}
	z.inner.Free(b, l)
}

// Grow resizes b to newLayout. An in-place extension needs no scrubbing;
// on a move the old block is scrubbed in full before release.
func (z *ZeroizeAlloc) Grow(b []byte, oldLayout, newLayout Layout) ([]byte, error) {
	checkLayout(oldLayout)
	checkLayout(newLayout)
	if oldLayout.Size == 0 {
		return z.Alloc(newLayout)
	}
	if ip, ok := z.inner.(InPlaceResizer); ok {
		if nb, ok := ip.GrowInPlace(b, oldLayout, newLayout); ok {
			return nb, nil
		}
	}
	nb, err := z.inner.Alloc(newLayout)
	if err != nil {
		return nil, err
	}
	copy(nb, b[:oldLayout.Size])
	z.Free(b, oldLayout)
	return nb, nil
}

// Shrink resizes b to newLayout. The released tail is zeroized before the
// inner allocator is informed; if the block has to move, the whole old
// block is scrubbed on release.
func (z *ZeroizeAlloc) Shrink(b []byte, oldLayout, newLayout Layout) ([]byte, error) {
	checkLayout(oldLayout)
	checkLayout(newLayout)
	if newLayout.Size == 0 {
		z.Free(b, oldLayout)
		return []byte{}, nil
	}
	if ip, ok := z.inner.(InPlaceResizer); ok {
		z.scrub(b[newLayout.Size:oldLayout.Size], 1)
		if nb, ok := ip.ShrinkInPlace(b, oldLayout, newLayout); ok {
			return nb, nil
		}
		// resize declined; the tail is already zero and the move below
		// scrubs the rest
	}
	nb, err := z.inner.Alloc(newLayout)
	if err != nil {
		return nil, err
	}
	copy(nb, b[:newLayout.Size])
	z.Free(b, oldLayout)
	return nb, nil
}

var _ Allocator = (*ZeroizeAlloc)(nil)
