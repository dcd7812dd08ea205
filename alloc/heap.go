package alloc

// Heap allocates from the Go runtime heap. Free is a no-op: the garbage
// collector reclaims released blocks. Alignment beyond what the runtime
// guarantees is satisfied by over-allocating and slicing at an aligned
// offset.
//
// Heap on its own is not secret-safe: released blocks keep their contents
// until the collector reuses them. Wrap it in ZeroizeAlloc for secret
// storage.
type Heap struct{}

func (Heap) Alloc(l Layout) ([]byte, error) {
	checkLayout(l)
	if l.Size == 0 {
		return []byte{}, nil
	}
	raw := make([]byte, l.Size+l.Align-1)
	off := int(-baseAddr(raw) & uintptr(l.Align-1))
	return raw[off : off+l.Size : off+l.Size], nil
}

func (Heap) Free([]byte, Layout) {}

func (h Heap) Grow(b []byte, oldLayout, newLayout Layout) ([]byte, error) {
	checkLayout(newLayout)
	nb, err := h.Alloc(newLayout)
	if err != nil {
		return nil, err
	}
	copy(nb, b[:oldLayout.Size])
	return nb, nil
}

func (h Heap) Shrink(b []byte, oldLayout, newLayout Layout) ([]byte, error) {
	checkLayout(newLayout)
	if nb, ok := h.ShrinkInPlace(b, oldLayout, newLayout); ok {
		return nb, nil
	}
	nb, err := h.Alloc(newLayout)
	if err != nil {
		return nil, err
	}
	copy(nb, b[:newLayout.Size])
	return nb, nil
}

// GrowInPlace always declines: heap blocks are sized exactly and cannot be
// extended.
func (Heap) GrowInPlace([]byte, Layout, Layout) ([]byte, bool) {
	return nil, false
}

// ShrinkInPlace keeps the block's prefix when the base already satisfies
// the new alignment. The released tail belongs to the caller's original
// allocation and stays reachable only through the garbage collector.
func (Heap) ShrinkInPlace(b []byte, _ Layout, newLayout Layout) ([]byte, bool) {
	if newLayout.Size == 0 || baseAddr(b)&uintptr(newLayout.Align-1) != 0 {
		return nil, false
	}
	return b[:newLayout.Size:newLayout.Size], true
}

var (
	_ Allocator      = Heap{}
	_ InPlaceResizer = Heap{}
)
