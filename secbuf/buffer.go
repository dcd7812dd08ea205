package secbuf

import "github.com/niluxv/secmem-alloc/alloc"

// A Buffer owns one block of allocator memory. It is not safe for
// concurrent use.
type Buffer struct {
	a      alloc.Allocator
	b      []byte
	layout alloc.Layout
	closed bool
}

// New allocates a buffer of size bytes from a, 8-byte aligned.
func New(a alloc.Allocator, size int) (*Buffer, error) {
	return NewAligned(a, size, 8)
}

// NewAligned allocates a buffer of size bytes from a with the given base
// alignment (a power of two).
func NewAligned(a alloc.Allocator, size, align int) (*Buffer, error) {
	l := alloc.Layout{Size: size, Align: align}
	b, err := a.Alloc(l)
	if err != nil {
		return nil, err
	}
	return &Buffer{a: a, b: b, layout: l}, nil
}

// Bytes returns the buffer contents. The slice is invalidated by Grow,
// Shrink and Close.
func (buf *Buffer) Bytes() []byte { return buf.b }

// Len returns the current size in bytes.
func (buf *Buffer) Len() int { return len(buf.b) }

// Grow extends the buffer to size bytes, preserving its contents. Memory
// the contents move out of is scrubbed by the allocator.
func (buf *Buffer) Grow(size int) error {
	return buf.resize(size, buf.a.Grow)
}

// Shrink reduces the buffer to size bytes, preserving the leading
// contents. The released bytes are scrubbed by the allocator.
func (buf *Buffer) Shrink(size int) error {
	return buf.resize(size, buf.a.Shrink)
}

func (buf *Buffer) resize(size int, op func([]byte, alloc.Layout, alloc.Layout) ([]byte, error)) error {
	buf.mustBeOpen()
	newLayout := alloc.Layout{Size: size, Align: buf.layout.Align}
	nb, err := op(buf.b, buf.layout, newLayout)
	if err != nil {
		return err
	}
	buf.b = nb
	buf.layout = newLayout
	return nil
}

// Close releases the buffer through its allocator, which scrubs the bytes
// for the secure allocators of this module. Close is idempotent.
func (buf *Buffer) Close() error {
	if buf.closed {
		return nil
	}
	buf.closed = true
	buf.a.Free(buf.b, buf.layout)
	buf.b = nil
	return nil
}

func (buf *Buffer) mustBeOpen() {
	if buf.closed {
		panic("secbuf: use of closed Buffer")
	}
}
