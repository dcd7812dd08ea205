package secbuf

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/niluxv/secmem-alloc/alloc"
	"github.com/niluxv/secmem-alloc/pages"
)

func newStack(t *testing.T) *alloc.SecStack {
	t.Helper()
	s, err := alloc.NewSecStack()
	if errors.Is(err, pages.ErrLock) {
		t.Skipf("cannot lock pages in this environment: %v", err)
	}
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestBuffer_OverSecStack(t *testing.T) {
	s := newStack(t)

	buf, err := New(s, 32)
	require.NoError(t, err)
	require.Len(t, buf.Bytes(), 32)

	copy(buf.Bytes(), "0123456789abcdef0123456789abcdef")
	require.NoError(t, buf.Grow(64))
	require.Len(t, buf.Bytes(), 64)
	assert.Equal(t, []byte("0123456789abcdef0123456789abcdef"), buf.Bytes()[:32])

	require.NoError(t, buf.Shrink(16))
	assert.Equal(t, []byte("0123456789abcdef"), buf.Bytes())

	require.NoError(t, buf.Close())
	require.NoError(t, buf.Close(), "Close must be idempotent")
}

func TestBuffer_OverZeroizingHeap(t *testing.T) {
	z := alloc.NewZeroize(alloc.Heap{})

	buf, err := NewAligned(z, 24, 16)
	require.NoError(t, err)
	require.Len(t, buf.Bytes(), 24)
	for i := range buf.Bytes() {
		buf.Bytes()[i] = 0xAA
	}

	old := buf.Bytes()
	require.NoError(t, buf.Shrink(8))
	// the heap shrinks in place, so the released tail of the old slice is
	// observable and must be scrubbed
	for i := 8; i < 24; i++ {
		require.Equalf(t, byte(0), old[i], "tail byte %d not scrubbed", i)
	}
	require.NoError(t, buf.Close())
}

func TestBuffer_CapacityError(t *testing.T) {
	s := newStack(t)
	_, err := New(s, pages.Size()+1)
	assert.ErrorIs(t, err, alloc.ErrOutOfMemory)
}

func TestBuffer_ZeroSize(t *testing.T) {
	s := newStack(t)
	buf, err := New(s, 0)
	require.NoError(t, err)
	assert.Empty(t, buf.Bytes())
	require.NoError(t, buf.Grow(16))
	assert.Len(t, buf.Bytes(), 16)
	require.NoError(t, buf.Close())
}

func TestBuffer_UseAfterClosePanics(t *testing.T) {
	buf, err := New(alloc.NewZeroize(alloc.Heap{}), 8)
	require.NoError(t, err)
	require.NoError(t, buf.Close())
	assert.Panics(t, func() { _ = buf.Grow(16) })
}
