package alloc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeap_AlignmentHonored(t *testing.T) {
	for _, align := range []int{1, 2, 4, 8, 16, 32, 64, 128, 4096} {
		for _, size := range []int{0, 1, 7, 8, 9, 100} {
			b, err := Heap{}.Alloc(Layout{Size: size, Align: align})
			require.NoError(t, err)
			require.Len(t, b, size)
			if size > 0 {
				assert.Zerof(t, baseAddr(b)&uintptr(align-1),
					"align %d size %d: misaligned block", align, size)
			}
		}
	}
}

func TestHeap_CapIsSize(t *testing.T) {
	b, err := Heap{}.Alloc(Layout{Size: 9, Align: 8})
	require.NoError(t, err)
	assert.Equal(t, 9, cap(b), "blocks must not be extendable past their size")
}

func TestHeap_GrowPreservesContents(t *testing.T) {
	h := Heap{}
	oldL := Layout{Size: 8, Align: 8}
	b, err := h.Alloc(oldL)
	require.NoError(t, err)
	copy(b, "12345678")

	nb, err := h.Grow(b, oldL, Layout{Size: 32, Align: 8})
	require.NoError(t, err)
	assert.Equal(t, []byte("12345678"), nb[:8])
}

func TestHeap_ShrinkInPlace(t *testing.T) {
	h := Heap{}
	b, err := h.Alloc(Layout{Size: 32, Align: 8})
	require.NoError(t, err)

	nb, ok := h.ShrinkInPlace(b, Layout{Size: 32, Align: 8}, Layout{Size: 8, Align: 8})
	require.True(t, ok)
	assert.Equal(t, baseAddr(b), baseAddr(nb))
	assert.Len(t, nb, 8)

	// shrinking to a stricter alignment the block does not carry declines
	misaligned := b[1:9]
	_, ok = h.ShrinkInPlace(misaligned, Layout{Size: 8, Align: 1}, Layout{Size: 4, Align: 8})
	assert.False(t, ok)
}
