package pages

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSize(t *testing.T) {
	p := Size()
	require.Positive(t, p)
	assert.Zero(t, p&(p-1), "page size must be a power of two")
	assert.Equal(t, p, Size(), "cached value must be stable")
}

func TestAllocFreeLifecycle(t *testing.T) {
	p, err := Alloc()
	require.NoError(t, err)
	require.Len(t, p.Bytes(), Size())
	assert.False(t, p.Locked())

	// fresh anonymous pages are zero-initialized by the OS
	for i, b := range p.Bytes() {
		require.Equalf(t, byte(0), b, "byte %d of a fresh page", i)
	}

	// pages are writable
	p.Bytes()[0] = 0xAA
	p.Bytes()[Size()-1] = 0x55

	require.NoError(t, p.Free())
	assert.Nil(t, p.Bytes())
	require.NoError(t, p.Free(), "double free must be a no-op")
}

func TestAllocLocked(t *testing.T) {
	p, err := AllocLocked()
	if errors.Is(err, ErrLock) {
		t.Skipf("cannot lock pages in this environment: %v", err)
	}
	require.NoError(t, err)
	assert.True(t, p.Locked())

	require.NoError(t, p.Lock(), "locking a locked page is a no-op")
	require.NoError(t, p.Unlock())
	assert.False(t, p.Locked())
	require.NoError(t, p.Unlock(), "unlocking an unlocked page is a no-op")

	require.NoError(t, p.Free())
}

func TestFreeWhileLocked(t *testing.T) {
	p, err := AllocLocked()
	if errors.Is(err, ErrLock) {
		t.Skipf("cannot lock pages in this environment: %v", err)
	}
	require.NoError(t, err)
	// munmap/VirtualFree releases locked pages without a prior unlock
	require.NoError(t, p.Free())
}
