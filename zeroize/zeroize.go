package zeroize

import (
	"runtime"
	"unsafe"
)

// A Strategy is one concrete wiping routine. The zero value is not usable;
// use the exported package variables (Scalar, Scalar8, RepStos, SSE2, AVX)
// or the Bytes/BytesAligned dispatchers.
type Strategy struct {
	name string
	wipe func([]byte)
}

// Name returns a short identifier for the strategy, for benchmarks and
// test output.
func (s Strategy) Name() string { return s.name }

// Wipe overwrites b with zeros. The writes are not elided by the compiler.
// A zero-length slice is a no-op.
func (s Strategy) Wipe(b []byte) {
	if len(b) == 0 {
		return
	}
	s.wipe(b)
}

// Scalar wipes byte-for-byte. Always available; the default for memory of
// unknown alignment on platforms without a faster option.
var Scalar = Strategy{name: "scalar", wipe: wipeScalar}

// Scalar8 wipes in 8-byte words where the range permits, falling back to
// byte stores for misaligned head and short tail. Always available.
var Scalar8 = Strategy{name: "scalar8", wipe: wipeScalar8}

// Bytes wipes b with the best strategy for memory of unknown alignment.
// The writes are not elided by the compiler. Infallible; len(b) == 0 is a
// no-op.
func Bytes(b []byte) {
	BytesAligned(b, 1)
}

// BytesAligned wipes b, where the caller declares that the base pointer of
// b is at least align-byte aligned. align must be a power of two. Declaring
// a larger alignment can select a wider store strategy; understating the
// alignment is always safe.
func BytesAligned(b []byte, align uintptr) {
	if len(b) == 0 {
		return
	}
	if align == 0 || align&(align-1) != 0 {
		panic("zeroize: alignment must be a power of two")
	}
	best(b, align).wipe(b)
}

// wipeScalar writes zeros one byte at a time.
//
// The function is kept out of inlining reach so the compiler cannot observe
// at a call site that the stores are dead, and the KeepAlive pins the
// buffer as live past the final store.
//
//go:noinline
func wipeScalar(b []byte) {
	for i := range b {
		b[i] = 0
	}
	runtime.KeepAlive(b)
}

// wipeScalar8 writes zeros in 8-byte words between a byte-wise head that
// reaches the first 8-aligned address and a 4/1-byte tail. The word stores
// go through pointers derived from the slice base and offset strictly below
// len(b), so no store leaves the caller's range.
//
//go:noinline
func wipeScalar8(b []byte) {
	n := len(b)
	p := unsafe.Pointer(unsafe.SliceData(b))

	i := 0
	// head: advance to an 8-aligned address
	head := int(-uintptr(p) & 7)
	if head > n {
		head = n
	}
	for ; i < head; i++ {
		b[i] = 0
	}
	// body: 8-byte words
	for ; i+8 <= n; i += 8 {
		*(*uint64)(unsafe.Add(p, i)) = 0
	}
	// tail: one 4-byte store if possible, then bytes
	if i+4 <= n {
		*(*uint32)(unsafe.Add(p, i)) = 0
		i += 4
	}
	for ; i < n; i++ {
		b[i] = 0
	}
	runtime.KeepAlive(b)
}
