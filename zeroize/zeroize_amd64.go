//go:build amd64

package zeroize

import (
	"runtime"
	"unsafe"

	"golang.org/x/sys/cpu"
)

// Assembly routines. Being assembly, the stores are opaque to the compiler
// and cannot be removed as dead.

//go:noescape
func repStosb(p unsafe.Pointer, n uintptr)

//go:noescape
func zeroBlocks16(p unsafe.Pointer, n uintptr)

//go:noescape
func zeroBlocks32(p unsafe.Pointer, n uintptr)

var (
	hasERMS = cpu.X86.HasERMS
	hasSSE2 = cpu.X86.HasSSE2
	hasAVX2 = cpu.X86.HasAVX2
)

// RepStos wipes with a single `rep stosb` instruction. Very fast for large
// ranges on CPUs with enhanced rep movsb/stosb (ERMS); no alignment
// requirement.
var RepStos = Strategy{name: "repstos", wipe: wipeRepStos}

// SSE2 wipes with 16-byte aligned vector stores. Misaligned head and
// sub-block tail are written with scalar stores, so the full length is
// covered at any alignment.
var SSE2 = Strategy{name: "sse2", wipe: wipeSSE2}

// AVX wipes with 32-byte aligned vector stores (AVX2). Misaligned head and
// sub-block tail are written with scalar stores, so the full length is
// covered at any alignment.
var AVX = Strategy{name: "avx", wipe: wipeAVX}

// Strategies returns the strategies usable on the running CPU, slowest
// first.
func Strategies() []Strategy {
	s := []Strategy{Scalar, Scalar8}
	if hasERMS {
		s = append(s, RepStos)
	}
	if hasSSE2 {
		s = append(s, SSE2)
	}
	if hasAVX2 {
		s = append(s, AVX)
	}
	return s
}

// best picks the fastest strategy whose CPU requirements are met and whose
// block width pays off for the declared alignment and length.
func best(b []byte, align uintptr) Strategy {
	switch {
	case hasAVX2 && align >= 32 && len(b) >= 32:
		return AVX
	case hasSSE2 && align >= 16 && len(b) >= 16:
		return SSE2
	case hasERMS:
		return RepStos
	case align >= 8:
		return Scalar8
	default:
		return Scalar
	}
}

func wipeRepStos(b []byte) {
	repStosb(unsafe.Pointer(unsafe.SliceData(b)), uintptr(len(b)))
	runtime.KeepAlive(b)
}

func wipeSSE2(b []byte) {
	wipeBlocks(b, 16, zeroBlocks16)
}

func wipeAVX(b []byte) {
	wipeBlocks(b, 32, zeroBlocks32)
}

// wipeBlocks writes a scalar head up to the first block-aligned address,
// then aligned vector blocks, then a scalar tail. The head, block and tail
// byte counts always sum to len(b): head = min(n, -base mod block), the
// block region is the largest multiple of block that fits the remainder,
// and the tail loop runs to n exactly.
//
//go:noinline
func wipeBlocks(b []byte, block int, zero func(unsafe.Pointer, uintptr)) {
	n := len(b)
	p := unsafe.Pointer(unsafe.SliceData(b))

	i := 0
	head := int(-uintptr(p) & uintptr(block-1))
	if head > n {
		head = n
	}
	for ; i < head; i++ {
		b[i] = 0
	}
	if blocks := (n - i) &^ (block - 1); blocks > 0 {
		zero(unsafe.Add(p, i), uintptr(blocks))
		i += blocks
	}
	for ; i < n; i++ {
		b[i] = 0
	}
	runtime.KeepAlive(b)
}
