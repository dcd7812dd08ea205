// Package zeroize provides guaranteed memory wiping for secret data.
//
// # Overview
//
// The functions in this package overwrite byte ranges with zeros in a way
// the compiler cannot elide, even when the memory is about to be freed or
// go out of scope. They are the scrubbing primitive used by the secure
// allocators in this module, and can be used directly to wipe key material
// before a buffer is released.
//
// # Strategies
//
// Several wiping strategies are implemented. All are externally equivalent
// (every byte of the range is zero after the call); they differ in speed
// and availability:
//
//   - Scalar: byte-for-byte stores. Always available, slowest.
//   - Scalar8: 8-byte word stores with head/tail handling. Always available.
//   - RepStos: a single `rep stosb` instruction. amd64 with ERMS.
//   - SSE2: 16-byte aligned vector stores. amd64 with SSE2.
//   - AVX: 32-byte aligned vector stores. amd64 with AVX2.
//
// Bytes and BytesAligned dispatch to the fastest strategy whose CPU and
// alignment requirements are met on the running machine; Strategies
// enumerates the usable ones for tests and benchmarks.
//
// # Elision resistance
//
// The vector and rep-stos strategies are assembly functions, opaque to the
// compiler. The scalar strategies are no-inline functions that end in a
// runtime.KeepAlive of the buffer, the pattern used across the Go ecosystem
// for wiping secrets (see golang/go#33325).
//
// Every store derives from the base pointer of the slice passed in and
// stays within its length. The package never writes through a rounded-up
// or widened region.
//
// # Concurrency
//
// Wiping is a plain sequence of stores, not an atomic operation. Callers
// must not wipe memory that another goroutine is concurrently accessing.
package zeroize
