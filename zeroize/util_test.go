package zeroize

import "unsafe"

// addrOf returns the address of the first byte of b. Test helper only.
func addrOf(b []byte) uintptr {
	return uintptr(unsafe.Pointer(unsafe.SliceData(b)))
}

// uint64sToBytes reinterprets a word slice as bytes, preserving the backing
// array so tests can inspect neighbouring bytes.
func uint64sToBytes(w []uint64) []byte {
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(w))), len(w)*8)
}
