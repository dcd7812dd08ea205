// Package secbuf provides an owning secret buffer parameterized by an
// allocator.
//
// A Buffer holds exactly one block obtained from an alloc.Allocator and
// releases it through the same allocator on Close. Used with the secure
// allocators of this module, closing the buffer guarantees the secret
// bytes are zeroized, and resizing scrubs any memory the contents move
// out of.
//
//	s, err := alloc.NewSecStack()
//	if err != nil { ... }
//	defer s.Close()
//
//	key, err := secbuf.New(s, 32)
//	if err != nil { ... }
//	defer key.Close()
//
//	copy(key.Bytes(), material)
package secbuf
