package alloc

import (
	"fmt"

	"github.com/niluxv/secmem-alloc/pages"
	"github.com/niluxv/secmem-alloc/zeroize"
)

// span records one sub-allocation of a SecStack. The records live on the
// Go heap, outside the secret page.
type span struct {
	start int // page offset of the first byte handed to the caller
	pad   int // alignment padding between the previous top and start
	size  int // reserved size, rounded up to a multiple of 8
	dead  bool
}

// SecStack is a memory allocator for confidential memory, backed by a
// single page of mlocked RAM. Allocation works like a bump allocator:
// blocks are carved off a cursor, and releasing blocks in reverse order of
// allocation (LIFO) moves the cursor back. Releases in any other order are
// legal: the block is scrubbed immediately, but its space is only
// reclaimed once every block above it is released.
//
// Only one page of memory is available per SecStack (4 KiB on most
// systems); requests beyond what is left return ErrOutOfMemory.
//
// Every release zeroizes the block, freshly carved blocks are always zero,
// and Close scrubs the entire page before unlocking and returning it to
// the OS. The number of pages a process may lock is a scarce global
// resource; construction fails rather than falling back to unlocked
// memory.
//
// A SecStack is not safe for concurrent mutation.
type SecStack struct {
	page   *pages.Page
	spans  []span
	off    int // top of stack: offset of the first free byte, multiple of 8
	closed bool
}

// NewSecStack allocates one page of memory, locks it into physical RAM and
// advises the kernel to exclude it from core dumps. The returned error
// wraps pages.ErrAlloc or pages.ErrLock; on a lock failure the reserved
// page is released before returning.
//
// Unprivileged processes can lock only a limited amount of memory
// (RLIMIT_MEMLOCK on Linux); constructing many SecStacks can exhaust it.
func NewSecStack() (*SecStack, error) {
	p, err := pages.AllocLocked()
	if err != nil {
		return nil, fmt.Errorf("alloc: secure stack init: %w", err)
	}
	return &SecStack{page: p}, nil
}

// Alloc carves l.Size bytes aligned to l.Align off the top of the stack.
// Sizes are rounded up to a multiple of 8 internally and blocks are handed
// out at least 8-byte aligned, which keeps the cursor 8-aligned and
// enables wide wiping strategies. The returned block is all zeros.
func (s *SecStack) Alloc(l Layout) ([]byte, error) {
	checkLayout(l)
	s.mustBeOpen()
	mem := s.page.Bytes()

	if l.Size == 0 {
		start := min(alignUp(s.off, min(l.Align, len(mem))), len(mem))
		return mem[start:start:start], nil
	}
	if l.Size > len(mem) || l.Align > len(mem) {
		return nil, ErrOutOfMemory
	}

	start := s.off
	if l.Align > 8 {
		// the page base is page-aligned, so aligning the offset aligns
		// the address
		start = alignUp(s.off, l.Align)
	}
	rounded := roundUp8(l.Size)
	if start+rounded > len(mem) {
		return nil, ErrOutOfMemory
	}

	s.spans = append(s.spans, span{start: start, pad: start - s.off, size: rounded})
	s.off = start + rounded
	// capacity is capped at l.Size: the slack up to the rounded size must
	// stay unwritable so it remains zero
	return mem[start : start+l.Size : start+l.Size], nil
}

// Free zeroizes the block and, when it is the top of the stack, moves the
// cursor back over the block and its alignment padding. Freeing out of
// LIFO order is legal: the bytes are scrubbed now and the space is
// reclaimed when the blocks above release.
//
// Exactly l.Size bytes are wiped, through the slice the caller passed;
// the rounded-up slack was never writable and is still zero.
func (s *SecStack) Free(b []byte, l Layout) {
	checkLayout(l)
	s.mustBeOpen()
	if l.Size == 0 {
		return
	}

	zeroize.BytesAligned(b[:l.Size], uintptr(max(8, l.Align)))

	start := s.offsetOf(b)
	for i := len(s.spans) - 1; i >= 0; i-- {
		if s.spans[i].start == start {
			s.spans[i].dead = true
			break
		}
	}
	s.reclaim()
}

// Grow extends b to newLayout.Size bytes. The top block grows in place
// when its address satisfies the new alignment and the new size fits the
// page; any other block moves to a fresh sub-allocation and the old bytes
// are scrubbed. The added bytes are zero either way.
func (s *SecStack) Grow(b []byte, oldLayout, newLayout Layout) ([]byte, error) {
	checkLayout(oldLayout)
	checkLayout(newLayout)
	s.mustBeOpen()
	if oldLayout.Size == 0 {
		return s.Alloc(newLayout)
	}
	if newLayout.Size > s.page.Len() {
		return nil, ErrOutOfMemory
	}

	mem := s.page.Bytes()
	start := s.offsetOf(b)
	if i := len(s.spans) - 1; i >= 0 && s.spans[i].start == start &&
		newLayout.Align <= len(mem) && start&(newLayout.Align-1) == 0 {
		// top block with sufficient alignment: extend in place
		rounded := roundUp8(newLayout.Size)
		if start+rounded > len(mem) {
			return nil, ErrOutOfMemory
		}
		s.spans[i].size = rounded
		s.off = start + rounded
		return mem[start : start+newLayout.Size : start+newLayout.Size], nil
	}

	nb, err := s.Alloc(newLayout)
	if err != nil {
		return nil, err
	}
	copy(nb, b[:oldLayout.Size])
	s.Free(b, oldLayout)
	return nb, nil
}

// Shrink reduces b to newLayout.Size bytes. When the block's address
// already satisfies the new alignment it shrinks in place — even for
// blocks below the top, trading fragmentation for scrubbing the released
// tail as early as possible. The cursor is pulled back when the block is
// on top.
func (s *SecStack) Shrink(b []byte, oldLayout, newLayout Layout) ([]byte, error) {
	checkLayout(oldLayout)
	checkLayout(newLayout)
	s.mustBeOpen()
	if newLayout.Size == 0 {
		s.Free(b, oldLayout)
		return s.Alloc(newLayout)
	}

	start := s.offsetOf(b)
	if newLayout.Align <= s.page.Len() && start&(newLayout.Align-1) == 0 {
		zeroize.Bytes(b[newLayout.Size:oldLayout.Size])
		rounded := roundUp8(newLayout.Size)
		if i := len(s.spans) - 1; i >= 0 && s.spans[i].start == start {
			// top block: return the freed range to the free region
			s.spans[i].size = rounded
			s.off = start + rounded
		}
		return b[:newLayout.Size:newLayout.Size], nil
	}

	// the block cannot satisfy the new alignment in place
	nb, err := s.Alloc(newLayout)
	if err != nil {
		return nil, err
	}
	copy(nb, b[:newLayout.Size])
	s.Free(b, oldLayout)
	return nb, nil
}

// Close scrubs the entire page with the widest wiping strategy, unlocks it
// and returns it to the OS. Close is idempotent; an unlock failure at
// teardown is ignored because the page is being released regardless.
func (s *SecStack) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	s.wipe()
	_ = s.page.Unlock()
	return s.page.Free()
}

// wipe scrubs the whole page and resets the stack state.
func (s *SecStack) wipe() {
	mem := s.page.Bytes()
	zeroize.BytesAligned(mem, uintptr(len(mem)))
	s.spans = s.spans[:0]
	s.off = 0
}

// reclaim pops dead spans off the top of the stack, returning their bytes
// and alignment padding to the free region. Padding bytes are already
// zero: the page started zero and padding is never handed out.
func (s *SecStack) reclaim() {
	for len(s.spans) > 0 {
		top := s.spans[len(s.spans)-1]
		if !top.dead {
			return
		}
		s.off = top.start - top.pad
		s.spans = s.spans[:len(s.spans)-1]
	}
}

// offsetOf translates a block's base address to its page offset.
func (s *SecStack) offsetOf(b []byte) int {
	return int(baseAddr(b) - baseAddr(s.page.Bytes()))
}

func (s *SecStack) mustBeOpen() {
	if s.closed {
		panic("alloc: use of closed SecStack")
	}
}

var _ Allocator = (*SecStack)(nil)
