package pages

import (
	"errors"
	"os"
	"sync"
)

var (
	// ErrAlloc indicates the OS refused to map a memory page.
	ErrAlloc = errors.New("pages: could not map a memory page")

	// ErrLock indicates the OS refused to lock a page into physical
	// memory, typically for lack of privilege or because the locked
	// memory limit is exhausted.
	ErrLock = errors.New("pages: could not lock page into physical memory")
)

var (
	pageSizeOnce sync.Once
	pageSize     int
)

// Size returns the system page size in bytes. The value is a power of two
// and constant for the life of the process; it is cached after the first
// call.
func Size() int {
	pageSizeOnce.Do(func() {
		pageSize = os.Getpagesize()
	})
	return pageSize
}

// A Page is one exclusively owned page of OS memory.
//
// The zero value is not usable; obtain pages from Alloc or AllocLocked.
// A Page is not safe for concurrent mutation.
type Page struct {
	data   []byte
	locked bool
	freed  bool
}

// Bytes returns the page contents. The slice becomes invalid once the page
// is freed.
func (p *Page) Bytes() []byte { return p.data }

// Len returns the page size in bytes.
func (p *Page) Len() int { return len(p.data) }

// Locked reports whether the page is currently locked into RAM.
func (p *Page) Locked() bool { return p.locked }

// Alloc maps one zero-initialized page of anonymous memory in the reserved
// state. The returned error wraps ErrAlloc.
func Alloc() (*Page, error) {
	return allocPage(Size())
}

// AllocLocked maps one page and locks it into physical RAM, advising the
// kernel against including it in dumps where supported. If locking fails
// the page is released before returning, so no reserved-but-unlocked
// mapping leaks. The returned error wraps ErrAlloc or ErrLock.
func AllocLocked() (*Page, error) {
	p, err := Alloc()
	if err != nil {
		return nil, err
	}
	if err := p.Lock(); err != nil {
		_ = p.Free()
		return nil, err
	}
	return p, nil
}

// Lock locks the page into physical RAM and advises the kernel to exclude
// it from core dumps where the platform has such advice. The returned
// error wraps ErrLock.
func (p *Page) Lock() error {
	if p.locked {
		return nil
	}
	if err := lockPage(p); err != nil {
		return err
	}
	p.locked = true
	return nil
}

// Unlock reverses Lock.
func (p *Page) Unlock() error {
	if !p.locked {
		return nil
	}
	if err := unlockPage(p); err != nil {
		return err
	}
	p.locked = false
	return nil
}

// Free returns the page to the OS. It is valid in any state: releasing a
// mapping implicitly unlocks it, and freeing an already freed page is a
// no-op.
func (p *Page) Free() error {
	if p.freed {
		return nil
	}
	err := freePage(p)
	p.freed = true
	p.locked = false
	p.data = nil
	return err
}
