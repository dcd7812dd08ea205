//go:build unix

package pages

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// allocPage maps one zero-initialized anonymous private page. The OS-
// specific extra map flags (swap reservation, core exclusion) come from
// the per-platform files.
func allocPage(size int) (*Page, error) {
	data, err := unix.Mmap(-1, 0, size,
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_PRIVATE|unix.MAP_ANON|mapExtraFlags)
	if err != nil {
		return nil, fmt.Errorf("%w: mmap: %v", ErrAlloc, err)
	}
	return &Page{data: data}, nil
}

func lockPage(p *Page) error {
	if err := unix.Mlock(p.data); err != nil {
		return fmt.Errorf("%w: mlock: %v", ErrLock, err)
	}
	// best-effort; a kernel without the advice still honors the lock
	adviseNoDump(p.data)
	return nil
}

func unlockPage(p *Page) error {
	return unix.Munlock(p.data)
}

// freePage unmaps the page. munmap also unlocks locked pages, so no
// separate munlock is needed on this path.
func freePage(p *Page) error {
	return unix.Munmap(p.data)
}
