//go:build windows

package pages

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

// Call sites are function variables so tests can assert the arguments
// actually passed to the kernel, in particular that the region size is the
// requested byte length and never zero.
var (
	virtualAlloc  = windows.VirtualAlloc
	virtualFree   = windows.VirtualFree
	virtualLock   = windows.VirtualLock
	virtualUnlock = windows.VirtualUnlock
)

func allocPage(size int) (*Page, error) {
	// The size argument is the requested byte length of the region, not
	// the system page-size constant.
	addr, err := virtualAlloc(0, uintptr(size),
		windows.MEM_RESERVE|windows.MEM_COMMIT, windows.PAGE_READWRITE)
	if err != nil {
		return nil, fmt.Errorf("%w: VirtualAlloc: %v", ErrAlloc, err)
	}
	data := unsafe.Slice((*byte)(unsafe.Pointer(addr)), size)
	return &Page{data: data}, nil
}

// lockPage locks the region into the working set. VirtualLock takes the
// byte count of the region being locked.
func lockPage(p *Page) error {
	if err := virtualLock(p.base(), uintptr(len(p.data))); err != nil {
		return fmt.Errorf("%w: VirtualLock: %v", ErrLock, err)
	}
	return nil
}

func unlockPage(p *Page) error {
	return virtualUnlock(p.base(), uintptr(len(p.data)))
}

// freePage releases the region. MEM_RELEASE requires a zero size argument
// and frees the entire reservation.
func freePage(p *Page) error {
	return virtualFree(p.base(), 0, windows.MEM_RELEASE)
}

func (p *Page) base() uintptr {
	return uintptr(unsafe.Pointer(unsafe.SliceData(p.data)))
}
