//go:build !unix && !windows

package pages

import "fmt"

// No page mapping or locking facility on this platform.

func allocPage(int) (*Page, error) {
	return nil, fmt.Errorf("%w: unsupported platform", ErrAlloc)
}

func lockPage(*Page) error {
	return fmt.Errorf("%w: unsupported platform", ErrLock)
}

func unlockPage(*Page) error { return nil }

func freePage(*Page) error { return nil }
