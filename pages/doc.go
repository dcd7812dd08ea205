// Package pages allocates, locks and releases single pages of OS memory
// for secret storage.
//
// # Overview
//
// The page service is the OS boundary of the secure allocators: it maps one
// page of anonymous memory at a time, locks it into physical RAM so it
// cannot be written to swap, and advises the kernel to keep it out of core
// dumps where the platform supports that.
//
// A Page moves through three states:
//
//	reserved  -- address space mapped and committed, zero-initialized
//	locked    -- resident in RAM, excluded from swap, no-dump advised
//	released  -- returned to the OS
//
// AllocLocked performs reserved -> locked in one step and releases the page
// on the lock error path, so a failed construction never leaks a mapping.
// Free is valid in any state and releasing a mapping implicitly unlocks it.
//
// # Platform notes
//
// On Unix systems pages come from an anonymous private mmap; Linux adds
// MAP_NORESERVE (no swap reservation) and advises MADV_DONTDUMP, FreeBSD
// and DragonFly map with MAP_NOCORE. Locking is mlock(2). The amount of
// memory an unprivileged process may lock is limited (RLIMIT_MEMLOCK);
// exceeding it surfaces as an error wrapping ErrLock.
//
// On Windows pages come from VirtualAlloc with MEM_RESERVE|MEM_COMMIT and
// are locked into the working set with VirtualLock. The region size passed
// to VirtualAlloc, VirtualLock and VirtualUnlock is the requested byte
// length, never the page-size constant; VirtualFree with MEM_RELEASE takes
// a zero size and releases the whole reservation.
//
// Hibernation writes even locked pages to disk; that is out of scope here
// and must be handled by disabling hibernation at the OS level.
package pages
