//go:build linux

package pages

import "golang.org/x/sys/unix"

// MAP_NORESERVE keeps the mapping out of the swap reservation accounting;
// combined with mlock the page never touches swap.
const mapExtraFlags = unix.MAP_NORESERVE

// adviseNoDump asks the kernel to exclude the region from core dumps.
func adviseNoDump(data []byte) {
	_ = unix.Madvise(data, unix.MADV_DONTDUMP)
}
