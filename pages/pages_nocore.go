//go:build freebsd || dragonfly

package pages

import "golang.org/x/sys/unix"

// MAP_NOCORE excludes the mapping from core dumps at map time; these
// systems have no MAP_NORESERVE.
const mapExtraFlags = unix.MAP_NOCORE

// adviseNoDump is a no-op: core exclusion already happened via MAP_NOCORE.
func adviseNoDump([]byte) {}
