//go:build linux

// File: internal/memquota/memquota_linux.go
// Author: momentics <momentics@gmail.com>
//
// Linux total-memory probe via sysinfo(2).

package memquota

import "golang.org/x/sys/unix"

func totalSystemMemory() uint64 {
	var si unix.Sysinfo_t
	if err := unix.Sysinfo(&si); err != nil {
		return 0
	}
	return uint64(si.Totalram) * uint64(si.Unit)
}
