//go:build windows

// File: internal/memquota/memquota_windows.go
// Author: momentics <momentics@gmail.com>
//
// Windows total-memory probe via GlobalMemoryStatusEx.

package memquota

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

func totalSystemMemory() uint64 {
	var ms windows.MemoryStatusEx
	ms.Length = uint32(unsafe.Sizeof(ms))
	if err := windows.GlobalMemoryStatusEx(&ms); err != nil {
		return 0
	}
	return ms.TotalPhys
}
