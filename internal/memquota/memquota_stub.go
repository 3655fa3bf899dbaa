//go:build !linux && !windows

// File: internal/memquota/memquota_stub.go
// Author: momentics <momentics@gmail.com>
//
// Stub probe for unsupported platforms; the default budget applies.

package memquota

func totalSystemMemory() uint64 {
	return 0
}
