//go:build windows

// SPDX-License-Identifier: Apache-2.0

package regionpool

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

// mmapArena is an Arena backed by a VirtualAlloc reservation+commit,
// mirroring momentics-hioload-ws/pool/bufferpool_windows.go's use of
// golang.org/x/sys/windows for OS-level buffer backing.
type mmapArena struct {
	addr uintptr
	size int64
}

func newMmapArena(size int64) (Arena, error) {
	if size <= 0 {
		return nil, ErrInvalidSize
	}
	addr, err := windows.VirtualAlloc(0, uintptr(size), windows.MEM_COMMIT|windows.MEM_RESERVE, windows.PAGE_READWRITE)
	if err != nil {
		return nil, ErrOutOfMemory
	}
	return &mmapArena{addr: addr, size: size}, nil
}

func (a *mmapArena) Bytes() []byte {
	if a.addr == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(a.addr)), a.size)
}

func (a *mmapArena) Release() {
	if a.addr != 0 {
		_ = windows.VirtualFree(a.addr, 0, windows.MEM_RELEASE)
		a.addr = 0
	}
}
