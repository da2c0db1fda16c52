//go:build linux

// SPDX-License-Identifier: Apache-2.0

package regionpool

import "golang.org/x/sys/unix"

// mmapArena is an Arena backed by an anonymous, private mmap mapping,
// mirroring momentics-hioload-ws/pool/bufferpool_linux.go's use of
// golang.org/x/sys/unix for OS-level buffer backing.
type mmapArena struct {
	buf []byte
}

// newMmapArena allocates size bytes via mmap(MAP_ANONYMOUS|MAP_PRIVATE).
func newMmapArena(size int64) (Arena, error) {
	if size <= 0 {
		return nil, ErrInvalidSize
	}
	buf, err := unix.Mmap(-1, 0, int(size), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, ErrOutOfMemory
	}
	return &mmapArena{buf: buf}, nil
}

func (a *mmapArena) Bytes() []byte { return a.buf }

func (a *mmapArena) Release() {
	if a.buf != nil {
		_ = unix.Munmap(a.buf)
		a.buf = nil
	}
}
