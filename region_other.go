//go:build !linux && !windows

// SPDX-License-Identifier: Apache-2.0

package regionpool

// newMmapArena falls back to the heap arena on platforms without an
// OS-backed implementation wired in.
func newMmapArena(size int64) (Arena, error) {
	return newHeapArena(size)
}
