// SPDX-License-Identifier: Apache-2.0

package regionpool

const defaultGapIndexCapacity = 4

// gapEntry is one row of the gap index: the gap's size and the arena
// index of the segment it describes.
type gapEntry struct {
	size    int64
	segment int
}

// gapIndex is a dense, sorted secondary index over gap segments,
// ordered by (size asc, base asc) — component C. It is small in
// practice (bounded by fragmentation, which is bounded by the number of
// live allocations), so a sorted slice with O(n) insert beats a tree
// on cache locality at the sizes this engine targets.
type gapIndex struct {
	entries      []gapEntry
	growthFactor float64
}

func newGapIndex(initialCapacity int, growthFactor float64) *gapIndex {
	if initialCapacity <= 0 {
		initialCapacity = defaultGapIndexCapacity
	}
	if growthFactor <= 1.0 {
		growthFactor = defaultGrowthFactor
	}
	return &gapIndex{entries: make([]gapEntry, 0, initialCapacity), growthFactor: growthFactor}
}

func (g *gapIndex) len() int { return len(g.entries) }

func (g *gapIndex) growIfNeeded() {
	capacity := cap(g.entries)
	if capacity == 0 || len(g.entries)*4 > capacity*3 {
		newCap := int(float64(capacity) * g.growthFactor)
		if newCap <= capacity {
			newCap = defaultGapIndexCapacity
		}
		grown := make([]gapEntry, len(g.entries), newCap)
		copy(grown, g.entries)
		g.entries = grown
	}
}

// less reports whether entry a sorts before entry b under (size asc,
// base asc), where base is resolved through the owning arena since the
// index itself only stores the segment's size and arena index.
func (g *gapIndex) less(a, b gapEntry, baseOf func(int) int64) bool {
	if a.size != b.size {
		return a.size < b.size
	}
	return baseOf(a.segment) < baseOf(b.segment)
}

// insert appends the entry and bubbles it up to its sorted position,
// reporting the segment's final position via seg.gapIdx through setIdx.
func (g *gapIndex) insert(size int64, segIdx int, baseOf func(int) int64, setIdx func(segIdx, gapIdx int)) {
	g.growIfNeeded()
	g.entries = append(g.entries, gapEntry{size: size, segment: segIdx})
	i := len(g.entries) - 1
	setIdx(segIdx, i)
	for i > 0 && g.less(g.entries[i], g.entries[i-1], baseOf) {
		g.entries[i], g.entries[i-1] = g.entries[i-1], g.entries[i]
		setIdx(g.entries[i].segment, i)
		setIdx(g.entries[i-1].segment, i-1)
		i--
	}
}

// removeAt removes the entry at position i, shifting subsequent entries
// down by one. The shift is bounded to len-1 slots, avoiding the
// one-past-the-end read spec §9 calls out in the original.
func (g *gapIndex) removeAt(i int, setIdx func(segIdx, gapIdx int)) {
	n := len(g.entries)
	for j := i; j < n-1; j++ {
		g.entries[j] = g.entries[j+1]
		setIdx(g.entries[j].segment, j)
	}
	g.entries[n-1] = gapEntry{}
	g.entries = g.entries[:n-1]
}

// bestFit returns the index (within the gap index) of the first entry
// whose size is >= requested — the smallest fitting gap, ties broken by
// lowest base address since the index is sorted (size asc, base asc).
func (g *gapIndex) bestFit(requested int64) (pos int, ok bool) {
	for i, e := range g.entries {
		if e.size >= requested {
			return i, true
		}
	}
	return 0, false
}
