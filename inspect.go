// SPDX-License-Identifier: Apache-2.0

package regionpool

import (
	"fmt"
	"strings"
)

// SegmentInfo is a read-only snapshot of one segment in address order.
type SegmentInfo struct {
	Base      int64
	Size      int64
	Allocated bool
}

// Inspect walks the segment list in address order and returns a
// snapshot covering the whole region. It is a pure read: two
// successive calls with no intervening mutation return equal slices.
func (p *Pool) Inspect() []SegmentInfo {
	out := make([]SegmentInfo, 0, p.numAllocs+p.numGaps)
	for i := p.head; i != noSegment; {
		seg := p.arena.get(i)
		out = append(out, SegmentInfo{Base: seg.base, Size: seg.size, Allocated: seg.allocated})
		i = seg.next
	}
	return out
}

// Dump formats Inspect's result as a human-readable report, one line
// per segment — handy for a CLI driver printing pool state on every
// command.
func (p *Pool) Dump() string {
	var b strings.Builder
	fmt.Fprintf(&b, "pool: total=%d alloc=%d allocs=%d gaps=%d policy=%s\n",
		p.totalSize, p.allocSize, p.numAllocs, p.numGaps, p.policy)
	for _, seg := range p.Inspect() {
		kind := "gap"
		if seg.Allocated {
			kind = "alloc"
		}
		fmt.Fprintf(&b, "  [%d, %d) size=%d %s\n", seg.Base, seg.Base+seg.Size, seg.Size, kind)
	}
	return b.String()
}
