// SPDX-License-Identifier: Apache-2.0

package regionpool

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// checkInvariants verifies the at-rest invariants from spec §3/§8
// against a pool's current internal state. It is called after every
// operation in the tests below.
func checkInvariants(t *testing.T, p *Pool) {
	t.Helper()

	expectedBase := int64(0)
	havePrev := false
	prevAllocated := false

	var allocSize, gapSize int64
	numAllocs, numGaps := 0, 0

	for i := p.head; i != noSegment; {
		seg := p.arena.get(i)
		require.True(t, seg.used, "segment %d in list but not marked used", i)
		require.Equal(t, expectedBase, seg.base, "segment %d base mismatch", i)
		require.Greater(t, seg.size, int64(0), "segment %d has non-positive size", i)

		if havePrev {
			require.False(t, !prevAllocated && !seg.allocated, "adjacent gaps at segment %d", i)
		}

		if seg.allocated {
			numAllocs++
			allocSize += seg.size
			require.Equal(t, noSegment, seg.gapIdx)
		} else {
			numGaps++
			gapSize += seg.size
			require.True(t, seg.gapIdx >= 0 && seg.gapIdx < len(p.gaps.entries))
			require.Equal(t, i, p.gaps.entries[seg.gapIdx].segment)
		}

		expectedBase += seg.size
		prevAllocated = seg.allocated
		havePrev = true
		i = seg.next
	}

	require.Equal(t, p.totalSize, expectedBase, "segments do not tile the region")
	require.Equal(t, p.totalSize, allocSize+gapSize)
	require.Equal(t, p.numAllocs, numAllocs)
	require.Equal(t, p.numGaps, numGaps)
	require.Equal(t, p.allocSize, allocSize)
	require.Equal(t, numGaps, p.gaps.len())

	for idx, e := range p.gaps.entries {
		seg := p.arena.get(e.segment)
		require.False(t, seg.allocated)
		require.Equal(t, e.size, seg.size)
		require.Equal(t, idx, seg.gapIdx)
		if idx > 0 {
			prev := p.gaps.entries[idx-1]
			if prev.size == e.size {
				require.LessOrEqual(t, p.baseOf(prev.segment), p.baseOf(e.segment))
			} else {
				require.Less(t, prev.size, e.size)
			}
		}
	}
}
