// SPDX-License-Identifier: Apache-2.0

package regionpool

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// fakeBases lets gapIndex tests resolve "base" without a full Pool.
type fakeBases map[int]int64

func (f fakeBases) of(seg int) int64 { return f[seg] }

func TestGapIndexInsertMaintainsSortOrder(t *testing.T) {
	g := newGapIndex(4, defaultGrowthFactor)
	bases := fakeBases{0: 0, 1: 50, 2: 100}
	positions := map[int]int{}
	setIdx := func(segIdx, gapIdx int) { positions[segIdx] = gapIdx }

	g.insert(30, 1, bases.of, setIdx)
	g.insert(10, 0, bases.of, setIdx)
	g.insert(20, 2, bases.of, setIdx)

	require.Equal(t, 3, g.len())
	require.Equal(t, int64(10), g.entries[0].size)
	require.Equal(t, int64(20), g.entries[1].size)
	require.Equal(t, int64(30), g.entries[2].size)

	for i, e := range g.entries {
		require.Equal(t, i, positions[e.segment])
	}
}

func TestGapIndexInsertBreaksTiesByBase(t *testing.T) {
	g := newGapIndex(4, defaultGrowthFactor)
	bases := fakeBases{0: 200, 1: 0, 2: 100}
	setIdx := func(int, int) {}

	g.insert(10, 0, bases.of, setIdx) // base 200
	g.insert(10, 1, bases.of, setIdx) // base 0
	g.insert(10, 2, bases.of, setIdx) // base 100

	require.Equal(t, []int{1, 2, 0}, []int{g.entries[0].segment, g.entries[1].segment, g.entries[2].segment})
}

func TestGapIndexRemoveAtShiftsSubsequentEntries(t *testing.T) {
	g := newGapIndex(4, defaultGrowthFactor)
	bases := fakeBases{0: 0, 1: 10, 2: 20}
	positions := map[int]int{}
	setIdx := func(segIdx, gapIdx int) { positions[segIdx] = gapIdx }

	g.insert(10, 0, bases.of, setIdx)
	g.insert(20, 1, bases.of, setIdx)
	g.insert(30, 2, bases.of, setIdx)

	g.removeAt(0, setIdx)

	require.Equal(t, 2, g.len())
	require.Equal(t, int64(20), g.entries[0].size)
	require.Equal(t, int64(30), g.entries[1].size)
	require.Equal(t, 0, positions[1])
	require.Equal(t, 1, positions[2])
}

func TestGapIndexRemoveAtLastEntry(t *testing.T) {
	g := newGapIndex(4, defaultGrowthFactor)
	bases := fakeBases{0: 0}
	setIdx := func(int, int) {}
	g.insert(10, 0, bases.of, setIdx)

	g.removeAt(0, setIdx)

	require.Equal(t, 0, g.len())
}

func TestGapIndexBestFitPicksSmallestSufficientEntry(t *testing.T) {
	g := newGapIndex(4, defaultGrowthFactor)
	bases := fakeBases{0: 0, 1: 10, 2: 20}
	setIdx := func(int, int) {}
	g.insert(100, 0, bases.of, setIdx)
	g.insert(10, 1, bases.of, setIdx)
	g.insert(50, 2, bases.of, setIdx)

	pos, ok := g.bestFit(20)
	require.True(t, ok)
	require.Equal(t, int64(50), g.entries[pos].size)
}

func TestGapIndexBestFitReportsNoneWhenNothingFits(t *testing.T) {
	g := newGapIndex(4, defaultGrowthFactor)
	bases := fakeBases{0: 0}
	setIdx := func(int, int) {}
	g.insert(10, 0, bases.of, setIdx)

	_, ok := g.bestFit(1000)
	require.False(t, ok)
}
