// SPDX-License-Identifier: Apache-2.0

package regionpool

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSegmentSplitWithResidual(t *testing.T) {
	s := &segment{base: 0, size: 1000, allocated: false, gapIdx: 3}

	residual := s.split(100)

	require.Equal(t, int64(900), residual)
	require.Equal(t, int64(100), s.size)
	require.True(t, s.allocated)
	require.Equal(t, noSegment, s.gapIdx)
}

func TestSegmentSplitExactFit(t *testing.T) {
	s := &segment{base: 0, size: 100, allocated: false, gapIdx: 0}

	residual := s.split(100)

	require.Equal(t, int64(0), residual)
	require.Equal(t, int64(100), s.size)
	require.True(t, s.allocated)
}
