// SPDX-License-Identifier: Apache-2.0

package regionpool

import "sync/atomic"

// nextPoolID mints process-unique Pool identities, stamped into every
// Handle a pool issues so Release can tell apart two independently
// opened pools even when their internal generation counters and arena
// indices happen to coincide.
var nextPoolID atomic.Uint64

// Policy selects how Allocate chooses among candidate gaps.
type Policy int

const (
	// FirstFit scans the segment list in address order and picks the
	// first gap that fits.
	FirstFit Policy = iota
	// BestFit scans the gap index and picks the smallest gap that
	// fits, ties broken by lowest base address.
	BestFit
)

func (p Policy) String() string {
	switch p {
	case FirstFit:
		return "first-fit"
	case BestFit:
		return "best-fit"
	default:
		return "unknown"
	}
}

// Pool is a fixed-region memory pool allocator. It is not safe for
// concurrent use; see SynchronizedPool for an external-mutex wrapper.
type Pool struct {
	id        uint64
	region    Arena
	totalSize int64
	policy    Policy

	arena *nodeArena
	gaps  *gapIndex

	head, tail int // segment arena indices; noSegment when the pool is empty

	numAllocs int
	numGaps   int
	allocSize int64

	generation uint64
	closed     bool
}

// PoolOption configures a Pool at Open time, following the functional
// options idiom.
type PoolOption func(*poolConfig)

// defaultGrowthFactor is applied when WithGrowthFactor is not given, or
// is given a factor too small to ever grow (<= 1.0).
const defaultGrowthFactor = 2.0

type poolConfig struct {
	policy              Policy
	growthFactor        float64
	initialNodeCapacity int
	initialGapCapacity  int
	mmapRegion          bool
}

// WithPolicy sets the pool's placement policy. The default is FirstFit.
func WithPolicy(policy Policy) PoolOption {
	return func(c *poolConfig) {
		c.policy = policy
	}
}

// WithGrowthFactor sets the multiplier the node arena and gap index
// grow their backing storage by once 75% full, in place of the default
// doubling. Factors <= 1.0 are rejected in favor of the default, since
// they would never actually grow the backing store.
func WithGrowthFactor(factor float64) PoolOption {
	return func(c *poolConfig) {
		c.growthFactor = factor
	}
}

// WithInitialCapacity sizes the node arena and gap index's initial
// backing storage, avoiding early growth steps for pools expected to
// host many allocations.
func WithInitialCapacity(n int) PoolOption {
	return func(c *poolConfig) {
		c.initialNodeCapacity = n
		c.initialGapCapacity = n
	}
}

// WithMmapRegion backs the pool's region with an OS-level anonymous
// mapping instead of a Go-heap byte slice.
func WithMmapRegion() PoolOption {
	return func(c *poolConfig) {
		c.mmapRegion = true
	}
}

// Open creates a pool managing a region of size bytes. The region
// starts as a single gap covering the whole region. Policy defaults to
// FirstFit; pass WithPolicy to select BestFit.
func Open(size int64, opts ...PoolOption) (*Pool, error) {
	if size <= 0 {
		return nil, ErrInvalidSize
	}

	cfg := poolConfig{policy: FirstFit, growthFactor: defaultGrowthFactor}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.growthFactor <= 1.0 {
		cfg.growthFactor = defaultGrowthFactor
	}

	var region Arena
	var err error
	if cfg.mmapRegion {
		region, err = newMmapArena(size)
	} else {
		region, err = newHeapArena(size)
	}
	if err != nil {
		return nil, ErrOutOfMemory
	}

	p := &Pool{
		id:        nextPoolID.Add(1),
		region:    region,
		totalSize: size,
		policy:    cfg.policy,
		arena:     newNodeArena(cfg.initialNodeCapacity, cfg.growthFactor),
		gaps:      newGapIndex(cfg.initialGapCapacity, cfg.growthFactor),
	}

	root := p.arena.acquire()
	seg := p.arena.get(root)
	seg.base = 0
	seg.size = size
	seg.allocated = false
	seg.prev, seg.next = noSegment, noSegment
	p.head, p.tail = root, root
	p.gaps.insert(size, root, p.baseOf, p.setGapIdx)
	p.numGaps = 1

	return p, nil
}

// Close destroys the pool, releasing its region, provided no
// allocations are outstanding and exactly one gap (the whole region)
// remains — otherwise it refuses with ErrNotFreed, since closing would
// leave the caller holding dangling handles.
func (p *Pool) Close() error {
	if p.closed {
		return nil
	}
	if p.numAllocs != 0 || p.numGaps != 1 {
		return ErrNotFreed
	}
	p.region.Release()
	p.closed = true
	p.generation++
	return nil
}

// Stats is the pool's counters snapshot, cheaper than Inspect since it
// does not walk the segment list.
type Stats struct {
	TotalSize int64
	AllocSize int64
	NumAllocs int
	NumGaps   int
}

// Stats returns the pool's current counters.
func (p *Pool) Stats() Stats {
	return Stats{
		TotalSize: p.totalSize,
		AllocSize: p.allocSize,
		NumAllocs: p.numAllocs,
		NumGaps:   p.numGaps,
	}
}

// Policy returns the placement policy the pool was opened with.
func (p *Pool) Policy() Policy { return p.policy }

// baseOf resolves a segment's base address by its arena index; used by
// the gap index to order entries by (size, base) without storing base
// addresses redundantly in the index itself.
func (p *Pool) baseOf(segIdx int) int64 {
	return p.arena.get(segIdx).base
}

// setGapIdx records a segment's position within the gap index.
func (p *Pool) setGapIdx(segIdx, gapIdx int) {
	p.arena.get(segIdx).gapIdx = gapIdx
}
