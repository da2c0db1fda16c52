// SPDX-License-Identifier: Apache-2.0

package regionpool

// Handle is an opaque reference to a live allocation, returned by
// Allocate and consumed by Release. It is a borrowed reference: valid
// until that specific allocation is released, never moved or
// invalidated by the engine while live.
//
// A Handle carries the issuing pool's process-unique ID plus that
// pool's generation stamp, so that a handle from a different pool
// entirely — not just one used after its pool was closed — is rejected
// by Release as invalid rather than resolved against a same-indexed
// segment in the wrong pool.
type Handle struct {
	poolID     uint64
	generation uint64
	segment    int
}

// Base returns the address of the allocation within the pool's region.
// base and size require the owning Pool to resolve, since the handle
// itself holds only the engine-internal arena index.
func (p *Pool) Base(h Handle) (int64, error) {
	seg, err := p.resolve(h)
	if err != nil {
		return 0, err
	}
	return seg.base, nil
}

// Size returns the byte length of the allocation referenced by h.
func (p *Pool) Size(h Handle) (int64, error) {
	seg, err := p.resolve(h)
	if err != nil {
		return 0, err
	}
	return seg.size, nil
}

// resolve validates h against this pool's identity and generation and
// the target segment's liveness, returning ErrInvalidHandle otherwise.
func (p *Pool) resolve(h Handle) (*segment, error) {
	if h.poolID != p.id || h.generation != p.generation || h.segment < 0 || h.segment >= len(p.arena.records) {
		return nil, ErrInvalidHandle
	}
	seg := p.arena.get(h.segment)
	if !seg.used || !seg.allocated {
		return nil, ErrInvalidHandle
	}
	return seg, nil
}
