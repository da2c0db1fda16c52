// SPDX-License-Identifier: Apache-2.0

package regionpool

import "sync"

// SynchronizedPool wraps a Pool with a mutex so that it can be shared
// across goroutines. The engine itself never synchronizes internally
// (see package doc) — this is the external wrapper callers needing
// concurrent access are expected to supply themselves, provided here
// for convenience.
type SynchronizedPool struct {
	mu sync.Mutex
	p  *Pool
}

// NewSynchronizedPool wraps p for concurrent use. p must not be used
// directly afterwards.
func NewSynchronizedPool(p *Pool) *SynchronizedPool {
	return &SynchronizedPool{p: p}
}

func (s *SynchronizedPool) Allocate(size int64) (Handle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.p.Allocate(size)
}

func (s *SynchronizedPool) Release(h Handle) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.p.Release(h)
}

func (s *SynchronizedPool) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.p.Close()
}

func (s *SynchronizedPool) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.p.Stats()
}

func (s *SynchronizedPool) Inspect() []SegmentInfo {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.p.Inspect()
}

func (s *SynchronizedPool) Base(h Handle) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.p.Base(h)
}

func (s *SynchronizedPool) Size(h Handle) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.p.Size(h)
}
