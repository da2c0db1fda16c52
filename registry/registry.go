// SPDX-License-Identifier: Apache-2.0

// Package registry is the process-level collaborator that tracks open
// pools, outside the allocator engine's core scope. A Registry assigns
// each opened pool a small integer ID, reusing IDs from closed pools
// before minting new ones, and logs lifecycle events structurally.
package registry

import (
	"fmt"
	"sync"

	"github.com/eapache/queue"
	"github.com/sirupsen/logrus"

	"github.com/regionpool/regionpool"
)

// Registry tracks open pools by ID. Its methods take an internal
// mutex, so a Registry itself is safe for concurrent use, unlike the
// bare Pool it wraps.
type Registry struct {
	mu          sync.Mutex
	initialized bool
	pools       map[int]*regionpool.Pool
	freeIDs     *queue.Queue
	nextID      int
	log         *logrus.Logger
}

// New creates an uninitialized Registry. log may be nil, in which case
// a standard logrus.Logger is used.
func New(log *logrus.Logger) *Registry {
	if log == nil {
		log = logrus.New()
	}
	return &Registry{log: log}
}

// Init prepares the registry for use. Calling Init twice without an
// intervening Shutdown returns regionpool.ErrAlreadyInitialized.
func (r *Registry) Init() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.initialized {
		return regionpool.ErrAlreadyInitialized
	}
	r.pools = make(map[int]*regionpool.Pool)
	r.freeIDs = queue.New()
	r.nextID = 0
	r.initialized = true
	r.log.Info("registry initialized")
	return nil
}

// Shutdown tears down the registry. It refuses with an error naming
// the still-open pool count if any pool has not been closed first.
func (r *Registry) Shutdown() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.initialized {
		return regionpool.ErrNotInitialized
	}
	if n := len(r.pools); n > 0 {
		return fmt.Errorf("registry: %d pool(s) still open", n)
	}
	r.pools = nil
	r.freeIDs = nil
	r.initialized = false
	r.log.Info("registry shut down")
	return nil
}

// Open creates a pool via regionpool.Open and registers it, returning
// the ID callers use to address it through Get/Close.
func (r *Registry) Open(size int64, opts ...regionpool.PoolOption) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.initialized {
		return 0, regionpool.ErrNotInitialized
	}

	p, err := regionpool.Open(size, opts...)
	if err != nil {
		r.log.WithError(err).WithField("size", size).Error("pool open failed")
		return 0, err
	}

	id := r.allocateID()
	r.pools[id] = p
	r.log.WithFields(logrus.Fields{"pool_id": id, "size": size, "policy": p.Policy().String()}).Info("pool opened")
	return id, nil
}

// Close closes the pool identified by id and releases its ID for
// reuse. The ID is returned to the free queue only on success, so a
// pool refusing to close (ErrNotFreed) keeps its slot.
func (r *Registry) Close(id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.initialized {
		return regionpool.ErrNotInitialized
	}
	p, ok := r.pools[id]
	if !ok {
		return fmt.Errorf("registry: unknown pool id %d", id)
	}
	if err := p.Close(); err != nil {
		r.log.WithError(err).WithField("pool_id", id).Warn("pool close refused")
		return err
	}
	delete(r.pools, id)
	r.freeIDs.Add(id)
	r.log.WithField("pool_id", id).Info("pool closed")
	return nil
}

// Get returns the pool registered under id.
func (r *Registry) Get(id int) (*regionpool.Pool, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.pools[id]
	return p, ok
}

// Len returns the number of currently open pools.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.pools)
}

// allocateID reuses a freed ID if one is queued, else mints the next
// sequential ID. Caller must hold r.mu.
func (r *Registry) allocateID() int {
	if r.freeIDs.Length() > 0 {
		return r.freeIDs.Remove().(int)
	}
	id := r.nextID
	r.nextID++
	return id
}
