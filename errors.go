// SPDX-License-Identifier: Apache-2.0

package regionpool

import "errors"

// Sentinel errors returned by Pool operations. Callers should compare
// with errors.Is, since a returned error may be wrapped with additional
// context via fmt.Errorf's %w verb.
var (
	// ErrOutOfMemory is returned by Open when the pool's region cannot
	// be allocated. Growth of the node arena and the gap index does not
	// report failure through this error.
	ErrOutOfMemory = errors.New("regionpool: out of memory")

	// ErrOutOfSpace is returned by Allocate when no gap satisfies the
	// request. Pool state is left unchanged.
	ErrOutOfSpace = errors.New("regionpool: out of space")

	// ErrNotFreed is returned by Close when the pool still has live
	// allocations, or more than one gap remains.
	ErrNotFreed = errors.New("regionpool: pool not freed")

	// ErrInvalidHandle is returned by Release when the handle does not
	// refer to a currently allocated segment in this pool — already
	// released, or issued by a different pool.
	ErrInvalidHandle = errors.New("regionpool: invalid handle")

	// ErrAlreadyInitialized is returned by a registry's Init when it has
	// already been initialized.
	ErrAlreadyInitialized = errors.New("regionpool: already initialized")

	// ErrNotInitialized is returned by registry operations performed
	// before Init, or after Shutdown.
	ErrNotInitialized = errors.New("regionpool: not initialized")

	// ErrInvalidSize is returned when a requested region or allocation
	// size is not strictly positive.
	ErrInvalidSize = errors.New("regionpool: size must be positive")
)
