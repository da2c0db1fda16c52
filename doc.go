// SPDX-License-Identifier: Apache-2.0

// Package regionpool implements a fixed-region memory pool allocator.
//
// A Pool manages one caller-sized, contiguous region of bytes and
// services sub-allocations out of it under a chosen placement policy
// (first-fit or best-fit), tracking free "gaps" and coalescing adjacent
// gaps on release. It exists so that an application with a hot
// allocate/release path — a page cache, an arena-per-request server, an
// embedded control program — can avoid calling the system heap.
//
// A Pool is single-owner: none of its methods are safe for concurrent
// use. Callers needing concurrent access should either hold an external
// mutex or wrap the pool with SynchronizedPool.
package regionpool
