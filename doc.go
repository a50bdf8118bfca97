// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package pool is a region-based memory allocator and the buffer/container
// types built on top of it: a chained bump-pointer arena (Pool), scatter/
// gather buffers and chains (Buffer, ChainLink), and three pool-backed
// containers (Array, List, Node/queue).
//
// # Pool
//
// A Pool hands out memory from a chain of fixed-size blocks with a single
// bump cursor per block. Allocations that don't fit a block are tracked
// individually as large allocations. The whole arena is released at once,
// either by Reset (cursor rewinds, large allocations drop, cleanups do not
// run) or Destroy (cleanups run, then everything is released):
//
//	p := pool.CreatePool(pool.BufferSizeMedium, nil)
//	defer p.Destroy()
//	buf := p.Alloc(256)
//
// # Buffers and chains
//
// Buffer describes a window of bytes that may live in memory, in a file,
// or both, with the content/positional flags nginx-style I/O pipelines
// use to mark the end of a chain, request a flush, or hand off ownership:
//
//	chain := p.CreateChainOfBufs(pool.Bufs{Num: 4, Size: pool.BufferSizeSmall})
//
// # Array, List, Node
//
// Array[T] is a growable array whose storage lives in the pool, with an
// in-place growth fast path when its storage lies in the pool's head block
// and is still flush with that block's bump cursor. List[T] is a chunked list: once a chunk fills,
// a new one is linked on rather than the whole list being copied. Node[T]
// is an intrusive, circular, doubly-linked queue node, used directly as
// its own sentinel.
//
// # Single-owner
//
// Nothing in this package takes a lock. A Pool and everything allocated
// from it belong to one goroutine at a time; sharing across goroutines
// needs external synchronization.
package pool
