// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pool

import "unsafe"

// Pool is a region-based allocator: a chain of fixed-size bump-pointer
// arenas plus bookkeeping for allocations that didn't fit one, for
// cleanups, and for a small free list of chain links. Allocating from a
// Pool never returns an individual piece of memory to the system; the
// whole region is released at once by Reset or Destroy.
//
// A Pool is built for a single owner. Nothing in this package takes a
// lock, and concurrent use of the same Pool from multiple goroutines is
// not supported.
type Pool struct {
	head        block
	max         int
	current     *block
	largeHead   *largeAlloc
	cleanupHead *Cleanup
	chainFree   *ChainLink
	log         Logger

	_ noCopy
}

// CreatePool builds a pool whose blocks are size bytes each. Allocations up
// to min(size, PageSize-1) are served from the block chain; anything larger
// is satisfied as its own large allocation. log receives diagnostics and
// cleanup failures; a nil log is replaced with Discard.
func CreatePool(size int, log Logger) *Pool {
	if log == nil {
		log = Discard
	}
	if size < 0 {
		size = 0
	}
	p := &Pool{log: log}
	p.head.buf = make([]byte, size)
	p.head.end = size
	max := size
	if pm := int(PageSize) - 1; pm < max {
		max = pm
	}
	if max < 0 {
		max = 0
	}
	p.max = max
	p.current = &p.head
	return p
}

// smallAlloc bump-allocates size bytes from the block chain starting at
// p.current, growing the chain with a new block if none has room. It
// returns the block the region came from, so callers that need to track
// whether they hold the last allocation (Array's in-place growth) can do so.
func (p *Pool) smallAlloc(size int, align bool) ([]byte, *block) {
	for b := p.current; b != nil; b = b.next {
		if region, ok := b.allocSmall(size, align); ok {
			return region, b
		}
	}
	return p.growBlock(size, align)
}

// growBlock appends a new block, identical in size to the head block, to
// the tail of the chain, and serves size bytes from it. Walking from
// current to the tail, every block short of the tail has its failed
// counter bumped; once a block has failed more than four times, current
// advances past it, so future small allocations stop probing blocks that
// keep coming up short.
func (p *Pool) growBlock(size int, align bool) ([]byte, *block) {
	blockSize := len(p.head.buf)
	nb := newBlock(blockSize)
	region, ok := nb.allocSmall(size, align)
	if !ok {
		return nil, nil
	}
	b := p.current
	for b.next != nil {
		b.failed++
		if b.failed > 4 {
			p.current = b.next
		}
		b = b.next
	}
	b.next = nb
	return region, nb
}

// allocTrackedSmall is smallAlloc for callers (Array) that need to know
// whether their region is still flush with its block's bump cursor later,
// to decide whether a resize can extend in place. Large allocations report
// a nil block, since they aren't flush against anything.
func (p *Pool) allocTrackedSmall(size int) ([]byte, *block) {
	if size > p.max {
		return p.allocLarge(size), nil
	}
	return p.smallAlloc(size, true)
}

// largeAlloc is a record for an allocation that didn't fit a block. It is
// an ordinary heap object, not arena memory, because it holds a slice
// header (itself containing a pointer) that the pool's no-scan arenas
// cannot hold safely.
type largeAlloc struct {
	raw  []byte
	next *largeAlloc
}

func (p *Pool) allocLarge(size int) []byte {
	raw := make([]byte, size)
	n := 0
	for la := p.largeHead; la != nil; la = la.next {
		if la.raw == nil {
			la.raw = raw
			return raw
		}
		n++
		if n > 3 {
			break
		}
	}
	p.largeHead = &largeAlloc{raw: raw, next: p.largeHead}
	return raw
}

// Alloc returns a word-aligned region of size bytes.
func (p *Pool) Alloc(size int) []byte {
	if size <= p.max {
		region, _ := p.smallAlloc(size, true)
		return region
	}
	return p.allocLarge(size)
}

// AllocUnaligned returns a region of size bytes with no alignment
// guarantee, packing more tightly into the current block than Alloc.
func (p *Pool) AllocUnaligned(size int) []byte {
	if size <= p.max {
		region, _ := p.smallAlloc(size, false)
		return region
	}
	return p.allocLarge(size)
}

// Calloc is Alloc followed by zeroing. It is needed because block memory
// that survived a Reset is not zero: only a fresh block, or a fresh large
// allocation, starts out clean.
func (p *Pool) Calloc(size int) []byte {
	region := p.Alloc(size)
	for i := range region {
		region[i] = 0
	}
	return region
}

// AllocAligned returns size bytes aligned to alignment, always as its own
// large allocation regardless of p.max, since the block chain only offers
// word alignment.
func (p *Pool) AllocAligned(size int, alignment uintptr) []byte {
	raw := AlignedMem(size, alignment)
	p.largeHead = &largeAlloc{raw: raw, next: p.largeHead}
	return raw
}

// Free releases a large allocation previously returned by Alloc,
// AllocUnaligned, Calloc, or AllocAligned, identified by backing pointer.
// It returns ErrDeclined if region isn't a live large allocation: freeing
// memory served from a block, or memory already freed, is not an error,
// it simply has no effect, since blocks are only ever reclaimed in bulk.
func (p *Pool) Free(region []byte) error {
	target := unsafe.SliceData(region)
	for la := p.largeHead; la != nil; la = la.next {
		if la.raw != nil && unsafe.SliceData(la.raw) == target {
			la.raw = nil
			return nil
		}
	}
	return ErrDeclined
}

// Reset rewinds every block's bump cursor to zero and drops all large
// allocations, without running cleanups. Memory already handed out is not
// cleared; a reused block may contain stale bytes from its previous life.
func (p *Pool) Reset() {
	for b := &p.head; b != nil; b = b.next {
		b.last = 0
		b.failed = 0
	}
	p.current = &p.head
	p.largeHead = nil
	p.chainFree = nil
}

// Destroy runs every registered cleanup, most recently added first, then
// releases the pool's memory. Unlike Reset, Destroy always invokes
// cleanups; the pool must not be used afterward.
func (p *Pool) Destroy() {
	for c := p.cleanupHead; c != nil; c = c.next {
		if c.Handler != nil {
			c.Handler(c.Data)
		}
	}
	for b := &p.head; b != nil; b = b.next {
		b.buf = nil
	}
	p.head.next = nil
	p.largeHead = nil
	p.cleanupHead = nil
	p.chainFree = nil
	p.current = nil
}
