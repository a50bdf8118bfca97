// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pool

// ChainLink is one link of a singly-linked list of buffers. Like largeAlloc
// and Cleanup, it is an ordinary heap object: a chain threads pointers
// together, so it cannot live inside a pool's no-scan arena.
type ChainLink struct {
	Buf  *Buffer
	Next *ChainLink
}

// AllocChainLink returns a ChainLink, reusing one from the pool's free list
// if available, or allocating a new one otherwise. The free list is filled
// by UpdateChains as buffers finish being recycled.
func (p *Pool) AllocChainLink() *ChainLink {
	if cl := p.chainFree; cl != nil {
		p.chainFree = cl.Next
		cl.Next = nil
		return cl
	}
	return &ChainLink{}
}

func (p *Pool) freeChainLink(cl *ChainLink) {
	cl.Next = p.chainFree
	p.chainFree = cl
}

// Bufs describes a homogeneous run of buffers for CreateChainOfBufs: Num
// buffers of Size bytes each, carved out of one contiguous pool allocation.
type Bufs struct {
	Num  int
	Size int
}

// CreateChainOfBufs allocates one bufs.Num*bufs.Size region from the pool
// and slices it into bufs.Num Temporary buffers linked into a chain, in
// order. Returns nil if bufs.Num <= 0.
func (p *Pool) CreateChainOfBufs(bufs Bufs) *ChainLink {
	if bufs.Num <= 0 {
		return nil
	}
	mem := p.Alloc(bufs.Num * bufs.Size)
	var head, tail *ChainLink
	for i := 0; i < bufs.Num; i++ {
		start := i * bufs.Size
		cl := p.AllocChainLink()
		cl.Buf = &Buffer{
			Mem:       mem[start : start+bufs.Size : start+bufs.Size],
			End:       bufs.Size,
			Temporary: true,
		}
		cl.Next = nil
		if head == nil {
			head = cl
		} else {
			tail.Next = cl
		}
		tail = cl
	}
	return head
}

// ChainAddCopy appends shallow copies of in's links (same *Buffer, new
// ChainLink nodes) to the end of *dest.
func (p *Pool) ChainAddCopy(dest **ChainLink, in *ChainLink) error {
	ll := dest
	for *ll != nil {
		ll = &(*ll).Next
	}
	for in != nil {
		cl := p.AllocChainLink()
		cl.Buf = in.Buf
		cl.Next = nil
		*ll = cl
		ll = &cl.Next
		in = in.Next
	}
	return nil
}

// ChainGetFreeBuf pops the head of *free if non-empty, otherwise allocates
// a fresh ChainLink with a zero-value Buffer. Either way the returned link
// is detached (Next == nil) and ready for the caller to fill in.
func (p *Pool) ChainGetFreeBuf(free **ChainLink) *ChainLink {
	if *free != nil {
		cl := *free
		*free = cl.Next
		cl.Next = nil
		return cl
	}
	cl := p.AllocChainLink()
	cl.Buf = &Buffer{}
	return cl
}

// UpdateChains moves *out onto the tail of *busy, then walks *busy from the
// front, reclaiming every fully-consumed buffer (Size() == 0): buffers
// tagged tag are rewound (Pos, Last reset to Start) and moved to *free for
// reuse, everything else is detached and its link returned to the pool's
// chain-link free list. The walk stops at the first buffer still holding
// content.
func (p *Pool) UpdateChains(free, busy, out **ChainLink, tag uintptr) {
	if *out != nil {
		if *busy == nil {
			*busy = *out
		} else {
			tail := *busy
			for tail.Next != nil {
				tail = tail.Next
			}
			tail.Next = *out
		}
		*out = nil
	}
	for *busy != nil {
		cl := *busy
		if cl.Buf.Size() != 0 {
			break
		}
		if cl.Buf.Tag != tag {
			*busy = cl.Next
			p.freeChainLink(cl)
			continue
		}
		cl.Buf.Pos = cl.Buf.Start
		cl.Buf.Last = cl.Buf.Start
		*busy = cl.Next
		cl.Next = *free
		*free = cl
	}
}

// ChainCoalesceFile walks *in while its buffers describe one contiguous
// run of the same file, up to limit bytes total, rounding the final chunk
// up to a page boundary when that doesn't overshoot the last buffer's
// FileLast. It returns the combined size and advances *in past exactly the
// coalesced prefix: when a buffer is cut short by limit, *in is left
// pointing at that same buffer, since it still has unconsumed bytes beyond
// what was coalesced; *in is nil only once the whole chain was consumed.
func ChainCoalesceFile(in **ChainLink, limit int64) int64 {
	cl := *in
	if cl == nil {
		return 0
	}
	fd := cl.Buf.File
	var total int64
	for {
		size := cl.Buf.FileLast - cl.Buf.FilePos
		if size > limit-total {
			size = limit - total
			aligned := (cl.Buf.FilePos + size + int64(PageSize) - 1) &^ (int64(PageSize) - 1)
			if aligned <= cl.Buf.FileLast {
				size = aligned - cl.Buf.FilePos
			}
			total += size
			break
		}
		total += size
		fprev := cl.Buf.FilePos + size
		cl = cl.Next
		if !(cl != nil && cl.Buf.InFile && total < limit && cl.Buf.File == fd && cl.Buf.FilePos == fprev) {
			break
		}
	}
	*in = cl
	return total
}

// ChainUpdateSent walks in, consuming sent bytes across non-special
// buffers: fully-sent buffers have Pos/FilePos advanced to Last/FileLast
// and are skipped, the buffer sent ends inside has its Pos/FilePos
// advanced by the remainder. It returns the first buffer with anything
// left to send, or nil if sent covered the whole chain.
func ChainUpdateSent(in *ChainLink, sent int64) *ChainLink {
	cl := in
	for ; cl != nil; cl = cl.Next {
		if cl.Buf.Special() {
			continue
		}
		if sent == 0 {
			break
		}
		size := cl.Buf.Size()
		if sent >= size {
			sent -= size
			if cl.Buf.InMemory() {
				cl.Buf.Pos = cl.Buf.Last
			}
			if cl.Buf.InFile {
				cl.Buf.FilePos = cl.Buf.FileLast
			}
			continue
		}
		if cl.Buf.InMemory() {
			cl.Buf.Pos += int(sent)
		}
		if cl.Buf.InFile {
			cl.Buf.FilePos += sent
		}
		break
	}
	return cl
}
