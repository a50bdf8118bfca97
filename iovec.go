// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pool

import "unsafe"

// IoVec represents a scatter/gather I/O descriptor compatible with the
// standard struct iovec. It is used to pass multiple non-contiguous buffers
// to the kernel in a single vectored I/O call (readv, writev, io_uring).
//
// Memory layout matches the C struct iovec:
//
//	struct iovec {
//	    void  *iov_base;
//	    size_t iov_len;
//	};
//
// The caller must ensure Base points to valid memory for the lifetime of
// any I/O operation using this IoVec, and that the owning Pool or Buffer is
// not reset or destroyed while the vector is in flight.
type IoVec struct {
	Base *byte
	Len  uint64
}

// IoVecAddrLen extracts the raw pointer and length from an IoVec slice
// for direct syscall consumption (readv, writev, io_uring submission).
//
// Returns (0, 0) for empty or nil slices.
func IoVecAddrLen(vec []IoVec) (addr uintptr, n int) {
	if len(vec) == 0 {
		return 0, 0
	}
	return uintptr(unsafe.Pointer(unsafe.SliceData(vec))), len(vec)
}

// IoVecsOf walks a chain starting at head and returns one IoVec per
// in-memory, non-special buffer with unsent content. Buffers entirely in a
// file, or with nothing left between Pos and Last, are skipped.
func IoVecsOf(head *ChainLink) []IoVec {
	var vecs []IoVec
	for cl := head; cl != nil; cl = cl.Next {
		b := cl.Buf
		if b == nil || b.Special() || !b.InMemory() {
			continue
		}
		n := b.Last - b.Pos
		if n <= 0 {
			continue
		}
		vecs = append(vecs, IoVec{Base: &b.Mem[b.Pos], Len: uint64(n)})
	}
	return vecs
}

// NetBuffersOf walks a chain starting at head and returns its in-memory,
// non-special content as a Buffers value suitable for (*net.Buffers).WriteTo.
func NetBuffersOf(head *ChainLink) Buffers {
	var nb Buffers
	for cl := head; cl != nil; cl = cl.Next {
		b := cl.Buf
		if b == nil || b.Special() || !b.InMemory() {
			continue
		}
		if b.Last > b.Pos {
			nb = append(nb, b.Mem[b.Pos:b.Last])
		}
	}
	return nb
}
