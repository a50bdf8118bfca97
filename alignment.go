// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pool

import (
	"unsafe"

	"code.hybscloud.com/pool/internal"
)

// AlignedMem returns a byte slice with the specified size
// and starting address aligned to the memory page size.
//
// This is useful for DMA operations, mmap-backed buffers, and io_uring
// registered buffers that require page-aligned memory addresses.
//
// The returned slice shares underlying memory with a larger allocation;
// do not assume len(result) == cap(result).
func AlignedMem(size int, pageSize uintptr) []byte {
	p := make([]byte, uintptr(size)+pageSize-1)
	base := unsafe.Pointer(unsafe.SliceData(p))
	offset := ((uintptr(base)+pageSize-1)/pageSize)*pageSize - uintptr(base)
	return unsafe.Slice((*byte)(unsafe.Add(base, offset)), size)
}

// AlignedMemBlocks returns n page-aligned byte slices, each of length pageSize.
//
// All returned slices share a single contiguous underlying allocation,
// which is more memory-efficient than calling AlignedMem n times.
//
// Panics if n < 1.
func AlignedMemBlocks(n int, pageSize uintptr) (blocks [][]byte) {
	if n < 1 {
		panic("bad block num")
	}
	blocks = make([][]byte, n)
	p := make([]byte, int(pageSize)*(n+1))
	base := unsafe.Pointer(unsafe.SliceData(p))
	offset := ((uintptr(base)+pageSize-1)/pageSize)*pageSize - uintptr(base)
	for i := range n {
		blocks[i] = unsafe.Slice((*byte)(unsafe.Add(base, offset+uintptr(i)*pageSize)), pageSize)
	}
	return
}

// AlignedMemBlock returns a single page-aligned block using the system page size.
//
// This is a convenience function equivalent to AlignedMemBlocks(1, PageSize)[0].
func AlignedMemBlock() []byte {
	return AlignedMemBlocks(1, PageSize)[0]
}

// CacheLineSize is the CPU L1 cache line size for the current architecture,
// detected at compile time based on the target architecture.
const CacheLineSize = internal.CacheLineSize

// CacheLineAlignedMem returns a byte slice with the specified size
// and starting address aligned to the CPU cache line size.
func CacheLineAlignedMem(size int) []byte {
	align := uintptr(CacheLineSize)
	p := make([]byte, uintptr(size)+align-1)
	base := unsafe.Pointer(unsafe.SliceData(p))
	offset := ((uintptr(base)+align-1)/align)*align - uintptr(base)
	return unsafe.Slice((*byte)(unsafe.Add(base, offset)), size)
}

// NewBuffers creates a Buffers slice containing n byte slices, each of length size.
//
// Returns an empty Buffers if n < 1. Each inner slice is independently allocated;
// for contiguous memory, use AlignedMemBlocks instead.
func NewBuffers(n int, size int) Buffers {
	if n < 1 {
		return Buffers{}
	}
	ret := make(Buffers, n)
	for i := range n {
		if size > 0 {
			ret[i] = make([]byte, size)
		} else {
			ret[i] = []byte{}
		}
	}
	return ret
}
