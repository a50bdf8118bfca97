// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pool

import "os"

// Buffer describes a window of bytes that may live in memory, in a file,
// or partly in either, plus enough positional flags for a producer and a
// consumer to hand it back and forth without copying. A Buffer never owns
// cleanup of its own memory; that's the pool's or the mmap cleanup's job.
type Buffer struct {
	Mem                       []byte
	Start, Pos, Last, End     int
	FilePos, FileLast         int64
	File                      *os.File
	Shadow                    *Buffer
	Tag                       uintptr
	Temporary, Memory, Mmap   bool
	InFile                    bool
	LastBuf, LastInChain      bool
	Flush, Sync, Recycled     bool
}

// InMemory reports whether any of the buffer's content tags (Temporary,
// Memory, Mmap) are set.
func (b *Buffer) InMemory() bool {
	return b.Temporary || b.Memory || b.Mmap
}

// Special reports whether the buffer carries no content at all: not
// Temporary, Memory, Mmap, nor InFile. Special buffers exist purely to
// carry positional flags (Flush, Sync, LastBuf) through a chain.
func (b *Buffer) Special() bool {
	return !b.Temporary && !b.Memory && !b.Mmap && !b.InFile
}

// Size returns the number of unconsumed bytes: Last-Pos for in-memory
// content, FileLast-FilePos for file content. InMemory takes precedence,
// matching buffers that describe memory shadowing a file range.
func (b *Buffer) Size() int64 {
	if b.InMemory() {
		return int64(b.Last - b.Pos)
	}
	return b.FileLast - b.FilePos
}

// CreateTempBuf allocates a size-byte Temporary buffer from the pool, with
// Pos and Last both at Start, ready to be filled.
func CreateTempBuf(p *Pool, size int) *Buffer {
	return &Buffer{
		Mem:       p.Alloc(size),
		End:       size,
		Temporary: true,
	}
}
