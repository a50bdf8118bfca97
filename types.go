// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pool

import "net"

// PageSize is the memory page size used to cap small allocations, to round
// file chunks in ChainCoalesceFile, and by AlignedMemBlock. It defaults to 4 KiB and is overridden at init time
// on platforms that can report the real OS page size (see pagesize_unix.go).
var PageSize uintptr = 4096

// SetPageSize updates the package-level page size used for allocations.
func SetPageSize(size int) {
	PageSize = uintptr(size)
}

// Buffers is an alias for net.Buffers, used to hand a chain's in-memory
// buffers to writev-capable io.Writer implementations without copying.
type Buffers = net.Buffers

// noCopy is embedded in Pool to let go vet flag accidental copies: a Pool
// carries internal pointers into its own block chain, so copying it by
// value would leave the copy's bump cursor pointing at the original's memory.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
