// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pool

import "unsafe"

// Array is a growable, pool-backed array of T. Unlike the C original,
// there is no separate element-size parameter: Go generics recover the
// element size from T at compile time.
//
// Growing an Array extends its storage in place, instead of copying, when
// two things both hold: the array's elements were allocated from the
// pool's head block specifically, and that allocation is still flush
// against the head block's bump cursor. This mirrors a real quirk of the
// C original: ngx_array_push/ngx_array_destroy compare against
// a->pool->d.last, and a->pool always refers to the pool's own head
// ngx_pool_t, never to whatever secondary block the array's elements
// actually landed in, so the in-place fast path there only ever fires
// when the array happens to live in the head block. See DESIGN.md for
// why this is deliberately preserved rather than generalized to "whichever
// block the array landed in".
//
// Elements live in pool memory that the garbage collector does not scan for
// pointers, so a pointer stored in an element does not by itself keep the
// object it points to alive.
type Array[T any] struct {
	elts  []T
	count int
	pool  *Pool
	blk   *block
	endOf int
}

func elemSize[T any]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

func sliceOfT[T any](region []byte, n int) []T {
	if n == 0 {
		return nil
	}
	return unsafe.Slice((*T)(unsafe.Pointer(unsafe.SliceData(region))), n)
}

// ArrayCreate returns a new Array[T] with room for n elements, backed by p.
func ArrayCreate[T any](p *Pool, n int) *Array[T] {
	a := &Array[T]{}
	ArrayInit(a, p, n)
	return a
}

// ArrayInit initializes a with room for n elements, allocating fresh
// storage from p; any storage a held before is abandoned to the pool.
func ArrayInit[T any](a *Array[T], p *Pool, n int) {
	if n <= 0 {
		n = 1
	}
	a.pool = p
	a.count = 0
	a.reallocTo(n)
}

func (a *Array[T]) reallocTo(newCap int) {
	region, blk := a.pool.allocTrackedSmall(elemSize[T]() * newCap)
	newElts := sliceOfT[T](region, newCap)
	if a.count > 0 {
		copy(newElts, a.elts[:a.count])
	}
	a.elts = newElts
	a.blk = blk
	if blk != nil {
		a.endOf = blk.last
	}
}

// grow extends the array's backing storage by extra elements, in place
// when the array's elements live in the pool's head block and are still
// flush against that block's bump cursor, with room to spare; otherwise it
// reallocates to 2*max(extra, cap).
func (a *Array[T]) grow(extra int) {
	size := elemSize[T]() * extra
	head := &a.pool.head
	if a.blk == head && head.last == a.endOf && head.end-head.last >= size {
		head.last += size
		a.endOf = head.last
		a.elts = unsafe.Slice((*T)(unsafe.Pointer(unsafe.SliceData(a.elts))), len(a.elts)+extra)
		return
	}
	newCap := extra
	if cur := len(a.elts); cur > newCap {
		newCap = cur
	}
	a.reallocTo(2 * newCap)
}

// Push grows the array by one element if needed and returns a pointer to
// the new, zero-valued slot.
func (a *Array[T]) Push() *T {
	if a.count == len(a.elts) {
		a.grow(1)
	}
	idx := a.count
	a.count++
	var zero T
	a.elts[idx] = zero
	return &a.elts[idx]
}

// PushN grows the array by n elements if needed and returns them as a
// slice, zero-valued.
func (a *Array[T]) PushN(n int) []T {
	if a.count+n > len(a.elts) {
		a.grow(n)
	}
	start := a.count
	a.count += n
	s := a.elts[start : start+n : start+n]
	clear(s)
	return s
}

// Len returns the number of elements pushed so far.
func (a *Array[T]) Len() int { return a.count }

// Cap returns the array's current element capacity.
func (a *Array[T]) Cap() int { return len(a.elts) }

// Elements returns the populated prefix of the array's backing storage.
func (a *Array[T]) Elements() []T { return a.elts[:a.count] }

// Destroy retracts the pool's head block's bump cursor by the array's
// capacity if the array's elements live in the head block and are still
// the last thing allocated there, making that memory available to the
// next allocation. It is a no-op otherwise: a reallocated array's earlier
// storage was already orphaned by reallocTo, and storage in any block
// other than the head is never retracted, matching the C original.
func (a *Array[T]) Destroy() {
	head := &a.pool.head
	if a.blk == head && head.last == a.endOf {
		head.last = a.endOf - elemSize[T]()*len(a.elts)
	}
}
