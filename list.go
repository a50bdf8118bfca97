// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pool

import "iter"

// listPart is one chunk of a List's backing storage: a fixed-capacity
// slice and how much of it is populated.
type listPart[T any] struct {
	elts  []T
	count int
	next  *listPart[T]
}

// List is a pool-backed chunked list: pushing past one part's capacity
// allocates a new part of the same capacity and links it on, rather than
// growing and copying like Array does. Elements already pushed never move.
type List[T any] struct {
	first listPart[T]
	last  *listPart[T]
	cap   int
	pool  *Pool
}

func allocPartElts[T any](p *Pool, n int) []T {
	return sliceOfT[T](p.Alloc(elemSize[T]()*n), n)
}

// ListCreate returns a new List[T] whose parts hold n elements each.
func ListCreate[T any](p *Pool, n int) *List[T] {
	l := &List[T]{}
	ListInit(l, p, n)
	return l
}

// ListInit initializes l with parts of n elements each, allocating a fresh
// first part from p; any storage l held before is abandoned to the pool.
func ListInit[T any](l *List[T], p *Pool, n int) {
	if n <= 0 {
		n = 1
	}
	l.pool = p
	l.cap = n
	l.first.elts = allocPartElts[T](p, n)
	l.first.count = 0
	l.first.next = nil
	l.last = &l.first
}

// Push returns a pointer to a new, zero-valued slot, allocating a new part
// if the current one is full.
func (l *List[T]) Push() *T {
	last := l.last
	if last.count == l.cap {
		part := &listPart[T]{elts: allocPartElts[T](l.pool, l.cap)}
		last.next = part
		l.last = part
		last = part
	}
	idx := last.count
	last.count++
	var zero T
	last.elts[idx] = zero
	return &last.elts[idx]
}

// Parts iterates the list's parts in order, yielding each part's
// populated elements as a slice. This replaces the original's manual
// part/element walking recipe with a Go range-over-func iterator.
func (l *List[T]) Parts() iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		for part := &l.first; part != nil; part = part.next {
			if !yield(part.elts[:part.count]) {
				return
			}
		}
	}
}
