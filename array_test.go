// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pool_test

import (
	"testing"
	"unsafe"

	"code.hybscloud.com/pool"
)

func TestArrayPushGrowsAndPreservesOrder(t *testing.T) {
	p := pool.CreatePool(pool.BufferSizeSmall, nil)
	defer p.Destroy()

	a := pool.ArrayCreate[int](p, 2)
	for i := 0; i < 10; i++ {
		*a.Push() = i
	}
	if a.Len() != 10 {
		t.Fatalf("Len() = %d, want 10", a.Len())
	}
	for i, v := range a.Elements() {
		if v != i {
			t.Fatalf("Elements()[%d] = %d, want %d", i, v, i)
		}
	}
}

func TestArrayPushNReturnsContiguousSlots(t *testing.T) {
	p := pool.CreatePool(pool.BufferSizeSmall, nil)
	defer p.Destroy()

	a := pool.ArrayCreate[int32](p, 4)
	slot := a.PushN(3)
	if len(slot) != 3 {
		t.Fatalf("PushN(3) returned %d slots", len(slot))
	}
	for i := range slot {
		slot[i] = int32(i + 1)
	}
	if a.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", a.Len())
	}
	elems := a.Elements()
	for i, v := range elems {
		if v != int32(i+1) {
			t.Fatalf("Elements()[%d] = %d, want %d", i, v, i+1)
		}
	}
}

func TestArrayDestroyRetractsFlushCursor(t *testing.T) {
	p := pool.CreatePool(pool.BufferSizeSmall, nil)
	defer p.Destroy()

	a := pool.ArrayCreate[int64](p, 4)
	full := a.Elements()[:cap(a.Elements())]
	first := unsafe.Pointer(&full[0])
	a.Destroy()

	// a's storage sat flush against the bump cursor, so destroying it
	// should make the next same-size allocation reuse the exact same bytes.
	next := p.Alloc(8 * 4)
	if unsafe.Pointer(&next[0]) != first {
		t.Fatalf("Destroy did not retract the bump cursor: got different address")
	}
}

func TestArrayDestroyDoesNotRetractSecondaryBlockCursor(t *testing.T) {
	p := pool.CreatePool(64, nil)
	defer p.Destroy()

	// Exhaust the head block's small-allocation budget down to less than
	// the 32 bytes the array below needs, forcing its storage into a
	// secondary block.
	p.Alloc(40)

	a := pool.ArrayCreate[int64](p, 4)
	full := a.Elements()[:cap(a.Elements())]
	first := unsafe.Pointer(&full[0])
	a.Destroy()

	// Only the pool's head block cursor is ever retracted (matching
	// ngx_array_destroy's a->pool->d.last quirk); a secondary block's
	// cursor is left alone, so the next same-size allocation must land at
	// a new address, not reuse a's bytes.
	next := p.Alloc(8 * 4)
	if unsafe.Pointer(&next[0]) == first {
		t.Fatal("Destroy retracted a secondary block's cursor; only the head block should ever be retracted")
	}
}
