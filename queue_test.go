// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pool_test

import (
	"testing"

	"code.hybscloud.com/pool"
)

func buildQueue(values ...int) *pool.Node[int] {
	q := pool.NewQueue[int]()
	for _, v := range values {
		n := &pool.Node[int]{Value: v}
		pool.InsertTail(q, n)
	}
	return q
}

func collect(q *pool.Node[int]) []int {
	var out []int
	for n := pool.Head(q); n != pool.Sentinel(q); n = pool.Next(n) {
		out = append(out, n.Value)
	}
	return out
}

func TestQueueEmpty(t *testing.T) {
	q := pool.NewQueue[int]()
	if !pool.Empty(q) {
		t.Fatal("new queue should be empty")
	}
	pool.InsertTail(q, &pool.Node[int]{Value: 1})
	if pool.Empty(q) {
		t.Fatal("queue with one node should not be empty")
	}
}

func TestQueueInsertHeadAndTail(t *testing.T) {
	q := pool.NewQueue[int]()
	a := &pool.Node[int]{Value: 1}
	b := &pool.Node[int]{Value: 2}
	c := &pool.Node[int]{Value: 3}

	pool.InsertTail(q, b)
	pool.InsertHead(q, a)
	pool.InsertTail(q, c)

	got := collect(q)
	want := []int{1, 2, 3}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestQueueRemove(t *testing.T) {
	q := buildQueue(1, 2, 3)
	middle := pool.Next(pool.Head(q))
	pool.Remove(middle)

	got := collect(q)
	want := []int{1, 3}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestQueueSplitAndAdd(t *testing.T) {
	q := buildQueue(1, 2, 3, 4)
	mid := pool.Middle(q) // for even length, first node of second half: value 3

	var back pool.Node[int]
	pool.Init(&back)
	pool.Split(q, mid, &back)

	if got := collect(q); len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Fatalf("front half = %v, want [1 2]", got)
	}
	if got := collect(&back); len(got) != 2 || got[0] != 3 || got[1] != 4 {
		t.Fatalf("back half = %v, want [3 4]", got)
	}

	pool.Add(q, &back)
	if got := collect(q); len(got) != 4 {
		t.Fatalf("rejoined queue = %v, want 4 elements", got)
	}
}

func TestQueueMiddle(t *testing.T) {
	cases := []struct {
		values []int
		want   int
	}{
		{[]int{1}, 1},
		{[]int{1, 2}, 2},
		{[]int{3, 1, 4, 1, 5, 9, 2, 6}, 5},
	}
	for _, c := range cases {
		q := buildQueue(c.values...)
		if got := pool.Middle(q).Value; got != c.want {
			t.Errorf("Middle(%v) = %d, want %d", c.values, got, c.want)
		}
	}
}

func TestQueueSortIsStable(t *testing.T) {
	type pair struct {
		key, seq int
	}
	q := pool.NewQueue[pair]()
	input := []pair{{2, 0}, {1, 1}, {2, 2}, {1, 3}, {0, 4}}
	for _, v := range input {
		pool.InsertTail(q, &pool.Node[pair]{Value: v})
	}

	pool.Sort(q, func(a, b *pool.Node[pair]) int {
		return a.Value.key - b.Value.key
	})

	var got []pair
	for n := pool.Head(q); n != pool.Sentinel(q); n = pool.Next(n) {
		got = append(got, n.Value)
	}
	want := []pair{{0, 4}, {1, 1}, {1, 3}, {2, 0}, {2, 2}}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}
