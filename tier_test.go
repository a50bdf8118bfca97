// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pool_test

import (
	"testing"

	"code.hybscloud.com/pool"
)

func TestBufferSizes(t *testing.T) {
	expected := []int{32, 128, 512, 2048, 8192, 32 << 10, 128 << 10, 32 << 20}
	actual := []int{
		pool.BufferSizePico,
		pool.BufferSizeNano,
		pool.BufferSizeMicro,
		pool.BufferSizeSmall,
		pool.BufferSizeMedium,
		pool.BufferSizeBig,
		pool.BufferSizeLarge,
		pool.BufferSizeGiant,
	}
	for i, want := range expected {
		if actual[i] != want {
			t.Errorf("size[%d] = %d, want %d", i, actual[i], want)
		}
	}
}

func TestTierBySize(t *testing.T) {
	cases := []struct {
		size int
		want pool.BufferTier
	}{
		{1, pool.TierPico},
		{pool.BufferSizePico, pool.TierPico},
		{pool.BufferSizePico + 1, pool.TierNano},
		{pool.BufferSizeGiant, pool.TierGiant},
		{pool.BufferSizeGiant + 1, pool.TierGiant},
	}
	for _, c := range cases {
		if got := pool.TierBySize(c.size); got != c.want {
			t.Errorf("TierBySize(%d) = %v, want %v", c.size, got, c.want)
		}
	}
}

func TestBufferSizeFor(t *testing.T) {
	if got := pool.BufferSizeFor(100); got != pool.BufferSizeNano {
		t.Errorf("BufferSizeFor(100) = %d, want %d", got, pool.BufferSizeNano)
	}
}

func TestNewPoolForTier(t *testing.T) {
	p := pool.NewPoolForTier(pool.TierSmall, nil)
	defer p.Destroy()
	region := p.Alloc(pool.BufferSizeSmall)
	if len(region) != pool.BufferSizeSmall {
		t.Fatalf("expected region of %d bytes, got %d", pool.BufferSizeSmall, len(region))
	}
}
