// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pool

// Buffer size tiers follow a power-of-4 progression starting at 32 bytes.
// Each tier is 4x the previous size, giving pools a predictable ladder of
// arena sizes to grow into instead of picking an arbitrary size per caller.
const (
	BufferSizePico   = 1 << 5  // 32 B - tiny metadata, flags
	BufferSizeNano   = 1 << 7  // 128 B - small structs, headers
	BufferSizeMicro  = 1 << 9  // 512 B - protocol frames
	BufferSizeSmall  = 1 << 11 // 2 KiB - small messages
	BufferSizeMedium = 1 << 13 // 8 KiB - stream buffers
	BufferSizeBig    = 1 << 15 // 32 KiB - TLS records
	BufferSizeLarge  = 1 << 17 // 128 KiB - io_uring buffers
	BufferSizeGreat  = 1 << 19 // 512 KiB - large transfers
	BufferSizeHuge   = 1 << 21 // 2 MiB - huge pages
	BufferSizeVast   = 1 << 23 // 8 MiB - large file chunks
	BufferSizeGiant  = 1 << 25 // 32 MiB - video frames
)

// BufferTier represents a buffer tier index in the tier system.
type BufferTier int

// Buffer tier indices.
const (
	TierPico BufferTier = iota
	TierNano
	TierMicro
	TierSmall
	TierMedium
	TierBig
	TierLarge
	TierGreat
	TierHuge
	TierVast
	TierGiant
	TierEnd // sentinel marking end of tiers
)

var bufferSizes = [TierEnd]int{
	TierPico:   BufferSizePico,
	TierNano:   BufferSizeNano,
	TierMicro:  BufferSizeMicro,
	TierSmall:  BufferSizeSmall,
	TierMedium: BufferSizeMedium,
	TierBig:    BufferSizeBig,
	TierLarge:  BufferSizeLarge,
	TierGreat:  BufferSizeGreat,
	TierHuge:   BufferSizeHuge,
	TierVast:   BufferSizeVast,
	TierGiant:  BufferSizeGiant,
}

// TierBySize returns the smallest buffer tier that can hold size bytes.
// Returns TierGiant for sizes larger than BufferSizeGiant.
func TierBySize(size int) BufferTier {
	switch {
	case size <= BufferSizePico:
		return TierPico
	case size <= BufferSizeNano:
		return TierNano
	case size <= BufferSizeMicro:
		return TierMicro
	case size <= BufferSizeSmall:
		return TierSmall
	case size <= BufferSizeMedium:
		return TierMedium
	case size <= BufferSizeBig:
		return TierBig
	case size <= BufferSizeLarge:
		return TierLarge
	case size <= BufferSizeGreat:
		return TierGreat
	case size <= BufferSizeHuge:
		return TierHuge
	case size <= BufferSizeVast:
		return TierVast
	default:
		return TierGiant
	}
}

// Size returns the buffer size for this tier.
func (t BufferTier) Size() int {
	if t < 0 || t >= TierEnd {
		return BufferSizeGiant
	}
	return bufferSizes[t]
}

// BufferSizeFor returns the smallest tier size that can hold size bytes.
// Equivalent to TierBySize(size).Size().
func BufferSizeFor(size int) int {
	return TierBySize(size).Size()
}

// NewPoolForTier creates a pool whose block size matches the given tier,
// so every small allocation request for that tier's traffic fits a single block.
func NewPoolForTier(t BufferTier, log Logger) *Pool {
	return CreatePool(t.Size(), log)
}
