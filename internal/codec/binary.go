package codec

import (
	"fmt"

	"gomoku/internal/errors"
)

// Zigzag encoding maps signed values to unsigned ones ordered by
// magnitude: 0→0, −1→1, 1→2, −2→3, 2→4, …
func zigzagEncode(x int32) uint32 {
	return uint32((x << 1) ^ (x >> 31))
}

func zigzagDecode(x uint32) int32 {
	return int32(x>>1) ^ -int32(x&1)
}

func scatter(x uint32) uint32 {
	x = (x | x<<8) & 0x00ff00ff
	x = (x | x<<4) & 0x0f0f0f0f
	x = (x | x<<2) & 0x33333333
	return (x | x<<1) & 0x55555555
}

func gather(x uint32) uint32 {
	x &= 0x55555555
	x = (x | x>>1) & 0x33333333
	x = (x | x>>2) & 0x0f0f0f0f
	x = (x | x>>4) & 0x00ff00ff
	return (x | x>>8) & 0x0000ffff
}

// interleave builds a Morton code: even bits carry x, odd bits carry y.
func interleave(x, y uint32) uint32 {
	return scatter(x) | scatter(y)<<1
}

func deinterleave(i uint32) (uint32, uint32) {
	return gather(i), gather(i >> 1)
}

// appendVarU14 emits a value in [0, 16383] as one or two bytes, low
// 7 bits first, the high bit marking a continuation.
func appendVarU14(buf []byte, val uint32) []byte {
	if val&0x3f80 != 0 {
		buf = append(buf, byte(val&0x7f|0x80))
		val >>= 7
	}
	return append(buf, byte(val&0x7f))
}

// readVarU14 reads one group starting at *pos, advancing *pos past it.
func readVarU14(buf []byte, pos *int) (uint32, error) {
	if *pos >= len(buf) {
		return 0, fmt.Errorf("%w: unexpected end of buffer", errors.ErrCorruptRecord)
	}
	lo := buf[*pos]
	*pos++
	if lo&0x80 == 0 {
		return uint32(lo), nil
	}
	if *pos >= len(buf) {
		return 0, fmt.Errorf("%w: truncated two-byte group", errors.ErrCorruptRecord)
	}
	hi := buf[*pos]
	*pos++
	if hi&0x80 != 0 {
		return 0, fmt.Errorf("%w: continuation bit set on second byte", errors.ErrCorruptRecord)
	}
	return uint32(hi)<<7 | uint32(lo&0x7f), nil
}
