package ordkey

import "github.com/ordkey/ordkey/internal"

// PackInt appends the encoding of v to buf: a tag encoding sign and
// magnitude byte count, the magnitude as big-endian hex (bit-inverted
// for negative values), and the sign-appropriate terminator.
//
// Negation of math.MinInt64 is handled via the unsigned domain
// (internal.NegateNegative) to avoid the signed overflow that -v would
// trigger for that one value.
func PackInt(buf *Buffer, v int64) {
	buf.require(1 + 16 + 1)
	dst := buf.data
	if v < 0 {
		u := internal.NegateNegative(v)
		n := internal.CountNBytes(u)
		dst = append(dst, byte(tagByNBytes(n, true)))
		dst = internal.WriteUint64N(dst, u^allOnes(n), n)
		dst = append(dst, internal.SepNegative)
	} else {
		u := uint64(v)
		n := internal.CountNBytes(u)
		dst = append(dst, byte(tagByNBytes(n, false)))
		dst = internal.WriteUint64N(dst, u, n)
		dst = append(dst, internal.SepPositive)
	}
	buf.data = dst
}

// allOnes returns the n-byte-wide all-ones mask, used to bit-invert a
// magnitude before it is hex-encoded via WriteUint64N (which encodes raw
// bits, not an already-masked byte stream the way WriteMasked does).
func allOnes(n int) uint64 {
	if n >= 8 {
		return ^uint64(0)
	}
	return 1<<(uint(n)*8) - 1
}
