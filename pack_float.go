package ordkey

import (
	"math"

	"github.com/ordkey/ordkey/internal"
)

// maxSafeInt is 2^53 - 1, the largest integer a float64 can represent
// exactly. PackFloat rejects any value whose magnitude exceeds it,
// since the integer part of the encoding would no longer be guaranteed
// to round-trip.
const maxSafeInt = 1<<53 - 1

const exponentBias = 16383

// PackFloat appends the encoding of v to buf.
//
//   - NaN is rejected with ErrNaN; nothing is appended.
//   - ±Inf is encoded as a bare tag (TagNegInf/TagPosInf) plus terminator.
//   - |v| > maxSafeInt is rejected with ErrRange.
//   - Otherwise the integer part is written exactly as PackInt would
//     write |v|'s floor, and if the fractional remainder is nonzero, a
//     2-byte biased exponent and 7-byte mantissa (the exact 53-bit
//     fractional mantissa, via Frexp/Ldexp) follow before the
//     terminator. A value with a zero fractional part has a byte-for-byte
//     identical integer prefix to PackInt of the same numeric value.
func PackFloat(buf *Buffer, v float64) error {
	if math.IsNaN(v) {
		return ErrNaN
	}
	if math.IsInf(v, 0) {
		buf.require(2)
		dst := buf.data
		if v < 0 {
			dst = append(dst, byte(TagNegInf), internal.SepNegative)
		} else {
			dst = append(dst, byte(TagPosInf), internal.SepPositive)
		}
		buf.data = dst
		return nil
	}
	if v > maxSafeInt || v < -maxSafeInt {
		return ErrRange
	}

	negative := v < 0
	if negative {
		v = -v
	}
	integral := uint64(v)
	fractional := v - float64(integral)

	integralN := internal.CountNBytes(integral)

	var mantissa uint64
	var exponent int
	if fractional != 0 {
		frac, exp := math.Frexp(fractional)
		exponent = exp
		mantissa = uint64(math.Ldexp(frac, 53))
	}

	// tag(1) + integral(up to 16) + exponent(4) + mantissa(14) + sep(1)
	buf.require(1 + 16 + 4 + 14 + 1)
	dst := buf.data
	dst = append(dst, byte(tagByNBytes(integralN, negative)))
	biasedExp := uint64(uint16(exponent + exponentBias))
	if negative {
		dst = internal.WriteUint64N(dst, integral^allOnes(integralN), integralN)
		if mantissa != 0 {
			dst = internal.WriteUint64N(dst, biasedExp^allOnes(2), 2)
			dst = internal.WriteUint64N(dst, mantissa^allOnes(7), 7)
		}
		dst = append(dst, internal.SepNegative)
	} else {
		dst = internal.WriteUint64N(dst, integral, integralN)
		if mantissa != 0 {
			dst = internal.WriteUint64N(dst, biasedExp, 2)
			dst = internal.WriteUint64N(dst, mantissa, 7)
		}
		dst = append(dst, internal.SepPositive)
	}
	buf.data = dst
	return nil
}
