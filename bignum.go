package ordkey

import (
	"math/big"

	"github.com/ordkey/ordkey/internal"
)

// xorWord16 returns v XORed with 0xFFFF when mask is nonzero, v
// unchanged otherwise - the 16-bit analog of the per-byte masking
// WriteMasked applies to the magnitude bytes.
func xorWord16(v uint16, mask byte) uint64 {
	if mask != 0 {
		return uint64(v ^ 0xFFFF)
	}
	return uint64(v)
}

// MetaNumber is the structured view Tokenize hands to HandlerBigInt and
// HandlerBigFloat for the D/U escape tags, and to HandlerBigFloat for an
// E..T field it cannot convert to a float64 exactly. The core deliberately does not interpret IntegralData/FractionData
// arithmetically; arbitrary-precision interpretation is the handler's
// job, kept out of the core per spec.
type MetaNumber struct {
	Tag      Tag
	Negative bool

	IntegralData   []byte // nbytes*2 hex chars, still XOR-masked if Negative
	IntegralNBytes int

	FractionData     []byte // nbytes*2 hex chars, still XOR-masked if Negative, or nil
	FractionNBytes   int
	FractionExponent int32
	HasFraction      bool
}

// mask returns 0xFF for a negative MetaNumber, 0 otherwise - the value
// every payload byte was XORed with before being hex-encoded.
func (n *MetaNumber) mask() byte {
	if n.Negative {
		return 0xFF
	}
	return 0
}

// PackBigInt appends the escape encoding of v to buf: tag D or U, a
// 2-byte big-endian byte count of the magnitude, then the magnitude
// itself, XOR-masked if negative. This is the wire format the tokenizer
// expects to find behind a D/U tag; it exists so library users have a
// ready-made arbitrary-precision encoder instead of having to write
// their own MetaNumber producer from scratch.
func PackBigInt(buf *Buffer, v *big.Int) {
	negative := v.Sign() < 0
	mag := v.Bytes() // big-endian magnitude, no leading zero byte (or empty for 0)
	if len(mag) == 0 {
		mag = []byte{0}
	}
	n := len(mag)

	buf.require(1 + 4 + 2*n + 1)
	dst := buf.data
	if negative {
		dst = append(dst, byte(TagNegBig))
		dst = internal.WriteUint64N(dst, uint64(n)^0xFFFF, 2)
		dst = internal.WriteMasked(dst, mag, 0xFF)
		dst = append(dst, internal.SepNegative)
	} else {
		dst = append(dst, byte(TagPosBig))
		dst = internal.WriteUint64N(dst, uint64(n), 2)
		dst = internal.WriteMasked(dst, mag, 0)
		dst = append(dst, internal.SepPositive)
	}
	buf.data = dst
}

// PackBigFloat appends the escape encoding of v to buf: the same D/U
// integer-part escape as PackBigInt for v's truncated integer part,
// followed by an exponent+mantissa suffix for the fractional remainder
// when v is not exactly integral. Infinite big.Float values are written
// as the plain ±Inf tags, matching PackFloat.
func PackBigFloat(buf *Buffer, v *big.Float) error {
	if v.IsInf() {
		buf.require(2)
		dst := buf.data
		if v.Sign() < 0 {
			dst = append(dst, byte(TagNegInf), internal.SepNegative)
		} else {
			dst = append(dst, byte(TagPosInf), internal.SepPositive)
		}
		buf.data = dst
		return nil
	}

	negative := v.Sign() < 0
	abs := new(big.Float).Abs(v)
	integralF, _ := abs.Int(nil)
	mag := integralF.Bytes()
	if len(mag) == 0 {
		mag = []byte{0}
	}
	n := len(mag)

	frac := new(big.Float).Sub(abs, new(big.Float).SetInt(integralF))

	buf.require(1 + 4 + 2*n + 4 + 64 + 1)
	dst := buf.data
	tag := TagPosBig
	mask := byte(0)
	sep := internal.SepPositive
	if negative {
		tag = TagNegBig
		mask = 0xFF
		sep = internal.SepNegative
	}
	dst = append(dst, byte(tag))
	dst = internal.WriteUint64N(dst, xorWord16(uint16(n), mask), 2)
	dst = internal.WriteMasked(dst, mag, mask)

	if frac.Sign() != 0 {
		// big.Float has no direct way to extract an arbitrary-width
		// binary mantissa, so shift the fraction up until it's an
		// integer (mirroring bigFloatCodec in phiryll/lexy), then take
		// its bytes as the mantissa.
		exp := 0
		shifted := new(big.Float).Copy(frac)
		for shifted.Sign() != 0 && !shifted.IsInt() {
			shifted.Mul(shifted, big.NewFloat(2))
			exp--
		}
		mantissaInt, _ := shifted.Int(nil)
		mantissaBytes := mantissaInt.Bytes()
		dst = internal.WriteUint64N(dst, xorWord16(uint16(exp+exponentBias), mask), 2)
		dst = internal.WriteMasked(dst, mantissaBytes, mask)
	}
	dst = append(dst, sep)
	buf.data = dst
	return nil
}

// BigSink receives the values DefaultBigIntHandler and
// DefaultBigFloatHandler decode, since a HandlerBigInt/HandlerBigFloat
// can only report success or failure, not return a value directly - the
// decoded value has to go somewhere via Loader.App, matching how every
// other handler reports through App rather than a return value.
type BigSink interface {
	SetBigInt(*big.Int)
	SetBigFloat(*big.Float)
}

func decodeBigInt(num *MetaNumber) *big.Int {
	mag := make([]byte, num.IntegralNBytes)
	src := num.IntegralData
	mask := num.mask()
	for i := range mag {
		var b uint8
		b, src = internal.ReadUint8(src, mask)
		mag[i] = b
	}
	v := new(big.Int).SetBytes(mag)
	if num.Negative {
		v.Neg(v)
	}
	return v
}

// DefaultBigIntHandler decodes a MetaNumber produced for a D/U tag with
// no fractional suffix back into a *big.Int, and reports it to
// loader.App via BigSink.SetBigInt. It returns ErrHandler if App does
// not implement BigSink.
func DefaultBigIntHandler(loader *Loader, num *MetaNumber) error {
	sink, ok := loader.App.(BigSink)
	if !ok {
		return ErrHandler
	}
	sink.SetBigInt(decodeBigInt(num))
	return nil
}

// DefaultBigFloatHandler decodes a MetaNumber (with or without a
// fractional suffix) back into a *big.Float, and reports it to
// loader.App via BigSink.SetBigFloat. It returns ErrHandler if App does
// not implement BigSink.
func DefaultBigFloatHandler(loader *Loader, num *MetaNumber) error {
	sink, ok := loader.App.(BigSink)
	if !ok {
		return ErrHandler
	}

	result := new(big.Float).SetInt(decodeBigInt(num))
	if num.HasFraction {
		mask := num.mask()
		mantissaBytes := make([]byte, num.FractionNBytes)
		src := num.FractionData
		for i := range mantissaBytes {
			var b uint8
			b, src = internal.ReadUint8(src, mask)
			mantissaBytes[i] = b
		}
		mantissa := new(big.Int).SetBytes(mantissaBytes)
		exp := int(num.FractionExponent)
		if !num.Tag.isBig() {
			// E..T fields carry a Frexp-style exponent: the fraction is
			// mantissa/2^bitlen(mantissa), scaled by 2^exp.
			exp -= mantissa.BitLen()
		}
		frac := new(big.Float).SetInt(mantissa)
		frac = frac.SetMantExp(frac, exp)

		// SetInt left result with only the integer part's precision;
		// widen it so that adding frac is exact.
		span := exp
		if span < 0 {
			span = -span
		}
		result.SetPrec(uint(8*num.IntegralNBytes + mantissa.BitLen() + span + 1))

		if num.Negative {
			result.Sub(result, frac)
		} else {
			result.Add(result, frac)
		}
	}
	sink.SetBigFloat(result)
	return nil
}

// AttachBigHandlers wires DefaultBigIntHandler and DefaultBigFloatHandler
// into loader, replacing whatever HandlerBigInt/HandlerBigFloat it had.
// loader.App must implement BigSink for the wired handlers to succeed.
func AttachBigHandlers(loader *Loader) {
	loader.HandlerBigInt = DefaultBigIntHandler
	loader.HandlerBigFloat = DefaultBigFloatHandler
}
