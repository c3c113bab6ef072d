package ordkey

import (
	"math"

	"github.com/ordkey/ordkey/internal"
)

const maxSafeMantissaBytes = 7

// Tokenize scans src for fields, each terminated by '+' or '~', and
// dispatches each to the appropriate Loader handler: HandlerStr for X
// fields, and one of HandlerInt/HandlerFloat/HandlerInf/HandlerBigInt/
// HandlerBigFloat for C..V fields, in the priority loadNumber applies.
//
// Any bytes remaining after the last terminator are ignored, the same
// as the reference tokenizer - a trailing NUL the caller appended or an
// accidental partial field are both silently dropped.
//
// A non-nil error aborts the scan at the field that caused it; fields
// already dispatched to handlers are not undone. Tokenize makes no
// partial-progress commitment beyond that: a caller needing idempotent
// re-entry must track the input offset itself.
func Tokenize(loader *Loader, src []byte) error {
	for {
		i := internal.MemSep(src)
		if i < 0 {
			return nil
		}
		if i == 0 {
			return newError(CodeLength, "empty tag")
		}

		tag := Tag(src[0])
		payload := src[1:i]
		src = src[i+1:]

		switch {
		case tag.isString():
			if err := loadString(loader, payload); err != nil {
				return err
			}
		case tag.isNumber():
			if err := loadNumber(loader, tag, payload); err != nil {
				return err
			}
		default:
			return newError(CodeTag, string(rune(tag)))
		}
	}
}

// loadString implements spec.md §4.7: pop the trailing encoding byte,
// validate it, and hand the remaining hex-decoded bytes to HandlerStr.
func loadString(loader *Loader, payload []byte) error {
	if len(payload) == 0 || (len(payload)-1)%2 != 0 {
		return newError(CodeLength, "odd string payload length")
	}
	enc := Encoding(payload[len(payload)-1])
	payload = payload[:len(payload)-1]
	if !enc.valid() {
		return newError(CodeEnc, string(rune(enc)))
	}

	data := make([]byte, 0, len(payload)/2)
	for len(payload) > 0 {
		var b uint8
		b, payload = internal.ReadUint8(payload, 0)
		data = append(data, b)
	}

	if err := loader.HandlerStr(loader, data, enc); err != nil {
		return newError(CodeHandler, err.Error())
	}
	return nil
}

// loadNumber implements spec.md §4.8, dispatching on tag kind to the
// infinity, big-number, or fixed-width integer/float paths.
func loadNumber(loader *Loader, tag Tag, payload []byte) error {
	if tag.isInf() {
		if err := loader.HandlerInf(loader, tag); err != nil {
			return newError(CodeHandler, err.Error())
		}
		return nil
	}

	num := &MetaNumber{Tag: tag, Negative: tag.isNegative()}
	mask := num.mask()

	if tag.isBig() {
		// 4 hex chars for the 16-bit integer-part byte count.
		if len(payload) < 4 {
			return newError(CodeLength, "big-number count field truncated")
		}
		nbytes16, rest := internal.ReadUint16(payload, mask)
		num.IntegralNBytes = int(nbytes16)
		payload = rest
	} else {
		num.IntegralNBytes = nbytesByTag(tag, num.Negative)
	}

	if num.IntegralNBytes*2 > len(payload) {
		return newError(CodeLength, "integer part longer than payload")
	}
	num.IntegralData = payload[:num.IntegralNBytes*2]
	payload = payload[num.IntegralNBytes*2:]

	if len(payload) < 4 {
		return loadNumberInteger(loader, num)
	}

	exp16, rest := internal.ReadUint16(payload, mask)
	num.FractionExponent = int32(exp16) - exponentBias
	num.FractionData = rest
	num.FractionNBytes = len(rest) / 2
	num.HasFraction = true

	return loadNumberFloat(loader, num)
}

// loadNumberInteger implements spec.md §4.8's pure-integer path: decode
// the magnitude and, if it fits in an int64, deliver it through
// HandlerInt, otherwise return ErrRange. D/U tags are delegated to
// HandlerBigInt without decoding.
func loadNumberInteger(loader *Loader, num *MetaNumber) error {
	if num.IntegralNBytes > 8 || num.Tag.isBig() {
		if err := loader.HandlerBigInt(loader, num); err != nil {
			return newError(CodeHandler, err.Error())
		}
		return nil
	}

	mask := num.mask()
	magnitude, _ := internal.ReadUint64N(num.IntegralData, num.IntegralNBytes, mask)

	var value int64
	if num.Negative {
		if magnitude > 1<<63 {
			return ErrRange
		}
		value = internal.NegatePositive(magnitude)
	} else {
		if magnitude > math.MaxInt64 {
			return ErrRange
		}
		value = int64(magnitude)
	}

	if err := loader.HandlerInt(loader, value); err != nil {
		return newError(CodeHandler, err.Error())
	}
	return nil
}

// loadNumberFloat implements spec.md §4.8's float path: D/U fields go
// straight to HandlerBigFloat; for E..T fields, reconstruct a float64
// from the integer part and the exponent+mantissa suffix when the result
// is guaranteed exact, otherwise delegate to HandlerBigFloat.
func loadNumberFloat(loader *Loader, num *MetaNumber) error {
	if num.Tag.isBig() {
		return deliverBigFloat(loader, num)
	}
	if num.IntegralNBytes > maxSafeMantissaBytes || num.FractionNBytes > maxSafeMantissaBytes {
		return deliverBigFloat(loader, num)
	}
	if num.FractionExponent > 0 || num.FractionExponent < -1073 {
		return deliverBigFloat(loader, num)
	}

	mask := num.mask()
	integral, _ := internal.ReadUint64N(num.IntegralData, num.IntegralNBytes, mask)
	fraction, _ := internal.ReadUint64N(num.FractionData, num.FractionNBytes, mask)

	if integral > maxSafeInt || fraction > maxSafeInt {
		return deliverBigFloat(loader, num)
	}

	value := float64(integral)
	if fraction != 0 {
		nbits := internal.Log2I(fraction) + 1
		f := math.Ldexp(math.Ldexp(float64(fraction), -nbits), int(num.FractionExponent))
		value += f
		if value-float64(integral) != f {
			// Precision was lost reconstructing the float64; the caller
			// asked for exactness, so hand off the raw view instead of
			// silently returning a lossy value.
			return deliverBigFloat(loader, num)
		}
	}

	if num.Negative {
		value = -value
	}

	if err := loader.HandlerFloat(loader, value); err != nil {
		return newError(CodeHandler, err.Error())
	}
	return nil
}

func deliverBigFloat(loader *Loader, num *MetaNumber) error {
	if err := loader.HandlerBigFloat(loader, num); err != nil {
		return newError(CodeHandler, err.Error())
	}
	return nil
}
