package ordkey

import "github.com/ordkey/ordkey/internal"

// PackString appends the encoding of src to buf: tag X, the raw bytes
// of src hex-encoded (no XOR mask), the encoding hint byte (unhexed),
// and the positive terminator.
//
// enc is normalized to EncRaw when it is EncNone. Any other value
// outside {EncRaw, EncUTF8} is the caller's error; PackString does not
// validate it, since PackString's output is only ever meant to be read
// back by Tokenize, which does validate on the way in.
func PackString(buf *Buffer, src []byte, enc Encoding) {
	if enc == EncNone {
		enc = EncRaw
	}
	buf.require(1 + 2*len(src) + 1 + 1)
	dst := buf.data
	dst = append(dst, byte(TagString))
	dst = internal.WriteMasked(dst, src, 0)
	dst = append(dst, byte(enc))
	dst = append(dst, internal.SepPositive)
	buf.data = dst
}
