package ordkey

// Encoding is the trailing, unhexed hint byte written after a string
// field's payload, telling a reader how to interpret the bytes.
type Encoding byte

const (
	// EncNone is normalized to EncRaw when packed; it exists so callers
	// can pass the zero value of Encoding without thinking about it.
	EncNone Encoding = 0
	EncRaw  Encoding = 'H'
	EncUTF8 Encoding = 'L'
)

func (e Encoding) valid() bool {
	return e == EncRaw || e == EncUTF8
}
