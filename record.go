package ordkey

// Record is an ordered sequence of packed fields meant to be compared
// or stored as a single composite key. Concatenating Record.Bytes for
// two records built from componentwise-ordered field sequences preserves
// componentwise ordering: see spec.md §8 property 5.
type Record struct {
	buf *Buffer
}

// NewRecord returns an empty Record with reserve bytes pre-allocated.
func NewRecord(reserve int) *Record {
	return &Record{buf: NewBuffer(reserve)}
}

// Int appends an int64 field and returns the Record for chaining.
func (r *Record) Int(v int64) *Record {
	PackInt(r.buf, v)
	return r
}

// Float appends a float64 field and returns the Record for chaining.
// It panics if v is NaN or exceeds the representable-integer range; use
// PackFloat directly if you need to handle that error without a panic.
func (r *Record) Float(v float64) *Record {
	if err := PackFloat(r.buf, v); err != nil {
		panic(err)
	}
	return r
}

// String appends a string field with the given encoding and returns the
// Record for chaining.
func (r *Record) String(v []byte, enc Encoding) *Record {
	PackString(r.buf, v, enc)
	return r
}

// Bytes returns the concatenated encoding of every field appended so
// far.
func (r *Record) Bytes() []byte {
	return r.buf.Bytes()
}

// AppendInt packs v into a fresh single-field encoding.
func AppendInt(v int64) []byte {
	buf := NewBuffer(17)
	PackInt(buf, v)
	return buf.Bytes()
}

// AppendFloat packs v into a fresh single-field encoding.
func AppendFloat(v float64) ([]byte, error) {
	buf := NewBuffer(36)
	if err := PackFloat(buf, v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// AppendString packs v into a fresh single-field encoding.
func AppendString(v []byte, enc Encoding) []byte {
	buf := NewBuffer(2*len(v) + 3)
	PackString(buf, v, enc)
	return buf.Bytes()
}
