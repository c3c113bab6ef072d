package ordkey

// Buffer is a growable output byte container, the target that the
// packers in this package append encoded fields to. It exists mainly so
// a single long-lived scratch area can be reused across many Pack calls
// without allocating a new slice for every field or every record.
//
// A Buffer is not safe for concurrent use; confine one to a single
// producer goroutine, the same contract the rest of this package
// follows.
type Buffer struct {
	data     []byte
	reserved int
}

// NewBuffer returns a Buffer with reserve bytes of capacity pre-allocated.
func NewBuffer(reserve int) *Buffer {
	return &Buffer{data: make([]byte, 0, reserve), reserved: reserve}
}

// require ensures n more bytes can be appended without Go's own slice
// growth kicking in more than once, growing capacity by at least 25% of
// the new requirement. This mirrors the reference allocator's growth
// factor; Go's append would do something broadly similar on its own; the
// explicit call keeps a single grown allocation instead of two.
func (b *Buffer) require(n int) {
	if len(b.data)+n <= cap(b.data) {
		return
	}
	grown := make([]byte, len(b.data), (len(b.data)+n+1)*10/8)
	copy(grown, b.data)
	b.data = grown
}

// Bytes returns the buffer's current contents. The returned slice is
// invalidated by the next call to Reset, ResetFast, or any Pack call
// that triggers a reallocation.
func (b *Buffer) Bytes() []byte {
	return b.data
}

// Reset truncates the buffer back to its originally reserved capacity,
// releasing any memory grown beyond it.
func (b *Buffer) Reset() {
	if cap(b.data) != b.reserved {
		b.data = make([]byte, 0, b.reserved)
		return
	}
	b.data = b.data[:0]
}

// ResetFast truncates the buffer to zero length without releasing any
// grown capacity, for reuse in a tight loop.
func (b *Buffer) ResetFast() {
	b.data = b.data[:0]
}

// Close releases the buffer's backing array. A closed Buffer must not
// be used again.
func (b *Buffer) Close() {
	b.data = nil
}
