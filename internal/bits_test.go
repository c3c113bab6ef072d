package internal_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ordkey/ordkey/internal"
)

func TestWriteReadUint8RoundTrip(t *testing.T) {
	t.Parallel()
	for _, mask := range []byte{0, 0xff} {
		for v := 0; v <= 0xff; v++ {
			dst := internal.WriteMasked(nil, []byte{byte(v)}, mask)
			got, rest := internal.ReadUint8(dst, mask)
			assert.Equal(t, byte(v), got)
			assert.Empty(t, rest)
		}
	}
}

func TestWriteReadUint64NRoundTrip(t *testing.T) {
	t.Parallel()
	values := []uint64{0, 1, 0xff, 0x1234, math.MaxUint32, math.MaxUint64}
	for _, v := range values {
		n := internal.CountNBytes(v)
		dst := internal.WriteUint64N(nil, v, n)
		got, rest := internal.ReadUint64N(dst, n, 0)
		assert.Equal(t, v, got)
		assert.Empty(t, rest)
	}
}

func TestMemSep(t *testing.T) {
	t.Parallel()
	assert.Equal(t, -1, internal.MemSep([]byte("abcd")))
	assert.Equal(t, 0, internal.MemSep([]byte("+abcd")))
	assert.Equal(t, 4, internal.MemSep([]byte("abcd~xyz")))
	assert.Equal(t, 2, internal.MemSep([]byte("ab+cd~")))
}

func TestCountNBytes(t *testing.T) {
	t.Parallel()
	tests := []struct {
		v    uint64
		want int
	}{
		{0, 1},
		{1, 1},
		{0xff, 1},
		{0x100, 2},
		{0xffff, 2},
		{0x10000, 3},
		{math.MaxUint64, 8},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, internal.CountNBytes(tt.v), "CountNBytes(%#x)", tt.v)
	}
}

func TestLog2I(t *testing.T) {
	t.Parallel()
	tests := []struct {
		v    uint64
		want int
	}{
		{1, 0},
		{2, 1},
		{3, 1},
		{4, 2},
		{1 << 52, 52},
		{1<<53 - 1, 52},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, internal.Log2I(tt.v), "Log2I(%#x)", tt.v)
	}
}

func TestNegateRoundTrip(t *testing.T) {
	t.Parallel()
	values := []int64{-1, -2, -127, -128, math.MinInt64, math.MinInt64 + 1}
	for _, v := range values {
		u := internal.NegateNegative(v)
		got := internal.NegatePositive(u)
		assert.Equal(t, v, got, "negate round trip for %d", v)
	}
}
