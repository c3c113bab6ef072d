package ordkey_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ordkey/ordkey"
)

func TestTokenizeMultipleFields(t *testing.T) {
	t.Parallel()
	buf := ordkey.NewBuffer(0)
	ordkey.PackInt(buf, 7)
	ordkey.PackString(buf, []byte("mid"), ordkey.EncUTF8)
	require.NoError(t, ordkey.PackFloat(buf, -2.5))

	var (
		ints   []int64
		floats []float64
		strs   [][]byte
	)
	loader := ordkey.NewLoader(nil)
	loader.HandlerInt = func(_ *ordkey.Loader, v int64) error {
		ints = append(ints, v)
		return nil
	}
	loader.HandlerFloat = func(_ *ordkey.Loader, v float64) error {
		floats = append(floats, v)
		return nil
	}
	loader.HandlerStr = func(_ *ordkey.Loader, data []byte, _ ordkey.Encoding) error {
		strs = append(strs, append([]byte(nil), data...))
		return nil
	}

	require.NoError(t, ordkey.Tokenize(loader, buf.Bytes()))
	assert.Equal(t, []int64{7}, ints)
	assert.Equal(t, []float64{-2.5}, floats)
	require.Len(t, strs, 1)
	assert.Equal(t, []byte("mid"), strs[0])
}

func TestTokenizeIgnoresTrailingPartialBytes(t *testing.T) {
	t.Parallel()
	buf := ordkey.NewBuffer(0)
	ordkey.PackInt(buf, 3)
	data := append(buf.Bytes(), 0)

	loader, c := ordkey.NewCollectorLoader()
	require.NoError(t, ordkey.Tokenize(loader, data))
	assert.Equal(t, int64(3), c.Int)
}

func TestTokenizeUnknownTag(t *testing.T) {
	t.Parallel()
	loader, _ := ordkey.NewCollectorLoader()
	err := ordkey.Tokenize(loader, []byte("Zabcd+"))
	require.Error(t, err)
	var oerr *ordkey.Error
	require.True(t, errors.As(err, &oerr))
	assert.Equal(t, ordkey.CodeTag, oerr.Code)
}

func TestTokenizeBadStringEncoding(t *testing.T) {
	t.Parallel()
	loader, _ := ordkey.NewCollectorLoader()
	// 'z' is not a valid encoding byte.
	err := ordkey.Tokenize(loader, []byte("Xz+"))
	require.Error(t, err)
	var oerr *ordkey.Error
	require.True(t, errors.As(err, &oerr))
	assert.Equal(t, ordkey.CodeEnc, oerr.Code)
}

func TestTokenizeHandlerRefusalWrapsAsHandlerError(t *testing.T) {
	t.Parallel()
	loader := ordkey.NewLoader(nil)
	err := ordkey.Tokenize(loader, packInt(5))
	require.Error(t, err)
	var oerr *ordkey.Error
	require.True(t, errors.As(err, &oerr))
	assert.Equal(t, ordkey.CodeHandler, oerr.Code)
}

func TestTokenizeInfinityDelegatesToFloatHandler(t *testing.T) {
	t.Parallel()
	buf := ordkey.NewBuffer(0)
	require.NoError(t, ordkey.PackFloat(buf, math.Inf(-1)))

	loader, c := ordkey.NewCollectorLoader()
	require.NoError(t, ordkey.Tokenize(loader, buf.Bytes()))
	assert.Equal(t, math.Inf(-1), c.Float)
}

// TestFullOrderingAcrossKinds exercises spec.md §8's headline property:
// the encodings of -Inf, big negatives, fixed negatives, fixed
// positives, big positives, +Inf, and strings sort in exactly that
// relative order, regardless of kind.
func TestFullOrderingAcrossKinds(t *testing.T) {
	t.Parallel()
	buf := ordkey.NewBuffer(0)
	require.NoError(t, ordkey.PackFloat(buf, math.Inf(-1)))
	negInf := takeField(t, buf)

	ordkey.PackBigInt(buf, bigFromString(t, "-99999999999999999999999999999999999999"))
	negBig := takeField(t, buf)

	ordkey.PackInt(buf, math.MinInt64)
	negFixed := takeField(t, buf)

	ordkey.PackInt(buf, -1)
	negOne := takeField(t, buf)

	ordkey.PackInt(buf, 0)
	zero := takeField(t, buf)

	ordkey.PackInt(buf, math.MaxInt64)
	posFixed := takeField(t, buf)

	ordkey.PackBigInt(buf, bigFromString(t, "99999999999999999999999999999999999999"))
	posBig := takeField(t, buf)

	require.NoError(t, ordkey.PackFloat(buf, math.Inf(1)))
	posInf := takeField(t, buf)

	str := packString([]byte("z"), ordkey.EncRaw)

	ordered := [][]byte{negInf, negBig, negFixed, negOne, zero, posFixed, posBig, posInf, str}
	for i := 0; i < len(ordered)-1; i++ {
		assert.Less(t, string(ordered[i]), string(ordered[i+1]),
			"field %d must sort below field %d", i, i+1)
	}
}

func takeField(t *testing.T, buf *ordkey.Buffer) []byte {
	t.Helper()
	out := make([]byte, len(buf.Bytes()))
	copy(out, buf.Bytes())
	buf.ResetFast()
	return out
}
