package ordkey

import "github.com/ordkey/ordkey/internal"

// Tag is the single leading byte of an encoded field. Tag values are
// assigned so that comparing the tag byte alone orders fields of
// different kinds correctly, before any payload comparison happens:
// -Inf < negative big < negative integers/floats (longer magnitude
// first) < positive integers/floats (shorter magnitude first) <
// positive big < +Inf < string.
//
// Do not change the value of any existing Tag constant; doing so
// changes the sort order of every encoding already written with the
// old values.
type Tag byte

const (
	TagNegInf Tag = 'C'
	TagNegBig Tag = 'D'

	// TagNeg8 holds the most negative 8-byte-magnitude integers/floats,
	// down to TagNeg1 for 1-byte magnitudes. Smaller tag, larger byte
	// count: a negative number that needs more bytes is more negative,
	// and must sort lower.
	TagNeg8 Tag = 'E'
	TagNeg7 Tag = 'F'
	TagNeg6 Tag = 'G'
	TagNeg5 Tag = 'H'
	TagNeg4 Tag = 'I'
	TagNeg3 Tag = 'J'
	TagNeg2 Tag = 'K'
	TagNeg1 Tag = 'L'

	// TagPos1 through TagPos8 mirror the negative range: larger tag,
	// larger byte count, since a positive number needing more bytes is
	// larger and must sort higher.
	TagPos1 Tag = 'M'
	TagPos2 Tag = 'N'
	TagPos3 Tag = 'O'
	TagPos4 Tag = 'P'
	TagPos5 Tag = 'Q'
	TagPos6 Tag = 'R'
	TagPos7 Tag = 'S'
	TagPos8 Tag = 'T'

	TagPosBig Tag = 'U'
	TagPosInf Tag = 'V'

	TagString Tag = 'X'
)

// tagByNBytes returns the tag for an integer/float magnitude requiring
// nbytes bytes (1..8), for the given sign.
func tagByNBytes(nbytes int, negative bool) Tag {
	if negative {
		return TagNeg1 + 1 - Tag(nbytes)
	}
	return TagPos1 - 1 + Tag(nbytes)
}

// nbytesByTag is the inverse of tagByNBytes, valid only for tags in
// [TagNeg1, TagPos8].
func nbytesByTag(tag Tag, negative bool) int {
	if negative {
		return int(TagNeg1 + 1 - tag)
	}
	return int(tag - TagPos1 + 1)
}

func (t Tag) isNegative() bool { return t < TagPos1 }
func (t Tag) isPositive() bool { return t > TagNeg1 }

func (t Tag) isNumber() bool { return t >= TagNegInf && t <= TagPosInf }
func (t Tag) isBig() bool    { return t == TagNegBig || t == TagPosBig }
func (t Tag) isInf() bool    { return t == TagNegInf || t == TagPosInf }
func (t Tag) isString() bool { return t == TagString }

// separator returns the terminator byte that must follow a field with
// this tag.
func (t Tag) separator() byte {
	if t.isNegative() {
		return internal.SepNegative
	}
	return internal.SepPositive
}
