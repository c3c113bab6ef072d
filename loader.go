package ordkey

import "math"

// HandlerInt receives a decoded int64 field.
type HandlerInt func(loader *Loader, value int64) error

// HandlerFloat receives a decoded float64 field.
type HandlerFloat func(loader *Loader, value float64) error

// HandlerInf receives a bare ±Inf field, tagged with which one it was.
type HandlerInf func(loader *Loader, tag Tag) error

// HandlerStr receives a string field's raw (still hex-decoded, not yet
// UTF-8-validated) payload bytes and its encoding hint.
type HandlerStr func(loader *Loader, data []byte, enc Encoding) error

// HandlerBigInt receives the structured view of a D/U field that has no
// fractional suffix.
type HandlerBigInt func(loader *Loader, num *MetaNumber) error

// HandlerBigFloat receives the structured view of a D/U field that does
// have a fractional suffix, or of an E..T field whose magnitude or
// exponent exceeds the range Tokenize can convert to a float64 exactly.
type HandlerBigFloat func(loader *Loader, num *MetaNumber) error

// Loader is the dispatch record Tokenize invokes as it decodes a
// record's fields: six handler functions plus an opaque App value the
// handlers can use to accumulate results. Modeling dispatch as a record
// of functions (rather than, say, an interface with six methods) keeps
// Tokenize itself decoupled from any particular App type, and lets a
// caller swap a single handler without implementing the other five.
//
// A Loader is not safe for concurrent Tokenize calls sharing the same
// App unless App's handlers are themselves safe for that.
type Loader struct {
	App any

	HandlerInt      HandlerInt
	HandlerFloat    HandlerFloat
	HandlerInf      HandlerInf
	HandlerStr      HandlerStr
	HandlerBigInt   HandlerBigInt
	HandlerBigFloat HandlerBigFloat
}

// NewLoader returns a Loader with app as its App value and every handler
// set to a default. HandlerInf's default delegates to HandlerFloat with
// ±math.Inf(1); every other default returns ErrHandler, refusing the
// field. Callers overwrite whichever handlers they need.
func NewLoader(app any) *Loader {
	return &Loader{
		App:             app,
		HandlerInt:      defaultHandlerInt,
		HandlerFloat:    defaultHandlerFloat,
		HandlerInf:      defaultHandlerInf,
		HandlerStr:      defaultHandlerStr,
		HandlerBigInt:   defaultHandlerBigInt,
		HandlerBigFloat: defaultHandlerBigFloat,
	}
}

func defaultHandlerInt(*Loader, int64) error { return ErrHandler }

func defaultHandlerFloat(*Loader, float64) error { return ErrHandler }

func defaultHandlerStr(*Loader, []byte, Encoding) error { return ErrHandler }

func defaultHandlerBigInt(*Loader, *MetaNumber) error { return ErrHandler }

func defaultHandlerBigFloat(*Loader, *MetaNumber) error { return ErrHandler }

func defaultHandlerInf(loader *Loader, tag Tag) error {
	value := math.Inf(1)
	if tag.isNegative() {
		value = math.Inf(-1)
	}
	if loader.HandlerFloat == nil {
		return nil
	}
	return loader.HandlerFloat(loader, value)
}
