package ordkey

import "fmt"

// Code identifies the kind of failure reported by an Error. The zero
// value, CodeNothing, is never attached to a returned error; it exists
// so a Code can be used as a sentinel "no error" value by callers that
// track one out-of-band, mirroring the out-parameter style of the
// C reference this package's wire format is drawn from.
type Code int

const (
	CodeNothing Code = iota
	CodeAllocation
	CodeAllocationSmall
	CodeNullPtr
	CodeRange
	CodeNaN
	CodeLength
	CodeTag
	CodeSign
	CodeEnc
	CodeHandler
)

// String returns a human-readable description of c, the equivalent of
// the reference implementation's strerror-style lookup.
func (c Code) String() string {
	switch c {
	case CodeNothing:
		return "successful return"
	case CodeAllocation:
		return "memory cannot be (re)allocated"
	case CodeAllocationSmall:
		return "(re)allocated memory is too small"
	case CodeNullPtr:
		return "null pointer passed"
	case CodeRange:
		return "value out of allowed range"
	case CodeNaN:
		return "value is NaN"
	case CodeLength:
		return "invalid length of data"
	case CodeTag:
		return "unknown tag"
	case CodeSign:
		return "unknown sign"
	case CodeEnc:
		return "unknown string encoding"
	case CodeHandler:
		return "final value cannot be handled"
	default:
		return "unknown error"
	}
}

// Error is the error type returned by every fallible function in this
// package. Context is a short, code-specific detail (the offending tag
// byte, the field length, ...), and may be empty.
type Error struct {
	Code    Code
	Context string
}

func (e *Error) Error() string {
	if e.Context == "" {
		return e.Code.String()
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Context)
}

func newError(code Code, context string) *Error {
	return &Error{Code: code, Context: context}
}

// Is reports whether target is an *Error with the same Code, so callers
// can use errors.Is(err, ordkey.ErrRange) style checks against the
// sentinel values below.
func (e *Error) Is(target error) bool {
	other, ok := target.(*Error)
	return ok && other.Code == e.Code
}

// Sentinel errors for errors.Is comparisons against a specific failure
// kind, e.g. errors.Is(err, ordkey.ErrRange).
var (
	ErrAllocation      = &Error{Code: CodeAllocation}
	ErrAllocationSmall = &Error{Code: CodeAllocationSmall}
	ErrNullPtr         = &Error{Code: CodeNullPtr}
	ErrRange           = &Error{Code: CodeRange}
	ErrNaN             = &Error{Code: CodeNaN}
	ErrLength          = &Error{Code: CodeLength}
	ErrTag             = &Error{Code: CodeTag}
	ErrSign            = &Error{Code: CodeSign}
	ErrEnc             = &Error{Code: CodeEnc}
	ErrHandler         = &Error{Code: CodeHandler}
)
