package ines

import "fmt"

type ErrorKind int

const (
	Truncated ErrorKind = iota + 1
	InvalidMagic
	ReservedBitsSet
	TrailingData
)

func (k ErrorKind) String() string {
	switch k {
	case Truncated:
		return "truncated"
	case InvalidMagic:
		return "invalid magic"
	case ReservedBitsSet:
		return "reserved bits set"
	case TrailingData:
		return "trailing data"
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Sentinels for errors.Is, e.g. errors.Is(err, ines.ErrTruncated).
var (
	ErrTruncated       = &FormatError{Kind: Truncated}
	ErrInvalidMagic    = &FormatError{Kind: InvalidMagic}
	ErrReservedBitsSet = &FormatError{Kind: ReservedBitsSet}
	ErrTrailingData    = &FormatError{Kind: TrailingData}
)

// FormatError reports a malformed iNES image.
type FormatError struct {
	Kind ErrorKind
	// Offset is the first offending byte offset.
	Offset int
	// Want and Got are the declared and actual buffer lengths for Truncated.
	Want, Got int
	// Excess is the number of leftover bytes for TrailingData.
	Excess int
}

func newTruncated(got, want int) *FormatError {
	return &FormatError{Kind: Truncated, Offset: got, Want: want, Got: got}
}

func (e *FormatError) Error() string {
	switch e.Kind {
	case Truncated:
		return fmt.Sprintf("ines: truncated: got=%d bytes, want=%d", e.Got, e.Want)
	case TrailingData:
		return fmt.Sprintf("ines: trailing data: %d bytes left over at offset %d", e.Excess, e.Offset)
	}
	return fmt.Sprintf("ines: %s at byte %d", e.Kind, e.Offset)
}

// Is matches any FormatError of the same Kind.
func (e *FormatError) Is(target error) bool {
	t, ok := target.(*FormatError)
	return ok && t.Kind == e.Kind
}
