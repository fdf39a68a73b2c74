// Package wcif models the WCA Competition Interchange Format and the compact
// encodings it uses for results, activity codes and identifiers.
package wcif

import (
	"errors"
	"fmt"
)

var (
	ErrNotANumber         = errors.New("not a number")
	ErrInvalidResult      = errors.New("not a valid result")
	ErrLength             = errors.New("invalid length")
	ErrDigitParse         = errors.New("invalid digits")
	ErrMissingEventID     = errors.New("missing event id")
	ErrMissingRoundPrefix = errors.New("missing round prefix")
	ErrInvalidFormat      = errors.New("invalid format")
	ErrInvalidAssignment  = errors.New("invalid staff assignment")
	ErrUnknownEvent       = errors.New("not a valid event")
	ErrFormatVersion      = errors.New("unsupported format version")
)

// ParseError records the value type and input that failed to decode.
// Err is one of the sentinel errors above, possibly wrapped with detail.
type ParseError struct {
	Type  string
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("wcif: parsing %s %q: %v", e.Type, e.Input, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func parseError(typ, input string, err error) error {
	return &ParseError{Type: typ, Input: input, Err: err}
}
