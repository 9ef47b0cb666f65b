package config

import "errors"

// Sentinel errors for the config package.
var (
	// ErrMalformedLine indicates a non-blank, non-comment line is not of
	// the form NAME = VALUE.
	ErrMalformedLine = errors.New("config: malformed line, expected NAME = VALUE")

	// ErrUnterminatedString indicates a single-quoted string literal has
	// no closing quote before end of line.
	ErrUnterminatedString = errors.New("config: unterminated string literal")

	// ErrMalformedVector indicates a bracketed vector literal has no
	// closing ']' or contains a non-numeric element.
	ErrMalformedVector = errors.New("config: malformed vector literal")

	// ErrMalformedValue indicates a value token is none of number,
	// boolean, quoted string, or bracketed vector.
	ErrMalformedValue = errors.New("config: malformed value literal")

	// ErrWrongValueType indicates a recognized option key's value is not
	// the type that key expects.
	ErrWrongValueType = errors.New("config: value has the wrong type for this key")

	// ErrNonPositiveMaxAge indicates max_track_age was set to zero or
	// less.
	ErrNonPositiveMaxAge = errors.New("config: max_track_age must be positive")
)
