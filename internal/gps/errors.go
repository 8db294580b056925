package gps

import "errors"

// Conversion errors
var (
	ErrMalformedNumber  = errors.New("malformed number")
	ErrUnparsableTag    = errors.New("unparsable sexagesimal tag")
	ErrIncompleteTagSet = errors.New("incomplete GPS tag set")
)
