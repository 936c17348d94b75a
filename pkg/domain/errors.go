package domain

import "errors"

// ErrUnsupportedFormat is returned when an input file has no known extension.
var ErrUnsupportedFormat = errors.New("unsupported file extension")

// ErrMalformedDefinition is returned when the top-level structure of a machine file cannot be decoded.
var ErrMalformedDefinition = errors.New("malformed machine definition")

// ErrResultNotFound is returned when a key cannot be found in a result store.
var ErrResultNotFound = errors.New("result not found")
