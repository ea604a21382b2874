package dom

import "errors"

// Sentinel errors, returned wrapped with details.
var (
	ErrMalformedDocument = errors.New("malformed document")
	ErrUnsupportedTag    = errors.New("unsupported tag")
	ErrInvalidArgument   = errors.New("invalid argument")
)
