package errors

import "errors"

var (
	ErrUnknownCity         = errors.New("unknown city")
	ErrResourceUnavailable = errors.New("resource unavailable")
	ErrMalformedRecord     = errors.New("malformed record")
	ErrEmptyDataset        = errors.New("empty dataset")
	ErrInvalidFilter       = errors.New("invalid filter")
	ErrInvalidConfig       = errors.New("invalid config")
)
