package storage

import "errors"

var (
	ErrSourceNotFound    = errors.New("source file doesn't exist")
	ErrMalformedSource   = errors.New("source file content is malformed")
	ErrUnsupportedFormat = errors.New("source file format is not supported")
	ErrInvalidRecord     = errors.New("source file contains invalid record")
)
