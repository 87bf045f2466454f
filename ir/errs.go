package ir

import "errors"

var (
	ErrNotFound    = errors.New("not found")
	ErrNotBunch    = errors.New("not a bunch")
	ErrUnhashable  = errors.New("unhashable value")
	ErrUnsupported = errors.New("unsupported value")
)
