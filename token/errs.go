package token

import "errors"

var (
	ErrNoMarker     = errors.New("no assignment or block marker")
	ErrEmptyKey     = errors.New("empty key")
	ErrBlockTrailer = errors.New("unexpected text after block marker")
	ErrMarkers      = errors.New("bad markers")
)
