package encode

import "errors"

var (
	ErrKey    = errors.New("key cannot be encoded")
	ErrIndent = errors.New("indent must be non-empty whitespace")
)
