package literal

import (
	"errors"
	"fmt"
)

var (
	ErrLiteral = errors.New("bad literal")

	ErrEmpty         = fmt.Errorf("%w: empty", ErrLiteral)
	ErrUnexpected    = fmt.Errorf("%w: unexpected", ErrLiteral)
	ErrUnterminated  = fmt.Errorf("%w: unterminated", ErrLiteral)
	ErrBadEscape     = fmt.Errorf("%w: bad escape", ErrLiteral)
	ErrNumber        = fmt.Errorf("%w: bad number", ErrLiteral)
	ErrRange         = fmt.Errorf("%w: number out of range", ErrLiteral)
	ErrTooDeep       = fmt.Errorf("%w: nesting too deep", ErrLiteral)
	ErrUnhashable    = fmt.Errorf("%w: unhashable", ErrLiteral)
	ErrEncoding      = fmt.Errorf("%w: invalid UTF-8", ErrLiteral)
	ErrUnrepresented = errors.New("value has no literal form")
)

// Error locates a literal error at a byte offset of the evaluated text.
type Error struct {
	Offset int
	Err    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%v at offset %d", e.Err, e.Offset)
}

func (e *Error) Unwrap() error {
	return e.Err
}
