package parse

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/bunch-format/bunch/literal"
)

var (
	ErrIndentation = errors.New("bad indentation")
	ErrSyntax      = errors.New("syntax error")
	ErrLiteral     = literal.ErrLiteral
	ErrIO          = errors.New("i/o error")
)

// Error is a parse failure at a specific line. Kind is one of
// ErrIndentation, ErrSyntax or ErrLiteral; Err is the underlying cause,
// if any.
type Error struct {
	Kind error
	File string
	// Line is 1-based.
	Line int
	// Col is a 0-based byte offset into Text.
	Col  int
	Text string
	Err  error
}

func (e *Error) Error() string {
	loc := "line " + strconv.Itoa(e.Line)
	if e.File != "" {
		loc = e.File + ":" + strconv.Itoa(e.Line)
	}
	msg := fmt.Sprintf("%v at %s: %q", e.Kind, loc, e.Text)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}
