package token

import (
	"fmt"
	"strings"
	"unicode"
)

const (
	CommentMarker = "#"
	AssignMarker  = "="
	BlockMarker   = ":"

	// DefaultIndent is the indentation unit written by the serializer.
	DefaultIndent = "    "
	// DefaultExtension is the file name suffix recognized in directories.
	DefaultExtension = ".bunch"
)

// Markers holds the marker strings of a dialect.
type Markers struct {
	Comment string
	Assign  string
	Block   string
}

func DefaultMarkers() Markers {
	return Markers{
		Comment: CommentMarker,
		Assign:  AssignMarker,
		Block:   BlockMarker,
	}
}

// Validate checks that the markers are non-empty, contain no whitespace and
// that none is a prefix of another.
func (m Markers) Validate() error {
	all := []struct{ name, v string }{
		{"comment", m.Comment},
		{"assign", m.Assign},
		{"block", m.Block},
	}
	for i, x := range all {
		if x.v == "" {
			return fmt.Errorf("%w: empty %s marker", ErrMarkers, x.name)
		}
		if strings.IndexFunc(x.v, unicode.IsSpace) != -1 {
			return fmt.Errorf("%w: %s marker %q contains whitespace", ErrMarkers, x.name, x.v)
		}
		for _, y := range all[:i] {
			if strings.HasPrefix(x.v, y.v) || strings.HasPrefix(y.v, x.v) {
				return fmt.Errorf("%w: %s marker %q clashes with %s marker %q",
					ErrMarkers, x.name, x.v, y.name, y.v)
			}
		}
	}
	return nil
}
