package token

import (
	"strings"
	"unicode"
)

type Kind int

const (
	Ignored Kind = iota
	Assignment
	BlockHeader
	Malformed
)

func (k Kind) String() string {
	switch k {
	case Ignored:
		return "ignored"
	case Assignment:
		return "assignment"
	case BlockHeader:
		return "block header"
	case Malformed:
		return "malformed"
	default:
		return "<unknown kind>"
	}
}

// Line is a classified source line. Offsets are byte offsets into Raw and
// are only meaningful for assignments and block headers.
type Line struct {
	Kind Kind
	// Num is the 1-based line number.
	Num    int
	Raw    string
	Indent string
	Key    string
	// Text is the trimmed literal text of an assignment.
	Text string
	// Err says why a line is Malformed.
	Err error

	KeyOff    int
	MarkerOff int
	TextOff   int
}

// Classify classifies a single line, without its line terminator.
func Classify(raw string, num int, m Markers) Line {
	ln := Line{Num: num, Raw: raw}
	ln.Indent = Indentation(raw)
	body := raw[len(ln.Indent):]
	if body == "" || strings.HasPrefix(body, m.Comment) {
		ln.Kind = Ignored
		return ln
	}
	ai := strings.Index(body, m.Assign)
	bi := strings.Index(body, m.Block)
	var (
		pos    = ai
		marker = m.Assign
		kind   = Assignment
	)
	if ai == -1 || (bi != -1 && bi < ai) {
		pos, marker, kind = bi, m.Block, BlockHeader
	}
	if pos == -1 {
		ln.Kind, ln.Err = Malformed, ErrNoMarker
		return ln
	}
	head := body[:pos]
	key := strings.TrimSpace(head)
	if key == "" {
		ln.Kind, ln.Err = Malformed, ErrEmptyKey
		return ln
	}
	ln.Key = key
	ln.KeyOff = len(ln.Indent)
	ln.MarkerOff = len(ln.Indent) + pos
	tail := body[pos+len(marker):]
	text := strings.TrimLeftFunc(tail, unicode.IsSpace)
	ln.TextOff = ln.MarkerOff + len(marker) + len(tail) - len(text)
	text = strings.TrimRightFunc(text, unicode.IsSpace)

	switch kind {
	case Assignment:
		ln.Kind = Assignment
		ln.Text = text
	case BlockHeader:
		if text != "" && !strings.HasPrefix(text, m.Comment) {
			ln.Kind, ln.Err = Malformed, ErrBlockTrailer
			return ln
		}
		ln.Kind = BlockHeader
	}
	return ln
}

// Indentation returns the leading whitespace of s.
func Indentation(s string) string {
	return s[:len(s)-len(strings.TrimLeftFunc(s, unicode.IsSpace))]
}
