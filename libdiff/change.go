package libdiff

import (
	"fmt"
	"strings"

	"github.com/bunch-format/bunch/ir"
	"github.com/bunch-format/bunch/literal"
)

type Kind int

const (
	Added Kind = iota
	Removed
	Modified
)

var kindNames = []string{"added", "removed", "modified"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Change records one difference between two bunches. From is nil for
// Added changes and To is nil for Removed ones.
type Change struct {
	Path []string
	Kind Kind
	From *ir.Value
	To   *ir.Value
}

func makeChange(path []string, from, to *ir.Value) Change {
	c := Change{Path: path, From: from, To: to}
	switch {
	case from == nil:
		c.Kind = Added
	case to == nil:
		c.Kind = Removed
	default:
		c.Kind = Modified
	}
	return c
}

func (c Change) String() string {
	p := ir.JoinPath(c.Path)
	switch c.Kind {
	case Added:
		return fmt.Sprintf("+ %s = %s", p, show(c.To))
	case Removed:
		return fmt.Sprintf("- %s = %s", p, show(c.From))
	default:
		return fmt.Sprintf("~ %s: %s -> %s", p, show(c.From), show(c.To))
	}
}

func show(v *ir.Value) string {
	if v.Type == ir.BunchType {
		return "<bunch " + strings.Join(v.Bunch.Keys(), ", ") + ">"
	}
	s, err := literal.Format(v)
	if err != nil {
		return "<" + v.Type.String() + ">"
	}
	return s
}
