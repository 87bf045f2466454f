package libdiff

import (
	"fmt"

	"github.com/bunch-format/bunch/ir"
)

// Reverse returns changes which undo cs.
func Reverse(cs []Change) []Change {
	res := make([]Change, len(cs))
	for i, c := range cs {
		res[i] = makeChange(c.Path, c.To, c.From)
	}
	return res
}

// Apply applies cs to a copy of b. Added and Modified changes create
// intermediate bunches as needed; a Removed change whose path is absent
// is an error wrapping ir.ErrNotFound.
func Apply(b *ir.Bunch, cs []Change) (*ir.Bunch, error) {
	res := b.Clone()
	if res == nil {
		res = ir.NewBunch()
	}
	for _, c := range cs {
		if len(c.Path) == 0 {
			return nil, fmt.Errorf("%s change with empty path", c.Kind)
		}
		parent, err := walk(res, c.Path[:len(c.Path)-1], c.Kind != Removed)
		if err != nil {
			return nil, err
		}
		k := c.Path[len(c.Path)-1]
		if c.Kind == Removed {
			if !parent.Delete(k) {
				return nil, fmt.Errorf("%w: %s", ir.ErrNotFound, ir.JoinPath(c.Path))
			}
			continue
		}
		parent.Set(k, c.To.Clone())
	}
	return res, nil
}

func walk(b *ir.Bunch, path []string, create bool) (*ir.Bunch, error) {
	cur := b
	for i, k := range path {
		v, ok := cur.Lookup(k)
		switch {
		case ok && v.Type == ir.BunchType:
			cur = v.Bunch
		case ok || !create:
			if !ok {
				return nil, fmt.Errorf("%w: %s", ir.ErrNotFound, ir.JoinPath(path[:i+1]))
			}
			return nil, fmt.Errorf("%s: %w", ir.JoinPath(path[:i+1]), ir.ErrNotBunch)
		default:
			sub := ir.NewBunchOrder(b.Order())
			cur.SetBunch(k, sub)
			cur = sub
		}
	}
	return cur, nil
}
