package ir

import (
	"fmt"
	"strings"
)

// GetIn follows path through nested bunches.
func (b *Bunch) GetIn(path ...string) (*Value, error) {
	if len(path) == 0 {
		return FromBunch(b), nil
	}
	cur := b
	for i, k := range path {
		v, ok := cur.Lookup(k)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, JoinPath(path[:i+1]))
		}
		if i == len(path)-1 {
			return v, nil
		}
		if v.Type != BunchType {
			return nil, fmt.Errorf("%s: %w", JoinPath(path[:i+1]), ErrNotBunch)
		}
		cur = v.Bunch
	}
	panic("unreachable")
}

// GetPath is GetIn with a dotted path. The empty path and "." denote b
// itself.
func (b *Bunch) GetPath(path string) (*Value, error) {
	return b.GetIn(SplitPath(path)...)
}

func SplitPath(path string) []string {
	path = strings.TrimPrefix(path, ".")
	if path == "" {
		return nil
	}
	return strings.Split(path, ".")
}

func JoinPath(path []string) string {
	return strings.Join(path, ".")
}
