package libdiff

import (
	"slices"

	"github.com/bunch-format/bunch/ir"
)

// Diff returns the changes turning from into to, sorted by path. Keys
// holding a bunch on both sides are compared recursively; any other
// difference, including a change of type, is a single change.
func Diff(from, to *ir.Bunch) []Change {
	var res []Change
	diff(from, to, nil, &res)
	slices.SortFunc(res, func(a, b Change) int {
		return slices.Compare(a.Path, b.Path)
	})
	return res
}

func diff(from, to *ir.Bunch, path []string, res *[]Change) {
	for _, k := range from.Keys() {
		fv := from.Get(k)
		p := appendPath(path, k)
		tv, ok := to.Lookup(k)
		if !ok {
			*res = append(*res, makeChange(p, fv, nil))
			continue
		}
		if fv.Type == ir.BunchType && tv.Type == ir.BunchType {
			diff(fv.Bunch, tv.Bunch, p, res)
			continue
		}
		if !ir.Equal(fv, tv) {
			*res = append(*res, makeChange(p, fv, tv))
		}
	}
	for _, k := range to.Keys() {
		if from.Contains(k) {
			continue
		}
		*res = append(*res, makeChange(appendPath(path, k), nil, to.Get(k)))
	}
}

func appendPath(path []string, k string) []string {
	return append(slices.Clip(path), k)
}
