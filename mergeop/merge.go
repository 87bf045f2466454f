package mergeop

import (
	"github.com/bunch-format/bunch/debug"
	"github.com/bunch-format/bunch/ir"
)

// Merge merges bunches in increasing priority. The result takes the Order
// of the first argument. Nil arguments count as empty bunches.
func Merge(bunches ...*ir.Bunch) *ir.Bunch {
	if len(bunches) == 0 {
		return ir.NewBunch()
	}
	res := ir.NewBunchOrder(bunches[0].Order())
	for _, key := range unionKeys(bunches) {
		res.Set(key, mergeKey(key, bunches))
	}
	return res
}

func mergeKey(key string, bunches []*ir.Bunch) *ir.Value {
	var (
		run  []*ir.Bunch
		last *ir.Value
	)
	for _, b := range bunches {
		v, ok := b.Lookup(key)
		if !ok {
			continue
		}
		last = v
		if v.Type != ir.BunchType {
			run = nil
			continue
		}
		run = append(run, v.Bunch)
	}
	if last.Type != ir.BunchType {
		return last.Clone()
	}
	if debug.Merge() {
		debug.Logf("merge: %q from %d bunch definitions\n", key, len(run))
	}
	return ir.FromBunch(Merge(run...))
}

// unionKeys returns every key of bunches in order of first appearance.
func unionKeys(bunches []*ir.Bunch) []string {
	seen := map[string]bool{}
	var res []string
	for _, b := range bunches {
		for _, k := range b.Keys() {
			if seen[k] {
				continue
			}
			seen[k] = true
			res = append(res, k)
		}
	}
	return res
}
