package bunch

import (
	"github.com/bunch-format/bunch/debug"
	"github.com/bunch-format/bunch/ir"
)

// Match reports whether doc contains every key of pattern. Bunch values
// in pattern are matched recursively, a null in pattern matches any value
// and other values must be equal.
func Match(doc, pattern *ir.Bunch) bool {
	for _, k := range pattern.Keys() {
		mv := pattern.Get(k)
		dv, ok := doc.Lookup(k)
		if !ok {
			if debug.Match() {
				debug.Logf("match: missing %q\n", k)
			}
			return false
		}
		if !matchValue(dv, mv) {
			return false
		}
	}
	return true
}

func matchValue(doc, pattern *ir.Value) bool {
	switch pattern.Type {
	case ir.NullType:
		return true
	case ir.BunchType:
		return doc.Type == ir.BunchType && Match(doc.Bunch, pattern.Bunch)
	default:
		return ir.Equal(doc, pattern)
	}
}
