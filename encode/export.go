package encode

import (
	"encoding/json"
	"io"
	"slices"

	"github.com/bunch-format/bunch/ir"

	"github.com/goccy/go-yaml"
)

func encodeJSON(v any, w io.Writer) error {
	d, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = w.Write(append(d, '\n'))
	return err
}

func encodeYAML(v any, w io.Writer) error {
	d, err := yaml.Marshal(v)
	if err != nil {
		return err
	}
	_, err = w.Write(d)
	return err
}

func namedYAML(name string, b *ir.Bunch) yaml.MapSlice {
	return yaml.MapSlice{{Key: name, Value: bunchYAML(b)}}
}

// bunchYAML orders keys the way the bunch format does.
func bunchYAML(b *ir.Bunch) yaml.MapSlice {
	keys := b.Keys()
	slices.Sort(keys)
	res := yaml.MapSlice{}
	for _, k := range keys {
		res = append(res, yaml.MapItem{Key: k, Value: valueYAML(b.Get(k))})
	}
	return res
}

func valueYAML(v *ir.Value) any {
	switch v.Type {
	case ir.BunchType:
		return bunchYAML(v.Bunch)
	case ir.ListType, ir.TupleType, ir.SetType:
		res := make([]any, len(v.Values))
		for i, e := range v.Values {
			res[i] = valueYAML(e)
		}
		return res
	case ir.MapType:
		res := yaml.MapSlice{}
		for i, k := range v.Keys {
			var key any = ir.KeyString(k)
			if k.Type.IsScalar() {
				key = ir.ToAny(k)
			}
			res = append(res, yaml.MapItem{Key: key, Value: valueYAML(v.Values[i])})
		}
		return res
	default:
		return ir.ToAny(v)
	}
}
