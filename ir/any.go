package ir

import (
	"encoding/json"
	"fmt"
	"maps"
	"math"
	"slices"
	"strconv"
	"strings"
)

// ToAny converts v to plain Go values: nil, bool, int, float64, string,
// []any and map[string]any. Tuples and sets become slices. Map keys that
// are not strings are rendered with KeyString.
func ToAny(v *Value) any {
	switch v.Type {
	case NullType:
		return nil
	case BoolType:
		return v.Bool
	case IntType:
		return int(v.Int64)
	case FloatType:
		return v.Float64
	case StringType:
		return v.String
	case ListType, TupleType, SetType:
		res := make([]any, len(v.Values))
		for i, e := range v.Values {
			res[i] = ToAny(e)
		}
		return res
	case MapType:
		res := make(map[string]any, len(v.Keys))
		for i, k := range v.Keys {
			res[KeyString(k)] = ToAny(v.Values[i])
		}
		return res
	case BunchType:
		return BunchToAny(v.Bunch)
	default:
		panic("impossible production")
	}
}

func BunchToAny(b *Bunch) map[string]any {
	res := make(map[string]any, b.Len())
	for _, k := range b.Keys() {
		res[k] = ToAny(b.Get(k))
	}
	return res
}

// KeyString renders a hashable value as a plain string key.
func KeyString(v *Value) string {
	switch v.Type {
	case StringType:
		return v.String
	case NullType:
		return "null"
	case BoolType:
		return strconv.FormatBool(v.Bool)
	case IntType:
		return strconv.FormatInt(v.Int64, 10)
	case FloatType:
		return strconv.FormatFloat(v.Float64, 'g', -1, 64)
	case TupleType:
		parts := make([]string, len(v.Values))
		for i, e := range v.Values {
			parts[i] = KeyString(e)
		}
		return "(" + strings.Join(parts, ", ") + ")"
	default:
		return fmt.Sprintf("<%s>", v.Type)
	}
}

// FromAny converts plain Go values, as produced by encoding/json, into a
// Value. Objects become nested bunches with keys set in sorted order.
func FromAny(x any) (*Value, error) {
	switch t := x.(type) {
	case nil:
		return Null(), nil
	case *Value:
		return t.Clone(), nil
	case *Bunch:
		return FromBunch(t.Clone()), nil
	case bool:
		return FromBool(t), nil
	case string:
		return FromString(t), nil
	case int:
		return FromInt(int64(t)), nil
	case int8:
		return FromInt(int64(t)), nil
	case int16:
		return FromInt(int64(t)), nil
	case int32:
		return FromInt(int64(t)), nil
	case int64:
		return FromInt(t), nil
	case uint8:
		return FromInt(int64(t)), nil
	case uint16:
		return FromInt(int64(t)), nil
	case uint32:
		return FromInt(int64(t)), nil
	case uint:
		if uint64(t) > math.MaxInt64 {
			return nil, fmt.Errorf("%w: %d out of range", ErrUnsupported, t)
		}
		return FromInt(int64(t)), nil
	case uint64:
		if t > math.MaxInt64 {
			return nil, fmt.Errorf("%w: %d out of range", ErrUnsupported, t)
		}
		return FromInt(int64(t)), nil
	case float32:
		return FromFloat(float64(t)), nil
	case float64:
		return FromFloat(t), nil
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return FromInt(i), nil
		}
		f, err := t.Float64()
		if err != nil {
			return nil, fmt.Errorf("%w: number %q: %w", ErrUnsupported, t, err)
		}
		return FromFloat(f), nil
	case []any:
		vs := make([]*Value, len(t))
		for i, e := range t {
			v, err := FromAny(e)
			if err != nil {
				return nil, err
			}
			vs[i] = v
		}
		return FromList(vs...), nil
	case map[string]any:
		b, err := BunchFromAny(t)
		if err != nil {
			return nil, err
		}
		return FromBunch(b), nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupported, x)
	}
}

// BunchFromAny converts x, which must be a map[string]any or a bunch, to a
// Bunch.
func BunchFromAny(x any) (*Bunch, error) {
	switch t := x.(type) {
	case *Bunch:
		return t.Clone(), nil
	case map[string]any:
		res := NewBunch()
		for _, k := range slices.Sorted(maps.Keys(t)) {
			v, err := FromAny(t[k])
			if err != nil {
				return nil, fmt.Errorf("%s: %w", k, err)
			}
			res.Set(k, v)
		}
		return res, nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrNotBunch, x)
	}
}
