package literal

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/bunch-format/bunch/ir"
)

// Format renders v as canonical literal text. Sets are written in Compare
// order. Bunches, empty sets and non-finite floats have no literal form.
func Format(v *ir.Value) (string, error) {
	sb := &strings.Builder{}
	if err := format(sb, v); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// MustFormat is Format for values known to be representable.
func MustFormat(v *ir.Value) string {
	s, err := Format(v)
	if err != nil {
		panic(err)
	}
	return s
}

func format(sb *strings.Builder, v *ir.Value) error {
	switch v.Type {
	case ir.NullType:
		sb.WriteString("null")
	case ir.BoolType:
		sb.WriteString(strconv.FormatBool(v.Bool))
	case ir.IntType:
		sb.WriteString(strconv.FormatInt(v.Int64, 10))
	case ir.FloatType:
		s, err := FormatFloat(v.Float64)
		if err != nil {
			return err
		}
		sb.WriteString(s)
	case ir.StringType:
		sb.WriteString(Quote(v.String))
	case ir.ListType:
		return formatSeq(sb, "[", "]", v.Values)
	case ir.TupleType:
		if len(v.Values) == 1 {
			sb.WriteByte('(')
			if err := format(sb, v.Values[0]); err != nil {
				return err
			}
			sb.WriteString(",)")
			return nil
		}
		return formatSeq(sb, "(", ")", v.Values)
	case ir.SetType:
		if len(v.Values) == 0 {
			return fmt.Errorf("%w: empty set", ErrUnrepresented)
		}
		elems := slices.Clone(v.Values)
		ir.SortValues(elems)
		return formatSeq(sb, "{", "}", elems)
	case ir.MapType:
		sb.WriteByte('{')
		for i, k := range v.Keys {
			if i > 0 {
				sb.WriteString(", ")
			}
			if err := format(sb, k); err != nil {
				return err
			}
			sb.WriteString(": ")
			if err := format(sb, v.Values[i]); err != nil {
				return err
			}
		}
		sb.WriteByte('}')
	default:
		return fmt.Errorf("%w: %s", ErrUnrepresented, v.Type)
	}
	return nil
}

func formatSeq(sb *strings.Builder, open, close string, vs []*ir.Value) error {
	sb.WriteString(open)
	for i, e := range vs {
		if i > 0 {
			sb.WriteString(", ")
		}
		if err := format(sb, e); err != nil {
			return err
		}
	}
	sb.WriteString(close)
	return nil
}

// FormatFloat renders f so that it reads back as a float.
func FormatFloat(f float64) (string, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "", fmt.Errorf("%w: %v", ErrUnrepresented, f)
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s, nil
}
