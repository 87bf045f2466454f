package ir

import (
	"strconv"
	"strings"
)

// valueIndex buckets values by hashKey. Values in a bucket are told apart
// with Equal, so colliding keys only cost a comparison.
type valueIndex map[string][]int

func newValueIndex(vs []*Value) valueIndex {
	idx := make(valueIndex, len(vs))
	for i, v := range vs {
		idx.add(v, i)
	}
	return idx
}

// find returns the position in vs of a value equal to v, or -1.
func (idx valueIndex) find(vs []*Value, v *Value) int {
	for _, i := range idx[hashKey(v)] {
		if Equal(vs[i], v) {
			return i
		}
	}
	return -1
}

func (idx valueIndex) add(v *Value, i int) {
	k := hashKey(v)
	idx[k] = append(idx[k], i)
}

// hashKey agrees with Equal: equal values have the same key.
func hashKey(v *Value) string {
	sb := &strings.Builder{}
	writeHashKey(sb, v)
	return sb.String()
}

func writeHashKey(sb *strings.Builder, v *Value) {
	if v == nil {
		sb.WriteString("nil")
		return
	}
	switch v.Type {
	case NullType:
		sb.WriteString("n")
	case BoolType:
		sb.WriteString("b")
		sb.WriteString(strconv.FormatBool(v.Bool))
	case IntType:
		sb.WriteString("i")
		sb.WriteString(strconv.FormatInt(v.Int64, 10))
	case FloatType:
		f := v.Float64
		if f == 0 {
			// -0 == 0
			f = 0
		}
		sb.WriteString("f")
		sb.WriteString(strconv.FormatFloat(f, 'g', -1, 64))
	case StringType:
		sb.WriteString("s")
		sb.WriteString(strconv.Itoa(len(v.String)))
		sb.WriteString(":")
		sb.WriteString(v.String)
	case ListType, TupleType:
		sb.WriteString(v.Type.String())
		sb.WriteString("(")
		for _, e := range v.Values {
			writeHashKey(sb, e)
			sb.WriteString(",")
		}
		sb.WriteString(")")
	default:
		// order-insensitive types share a bucket per type and length
		sb.WriteString(v.Type.String())
		sb.WriteString(strconv.Itoa(v.Len()))
	}
}
