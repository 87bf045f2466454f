package ir

import (
	"cmp"
	"slices"
	"strings"
)

// Equal reports whether a and b are structurally equal. Types must match
// exactly, so an int never equals a float. Lists and tuples compare in
// order; sets, maps and bunches compare regardless of order.
func Equal(a, b *Value) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.Type != b.Type {
		return false
	}
	switch a.Type {
	case NullType:
		return true
	case BoolType:
		return a.Bool == b.Bool
	case IntType:
		return a.Int64 == b.Int64
	case FloatType:
		return a.Float64 == b.Float64
	case StringType:
		return a.String == b.String
	case ListType, TupleType:
		return slices.EqualFunc(a.Values, b.Values, Equal)
	case SetType:
		if len(a.Values) != len(b.Values) {
			return false
		}
		idx := newValueIndex(b.Values)
		for _, e := range a.Values {
			if idx.find(b.Values, e) < 0 {
				return false
			}
		}
		return true
	case MapType:
		if len(a.Keys) != len(b.Keys) {
			return false
		}
		idx := newValueIndex(b.Keys)
		for i, k := range a.Keys {
			j := idx.find(b.Keys, k)
			if j < 0 || !Equal(a.Values[i], b.Values[j]) {
				return false
			}
		}
		return true
	case BunchType:
		return a.Bunch.Equal(b.Bunch)
	}
	return false
}

// Compare returns an integer comparing two values.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
// Sets, maps and bunches are compared through their sorted contents.
func Compare(a, b *Value) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}
	rankA, rankB := rank(a.Type), rank(b.Type)
	if rankA != rankB {
		return cmp.Compare(rankA, rankB)
	}
	switch a.Type {
	case NullType:
		return 0
	case BoolType:
		if a.Bool == b.Bool {
			return 0
		}
		if !a.Bool {
			return -1
		}
		return 1
	case IntType, FloatType:
		return compareNumbers(a, b)
	case StringType:
		return strings.Compare(a.String, b.String)
	case ListType, TupleType:
		return slices.CompareFunc(a.Values, b.Values, Compare)
	case SetType:
		return slices.CompareFunc(sortedValues(a.Values), sortedValues(b.Values), Compare)
	case MapType:
		return slices.CompareFunc(sortedEntries(a), sortedEntries(b), compareEntries)
	case BunchType:
		return compareBunches(a.Bunch, b.Bunch)
	}
	return 0
}

// rank returns the sorting rank of a type.
// Order: Null < Bool < Number < String < Tuple < List < Set < Map < Bunch
func rank(t Type) int {
	switch t {
	case NullType:
		return 0
	case BoolType:
		return 1
	case IntType, FloatType:
		return 2
	case StringType:
		return 3
	case TupleType:
		return 4
	case ListType:
		return 5
	case SetType:
		return 6
	case MapType:
		return 7
	case BunchType:
		return 8
	}
	return 100
}

func compareNumbers(a, b *Value) int {
	if a.Type == IntType && b.Type == IntType {
		return cmp.Compare(a.Int64, b.Int64)
	}
	if c := cmp.Compare(asFloat(a), asFloat(b)); c != 0 {
		return c
	}
	// equal magnitude: int sorts first
	return cmp.Compare(a.Type, b.Type)
}

func asFloat(v *Value) float64 {
	if v.Type == IntType {
		return float64(v.Int64)
	}
	return v.Float64
}

// SortValues sorts vs in place by Compare.
func SortValues(vs []*Value) {
	slices.SortStableFunc(vs, Compare)
}

func sortedValues(vs []*Value) []*Value {
	res := slices.Clone(vs)
	SortValues(res)
	return res
}

func sortedEntries(v *Value) []KeyVal {
	res := make([]KeyVal, len(v.Keys))
	for i := range v.Keys {
		res[i] = KeyVal{Key: v.Keys[i], Val: v.Values[i]}
	}
	slices.SortStableFunc(res, compareEntries)
	return res
}

func compareEntries(a, b KeyVal) int {
	if c := Compare(a.Key, b.Key); c != 0 {
		return c
	}
	return Compare(a.Val, b.Val)
}

func compareBunches(a, b *Bunch) int {
	ka, kb := a.Keys(), b.Keys()
	slices.Sort(ka)
	slices.Sort(kb)
	for i := 0; i < len(ka) && i < len(kb); i++ {
		if c := strings.Compare(ka[i], kb[i]); c != 0 {
			return c
		}
		if c := Compare(a.Get(ka[i]), b.Get(kb[i])); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(ka), len(kb))
}
