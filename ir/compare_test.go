package ir

import (
	"testing"
)

func TestCompare(t *testing.T) {
	tests := []struct {
		name     string
		a, b     *Value
		expected int
	}{
		// Null < Bool < Number < String < Tuple < List < Set < Map < Bunch
		{"Null < Bool", Null(), FromBool(false), -1},
		{"Bool < Number", FromBool(true), FromInt(0), -1},
		{"Number < String", FromFloat(9.5), FromString("a"), -1},
		{"String < Tuple", FromString("z"), FromTuple(), -1},
		{"Tuple < List", FromTuple(FromInt(9)), FromList(), -1},
		{"List < Set", FromList(FromInt(9)), FromSet(), -1},
		{"Set < Map", FromSet(FromInt(1)), FromKeyVals(nil), -1},
		{"Map < Bunch", FromKeyVals(nil), FromBunch(NewBunch()), -1},

		{"false < true", FromBool(false), FromBool(true), -1},
		{"Int < Int", FromInt(2), FromInt(10), -1},
		{"Int < Float", FromInt(1), FromFloat(1.5), -1},
		{"Float > Int", FromFloat(2.5), FromInt(2), 1},
		{"Int before equal Float", FromInt(1), FromFloat(1), -1},
		{"String < String", FromString("a"), FromString("b"), -1},

		{"Short List < Long List", FromList(FromInt(1)), FromList(FromInt(1), FromInt(2)), -1},
		{"List element", FromList(FromInt(3)), FromList(FromInt(2)), 1},
		{"Set ignores order", FromSet(FromInt(1), FromInt(2)), FromSet(FromInt(2), FromInt(1)), 0},
		{"Map ignores order",
			FromKeyVals([]KeyVal{{FromString("a"), FromInt(1)}, {FromString("b"), FromInt(2)}}),
			FromKeyVals([]KeyVal{{FromString("b"), FromInt(2)}, {FromString("a"), FromInt(1)}}),
			0},
		{"Map value", FromKeyVals([]KeyVal{{FromString("a"), FromInt(1)}}), FromKeyVals([]KeyVal{{FromString("a"), FromInt(2)}}), -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compare(tt.a, tt.b); got != tt.expected {
				t.Errorf("Compare(%v, %v) = %d, want %d", tt.a.Type, tt.b.Type, got, tt.expected)
			}
			if got := Compare(tt.b, tt.a); got != -tt.expected {
				t.Errorf("Compare(%v, %v) = %d, want %d", tt.b.Type, tt.a.Type, got, -tt.expected)
			}
		})
	}
}

func TestEqual(t *testing.T) {
	nested := NewBunch()
	nested.Set("x", FromInt(1))
	other := NewBunchOrder(SortedOrder)
	other.Set("x", FromInt(1))

	tests := []struct {
		name string
		a, b *Value
		want bool
	}{
		{"int vs float", FromInt(1), FromFloat(1), false},
		{"bool vs int", FromBool(true), FromInt(1), false},
		{"list vs tuple", FromList(FromInt(1)), FromTuple(FromInt(1)), false},
		{"list order", FromList(FromInt(1), FromInt(2)), FromList(FromInt(2), FromInt(1)), false},
		{"set order", FromSet(FromInt(1), FromInt(2)), FromSet(FromInt(2), FromInt(1)), true},
		{"nested list", FromList(FromList(FromString("a"))), FromList(FromList(FromString("a"))), true},
		{"bunch ignores order class", FromBunch(nested), FromBunch(other), true},
		{"nulls", Null(), Null(), true},
		{"nil", nil, Null(), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Equal(tt.a, tt.b); got != tt.want {
				t.Errorf("Equal = %v, want %v", got, tt.want)
			}
		})
	}
}
