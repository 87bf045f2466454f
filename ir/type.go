package ir

import "fmt"

type Type int

const (
	NullType Type = iota
	BoolType
	IntType
	FloatType
	StringType
	ListType
	TupleType
	SetType
	MapType
	BunchType
)

var typeNames = map[Type]string{
	NullType:   "Null",
	BoolType:   "Bool",
	IntType:    "Int",
	FloatType:  "Float",
	StringType: "String",
	ListType:   "List",
	TupleType:  "Tuple",
	SetType:    "Set",
	MapType:    "Map",
	BunchType:  "Bunch",
}

func (t Type) String() string {
	s, ok := typeNames[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	for tt, name := range typeNames {
		if name == string(d) {
			*t = tt
			return nil
		}
	}
	return fmt.Errorf("unrecognized type %q", d)
}

func Types() []Type {
	return []Type{
		NullType,
		BoolType,
		IntType,
		FloatType,
		StringType,
		ListType,
		TupleType,
		SetType,
		MapType,
		BunchType,
	}
}

// IsScalar reports whether values of type t hold no children.
func (t Type) IsScalar() bool {
	switch t {
	case NullType, BoolType, IntType, FloatType, StringType:
		return true
	default:
		return false
	}
}

// IsComposite reports whether t is one of the composite literal types.
func (t Type) IsComposite() bool {
	switch t {
	case ListType, TupleType, SetType, MapType:
		return true
	default:
		return false
	}
}
