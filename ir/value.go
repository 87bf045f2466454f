package ir

// Value is a node of a bunch tree: a scalar, a composite literal or a
// nested bunch, discriminated by Type.
//
// Lists, tuples and sets keep their elements in Values. Maps keep their
// entries in the parallel slices Keys and Values.
type Value struct {
	Type Type

	Bool    bool
	Int64   int64
	Float64 float64
	String  string

	Keys   []*Value
	Values []*Value

	Bunch *Bunch
}

func Null() *Value {
	return &Value{Type: NullType}
}

func FromBool(v bool) *Value {
	return &Value{Type: BoolType, Bool: v}
}

func FromInt(v int64) *Value {
	return &Value{Type: IntType, Int64: v}
}

func FromFloat(f float64) *Value {
	return &Value{Type: FloatType, Float64: f}
}

func FromString(s string) *Value {
	return &Value{Type: StringType, String: s}
}

func FromList(vs ...*Value) *Value {
	return &Value{Type: ListType, Values: nonNil(vs)}
}

func FromTuple(vs ...*Value) *Value {
	return &Value{Type: TupleType, Values: nonNil(vs)}
}

// FromSet builds a set from vs, dropping elements equal to an earlier one.
func FromSet(vs ...*Value) *Value {
	res := &Value{Type: SetType, Values: []*Value{}}
	idx := make(valueIndex, len(vs))
	for _, v := range vs {
		if idx.find(res.Values, v) < 0 {
			idx.add(v, len(res.Values))
			res.Values = append(res.Values, v)
		}
	}
	return res
}

func FromBunch(b *Bunch) *Value {
	if b == nil {
		b = NewBunch()
	}
	return &Value{Type: BunchType, Bunch: b}
}

// KeyVal is a single map entry.
type KeyVal struct {
	Key *Value
	Val *Value
}

// FromKeyVals builds a map. A later entry with a key equal to an earlier
// one replaces the earlier value in place.
func FromKeyVals(kvs []KeyVal) *Value {
	res := &Value{Type: MapType, Keys: []*Value{}, Values: []*Value{}}
	idx := make(valueIndex, len(kvs))
	for _, kv := range kvs {
		if i := idx.find(res.Keys, kv.Key); i >= 0 {
			res.Values[i] = kv.Val
			continue
		}
		idx.add(kv.Key, len(res.Keys))
		res.Keys = append(res.Keys, kv.Key)
		res.Values = append(res.Values, kv.Val)
	}
	return res
}

// SetEntry sets key to val in a map value. Building a map entry by entry
// is quadratic; FromKeyVals is not.
func (v *Value) SetEntry(key, val *Value) {
	for i, k := range v.Keys {
		if Equal(k, key) {
			v.Values[i] = val
			return
		}
	}
	v.Keys = append(v.Keys, key)
	v.Values = append(v.Values, val)
}

// Entry returns the value stored under key in a map value.
func (v *Value) Entry(key *Value) (*Value, bool) {
	for i, k := range v.Keys {
		if Equal(k, key) {
			return v.Values[i], true
		}
	}
	return nil, false
}

// Len returns the number of children of a composite or bunch value.
func (v *Value) Len() int {
	if v.Type == BunchType {
		return v.Bunch.Len()
	}
	return len(v.Values)
}

func (v *Value) Clone() *Value {
	if v == nil {
		return nil
	}
	res := &Value{
		Type:    v.Type,
		Bool:    v.Bool,
		Int64:   v.Int64,
		Float64: v.Float64,
		String:  v.String,
	}
	if v.Keys != nil {
		res.Keys = make([]*Value, len(v.Keys))
		for i, k := range v.Keys {
			res.Keys[i] = k.Clone()
		}
	}
	if v.Values != nil {
		res.Values = make([]*Value, len(v.Values))
		for i, e := range v.Values {
			res.Values[i] = e.Clone()
		}
	}
	if v.Bunch != nil {
		res.Bunch = v.Bunch.Clone()
	}
	return res
}

// Hashable reports whether v may be used as a map key or set element:
// scalars, and tuples whose elements are all hashable.
func Hashable(v *Value) bool {
	switch v.Type {
	case TupleType:
		for _, e := range v.Values {
			if !Hashable(e) {
				return false
			}
		}
		return true
	default:
		return v.Type.IsScalar()
	}
}

func nonNil(vs []*Value) []*Value {
	if vs == nil {
		return []*Value{}
	}
	return vs
}
