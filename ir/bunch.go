package ir

import (
	"slices"
	"sort"
)

// Order selects how a Bunch iterates its keys.
type Order int

const (
	// InsertionOrder iterates keys in the order they were first set.
	InsertionOrder Order = iota
	// SortedOrder iterates keys sorted lexically.
	SortedOrder
)

func (o Order) String() string {
	switch o {
	case InsertionOrder:
		return "insertion"
	case SortedOrder:
		return "sorted"
	default:
		return "<unknown order>"
	}
}

// Bunch is a mapping from unique string keys to values. Setting a key that
// is already present replaces its value and keeps its position.
//
// Reading methods accept a nil receiver and treat it as empty. The zero
// value is an empty bunch in InsertionOrder.
type Bunch struct {
	order  Order
	keys   []string
	values map[string]*Value
}

func NewBunch() *Bunch {
	return NewBunchOrder(InsertionOrder)
}

func NewBunchOrder(o Order) *Bunch {
	return &Bunch{order: o, values: map[string]*Value{}}
}

func (b *Bunch) Order() Order {
	if b == nil {
		return InsertionOrder
	}
	return b.order
}

func (b *Bunch) Len() int {
	if b == nil {
		return 0
	}
	return len(b.keys)
}

// Get returns the value under key, or nil.
func (b *Bunch) Get(key string) *Value {
	v, _ := b.Lookup(key)
	return v
}

func (b *Bunch) Lookup(key string) (*Value, bool) {
	if b == nil {
		return nil, false
	}
	v, ok := b.values[key]
	return v, ok
}

func (b *Bunch) Contains(key string) bool {
	_, ok := b.Lookup(key)
	return ok
}

func (b *Bunch) Set(key string, v *Value) {
	if v == nil {
		v = Null()
	}
	if b.values == nil {
		b.values = map[string]*Value{}
	}
	if _, ok := b.values[key]; !ok {
		b.keys = append(b.keys, key)
	}
	b.values[key] = v
}

// SetBunch is shorthand for Set(key, FromBunch(sub)).
func (b *Bunch) SetBunch(key string, sub *Bunch) {
	b.Set(key, FromBunch(sub))
}

func (b *Bunch) Delete(key string) bool {
	if _, ok := b.values[key]; !ok {
		return false
	}
	delete(b.values, key)
	b.keys = slices.DeleteFunc(b.keys, func(k string) bool { return k == key })
	return true
}

// Keys returns a fresh slice of the keys in iteration order.
func (b *Bunch) Keys() []string {
	if b == nil {
		return nil
	}
	res := slices.Clone(b.keys)
	if b.order == SortedOrder {
		sort.Strings(res)
	}
	return res
}

// Clone returns a deep copy of b with the same Order.
func (b *Bunch) Clone() *Bunch {
	if b == nil {
		return nil
	}
	res := NewBunchOrder(b.order)
	for _, k := range b.keys {
		res.Set(k, b.values[k].Clone())
	}
	return res
}

// Equal reports whether b and o hold the same keys with equal values.
// Key order and Order are ignored.
func (b *Bunch) Equal(o *Bunch) bool {
	if b.Len() != o.Len() {
		return false
	}
	if b == nil || o == nil {
		return true
	}
	for k, v := range b.values {
		ov, ok := o.values[k]
		if !ok || !Equal(v, ov) {
			return false
		}
	}
	return true
}
